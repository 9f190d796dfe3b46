package books

import (
	"sort"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/pkg/ple"
)

// SortForLedger devuelve una copia ordenada por (cuenta asc, fecha asc). El orden es estable:
// las líneas de una misma cuenta y fecha conservan el orden de entrada.
// Debe completarse antes de mapear cualquier línea del Libro Mayor.
func SortForLedger(entries []entity.JournalEntry) []entity.JournalEntry {
	sorted := make([]entity.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AccountCode != sorted[j].AccountCode {
			return sorted[i].AccountCode < sorted[j].AccountCode
		}
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// LedgerFields campos del Libro Mayor (formato 6.1). Misma estructura que el Diario;
// las líneas deben llegar ordenadas con SortForLedger.
func LedgerFields(e entity.JournalEntry, period string, correlative int) []ple.FieldSpec {
	return accountingFields(e, period, correlative)
}
