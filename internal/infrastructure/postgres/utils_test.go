package postgres

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRange(t *testing.T) {
	from, to, err := periodRange("202412")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to, "fin exclusivo en el mes siguiente")

	_, _, err = periodRange("2024-12")
	assert.Error(t, err)
}

// Montos y estado nulos no deben abortar el Scan de toda la exportación.
func TestQueries_ColumnasNulablesConValorPorDefecto(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"diario", journalByPeriodQuery, []string{"COALESCE(jl.debit, 0)", "COALESCE(jl.credit, 0)", "COALESCE(jl.status, '1')"}},
		{"mayor", ledgerMovementsQuery, []string{"COALESCE(jl.debit, 0)", "COALESCE(jl.credit, 0)", "COALESCE(jl.status, '1') <> '9'"}},
		{"compras", purchasesQuery, []string{"COALESCE(p.total, 0)", "COALESCE(p.status, '1')"}},
		{"ventas", salesQuery, []string{"COALESCE(s.total, 0)", "COALESCE(s.status, '1')"}},
		{"tesorería", treasuryMovementsQuery, []string{"COALESCE(t.amount, 0)"}},
	}
	bare := regexp.MustCompile(`(?m)(^|[\s,])(jl\.(debit|credit|status)|[ps]\.(total|status)|t\.amount)\s*(,|$|<>)`)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, w := range tc.want {
				assert.Contains(t, tc.query, w)
			}
			assert.False(t, bare.MatchString(tc.query), "columna nulable sin COALESCE:\n%s", tc.query)
		})
	}
}
