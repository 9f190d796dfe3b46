package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo líneas del libro diario.
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construye el adaptador. Acepta pool o tx (Querier).
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

const journalByPeriodQuery = `
	SELECT jl.cuo,
	       jl.account_code,
	       COALESCE(jl.operation_unit, ''),
	       COALESCE(jl.cost_center, ''),
	       COALESCE(jl.currency, 'PEN'),
	       COALESCE(jl.id_doc_type, ''),
	       COALESCE(jl.id_doc_number, ''),
	       COALESCE(jl.voucher_type, ''),
	       COALESCE(jl.series, ''),
	       COALESCE(jl.number, ''),
	       to_char(jl.accounting_date, 'YYYY-MM-DD'),
	       COALESCE(to_char(jl.due_date, 'YYYY-MM-DD'), ''),
	       COALESCE(to_char(jl.operation_date, 'YYYY-MM-DD'), ''),
	       COALESCE(jl.narrative, ''),
	       COALESCE(jl.reference_narrative, ''),
	       COALESCE(jl.debit, 0),
	       COALESCE(jl.credit, 0),
	       COALESCE(jl.structured_data, ''),
	       COALESCE(jl.status, '1')
	FROM journal_lines jl
	WHERE jl.company_id = $1
	  AND jl.accounting_date >= $2
	  AND jl.accounting_date <  $3
	ORDER BY jl.entry_no, jl.line_no`

// ListByPeriod líneas con fecha contable dentro del periodo, en el orden en que se registraron.
func (r *JournalRepo) ListByPeriod(ctx context.Context, companyID, period string) ([]entity.JournalEntry, error) {
	from, to, err := periodRange(period)
	if err != nil {
		return nil, fmt.Errorf("journal.ListByPeriod: %w", err)
	}
	rows, err := r.q.Query(ctx, journalByPeriodQuery, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("journal.ListByPeriod: %w", err)
	}
	defer rows.Close()

	var list []entity.JournalEntry
	for rows.Next() {
		var e entity.JournalEntry
		if err := rows.Scan(
			&e.CUO, &e.AccountCode, &e.OperationUnit, &e.CostCenter, &e.Currency,
			&e.IDDocType, &e.IDDocNumber, &e.VoucherType, &e.Series, &e.Number,
			&e.Date, &e.DueDate, &e.OperationDate, &e.Narrative, &e.ReferenceNarrative,
			&e.Debit, &e.Credit, &e.StructuredData, &e.Status,
		); err != nil {
			return nil, fmt.Errorf("journal.ListByPeriod scan: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
