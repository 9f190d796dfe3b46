package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo consultas de solo lectura sobre el plan de cuentas y las líneas de asiento.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const accountsQuery = `
	SELECT code, name, account_type
	FROM accounts
	WHERE company_id = $1
	ORDER BY code`

// ListAccounts plan de cuentas de la empresa ordenado por código.
func (r *LedgerRepo) ListAccounts(ctx context.Context, companyID string) ([]entity.Account, error) {
	rows, err := r.q.Query(ctx, accountsQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListAccounts: %w", err)
	}
	defer rows.Close()

	var list []entity.Account
	for rows.Next() {
		var (
			a   entity.Account
			typ string
		)
		if err := rows.Scan(&a.Code, &a.Name, &typ); err != nil {
			return nil, fmt.Errorf("ledger.ListAccounts scan: %w", err)
		}
		a.Type = entity.AccountType(typ)
		list = append(list, a)
	}
	return list, rows.Err()
}

const ledgerMovementsQuery = `
	SELECT jl.account_code,
	       COALESCE(jl.debit, 0),
	       COALESCE(jl.credit, 0),
	       to_char(jl.accounting_date, 'YYYY-MM-DD')
	FROM journal_lines jl
	WHERE jl.company_id = $1
	  AND jl.accounting_date BETWEEN $2 AND $3
	  AND COALESCE(jl.status, '1') <> '9'
	ORDER BY jl.accounting_date, jl.line_no`

// ListMovements cargos y abonos por cuenta en el rango, excluyendo asientos anulados.
func (r *LedgerRepo) ListMovements(ctx context.Context, companyID string, from, to time.Time) ([]entity.LedgerMovement, error) {
	rows, err := r.q.Query(ctx, ledgerMovementsQuery, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListMovements: %w", err)
	}
	defer rows.Close()

	var list []entity.LedgerMovement
	for rows.Next() {
		var m entity.LedgerMovement
		if err := rows.Scan(&m.AccountCode, &m.Debit, &m.Credit, &m.Date); err != nil {
			return nil, fmt.Errorf("ledger.ListMovements scan: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
