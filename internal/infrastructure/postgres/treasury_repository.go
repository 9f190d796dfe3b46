package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/repository"
)

var _ repository.TreasuryRepository = (*TreasuryRepo)(nil)

// TreasuryRepo movimientos de caja y bancos.
type TreasuryRepo struct {
	q Querier
}

// NewTreasuryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewTreasuryRepository(q Querier) *TreasuryRepo {
	return &TreasuryRepo{q: q}
}

const treasuryMovementsQuery = `
	SELECT to_char(t.movement_date, 'YYYY-MM-DD'),
	       t.category,
	       t.direction,
	       COALESCE(t.concept, ''),
	       COALESCE(t.operating_class, ''),
	       COALESCE(t.amount, 0)
	FROM treasury_movements t
	WHERE t.company_id = $1
	  AND t.movement_date BETWEEN $2 AND $3
	ORDER BY t.movement_date, t.id`

// ListMovements movimientos de tesorería del rango en orden cronológico.
func (r *TreasuryRepo) ListMovements(ctx context.Context, companyID string, from, to time.Time) ([]entity.TreasuryMovement, error) {
	rows, err := r.q.Query(ctx, treasuryMovementsQuery, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("treasury.ListMovements: %w", err)
	}
	defer rows.Close()

	var list []entity.TreasuryMovement
	for rows.Next() {
		var (
			m                          entity.TreasuryMovement
			category, direction, class string
		)
		if err := rows.Scan(&m.Date, &category, &direction, &m.Concepto, &class, &m.Amount); err != nil {
			return nil, fmt.Errorf("treasury.ListMovements scan: %w", err)
		}
		m.Category = entity.CashFlowCategory(category)
		m.Tipo = entity.TreasuryDirection(direction)
		m.OperatingClass = entity.OperatingClass(class)
		list = append(list, m)
	}
	return list, rows.Err()
}
