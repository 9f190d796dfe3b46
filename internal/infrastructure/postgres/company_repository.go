package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// GetByRUC obtiene una empresa por RUC.
func (r *CompanyRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Company, error) {
	const query = `
		SELECT id, ruc, name, COALESCE(trade_name, ''), COALESCE(address, ''),
		       COALESCE(ubigeo, ''), COALESCE(address_code, '0000'), status, created_at, updated_at
		FROM companies WHERE ruc = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, ruc).Scan(
		&c.ID, &c.RUC, &c.Name, &c.TradeName, &c.Address,
		&c.Ubigeo, &c.AddressCode, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by RUC: %w", err)
	}
	return &c, nil
}
