package repository

import (
	"context"

	"github.com/jhoicas/contasunat/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// GetByRUC devuelve (nil, nil) si no existe.
	GetByRUC(ctx context.Context, ruc string) (*entity.Company, error)
}
