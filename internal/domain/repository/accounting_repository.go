package repository

import (
	"context"
	"time"

	"github.com/jhoicas/contasunat/internal/domain/entity"
)

// LedgerRepository lecturas del plan de cuentas y de los movimientos del mayor.
// Las implementaciones son read-only: los asientos los registra otro sistema.
type LedgerRepository interface {
	ListAccounts(ctx context.Context, companyID string) ([]entity.Account, error)

	// ListMovements movimientos con fecha contable en [from, to], ambos inclusive.
	ListMovements(ctx context.Context, companyID string, from, to time.Time) ([]entity.LedgerMovement, error)
}

// JournalRepository líneas del libro diario de un periodo (AAAAMM), en orden de registro.
type JournalRepository interface {
	ListByPeriod(ctx context.Context, companyID, period string) ([]entity.JournalEntry, error)
}

// RegisterRepository comprobantes de los registros de compras y ventas de un periodo (AAAAMM).
type RegisterRepository interface {
	ListPurchases(ctx context.Context, companyID, period string) ([]entity.PurchaseDocument, error)
	ListSales(ctx context.Context, companyID, period string) ([]entity.SalesDocument, error)
}

// TreasuryRepository movimientos de caja y bancos con fecha en [from, to].
type TreasuryRepository interface {
	ListMovements(ctx context.Context, companyID string, from, to time.Time) ([]entity.TreasuryMovement, error)
}
