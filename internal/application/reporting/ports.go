// Package reporting orquesta las exportaciones: carga los datos vía repositorios, ejecuta el núcleo
// (libros PLE, estados financieros, indicadores, comprobantes UBL) y registra cada exportación.
package reporting

import (
	"context"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/domain/repository"
)

// Repositories repos de lectura atados a una misma foto de la base de datos.
type Repositories struct {
	Companies repository.CompanyRepository
	Ledger    repository.LedgerRepository
	Journal   repository.JournalRepository
	Registers repository.RegisterRepository
	Treasury  repository.TreasuryRepository
}

// SnapshotRunner ejecuta fn con repos que leen de una transacción de solo lectura.
type SnapshotRunner interface {
	ReadSnapshot(ctx context.Context, fn func(repos Repositories) error) error
}

// StatementsPDFGenerator genera el PDF de los estados financieros.
type StatementsPDFGenerator interface {
	GenerateStatementsPDF(ctx context.Context, report *dto.StatementsReport) ([]byte, error)
}
