package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/domain"
	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/ledger"
	"github.com/jhoicas/contasunat/internal/domain/ratios"
	"github.com/jhoicas/contasunat/internal/domain/statements"
	"github.com/jhoicas/contasunat/pkg/logger"
)

const dateLayout = "2006-01-02"

// StatementsUseCase estados financieros, flujo de efectivo e indicadores de un rango de fechas.
type StatementsUseCase struct {
	runner    SnapshotRunner
	generator StatementsPDFGenerator
	opts      statements.Options
	log       *logger.Logger
}

// NewStatementsUseCase construye el caso de uso. generator puede ser nil si no se exporta PDF.
func NewStatementsUseCase(
	runner SnapshotRunner,
	generator StatementsPDFGenerator,
	opts statements.Options,
	log *logger.Logger,
) *StatementsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StatementsUseCase{runner: runner, generator: generator, opts: opts, log: log}
}

// Generate carga saldos y tesorería del rango [From, To] en una misma foto y calcula los estados.
//
// Retorna:
//   - domain.ErrInvalidRange si To es anterior a From.
//   - domain.ErrNotFound     si el RUC no corresponde a una empresa registrada.
func (uc *StatementsUseCase) Generate(ctx context.Context, in dto.StatementsRequest) (*dto.StatementsReport, error) {
	if in.From.IsZero() || in.To.IsZero() || in.To.Before(in.From) {
		return nil, fmt.Errorf("%w: %s a %s", domain.ErrInvalidRange, in.From.Format(dateLayout), in.To.Format(dateLayout))
	}

	var (
		company   *entity.Company
		accounts  []entity.Account
		movements []entity.LedgerMovement
		treasury  []entity.TreasuryMovement
	)
	err := uc.runner.ReadSnapshot(ctx, func(repos Repositories) error {
		var err error
		company, err = repos.Companies.GetByRUC(ctx, in.RUC)
		if err != nil {
			return fmt.Errorf("estados: obtener empresa: %w", err)
		}
		if company == nil {
			return fmt.Errorf("%w: empresa con RUC %s", domain.ErrNotFound, in.RUC)
		}
		if accounts, err = repos.Ledger.ListAccounts(ctx, company.ID); err != nil {
			return fmt.Errorf("estados: plan de cuentas: %w", err)
		}
		if movements, err = repos.Ledger.ListMovements(ctx, company.ID, in.From, in.To); err != nil {
			return fmt.Errorf("estados: movimientos del mayor: %w", err)
		}
		if treasury, err = repos.Treasury.ListMovements(ctx, company.ID, in.From, in.To); err != nil {
			return fmt.Errorf("estados: movimientos de tesorería: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := BuildStatementsReport(ledger.BuildBalances(movements, accounts), treasury, in.OpeningCash, uc.opts)
	report.ExportID = uuid.NewString()
	report.RUC = company.RUC
	report.CompanyName = company.Name
	report.From = in.From.Format(dateLayout)
	report.To = in.To.Format(dateLayout)

	log := uc.log.WithExportID(report.ExportID)
	event := log.Info()
	if !report.Balanced {
		event = log.Warn()
	}
	event.
		Str("ruc", report.RUC).
		Str("from", report.From).
		Str("to", report.To).
		Int("accounts", len(accounts)).
		Int("movements", len(movements)).
		Str("net_profit", report.IncomeStatement.UtilidadNeta.StringFixed(2)).
		Bool("balanced", report.Balanced).
		Str("difference", report.Difference.StringFixed(2)).
		Msg("estados financieros generados")

	return report, nil
}

// GeneratePDF igual que Generate y además renderiza el PDF.
func (uc *StatementsUseCase) GeneratePDF(ctx context.Context, in dto.StatementsRequest) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("estados: generador PDF no configurado")
	}
	report, err := uc.Generate(ctx, in)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStatementsPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("estados: generación de PDF: %w", err)
	}
	filename = fmt.Sprintf("EEFF_%s_%s_%s.pdf", report.RUC, in.From.Format("20060102"), in.To.Format("20060102"))
	return pdfBytes, filename, nil
}

// BuildStatementsReport calcula estado de resultados, situación financiera, flujo de efectivo e
// indicadores a partir de saldos ya agregados. No accede a datos.
func BuildStatementsReport(
	balances []entity.AccountBalance,
	treasury []entity.TreasuryMovement,
	openingCash decimal.Decimal,
	opts statements.Options,
) *dto.StatementsReport {
	is := statements.BuildIncomeStatement(balances, opts)
	bs := statements.BuildBalanceSheet(balances, is, opts)
	return &dto.StatementsReport{
		PCGEVersion:            opts.Table.Version,
		IncomeStatement:        is,
		BalanceSheet:           bs,
		CashFlow:               statements.BuildCashFlow(treasury, openingCash),
		Ratios:                 ratios.Compute(bs, is).Ratios,
		Balanced:               bs.Balanced(),
		Difference:             bs.Difference(),
		TrialBalanceDifference: ledger.TrialBalanceDifference(balances),
	}
}

// ParseDate fecha AAAA-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, se espera AAAA-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}
