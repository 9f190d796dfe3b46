package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/ratios"
	"github.com/jhoicas/contasunat/internal/domain/statements"
	"github.com/jhoicas/contasunat/pkg/ple"
)

// BookExportRequest libro electrónico a exportar.
type BookExportRequest struct {
	RUC      string `json:"ruc"`
	Book     string `json:"book"`   // diario | mayor | compras | ventas, o el código PLE
	Period   string `json:"period"` // AAAAMM
	Encoding string `json:"encoding,omitempty"`
	Zip      bool   `json:"zip,omitempty"`
}

// BookExportResult archivo generado; Content es el .txt (o el .zip si se pidió).
type BookExportResult struct {
	ExportID    string      `json:"export_id"`
	FileName    string      `json:"file_name"`
	ContentType string      `json:"content_type"`
	Lines       int         `json:"lines"`
	Issues      []ple.Issue `json:"issues"`
	Content     []byte      `json:"-"`
}

// StatementsRequest rango de fechas (inclusive) de los estados financieros.
type StatementsRequest struct {
	RUC         string
	From        time.Time
	To          time.Time
	OpeningCash decimal.Decimal // saldo inicial de caja y bancos
}

// StatementsReport estados financieros, indicadores y comprobaciones de cuadre.
type StatementsReport struct {
	ExportID               string                     `json:"export_id"`
	RUC                    string                     `json:"ruc"`
	CompanyName            string                     `json:"company_name"`
	From                   string                     `json:"from"`
	To                     string                     `json:"to"`
	PCGEVersion            string                     `json:"pcge_version"`
	IncomeStatement        statements.IncomeStatement `json:"income_statement"`
	BalanceSheet           statements.BalanceSheet    `json:"balance_sheet"`
	CashFlow               statements.CashFlow        `json:"cash_flow"`
	Ratios                 []ratios.Ratio             `json:"ratios"`
	Balanced               bool                       `json:"balanced"`
	Difference             decimal.Decimal            `json:"difference"`               // activos - (pasivos + patrimonio)
	TrialBalanceDifference decimal.Decimal            `json:"trial_balance_difference"` // cargos - abonos
}

// InvoiceXMLResult comprobante UBL sin firmar y el digest que se entrega al firmador.
type InvoiceXMLResult struct {
	FileName     string `json:"file_name"`
	ZipName      string `json:"zip_name"`
	XML          string `json:"xml"`
	DigestBase64 string `json:"digest"`
}
