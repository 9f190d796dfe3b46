package ple

import "strings"

// Códigos de libro PLE (Resolución de Superintendencia 286-2009/SUNAT y modificatorias).
const (
	BookJournal   = "050100" // Libro Diario
	BookLedger    = "060100" // Libro Mayor
	BookPurchases = "080100" // Registro de Compras
	BookSales     = "140100" // Registro de Ventas e Ingresos
)

// Indicadores del nombre de archivo.
const (
	OperationsActive = "1" // empresa o entidad operativa
	ContentWithData  = "1"
	ContentEmpty     = "0"
	CurrencyPEN      = "1"
	CurrencyUSD      = "2"
	GeneratedByPLE   = "1"
)

// FileNameParams datos para el nombre del archivo de un libro.
type FileNameParams struct {
	RUC         string
	Period      string // AAAAMM
	BookCode    string
	Opportunity string // código de oportunidad (2); "00" por defecto
	Operations  string
	HasContent  bool
	Currency    string // código ISO; USD → indicador 2, cualquier otro → 1
}

// FileName arma LE{ruc:11}{AAAAMM}00{libro:6}{oportunidad:2}{O}{I}{M}{G}.txt
func FileName(p FileNameParams) string {
	opportunity := p.Opportunity
	if opportunity == "" {
		opportunity = "00"
	}
	operations := p.Operations
	if operations == "" {
		operations = OperationsActive
	}
	content := ContentEmpty
	if p.HasContent {
		content = ContentWithData
	}
	currency := CurrencyPEN
	if strings.EqualFold(p.Currency, "USD") {
		currency = CurrencyUSD
	}
	var b strings.Builder
	b.WriteString("LE")
	b.WriteString(PadLeft(onlyDigits(p.RUC), 11))
	b.WriteString(PadLeft(p.Period, 6))
	b.WriteString("00")
	b.WriteString(PadLeft(p.BookCode, 6))
	b.WriteString(PadLeft(opportunity, 2))
	b.WriteString(operations)
	b.WriteString(content)
	b.WriteString(currency)
	b.WriteString(GeneratedByPLE)
	b.WriteString(".txt")
	return b.String()
}

// PeriodField valor del primer campo de toda línea PLE: AAAAMM + "00".
func PeriodField(period string) string {
	return PadLeft(period+"00", 8)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
