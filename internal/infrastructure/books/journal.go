// Package books traduce registros contables y comprobantes a las líneas de los libros electrónicos
// PLE de SUNAT: Libro Diario (5.1), Libro Mayor (6.1), Registro de Compras (8.1) y Registro de
// Ventas e Ingresos (14.1).
package books

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/pkg/ple"
	"github.com/jhoicas/contasunat/pkg/sunat"
)

// Cantidad de campos por formato.
const (
	JournalFieldCount   = 21
	LedgerFieldCount    = 21
	PurchasesFieldCount = 40
	SalesFieldCount     = 33
)

// Valores por defecto de campos obligatorios.
const (
	defaultStatus       = "1" // operación del periodo
	correlativeWidth    = 10
	defaultExchangeRate = "1.000"
)

// JournalFields campos del Libro Diario (formato 5.1) para una línea de asiento.
// El Libro Diario conserva el orden de entrada de los asientos.
func JournalFields(e entity.JournalEntry, period string, correlative int) []ple.FieldSpec {
	return accountingFields(e, period, correlative)
}

// accountingFields estructura común de Diario y Mayor (21 campos).
func accountingFields(e entity.JournalEntry, period string, correlative int) []ple.FieldSpec {
	return []ple.FieldSpec{
		ple.Text("periodo", ple.PeriodField(period), 8).Req(),
		ple.Text("cuo", e.CUO, 40).Req(),
		ple.Text("correlativo", correlativeField(correlative), correlativeWidth).Req(),
		ple.Text("cuenta", e.AccountCode, 24).Req(),
		ple.Text("unidad_operacion", e.OperationUnit, 24),
		ple.Text("centro_costos", e.CostCenter, 24),
		ple.Text("moneda", currencyOrDefault(e.Currency), 3),
		ple.Text("tipo_doc_identidad", e.IDDocType, 1),
		ple.Text("num_doc_identidad", e.IDDocNumber, 15),
		ple.Text("tipo_comprobante", docTypeField(e.VoucherType), 2),
		ple.Text("serie", e.Series, 20),
		ple.Text("numero", e.Number, 20),
		ple.Date("fecha_contable", e.Date).Req(),
		ple.Date("fecha_vencimiento", e.DueDate),
		ple.Date("fecha_operacion", e.OperationDate),
		ple.Text("glosa", e.Narrative, 200),
		ple.Text("glosa_referencial", e.ReferenceNarrative, 200),
		ple.Number("debe", e.Debit, 15),
		ple.Number("haber", e.Credit, 15),
		ple.Text("dato_estructurado", e.StructuredData, 24),
		ple.Text("estado", statusOrDefault(e.Status), 1),
	}
}

// correlativeField correlativo 1-based rellenado al ancho del campo.
// Valores no positivos se emiten como el primero.
func correlativeField(n int) string {
	if n < 1 {
		n = 1
	}
	return ple.PadLeft(n, correlativeWidth)
}

// docTypeField tipo de comprobante a 2 dígitos ("1" → "01"); vacío se mantiene vacío.
func docTypeField(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	return ple.PadLeft(code, 2)
}

func currencyOrDefault(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return sunat.CurrencyPEN
	}
	return c
}

func statusOrDefault(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultStatus
	}
	return s
}

// exchangeRateField tipo de cambio con 3 decimales. En soles sin tipo de cambio se emite 1.000.
func exchangeRateField(name, currency string, rate decimal.Decimal) ple.FieldSpec {
	if rate.IsZero() && currencyOrDefault(currency) == sunat.CurrencyPEN {
		return ple.Text(name, defaultExchangeRate, 0)
	}
	if rate.IsZero() {
		return ple.Text(name, "", 0).Req()
	}
	return ple.Text(name, rate.StringFixed(3), 0)
}
