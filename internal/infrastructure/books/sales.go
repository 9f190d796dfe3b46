package books

import (
	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/pkg/ple"
)

// SalesFields campos del Registro de Ventas e Ingresos (formato 14.1), un documento por línea.
func SalesFields(d entity.SalesDocument, period string, correlative int) []ple.FieldSpec {
	return []ple.FieldSpec{
		ple.Text("periodo", ple.PeriodField(period), 8).Req(),
		ple.Text("cuo", d.CUO, 40).Req(),
		ple.Text("correlativo", correlativeField(correlative), correlativeWidth).Req(),
		ple.Date("fecha_emision", d.IssueDate).Req(),
		ple.Date("fecha_vencimiento", d.DueDate),
		ple.Text("tipo_comprobante", docTypeField(d.DocumentType), 2).Req(),
		ple.Text("serie", d.Series, 20),
		ple.Text("numero", d.Number, 20).Req(),
		ple.Number("operaciones_diarias", d.DailyTotal, 15),
		ple.Text("tipo_doc_cliente", d.CustomerDocType, 1),
		ple.Text("num_doc_cliente", d.CustomerDocNumber, 15),
		ple.Text("razon_social_cliente", d.CustomerName, 100),
		ple.Number("valor_exportacion", d.ExportValue, 15),
		ple.Number("base_gravada", d.TaxableBase, 15),
		ple.Number("descuento_base", d.TaxableDiscount, 15),
		ple.Number("igv", d.IGV, 15),
		ple.Number("descuento_igv", d.IGVDiscount, 15),
		ple.Number("exonerada", d.Exempt, 15),
		ple.Number("inafecta", d.Unaffected, 15),
		ple.Number("isc", d.ISC, 15),
		ple.Number("icbper", d.ICBPER, 15),
		ple.Number("otros_tributos", d.OtherCharges, 15),
		ple.Number("importe_total", d.Total, 15),
		ple.Text("moneda", currencyOrDefault(d.Currency), 3),
		exchangeRateField("tipo_cambio", d.Currency, d.ExchangeRate),
		ple.Date("fecha_doc_modificado", d.Amended.Date),
		ple.Text("tipo_doc_modificado", docTypeField(d.Amended.Type), 2),
		ple.Text("serie_doc_modificado", d.Amended.Series, 20),
		ple.Text("numero_doc_modificado", d.Amended.Number, 20),
		ple.Text("id_contrato", d.ContractID, 40),
		ple.Text("error_tipo_cambio", d.ErrorExchangeRate, 1),
		ple.Text("medio_pago", d.PaymentIndicator, 1),
		ple.Text("estado", statusOrDefault(d.Status), 1),
	}
}
