package books

import (
	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/pkg/ple"
)

// PurchaseFields campos del Registro de Compras (formato 8.1), un documento por línea.
func PurchaseFields(d entity.PurchaseDocument, period string, correlative int) []ple.FieldSpec {
	return []ple.FieldSpec{
		ple.Text("periodo", ple.PeriodField(period), 8).Req(),
		ple.Text("cuo", d.CUO, 40).Req(),
		ple.Text("correlativo", correlativeField(correlative), correlativeWidth).Req(),
		ple.Date("fecha_emision", d.IssueDate).Req(),
		ple.Date("fecha_vencimiento", d.DueDate),
		ple.Text("tipo_comprobante", docTypeField(d.DocumentType), 2).Req(),
		ple.Text("serie", d.Series, 20),
		ple.Text("anio_dua", d.DUAYear, 4),
		ple.Text("numero", d.Number, 20).Req(),
		ple.Number("operaciones_diarias", d.DailyTotal, 15),
		ple.Text("tipo_doc_proveedor", d.SupplierDocType, 1),
		ple.Text("num_doc_proveedor", d.SupplierDocNumber, 15),
		ple.Text("razon_social_proveedor", d.SupplierName, 100),
		ple.Number("base_gravada_a", d.TaxableBaseA, 15),
		ple.Number("igv_a", d.IGVA, 15),
		ple.Number("base_gravada_b", d.TaxableBaseB, 15),
		ple.Number("igv_b", d.IGVB, 15),
		ple.Number("base_gravada_c", d.TaxableBaseC, 15),
		ple.Number("igv_c", d.IGVC, 15),
		ple.Number("no_gravadas", d.NonTaxable, 15),
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
		ple.Date("fecha_detraccion", d.DetractionDate),
		ple.Text("numero_detraccion", d.DetractionNumber, 24),
		ple.Text("marca_retencion", d.RetentionFlag, 1),
		ple.Text("clasificacion_bienes", d.GoodsClass, 1),
		ple.Text("error_tipo_cambio", d.ErrorExchangeRate, 1),
		ple.Text("error_no_habido", d.ErrorNonLocated, 1),
		ple.Text("error_renuncia_exoneracion", d.ErrorExemptionWaived, 1),
		ple.Text("error_dni_proveedor", d.ErrorDNISupplier, 1),
		ple.Text("medio_pago", d.PaymentIndicator, 1),
		ple.Text("estado", statusOrDefault(d.Status), 1),
	}
}
