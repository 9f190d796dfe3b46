// Package sunat construye los comprobantes de pago electrónicos UBL 2.1 (factura, boleta, notas de
// crédito y débito), los prepara para la firma externa y los empaqueta en el ZIP que exige SUNAT.
package sunat

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/pkg/sunat"
)

// lineAmounts importes derivados de una línea del comprobante.
type lineAmounts struct {
	item         entity.InvoiceItem
	affectation  string
	scheme       sunat.TaxScheme
	unitCode     string
	extension    decimal.Decimal // cantidad × valor unitario
	tax          decimal.Decimal // IGV de la línea; cero si no es gravada
	priceWithTax decimal.Decimal // precio unitario con IGV (PriceTypeCode 01)
}

// invoiceContext totales del comprobante calculados en una sola pasada sobre las líneas.
// Los totales declarados en el registro prevalecen cuando son distintos de cero.
type invoiceContext struct {
	currency      string
	rate          decimal.Decimal
	lines         []lineAmounts
	taxable       decimal.Decimal
	exempt        decimal.Decimal
	unaffected    decimal.Decimal
	igv           decimal.Decimal
	lineExtension decimal.Decimal
	total         decimal.Decimal
}

func newInvoiceContext(rec *entity.TaxInvoiceRecord) *invoiceContext {
	c := &invoiceContext{
		currency: strings.ToUpper(strings.TrimSpace(rec.Currency)),
		rate:     rec.IGVRate,
	}
	if c.currency == "" {
		c.currency = sunat.CurrencyPEN
	}
	if c.rate.IsZero() {
		c.rate = defaultIGVRate
	}

	for _, it := range rec.Items {
		l := lineAmounts{
			item:        it,
			affectation: affectationOrDefault(it.TaxAffectationCode),
			unitCode:    it.UnitCode,
			extension:   it.Quantity.Mul(it.UnitValue),
		}
		if l.unitCode == "" {
			l.unitCode = sunat.UnitProduct
		}
		l.scheme = sunat.SchemeForAffectation(l.affectation)
		l.tax = decimal.Zero
		l.priceWithTax = it.UnitValue
		if l.scheme == sunat.SchemeIGV {
			l.tax = l.extension.Mul(c.rate)
			l.priceWithTax = it.UnitValue.Mul(decimal.NewFromInt(1).Add(c.rate))
			c.taxable = c.taxable.Add(l.extension)
			c.igv = c.igv.Add(l.tax)
		} else if l.scheme == sunat.SchemeEXO {
			c.exempt = c.exempt.Add(l.extension)
		} else {
			c.unaffected = c.unaffected.Add(l.extension)
		}
		c.lines = append(c.lines, l)
	}

	t := rec.Totals
	c.taxable = override(c.taxable, t.TaxableAmount)
	c.exempt = override(c.exempt, t.ExemptAmount)
	c.unaffected = override(c.unaffected, t.UnaffectedAmount)
	c.igv = override(c.igv, t.IGV)
	c.lineExtension = c.taxable.Add(c.exempt).Add(c.unaffected)
	c.total = override(c.lineExtension.Add(c.igv), t.Total)
	return c
}

// percentFor tasa en porcentaje: la del IGV para la categoría gravada, 0 para las demás.
func (c *invoiceContext) percentFor(scheme sunat.TaxScheme) decimal.Decimal {
	if scheme == sunat.SchemeIGV {
		return c.rate.Mul(hundred)
	}
	return decimal.Zero
}

func affectationOrDefault(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return sunat.AffectationTaxed
	}
	return code
}

func override(derived, declared decimal.Decimal) decimal.Decimal {
	if declared.IsZero() {
		return derived
	}
	return declared
}
