// Package statements calcula los estados financieros (resultados, situación financiera y flujo de
// efectivo) a partir de saldos por cuenta y movimientos de tesorería. Todas las funciones son puras.
package statements

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/ledger"
	"github.com/jhoicas/contasunat/internal/domain/pcge"
)

// DefaultIncomeTaxRate tasa del Impuesto a la Renta de tercera categoría (régimen general).
var DefaultIncomeTaxRate = decimal.RequireFromString("0.295")

// Options parámetros de cálculo. TaxRate cero significa sin impuesto; usar DefaultOptions para la tasa vigente.
type Options struct {
	Table   pcge.Table
	TaxRate decimal.Decimal
}

// DefaultOptions tabla PCGE vigente y tasa 29.5%.
func DefaultOptions() Options {
	return Options{Table: pcge.Default, TaxRate: DefaultIncomeTaxRate}
}

// IncomeStatement estado de resultados por función.
type IncomeStatement struct {
	VentasBrutas           decimal.Decimal `json:"ventasBrutas"`
	Descuentos             decimal.Decimal `json:"descuentos"`
	VentasNetas            decimal.Decimal `json:"ventasNetas"`
	CostoVentas            decimal.Decimal `json:"costoVentas"`
	UtilidadBruta          decimal.Decimal `json:"utilidadBruta"`
	GastosAdministrativos  decimal.Decimal `json:"gastosAdministrativos"`
	GastosVentas           decimal.Decimal `json:"gastosVentas"`
	UtilidadOperativa      decimal.Decimal `json:"utilidadOperativa"`
	IngresosFinancieros    decimal.Decimal `json:"ingresosFinancieros"`
	GastosFinancieros      decimal.Decimal `json:"gastosFinancieros"`
	UtilidadAntesImpuestos decimal.Decimal `json:"utilidadAntesImpuestos"`
	ImpuestoRenta          decimal.Decimal `json:"impuestoRenta"`
	UtilidadNeta           decimal.Decimal `json:"utilidadNeta"`
	Depreciacion           decimal.Decimal `json:"depreciacion"`
	Amortizacion           decimal.Decimal `json:"amortizacion"`
	EBITDA                 decimal.Decimal `json:"ebitda"`
}

// BuildIncomeStatement arma el estado de resultados. El impuesto es max(0, utilidad antes de impuestos × tasa).
// La amortización se informa en cero: el PCGE no la separa de la depreciación en la cuenta 68.
func BuildIncomeStatement(balances []entity.AccountBalance, opts Options) IncomeStatement {
	t := opts.Table

	ventasBrutas := ledger.Sum(balances, t.VentasBrutas)
	descuentos := ledger.Sum(balances, t.Descuentos)
	ventasNetas := ventasBrutas.Sub(descuentos)
	costoVentas := ledger.Sum(balances, t.CostoVentas)
	utilidadBruta := ventasNetas.Sub(costoVentas)

	gastosAdm := ledger.Sum(balances, t.GastosAdministrativos)
	gastosVentas := ledger.Sum(balances, t.GastosVentas)
	utilidadOperativa := utilidadBruta.Sub(gastosAdm).Sub(gastosVentas)

	ingresosFin := ledger.Sum(balances, t.IngresosFinancieros)
	gastosFin := ledger.Sum(balances, t.GastosFinancieros)
	antesImpuestos := utilidadOperativa.Add(ingresosFin).Sub(gastosFin)

	impuesto := decimal.Max(decimal.Zero, antesImpuestos.Mul(opts.TaxRate))
	utilidadNeta := antesImpuestos.Sub(impuesto)

	depreciacion := ledger.Sum(balances, t.Depreciacion)
	amortizacion := decimal.Zero
	ebitda := utilidadOperativa.Add(depreciacion).Add(amortizacion)

	return IncomeStatement{
		VentasBrutas:           round2(ventasBrutas),
		Descuentos:             round2(descuentos),
		VentasNetas:            round2(ventasNetas),
		CostoVentas:            round2(costoVentas),
		UtilidadBruta:          round2(utilidadBruta),
		GastosAdministrativos:  round2(gastosAdm),
		GastosVentas:           round2(gastosVentas),
		UtilidadOperativa:      round2(utilidadOperativa),
		IngresosFinancieros:    round2(ingresosFin),
		GastosFinancieros:      round2(gastosFin),
		UtilidadAntesImpuestos: round2(antesImpuestos),
		ImpuestoRenta:          round2(impuesto),
		UtilidadNeta:           round2(utilidadNeta),
		Depreciacion:           round2(depreciacion),
		Amortizacion:           round2(amortizacion),
		EBITDA:                 round2(ebitda),
	}
}

// round2 único punto de redondeo de los estados: se aplica a cada campo de salida, nunca a sumas intermedias.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
