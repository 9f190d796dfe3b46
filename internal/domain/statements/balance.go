package statements

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/ledger"
)

// BalanceTolerance diferencia máxima admitida entre activo y pasivo + patrimonio.
var BalanceTolerance = decimal.RequireFromString("0.01")

// BalanceSheet estado de situación financiera.
type BalanceSheet struct {
	ActivoCorriente   decimal.Decimal `json:"activoCorriente"`
	Inventarios       decimal.Decimal `json:"inventarios"`
	ActivoNoCorriente decimal.Decimal `json:"activoNoCorriente"`
	TotalActivos      decimal.Decimal `json:"totalActivos"`

	PasivoCorriente       decimal.Decimal `json:"pasivoCorriente"`
	ImpuestoRentaPorPagar decimal.Decimal `json:"impuestoRentaPorPagar"` // incluido en PasivoCorriente
	PasivoNoCorriente     decimal.Decimal `json:"pasivoNoCorriente"`
	TotalPasivos          decimal.Decimal `json:"totalPasivos"`

	Capital              decimal.Decimal `json:"capital"`
	Reservas             decimal.Decimal `json:"reservas"`
	ResultadosAcumulados decimal.Decimal `json:"resultadosAcumulados"`
	UtilidadEjercicio    decimal.Decimal `json:"utilidadEjercicio"`
	TotalPatrimonio      decimal.Decimal `json:"totalPatrimonio"`
}

// BuildBalanceSheet arma el estado de situación financiera. La utilidad neta de is se incorpora al
// patrimonio y el impuesto del periodo aún no provisionado (is.ImpuestoRenta menos el saldo deudor de
// la 88) se reconoce como pasivo corriente.
func BuildBalanceSheet(balances []entity.AccountBalance, is IncomeStatement, opts Options) BalanceSheet {
	t := opts.Table

	activoCorriente := ledger.Sum(balances, t.ActivoCorriente).Sub(ledger.Sum(balances, t.ActivoCorrienteCorrector))
	inventarios := ledger.Sum(balances, t.Inventarios)
	activoNoCorriente := ledger.Sum(balances, t.ActivoNoCorriente).Sub(ledger.Sum(balances, t.ActivoNoCorrienteCorrector))
	totalActivos := activoCorriente.Add(activoNoCorriente)

	impuestoPorPagar := is.ImpuestoRenta.Sub(ledger.Sum(balances, t.ImpuestoRentaRegistrado))
	pasivoCorriente := ledger.Sum(balances, t.PasivoCorriente).Add(impuestoPorPagar)
	pasivoNoCorriente := ledger.Sum(balances, t.PasivoNoCorriente)
	totalPasivos := pasivoCorriente.Add(pasivoNoCorriente)

	capital := ledger.Sum(balances, t.Capital)
	reservas := ledger.Sum(balances, t.Reservas)
	acumulados := ledger.Sum(balances, t.ResultadosAcumulados)
	netProfit := is.UtilidadNeta
	totalPatrimonio := capital.Add(reservas).Add(acumulados).Add(netProfit)

	return BalanceSheet{
		ActivoCorriente:       round2(activoCorriente),
		Inventarios:           round2(inventarios),
		ActivoNoCorriente:     round2(activoNoCorriente),
		TotalActivos:          round2(totalActivos),
		PasivoCorriente:       round2(pasivoCorriente),
		ImpuestoRentaPorPagar: round2(impuestoPorPagar),
		PasivoNoCorriente:     round2(pasivoNoCorriente),
		TotalPasivos:          round2(totalPasivos),
		Capital:               round2(capital),
		Reservas:              round2(reservas),
		ResultadosAcumulados:  round2(acumulados),
		UtilidadEjercicio:     round2(netProfit),
		TotalPatrimonio:       round2(totalPatrimonio),
	}
}

// Difference activo - (pasivo + patrimonio).
func (b BalanceSheet) Difference() decimal.Decimal {
	return b.TotalActivos.Sub(b.TotalPasivos.Add(b.TotalPatrimonio))
}

// Balanced indica si la ecuación contable cuadra dentro de BalanceTolerance.
func (b BalanceSheet) Balanced() bool {
	return b.Difference().Abs().LessThanOrEqual(BalanceTolerance)
}
