package statements_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/ledger"
	"github.com/jhoicas/contasunat/internal/domain/statements"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: esperado %s, obtenido %s", msg, want, got)
}

func noTax() statements.Options {
	opts := statements.DefaultOptions()
	opts.TaxRate = decimal.Zero
	return opts
}

// venta al crédito: 12 (debe 1180) contra 70 (haber 1000) y 40 IGV (haber 180).
func buildTestSaleMovements() []entity.LedgerMovement {
	return []entity.LedgerMovement{
		{AccountCode: "70", Credit: dec("1000"), Date: "2024-01-05"},
		{AccountCode: "40", Credit: dec("180"), Date: "2024-01-05"},
		{AccountCode: "12", Debit: dec("1180"), Date: "2024-01-05"},
	}
}

func TestEndToEnd_VentaAlCredito(t *testing.T) {
	balances := ledger.BuildBalances(buildTestSaleMovements(), nil)

	is := statements.BuildIncomeStatement(balances, noTax())
	assertDec(t, "1000", is.VentasBrutas, "ventas brutas")
	assertDec(t, "1000", is.UtilidadNeta, "utilidad neta sin impuesto")

	bs := statements.BuildBalanceSheet(balances, is, noTax())
	assertDec(t, "1180", bs.TotalActivos, "total activos")
	assertDec(t, "180", bs.TotalPasivos, "total pasivos")
	assertDec(t, "1000", bs.TotalPatrimonio, "patrimonio = utilidad del ejercicio")
	assert.True(t, bs.Balanced(), "diferencia %s", bs.Difference())
}

func TestEndToEnd_VentaAlCreditoConImpuesto(t *testing.T) {
	balances := ledger.BuildBalances(buildTestSaleMovements(), nil)
	opts := statements.DefaultOptions()

	is := statements.BuildIncomeStatement(balances, opts)
	assertDec(t, "295", is.ImpuestoRenta, "1000 × 0.295")
	assertDec(t, "705", is.UtilidadNeta, "utilidad neta")

	bs := statements.BuildBalanceSheet(balances, is, opts)
	assertDec(t, "1180", bs.TotalActivos, "total activos")
	assertDec(t, "295", bs.ImpuestoRentaPorPagar, "impuesto no provisionado")
	assertDec(t, "475", bs.PasivoCorriente, "IGV + impuesto a la renta por pagar")
	assertDec(t, "475", bs.TotalPasivos, "total pasivos")
	assertDec(t, "705", bs.TotalPatrimonio, "patrimonio = utilidad neta")
	assert.True(t, bs.Balanced(), "diferencia %s", bs.Difference())
}

func TestBalanceSheet_ImpuestoYaProvisionado(t *testing.T) {
	movements := append(buildTestSaleMovements(),
		entity.LedgerMovement{AccountCode: "881", Debit: dec("295"), Date: "2024-01-31"},
		entity.LedgerMovement{AccountCode: "4017", Credit: dec("295"), Date: "2024-01-31"},
	)
	balances := ledger.BuildBalances(movements, nil)
	opts := statements.DefaultOptions()

	is := statements.BuildIncomeStatement(balances, opts)
	bs := statements.BuildBalanceSheet(balances, is, opts)

	assertDec(t, "0", bs.ImpuestoRentaPorPagar, "la 4017 ya recoge el impuesto")
	assertDec(t, "475", bs.PasivoCorriente, "sin duplicar el impuesto")
	assertDec(t, "705", bs.TotalPatrimonio, "patrimonio")
	assert.True(t, bs.Balanced(), "diferencia %s", bs.Difference())
}

func TestIncomeStatement_Completo(t *testing.T) {
	balances := []entity.AccountBalance{
		{Code: "7011", Credit: dec("10000")},
		{Code: "74", Debit: dec("500")},
		{Code: "691", Debit: dec("4000")},
		{Code: "94", Debit: dec("1500")},
		{Code: "95", Debit: dec("1000")},
		{Code: "77", Credit: dec("200")},
		{Code: "97", Debit: dec("300")},
		{Code: "6814", Debit: dec("250")},
	}

	is := statements.BuildIncomeStatement(balances, statements.DefaultOptions())

	assertDec(t, "9500", is.VentasNetas, "ventas netas")
	assertDec(t, "5500", is.UtilidadBruta, "utilidad bruta")
	assertDec(t, "3000", is.UtilidadOperativa, "utilidad operativa")
	assertDec(t, "2900", is.UtilidadAntesImpuestos, "utilidad antes de impuestos")
	assertDec(t, "855.5", is.ImpuestoRenta, "2900 × 0.295")
	assertDec(t, "2044.5", is.UtilidadNeta, "utilidad neta")
	assertDec(t, "250", is.Depreciacion, "depreciación")
	assertDec(t, "0", is.Amortizacion, "amortización")
	assertDec(t, "3250", is.EBITDA, "EBITDA = operativa + depreciación")
}

func TestIncomeStatement_PerdidaSinImpuesto(t *testing.T) {
	balances := []entity.AccountBalance{
		{Code: "70", Credit: dec("100")},
		{Code: "69", Debit: dec("300")},
	}

	is := statements.BuildIncomeStatement(balances, statements.DefaultOptions())

	assertDec(t, "-200", is.UtilidadAntesImpuestos, "pérdida")
	assertDec(t, "0", is.ImpuestoRenta, "el impuesto nunca es negativo")
	assertDec(t, "-200", is.UtilidadNeta, "la pérdida pasa íntegra")
}

func TestIncomeStatement_RedondeoUnicoEnSalida(t *testing.T) {
	// tres ventas de 0.333: la suma sin redondear (0.999) redondea a 1.00; redondear cada una daría 0.99.
	balances := []entity.AccountBalance{
		{Code: "701", Credit: dec("0.333")},
		{Code: "702", Credit: dec("0.333")},
		{Code: "703", Credit: dec("0.333")},
	}

	is := statements.BuildIncomeStatement(balances, noTax())
	assertDec(t, "1", is.VentasBrutas, "redondeo al final")
}

func TestBalanceSheet_Correctoras(t *testing.T) {
	balances := []entity.AccountBalance{
		{Code: "101", Debit: dec("2000")},
		{Code: "121", Debit: dec("1000")},
		{Code: "191", Credit: dec("100")},
		{Code: "201", Debit: dec("800")},
		{Code: "3361", Debit: dec("5000")},
		{Code: "391", Credit: dec("1200")},
		{Code: "421", Credit: dec("700")},
		{Code: "451", Credit: dec("2000")},
		{Code: "501", Credit: dec("4000")},
		{Code: "582", Credit: dec("300")},
		{Code: "591", Credit: dec("500")},
	}

	bs := statements.BuildBalanceSheet(balances, statements.IncomeStatement{}, noTax())

	assertDec(t, "3700", bs.ActivoCorriente, "corriente neto de estimación de cobranza dudosa")
	assertDec(t, "800", bs.Inventarios, "inventarios")
	assertDec(t, "3800", bs.ActivoNoCorriente, "no corriente neto de depreciación acumulada")
	assertDec(t, "7500", bs.TotalActivos, "total activos")
	assertDec(t, "700", bs.PasivoCorriente, "pasivo corriente")
	assertDec(t, "2000", bs.PasivoNoCorriente, "pasivo no corriente")
	assertDec(t, "4800", bs.TotalPatrimonio, "capital + reservas + resultados acumulados")
	assert.True(t, bs.Balanced())
}

// Asientos aleatorios cuadrados entre cuentas que clasifican los estados: la ecuación contable debe cumplirse.
func TestBalanceSheet_BalanceDeComprobacionCuadrado(t *testing.T) {
	accounts := []string{
		"101", "121", "191", "201", "331", "391", "401", "421", "451", "501", "582", "591",
		"701", "74", "691", "94", "95", "77", "97",
	}
	rng := rand.New(rand.NewSource(2024))

	for iter := 0; iter < 50; iter++ {
		var movements []entity.LedgerMovement
		for i := 0; i < 20; i++ {
			amount := decimal.New(rng.Int63n(1_000_000), -2)
			debit := accounts[rng.Intn(len(accounts))]
			credit := accounts[rng.Intn(len(accounts))]
			movements = append(movements,
				entity.LedgerMovement{AccountCode: debit, Debit: amount},
				entity.LedgerMovement{AccountCode: credit, Credit: amount},
			)
		}

		balances := ledger.BuildBalances(movements, nil)
		require.True(t, ledger.TrialBalanceDifference(balances).IsZero())

		for _, opts := range []statements.Options{noTax(), statements.DefaultOptions()} {
			is := statements.BuildIncomeStatement(balances, opts)
			bs := statements.BuildBalanceSheet(balances, is, opts)
			assert.True(t, bs.Balanced(), "iteración %d, tasa %s: diferencia %s", iter, opts.TaxRate, bs.Difference())
		}
	}
}

func TestCashFlow_MetodoDirecto(t *testing.T) {
	movements := []entity.TreasuryMovement{
		{Category: entity.CashFlowOperating, Tipo: entity.TreasuryInflow, Concepto: "Cobro factura F001-1", Amount: dec("5000")},
		{Category: entity.CashFlowOperating, Tipo: entity.TreasuryOutflow, Concepto: "Pago a proveedor ACME", Amount: dec("1200")},
		{Category: entity.CashFlowOperating, Tipo: entity.TreasuryOutflow, Concepto: "Planilla enero", Amount: dec("800")},
		{Category: entity.CashFlowOperating, Tipo: entity.TreasuryOutflow, Concepto: "IMPUESTO a la renta", Amount: dec("300")},
		{Category: entity.CashFlowOperating, Tipo: entity.TreasuryOutflow, Concepto: "Alquiler local", Amount: dec("100")},
		{Category: entity.CashFlowOperating, Tipo: entity.TreasuryOutflow, Concepto: "Varios", OperatingClass: entity.OperatingSuppliers, Amount: dec("50")},
		{Category: entity.CashFlowInvesting, Tipo: entity.TreasuryOutflow, Concepto: "Compra de equipo", Amount: dec("2000")},
		{Category: entity.CashFlowInvesting, Tipo: entity.TreasuryInflow, Concepto: "Venta de vehículo", Amount: dec("700")},
		{Category: entity.CashFlowFinancing, Tipo: entity.TreasuryInflow, Concepto: "Préstamo bancario", Amount: dec("3000")},
		{Category: entity.CashFlowFinancing, Tipo: entity.TreasuryOutflow, Concepto: "Dividendos", Amount: dec("400")},
		{Category: "desconocida", Tipo: entity.TreasuryInflow, Amount: dec("999")},
	}

	cf := statements.BuildCashFlow(movements, dec("1000"))

	assertDec(t, "5000", cf.CobrosClientes, "cobros")
	assertDec(t, "1250", cf.PagosProveedores, "proveedores incluye la clase explícita")
	assertDec(t, "800", cf.PagosPlanilla, "planilla")
	assertDec(t, "300", cf.PagosImpuestos, "impuestos, sin distinguir mayúsculas")
	assertDec(t, "100", cf.OtrosPagosOperativos, "sin coincidencia")
	assertDec(t, "2550", cf.FlujoOperativo, "flujo operativo")
	assertDec(t, "-1300", cf.FlujoInversion, "flujo de inversión")
	assertDec(t, "2600", cf.FlujoFinanciamiento, "flujo de financiamiento")
	assertDec(t, "3850", cf.VariacionNeta, "variación neta")
	assertDec(t, "4850", cf.SaldoFinal, "saldo inicial + variación")
}

func TestClassifyOperating_ClaseExplicitaPrevalece(t *testing.T) {
	m := entity.TreasuryMovement{Concepto: "pago proveedor", OperatingClass: entity.OperatingTaxes}
	assert.Equal(t, entity.OperatingTaxes, statements.ClassifyOperating(m))

	m = entity.TreasuryMovement{Concepto: "Remuneraciones marzo"}
	assert.Equal(t, entity.OperatingPayroll, statements.ClassifyOperating(m))
}
