// Package pcge concentra los prefijos del Plan Contable General Empresarial usados para clasificar
// saldos en los estados financieros. Una revisión del PCGE es una nueva Table; los calculadores
// reciben la tabla como dato.
package pcge

import "github.com/jhoicas/contasunat/internal/domain/entity"

// Side naturaleza con la que se suma un grupo de cuentas.
type Side int

const (
	// Debtor suma debe - haber (activos, gastos).
	Debtor Side = iota
	// Creditor suma haber - debe (pasivos, patrimonio, ingresos, cuentas correctoras).
	Creditor
)

// Group conjunto de prefijos que alimenta una partida de un estado financiero.
type Group struct {
	Side     Side
	Prefixes []string
}

// Table tabla de prefijos versionada.
type Table struct {
	Version string

	// Estado de resultados
	VentasBrutas            Group
	Descuentos              Group
	CostoVentas             Group
	GastosAdministrativos   Group
	GastosVentas            Group
	IngresosFinancieros     Group
	GastosFinancieros       Group
	Depreciacion            Group
	ImpuestoRentaRegistrado Group // provisión del impuesto ya contabilizada (88 contra 401x)

	// Estado de situación financiera
	ActivoCorriente            Group
	ActivoCorrienteCorrector   Group // estimación de cobranza dudosa y desvalorización de existencias
	Inventarios                Group
	ActivoNoCorriente          Group
	ActivoNoCorrienteCorrector Group // depreciación acumulada y desvalorización de activo inmovilizado
	PasivoCorriente            Group
	PasivoNoCorriente          Group
	Capital                    Group
	Reservas                   Group
	ResultadosAcumulados       Group
}

// V2019 PCGE modificado (Resolución 002-2019-EF/30).
var V2019 = Table{
	Version: "2019",

	VentasBrutas:            Group{Creditor, []string{"70"}},
	Descuentos:              Group{Debtor, []string{"74"}},
	CostoVentas:             Group{Debtor, []string{"69"}},
	GastosAdministrativos:   Group{Debtor, []string{"94"}},
	GastosVentas:            Group{Debtor, []string{"95"}},
	IngresosFinancieros:     Group{Creditor, []string{"77"}},
	GastosFinancieros:       Group{Debtor, []string{"97"}},
	Depreciacion:            Group{Debtor, []string{"681"}},
	ImpuestoRentaRegistrado: Group{Debtor, []string{"88"}},

	ActivoCorriente: Group{Debtor, []string{
		"10", "11", "12", "13", "14", "16", "17", "18",
		"20", "21", "22", "23", "24", "25", "26", "27", "28",
	}},
	ActivoCorrienteCorrector:   Group{Creditor, []string{"19", "29"}},
	Inventarios:                Group{Debtor, []string{"20", "21", "22", "23", "24", "25", "26", "27", "28"}},
	ActivoNoCorriente:          Group{Debtor, []string{"30", "31", "32", "33", "34", "35", "37", "38"}},
	ActivoNoCorrienteCorrector: Group{Creditor, []string{"36", "39"}},
	PasivoCorriente:            Group{Creditor, []string{"40", "41", "42", "43", "44", "46", "47", "48"}},
	PasivoNoCorriente:          Group{Creditor, []string{"45", "49"}},
	Capital:                    Group{Creditor, []string{"50", "51", "52"}},
	Reservas:                   Group{Creditor, []string{"56", "57", "58"}},
	ResultadosAcumulados:       Group{Creditor, []string{"59"}},
}

// Default tabla vigente.
var Default = V2019

// TypeForCode infiere la naturaleza de una cuenta por el dígito de clase del PCGE.
// Clases 1-3 activo, 4 pasivo, 5 patrimonio, 6 y 9 gasto, 7 ingreso. La clase 8 (saldos
// intermediarios) se trata como gasto; códigos vacíos o no numéricos devuelven "".
func TypeForCode(code string) entity.AccountType {
	if code == "" {
		return ""
	}
	switch code[0] {
	case '1', '2', '3':
		return entity.AccountTypeActivo
	case '4':
		return entity.AccountTypePasivo
	case '5':
		return entity.AccountTypePatrimonio
	case '7':
		return entity.AccountTypeIngreso
	case '6', '8', '9':
		return entity.AccountTypeGasto
	default:
		return ""
	}
}
