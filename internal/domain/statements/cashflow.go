package statements

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/entity"
)

// CashFlow estado de flujo de efectivo por el método directo.
type CashFlow struct {
	CobrosClientes       decimal.Decimal `json:"cobrosClientes"`
	PagosProveedores     decimal.Decimal `json:"pagosProveedores"`
	PagosPlanilla        decimal.Decimal `json:"pagosPlanilla"`
	PagosImpuestos       decimal.Decimal `json:"pagosImpuestos"`
	OtrosPagosOperativos decimal.Decimal `json:"otrosPagosOperativos"`
	FlujoOperativo       decimal.Decimal `json:"flujoOperativo"`

	CobrosInversion decimal.Decimal `json:"cobrosInversion"`
	PagosInversion  decimal.Decimal `json:"pagosInversion"`
	FlujoInversion  decimal.Decimal `json:"flujoInversion"`

	CobrosFinanciamiento decimal.Decimal `json:"cobrosFinanciamiento"`
	PagosFinanciamiento  decimal.Decimal `json:"pagosFinanciamiento"`
	FlujoFinanciamiento  decimal.Decimal `json:"flujoFinanciamiento"`

	SaldoInicial  decimal.Decimal `json:"saldoInicial"`
	VariacionNeta decimal.Decimal `json:"variacionNeta"`
	SaldoFinal    decimal.Decimal `json:"saldoFinal"`
}

// Palabras clave para movimientos importados sin OperatingClass.
var (
	suppliersKeywords = []string{"proveedor"}
	payrollKeywords   = []string{"planilla", "remuneraci", "sueldo"}
	taxesKeywords     = []string{"impuesto", "tributo"}
)

// ClassifyOperating clase del egreso operativo: la explícita si existe; si no, la inferida desde Concepto.
func ClassifyOperating(m entity.TreasuryMovement) entity.OperatingClass {
	if m.OperatingClass != entity.OperatingUnclassified {
		return m.OperatingClass
	}
	concepto := strings.ToLower(m.Concepto)
	switch {
	case containsAny(concepto, suppliersKeywords):
		return entity.OperatingSuppliers
	case containsAny(concepto, payrollKeywords):
		return entity.OperatingPayroll
	case containsAny(concepto, taxesKeywords):
		return entity.OperatingTaxes
	default:
		return entity.OperatingOther
	}
}

// BuildCashFlow clasifica los movimientos por actividad y sentido.
// Los movimientos con categoría o tipo desconocido no participan del flujo.
func BuildCashFlow(movements []entity.TreasuryMovement, openingBalance decimal.Decimal) CashFlow {
	var (
		cobrosClientes, pagosProveedores, pagosPlanilla, pagosImpuestos, otrosPagos decimal.Decimal
		cobrosInv, pagosInv, cobrosFin, pagosFin                                    decimal.Decimal
	)

	for _, m := range movements {
		inflow := m.Tipo == entity.TreasuryInflow
		if !inflow && m.Tipo != entity.TreasuryOutflow {
			continue
		}
		switch m.Category {
		case entity.CashFlowOperating:
			if inflow {
				cobrosClientes = cobrosClientes.Add(m.Amount)
				continue
			}
			switch ClassifyOperating(m) {
			case entity.OperatingSuppliers:
				pagosProveedores = pagosProveedores.Add(m.Amount)
			case entity.OperatingPayroll:
				pagosPlanilla = pagosPlanilla.Add(m.Amount)
			case entity.OperatingTaxes:
				pagosImpuestos = pagosImpuestos.Add(m.Amount)
			default:
				otrosPagos = otrosPagos.Add(m.Amount)
			}
		case entity.CashFlowInvesting:
			if inflow {
				cobrosInv = cobrosInv.Add(m.Amount)
			} else {
				pagosInv = pagosInv.Add(m.Amount)
			}
		case entity.CashFlowFinancing:
			if inflow {
				cobrosFin = cobrosFin.Add(m.Amount)
			} else {
				pagosFin = pagosFin.Add(m.Amount)
			}
		}
	}

	flujoOperativo := cobrosClientes.Sub(pagosProveedores).Sub(pagosPlanilla).Sub(pagosImpuestos).Sub(otrosPagos)
	flujoInversion := cobrosInv.Sub(pagosInv)
	flujoFinanciamiento := cobrosFin.Sub(pagosFin)
	variacion := flujoOperativo.Add(flujoInversion).Add(flujoFinanciamiento)

	return CashFlow{
		CobrosClientes:       round2(cobrosClientes),
		PagosProveedores:     round2(pagosProveedores),
		PagosPlanilla:        round2(pagosPlanilla),
		PagosImpuestos:       round2(pagosImpuestos),
		OtrosPagosOperativos: round2(otrosPagos),
		FlujoOperativo:       round2(flujoOperativo),
		CobrosInversion:      round2(cobrosInv),
		PagosInversion:       round2(pagosInv),
		FlujoInversion:       round2(flujoInversion),
		CobrosFinanciamiento: round2(cobrosFin),
		PagosFinanciamiento:  round2(pagosFin),
		FlujoFinanciamiento:  round2(flujoFinanciamiento),
		SaldoInicial:         round2(openingBalance),
		VariacionNeta:        round2(variacion),
		SaldoFinal:           round2(openingBalance.Add(variacion)),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
