package entity

import "github.com/shopspring/decimal"

// CashFlowCategory actividad del flujo de efectivo.
type CashFlowCategory string

const (
	CashFlowOperating CashFlowCategory = "operativo"
	CashFlowInvesting CashFlowCategory = "inversion"
	CashFlowFinancing CashFlowCategory = "financiamiento"
)

// TreasuryDirection sentido del movimiento de caja.
type TreasuryDirection string

const (
	TreasuryInflow  TreasuryDirection = "ingreso"
	TreasuryOutflow TreasuryDirection = "egreso"
)

// OperatingClass clasificación de los egresos operativos, asignada al registrar el movimiento.
// Vacío indica un movimiento importado sin clasificar: se infiere desde Concepto.
type OperatingClass string

const (
	OperatingUnclassified OperatingClass = ""
	OperatingSuppliers    OperatingClass = "proveedores"
	OperatingPayroll      OperatingClass = "planilla"
	OperatingTaxes        OperatingClass = "impuestos"
	OperatingOther        OperatingClass = "otros"
)

// TreasuryMovement movimiento de tesorería (caja y bancos).
type TreasuryMovement struct {
	Date           string            `json:"date"`
	Category       CashFlowCategory  `json:"category"`
	Tipo           TreasuryDirection `json:"tipo"`
	Concepto       string            `json:"concepto"`
	OperatingClass OperatingClass    `json:"operating_class,omitempty"`
	Amount         decimal.Decimal   `json:"amount"`
}
