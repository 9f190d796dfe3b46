package entity

import "github.com/shopspring/decimal"

// AccountType naturaleza de la cuenta en el PCGE.
type AccountType string

const (
	AccountTypeActivo     AccountType = "activo"
	AccountTypePasivo     AccountType = "pasivo"
	AccountTypePatrimonio AccountType = "patrimonio"
	AccountTypeIngreso    AccountType = "ingreso"
	AccountTypeGasto      AccountType = "gasto"
)

// Account cuenta del plan contable (dato de referencia, inmutable).
// Code es jerárquico: "70", "701", "7011".
type Account struct {
	Code string      `json:"code"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// LedgerMovement movimiento del libro mayor registrado por el colaborador de asientos.
// Date en formato AAAA-MM-DD.
type LedgerMovement struct {
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Date        string          `json:"date"`
}

// AccountBalance saldo acumulado por cuenta. Balance = |Debit - Credit|.
// Se recalcula en cada consulta; no se persiste.
type AccountBalance struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// Net saldo deudor (positivo) o acreedor (negativo).
func (b AccountBalance) Net() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}
