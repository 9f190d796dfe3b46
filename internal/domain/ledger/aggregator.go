// Package ledger agrega movimientos del mayor en saldos por cuenta y los clasifica por prefijo PCGE.
package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/pcge"
)

// SumDebtor suma debe - haber de las cuentas cuyo código empieza con alguno de los prefijos.
// La coincidencia es por prefijo de texto: "33" incluye "335" y "336" pero no "3".
// Cada prefijo se recorre por separado; una cuenta que coincide con dos prefijos suma dos veces.
func SumDebtor(balances []entity.AccountBalance, prefixes []string) decimal.Decimal {
	total := decimal.Zero
	for _, prefix := range prefixes {
		for _, b := range balances {
			if strings.HasPrefix(b.Code, prefix) {
				total = total.Add(b.Debit.Sub(b.Credit))
			}
		}
	}
	return total
}

// SumCreditor suma haber - debe con la misma regla de prefijos que SumDebtor.
func SumCreditor(balances []entity.AccountBalance, prefixes []string) decimal.Decimal {
	total := decimal.Zero
	for _, prefix := range prefixes {
		for _, b := range balances {
			if strings.HasPrefix(b.Code, prefix) {
				total = total.Add(b.Credit.Sub(b.Debit))
			}
		}
	}
	return total
}

// Sum aplica el sentido del grupo (deudor o acreedor).
func Sum(balances []entity.AccountBalance, g pcge.Group) decimal.Decimal {
	if g.Side == pcge.Creditor {
		return SumCreditor(balances, g.Prefixes)
	}
	return SumDebtor(balances, g.Prefixes)
}

// BuildBalances acumula los movimientos por código de cuenta y devuelve los saldos ordenados por código.
// Nombre y tipo se toman del catálogo; una cuenta ausente del catálogo recibe nombre vacío y el tipo
// inferido por su clase PCGE. Los movimientos sin código se ignoran.
func BuildBalances(movements []entity.LedgerMovement, accounts []entity.Account) []entity.AccountBalance {
	catalog := make(map[string]entity.Account, len(accounts))
	for _, a := range accounts {
		catalog[a.Code] = a
	}

	byCode := make(map[string]*entity.AccountBalance)
	for _, m := range movements {
		code := strings.TrimSpace(m.AccountCode)
		if code == "" {
			continue
		}
		b, ok := byCode[code]
		if !ok {
			b = &entity.AccountBalance{Code: code, Type: pcge.TypeForCode(code)}
			if a, found := catalog[code]; found {
				b.Name = a.Name
				if a.Type != "" {
					b.Type = a.Type
				}
			}
			byCode[code] = b
		}
		b.Debit = b.Debit.Add(m.Debit)
		b.Credit = b.Credit.Add(m.Credit)
	}

	out := make([]entity.AccountBalance, 0, len(byCode))
	for _, b := range byCode {
		b.Balance = b.Debit.Sub(b.Credit).Abs()
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// TrialBalanceDifference diferencia total debe - haber; cero cuando el balance de comprobación cuadra.
func TrialBalanceDifference(balances []entity.AccountBalance) decimal.Decimal {
	diff := decimal.Zero
	for _, b := range balances {
		diff = diff.Add(b.Debit).Sub(b.Credit)
	}
	return diff
}
