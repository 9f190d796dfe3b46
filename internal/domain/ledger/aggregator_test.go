package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/ledger"
	"github.com/jhoicas/contasunat/internal/domain/pcge"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildTestBalance(code, debit, credit string) entity.AccountBalance {
	d, c := dec(debit), dec(credit)
	return entity.AccountBalance{Code: code, Debit: d, Credit: c, Balance: d.Sub(c).Abs()}
}

func TestSumDebtor_PrefijoDeTexto(t *testing.T) {
	balances := []entity.AccountBalance{
		buildTestBalance("335", "500", "0"),
		buildTestBalance("42", "0", "300"),
	}

	got := ledger.SumDebtor(balances, []string{"33"})
	assert.True(t, got.Equal(dec("500")), "solo debe incluir la cuenta 335, obtenido %s", got)
}

func TestSumDebtor_PrefijoCortoNoListado(t *testing.T) {
	balances := []entity.AccountBalance{
		buildTestBalance("3", "100", "0"),
		buildTestBalance("335", "50", "0"),
		buildTestBalance("336", "25", "5"),
	}

	got := ledger.SumDebtor(balances, []string{"33"})
	assert.True(t, got.Equal(dec("70")), "\"3\" no coincide con el prefijo \"33\", obtenido %s", got)
}

func TestSumCreditor(t *testing.T) {
	balances := []entity.AccountBalance{
		buildTestBalance("4011", "20", "200"),
		buildTestBalance("421", "0", "180"),
		buildTestBalance("70", "0", "1000"),
	}

	got := ledger.SumCreditor(balances, []string{"40", "42"})
	assert.True(t, got.Equal(dec("360")), "obtenido %s", got)
}

func TestSum_RespetaSentidoDelGrupo(t *testing.T) {
	balances := []entity.AccountBalance{buildTestBalance("39", "0", "120")}

	assert.True(t, ledger.Sum(balances, pcge.Group{Side: pcge.Creditor, Prefixes: []string{"39"}}).Equal(dec("120")))
	assert.True(t, ledger.Sum(balances, pcge.Group{Side: pcge.Debtor, Prefixes: []string{"39"}}).Equal(dec("-120")))
}

func TestSumDebtor_SinCoincidencias(t *testing.T) {
	assert.True(t, ledger.SumDebtor(nil, []string{"10"}).IsZero())
	assert.True(t, ledger.SumDebtor([]entity.AccountBalance{buildTestBalance("10", "1", "0")}, nil).IsZero())
}

func TestBuildBalances(t *testing.T) {
	movements := []entity.LedgerMovement{
		{AccountCode: "70", Credit: dec("1000"), Date: "2024-01-05"},
		{AccountCode: "40", Credit: dec("180"), Date: "2024-01-05"},
		{AccountCode: "12", Debit: dec("1180"), Date: "2024-01-05"},
		{AccountCode: "12", Credit: dec("200"), Date: "2024-01-20"},
		{AccountCode: "10", Debit: dec("200"), Date: "2024-01-20"},
		{AccountCode: " ", Debit: dec("99")},
	}
	accounts := []entity.Account{
		{Code: "12", Name: "Cuentas por cobrar comerciales - terceros", Type: entity.AccountTypeActivo},
		{Code: "70", Name: "Ventas", Type: entity.AccountTypeIngreso},
	}

	balances := ledger.BuildBalances(movements, accounts)
	require.Len(t, balances, 4)

	assert.Equal(t, "10", balances[0].Code, "los saldos se ordenan por código")
	assert.Equal(t, "12", balances[1].Code)
	assert.Equal(t, "40", balances[2].Code)
	assert.Equal(t, "70", balances[3].Code)

	assert.Equal(t, "Cuentas por cobrar comerciales - terceros", balances[1].Name)
	assert.True(t, balances[1].Debit.Equal(dec("1180")))
	assert.True(t, balances[1].Credit.Equal(dec("200")))
	assert.True(t, balances[1].Balance.Equal(dec("980")))

	assert.Equal(t, "", balances[2].Name, "cuenta fuera del catálogo sin nombre")
	assert.Equal(t, entity.AccountTypePasivo, balances[2].Type, "tipo inferido por la clase 4")
	assert.True(t, balances[2].Balance.Equal(dec("180")), "balance es el valor absoluto")
	assert.Equal(t, entity.AccountTypeIngreso, balances[3].Type, "el catálogo define el tipo")

	assert.True(t, ledger.TrialBalanceDifference(balances).IsZero(), "el balance de comprobación cuadra")
}
