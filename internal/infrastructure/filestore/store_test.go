package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/internal/infrastructure/filestore"
)

const testYAML = `
company:
  id: c-1
  ruc: "20100066603"
  name: EMPRESA DEMO S.A.C.
accounts:
  - {code: "10", name: Efectivo, type: activo}
  - {code: "70", name: Ventas, type: ingreso}
movements:
  - {account_code: "10", debit: 500, date: "2024-01-10"}
  - {account_code: "70", credit: 500.50, date: "2024-01-10"}
  - {account_code: "10", debit: 20, date: "2024-03-01"}
journal:
  - {cuo: M001, account_code: "1011", date: "2024-01-10", narrative: Venta, debit: 500}
  - {cuo: M002, account_code: "1011", date: "2024-02-10", narrative: Cobro, debit: 20}
sales:
  - {cuo: V1, issue_date: "2024-01-10", document_type: "01", series: F001, number: "1", total: 590}
treasury:
  - {date: "2024-01-10", category: operativo, tipo: ingreso, concepto: Cobro, amount: 500}
`

func loadTest(t *testing.T) *filestore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))
	s, err := filestore.Load(path)
	require.NoError(t, err)
	return s
}

func TestLoad_YAML(t *testing.T) {
	s := loadTest(t)
	ctx := context.Background()

	c, err := s.GetByRUC(ctx, "20100066603")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "EMPRESA DEMO S.A.C.", c.Name)

	c, err = s.GetByRUC(ctx, "20131312955")
	require.NoError(t, err)
	assert.Nil(t, c, "RUC ajeno no es error")

	accounts, err := s.ListAccounts(ctx, c0(s))
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func c0(s *filestore.Store) string { return s.Company().ID }

func TestListMovements_FiltraRango(t *testing.T) {
	s := loadTest(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	movs, err := s.ListMovements(context.Background(), "c-1", from, to)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, "500.5", movs[1].Credit.String(), "decimales del YAML sin pérdida")
}

func TestListByPeriod(t *testing.T) {
	s := loadTest(t)
	ctx := context.Background()

	journal, err := s.ListByPeriod(ctx, "c-1", "202401")
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, "M001", journal[0].CUO)

	sales, err := s.ListSales(ctx, "c-1", "202401")
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	purchases, err := s.ListPurchases(ctx, "c-1", "202401")
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestReadSnapshot_Tesoreria(t *testing.T) {
	s := loadTest(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	err := s.ReadSnapshot(context.Background(), func(repos reporting.Repositories) error {
		movs, err := repos.Treasury.ListMovements(context.Background(), "c-1", from, to)
		require.NoError(t, err)
		assert.Len(t, movs, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestParse_JSON(t *testing.T) {
	s, err := filestore.Parse([]byte(`{"company": {"ruc": "20100066603"}, "accounts": [{"code": "10", "type": "activo"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "20100066603", s.Company().RUC)
}

func TestParse_Invalido(t *testing.T) {
	_, err := filestore.Parse([]byte("company: [no: cierra"))
	assert.Error(t, err)

	_, err = filestore.Parse([]byte(`{"company": {"ruc": 20100066603}}`))
	assert.Error(t, err, "un RUC numérico no entra en un string")
}

func TestListMovements_FechaInvalida(t *testing.T) {
	s, err := filestore.Parse([]byte(`movements: [{account_code: "10", debit: 1, date: "10/01/2024"}]`))
	require.NoError(t, err)
	_, err = s.ListMovements(context.Background(), "", time.Time{}, time.Now())
	assert.Error(t, err)
}
