package ple_test

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contasunat/pkg/ple"
)

var amountPattern = regexp.MustCompile(`^-?\d+\.\d{2}$`)

// La truncación conserva el prefijo, no el sufijo: es fácil de romper al "optimizar".
func TestPadLeft_TruncaConservandoPrefijo(t *testing.T) {
	assert.Equal(t, "ABC", ple.PadLeft("ABCDE", 3))
}

func TestPadLeft(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		length int
		want   string
	}{
		{"rellena con ceros", "7", 4, "0007"},
		{"longitud exacta", "1234", 4, "1234"},
		{"entero", 12, 5, "00012"},
		{"nil", nil, 3, "000"},
		{"multibyte", "ÑANDÚ", 2, "ÑA"},
		{"longitud cero", "X", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ple.PadLeft(tc.value, tc.length))
		})
	}
	assert.Equal(t, "  42", ple.PadLeftWith("42", 4, ' '))
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "0.00"},
		{"NaN", math.NaN(), "0.00"},
		{"infinito", math.Inf(1), "0.00"},
		{"texto inválido", "abc", "0.00"},
		{"decimal", decimal.RequireFromString("1180"), "1180.00"},
		{"redondeo", 10.456, "10.46"},
		{"negativo", -25.5, "-25.50"},
		{"float en el medio 1.005", 1.005, "1.01"},
		{"float en el medio 2.675", 2.675, "2.68"},
		{"medio negativo", -1.005, "-1.01"},
		{"texto numérico", "3.1", "3.10"},
		{"puntero nil", (*decimal.Decimal)(nil), "0.00"},
		{"entero", 7, "7.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ple.FormatAmount(tc.value)
			assert.Equal(t, tc.want, got)
			assert.Regexp(t, amountPattern, got)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "31/01/2024", ple.FormatDate("2024-01-31"))
	assert.Equal(t, "", ple.FormatDate(""))
	assert.Equal(t, "31/01/2024", ple.FormatDate("31/01/2024"), "formato no reconocido se devuelve sin cambios")
	assert.Equal(t, "2024-01", ple.FormatDate("2024-01"))
	assert.Equal(t, "99/13/2024", ple.FormatDate("2024-13-99"), "no valida calendario")
}

func TestFormatLine_TerminaEnPipeYCantidadDeCampos(t *testing.T) {
	fields := []ple.FieldSpec{
		ple.Text("a", nil, 10),
		ple.Number("b", nil, 15),
		ple.Date("c", nil),
		ple.Text("d", "", 0),
	}
	line := ple.FormatLine(fields)
	require.True(t, strings.HasSuffix(line, "|"))
	segments := strings.Split(strings.TrimSuffix(line, "|"), "|")
	assert.Len(t, segments, len(fields))
	assert.Equal(t, "|0.00|||", line)
}

func TestFormatLine_DespachaPorTipo(t *testing.T) {
	line := ple.FormatLine([]ple.FieldSpec{
		ple.Text("glosa", "VENTA DE MERCADERIA", 5),
		ple.Number("debe", decimal.NewFromFloat(1180), 15),
		ple.Date("fecha", "2024-03-05"),
	})
	assert.Equal(t, "VENTA|1180.00|05/03/2024|", line)
}

func TestFormatLineReport_SaneaDelimitadores(t *testing.T) {
	line, issues := ple.FormatLineReport([]ple.FieldSpec{
		ple.Text("glosa", "PAGO|FACTURA\nF001", 0),
		ple.Text("serie", "F001", 20),
	})
	assert.Equal(t, "PAGO FACTURA F001|F001|", line)
	require.Len(t, issues, 1)
	assert.Equal(t, ple.IssueSanitized, issues[0].Kind)
	assert.Equal(t, "glosa", issues[0].Field)
}

func TestFormatLineReport_ReportaTruncadoYMontoInvalido(t *testing.T) {
	_, issues := ple.FormatLineReport([]ple.FieldSpec{
		ple.Text("razon", "ABCDEFGHIJ", 4),
		ple.Number("monto", "no-es-numero", 15),
	})
	require.Len(t, issues, 2)
	assert.Equal(t, ple.IssueTruncated, issues[0].Kind)
	assert.Equal(t, ple.IssueMalformed, issues[1].Kind)
}

func TestFileName(t *testing.T) {
	name := ple.FileName(ple.FileNameParams{
		RUC:        "20100066603",
		Period:     "202401",
		BookCode:   ple.BookJournal,
		HasContent: true,
		Currency:   "PEN",
	})
	assert.Equal(t, "LE2010006660320240100050100001111.txt", name)

	empty := ple.FileName(ple.FileNameParams{
		RUC:      "123",
		Period:   "202402",
		BookCode: ple.BookSales,
		Currency: "USD",
	})
	assert.Equal(t, "LE0000000012320240200140100001021.txt", empty)
}

func TestPeriodField(t *testing.T) {
	assert.Equal(t, "20240100", ple.PeriodField("202401"))
	assert.Equal(t, "00000000", ple.PeriodField(""))
}

func TestReport(t *testing.T) {
	var r ple.Report
	assert.False(t, r.Degraded())
	r.Add(3, ple.Issue{Field: "cuo", Kind: ple.IssueMissing}, ple.Issue{Field: "glosa", Kind: ple.IssueTruncated})
	assert.True(t, r.Degraded())
	assert.Equal(t, 3, r.Issues[0].Line)
	assert.Equal(t, 1, r.Count(ple.IssueMissing))
}

func TestFormatLineReport_CampoObligatorioVacio(t *testing.T) {
	fields := []ple.FieldSpec{
		ple.Text("cuo", "", 40).Req(),
		ple.Date("fecha", "").Req(),
		ple.Number("debe", nil, 15).Req(),
		ple.Text("glosa", "", 200),
	}

	line, issues := ple.FormatLineReport(fields)

	assert.Equal(t, "||0.00||", line, "los obligatorios vacíos se emiten con su valor por defecto")
	require.Len(t, issues, 3)
	for _, is := range issues {
		assert.Equal(t, ple.IssueMissing, is.Kind)
	}
}
