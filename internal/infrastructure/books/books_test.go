package books_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contasunat/internal/domain"
	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/infrastructure/books"
	"github.com/jhoicas/contasunat/pkg/ple"
)

const testPeriod = "202401"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// segments separa una línea PLE en sus campos (sin el vacío que deja el "|" final).
func segments(t *testing.T, line string) []string {
	t.Helper()
	require.True(t, strings.HasSuffix(line, "|"), "toda línea termina en |: %q", line)
	return strings.Split(strings.TrimSuffix(line, "|"), "|")
}

func buildTestJournalEntry() entity.JournalEntry {
	return entity.JournalEntry{
		CUO:           "M0001",
		AccountCode:   "1212",
		Currency:      "PEN",
		IDDocType:     "6",
		IDDocNumber:   "20100066603",
		VoucherType:   "1",
		Series:        "F001",
		Number:        "123",
		Date:          "2024-01-15",
		OperationDate: "2024-01-15",
		Narrative:     "Venta de mercadería",
		Debit:         dec("1180"),
	}
}

func TestJournalFields_21Campos(t *testing.T) {
	line := ple.FormatLine(books.JournalFields(buildTestJournalEntry(), testPeriod, 7))
	f := segments(t, line)

	require.Len(t, f, books.JournalFieldCount)
	assert.Equal(t, "20240100", f[0], "periodo AAAAMM00")
	assert.Equal(t, "M0001", f[1])
	assert.Equal(t, "0000000007", f[2], "correlativo a 10 dígitos")
	assert.Equal(t, "1212", f[3])
	assert.Equal(t, "PEN", f[6])
	assert.Equal(t, "01", f[9], "tipo de comprobante a 2 dígitos")
	assert.Equal(t, "15/01/2024", f[12])
	assert.Equal(t, "", f[13], "fecha de vencimiento vacía")
	assert.Equal(t, "1180.00", f[17])
	assert.Equal(t, "0.00", f[18], "haber ausente es cero")
	assert.Equal(t, "1", f[20], "estado por defecto")
}

func TestJournalFields_RegistroVacioConservaForma(t *testing.T) {
	line, issues := ple.FormatLineReport(books.JournalFields(entity.JournalEntry{}, testPeriod, 1))
	f := segments(t, line)

	require.Len(t, f, books.JournalFieldCount)
	assert.Equal(t, "0.00", f[17])
	assert.Equal(t, "0.00", f[18])
	assert.Equal(t, "PEN", f[6], "moneda por defecto")

	var missing []string
	for _, is := range issues {
		if is.Kind == ple.IssueMissing {
			missing = append(missing, is.Field)
		}
	}
	assert.ElementsMatch(t, []string{"cuo", "cuenta", "fecha_contable"}, missing)
}

func TestJournalFields_GlosaConDelimitador(t *testing.T) {
	e := buildTestJournalEntry()
	e.Narrative = "Pago|anticipo\r\nproveedor"

	line, issues := ple.FormatLineReport(books.JournalFields(e, testPeriod, 1))
	f := segments(t, line)

	require.Len(t, f, books.JournalFieldCount, "el | embebido no agrega campos")
	assert.Equal(t, "Pago anticipo  proveedor", f[15])
	require.Len(t, issues, 1)
	assert.Equal(t, ple.IssueSanitized, issues[0].Kind)
}

func TestSortForLedger(t *testing.T) {
	entries := []entity.JournalEntry{
		{CUO: "a", AccountCode: "70", Date: "2024-01-20"},
		{CUO: "b", AccountCode: "12", Date: "2024-01-25"},
		{CUO: "c", AccountCode: "12", Date: "2024-01-05"},
		{CUO: "d", AccountCode: "70", Date: "2024-01-02"},
		{CUO: "e", AccountCode: "12", Date: "2024-01-05"},
	}

	sorted := books.SortForLedger(entries)

	var order []string
	for _, e := range sorted {
		order = append(order, e.CUO)
	}
	assert.Equal(t, []string{"c", "e", "b", "d", "a"}, order, "cuenta asc, fecha asc, estable")
	assert.Equal(t, "a", entries[0].CUO, "la entrada original no se modifica")
}

func buildTestPurchase() entity.PurchaseDocument {
	return entity.PurchaseDocument{
		CUO:               "C0001",
		IssueDate:         "2024-01-10",
		DocumentType:      "1",
		Series:            "F001",
		Number:            "4567",
		SupplierDocType:   "6",
		SupplierDocNumber: "20131312955",
		SupplierName:      "SUPERINTENDENCIA NACIONAL DE ADUANAS",
		TaxableBaseA:      dec("1000"),
		IGVA:              dec("180"),
		Total:             dec("1180"),
	}
}

func TestPurchaseFields_40Campos(t *testing.T) {
	f := segments(t, ple.FormatLine(books.PurchaseFields(buildTestPurchase(), testPeriod, 1)))

	require.Len(t, f, books.PurchasesFieldCount)
	assert.Equal(t, "10/01/2024", f[3])
	assert.Equal(t, "01", f[5], "tipo de documento rellenado a 2 dígitos")
	assert.Equal(t, "F001", f[6])
	assert.Equal(t, "4567", f[8])
	assert.Equal(t, "20131312955", f[11])
	assert.Equal(t, "1000.00", f[13])
	assert.Equal(t, "180.00", f[14])
	assert.Equal(t, "0.00", f[15], "base B ausente")
	assert.Equal(t, "1180.00", f[23])
	assert.Equal(t, "PEN", f[24])
	assert.Equal(t, "1.000", f[25], "tipo de cambio en soles")
	assert.Equal(t, "1", f[39])
}

func TestPurchaseFields_DolaresConTipoDeCambio(t *testing.T) {
	p := buildTestPurchase()
	p.Currency = "usd"
	p.ExchangeRate = dec("3.7505")

	f := segments(t, ple.FormatLine(books.PurchaseFields(p, testPeriod, 1)))
	assert.Equal(t, "USD", f[24])
	assert.Equal(t, "3.751", f[25], "tres decimales")
}

func TestSalesFields_33Campos(t *testing.T) {
	s := entity.SalesDocument{
		CUO:               "V0001",
		IssueDate:         "2024-01-31",
		DocumentType:      "3",
		Series:            "B001",
		Number:            "88",
		CustomerDocType:   "1",
		CustomerDocNumber: "45678912",
		CustomerName:      "PÉREZ ÑAHUI, JOSÉ",
		TaxableBase:       dec("100"),
		IGV:               dec("18"),
		Total:             dec("118"),
		Amended:           entity.AmendedDocument{Date: "2024-01-02", Type: "3", Series: "B001", Number: "10"},
	}

	f := segments(t, ple.FormatLine(books.SalesFields(s, testPeriod, 12)))

	require.Len(t, f, books.SalesFieldCount)
	assert.Equal(t, "0000000012", f[2])
	assert.Equal(t, "03", f[5])
	assert.Equal(t, "PÉREZ ÑAHUI, JOSÉ", f[11])
	assert.Equal(t, "100.00", f[13])
	assert.Equal(t, "18.00", f[15])
	assert.Equal(t, "118.00", f[22])
	assert.Equal(t, "02/01/2024", f[25])
	assert.Equal(t, "03", f[26])
	assert.Equal(t, "1", f[32])
}

func TestSalesFields_RazonSocialTruncada(t *testing.T) {
	s := entity.SalesDocument{CustomerName: strings.Repeat("A", 120)}

	line, issues := ple.FormatLineReport(books.SalesFields(s, testPeriod, 1))
	f := segments(t, line)

	assert.Len(t, f[11], 100)
	found := false
	for _, is := range issues {
		if is.Field == "razon_social_cliente" && is.Kind == ple.IssueTruncated {
			found = true
		}
	}
	assert.True(t, found, "la truncación queda en el reporte")
}

func TestEncodeBook_FormaYNombre(t *testing.T) {
	cases := []struct {
		req   books.Request
		count int
	}{
		{books.Request{Kind: books.KindJournal, Journal: []entity.JournalEntry{buildTestJournalEntry(), {}}}, books.JournalFieldCount},
		{books.Request{Kind: books.KindLedger, Journal: []entity.JournalEntry{buildTestJournalEntry()}}, books.LedgerFieldCount},
		{books.Request{Kind: books.KindPurchases, Purchases: []entity.PurchaseDocument{buildTestPurchase()}}, books.PurchasesFieldCount},
		{books.Request{Kind: books.KindSales, Sales: []entity.SalesDocument{{}, {}, {}}}, books.SalesFieldCount},
	}
	for _, tc := range cases {
		t.Run(string(tc.req.Kind), func(t *testing.T) {
			tc.req.RUC = "20100066603"
			tc.req.Period = testPeriod

			book, err := books.EncodeBook(tc.req)
			require.NoError(t, err)

			assert.Equal(t, tc.count, tc.req.Kind.FieldCount())
			for i, line := range book.Lines {
				assert.Len(t, segments(t, line), tc.count, "línea %d", i+1)
			}
			want := "LE20100066603" + testPeriod + "00" + tc.req.Kind.Code() + "001111.txt"
			assert.Equal(t, want, book.FileName)
		})
	}
}

func TestEncodeBook_SinRegistros(t *testing.T) {
	book, err := books.EncodeBook(books.Request{Kind: books.KindSales, RUC: "20100066603", Period: testPeriod, Currency: "USD"})
	require.NoError(t, err)

	assert.Empty(t, book.Lines)
	assert.Equal(t, "LE2010006660320240100140100001021.txt", book.FileName, "indicador de contenido 0 y moneda 2")
}

func TestEncodeBook_Errores(t *testing.T) {
	_, err := books.EncodeBook(books.Request{Kind: books.KindJournal, Period: "2024-01"})
	assert.True(t, errors.Is(err, domain.ErrInvalidPeriod))

	_, err = books.EncodeBook(books.Request{Kind: "inventarios", Period: testPeriod})
	assert.True(t, errors.Is(err, domain.ErrUnsupportedBook))

	_, err = books.ParseKind("030100")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedBook))

	k, err := books.ParseKind("080100")
	require.NoError(t, err)
	assert.Equal(t, books.KindPurchases, k)
}

func TestEncodeBook_MayorOrdenaAntesDeNumerar(t *testing.T) {
	book, err := books.EncodeBook(books.Request{
		Kind:   books.KindLedger,
		Period: testPeriod,
		Journal: []entity.JournalEntry{
			{CUO: "x", AccountCode: "70", Date: "2024-01-01"},
			{CUO: "y", AccountCode: "10", Date: "2024-01-09"},
		},
	})
	require.NoError(t, err)
	require.Len(t, book.Lines, 2)

	assert.True(t, strings.HasPrefix(book.Lines[0], "20240100|y|0000000001|10|"))
	assert.True(t, strings.HasPrefix(book.Lines[1], "20240100|x|0000000002|70|"))
}

func TestEncodeBook_ParaleloIgualASecuencial(t *testing.T) {
	var sales []entity.SalesDocument
	for i := 0; i < 257; i++ {
		sales = append(sales, entity.SalesDocument{
			CUO:          fmt.Sprintf("V%04d", i),
			IssueDate:    "2024-01-15",
			DocumentType: "1",
			Series:       "F001",
			Number:       fmt.Sprint(i + 1),
			Total:        decimal.NewFromInt(int64(i)),
		})
	}
	sales[100].CUO = ""

	seq, err := books.EncodeBook(books.Request{Kind: books.KindSales, Period: testPeriod, Sales: sales})
	require.NoError(t, err)
	par, err := books.EncodeBook(books.Request{Kind: books.KindSales, Period: testPeriod, Sales: sales, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, seq.Lines, par.Lines)
	assert.Equal(t, seq.Report, par.Report)
	require.Len(t, par.Report.Issues, 1)
	assert.Equal(t, 101, par.Report.Issues[0].Line)
}

func TestBook_BytesYZip(t *testing.T) {
	book, err := books.EncodeBook(books.Request{
		Kind:   books.KindSales,
		RUC:    "20100066603",
		Period: testPeriod,
		Sales:  []entity.SalesDocument{{CUO: "V1", CustomerName: "ÑANDÚ €"}, {CUO: "V2"}},
	})
	require.NoError(t, err)

	latin1, err := book.Bytes(books.EncodingISO88591)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(latin1, []byte("|\r\n")), "CRLF al final de cada línea")
	assert.Equal(t, 2, bytes.Count(latin1, []byte("\r\n")))
	assert.True(t, bytes.Contains(latin1, []byte{0xD1, 'A', 'N', 'D', 0xDA, ' ', '?'}), "Ñ y Ú en un byte, € sin representación")

	utf8Bytes, err := book.Bytes(books.EncodingUTF8)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(utf8Bytes, []byte("ÑANDÚ €")))

	_, err = book.Bytes("EBCDIC")
	assert.Error(t, err)

	zipped, err := book.Zip(books.EncodingISO88591)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(zipped), int64(len(zipped)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, book.FileName, zr.File[0].Name)
	assert.Equal(t, strings.TrimSuffix(book.FileName, ".txt")+".zip", book.ZipName())

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, latin1, content)
}
