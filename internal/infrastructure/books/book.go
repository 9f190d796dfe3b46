package books

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/contasunat/internal/domain"
	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/pkg/ple"
)

// Kind libro electrónico soportado.
type Kind string

const (
	KindJournal   Kind = "diario"
	KindLedger    Kind = "mayor"
	KindPurchases Kind = "compras"
	KindSales     Kind = "ventas"
)

// ParseKind acepta el nombre del libro o su código PLE.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diario", ple.BookJournal:
		return KindJournal, nil
	case "mayor", ple.BookLedger:
		return KindLedger, nil
	case "compras", ple.BookPurchases:
		return KindPurchases, nil
	case "ventas", ple.BookSales:
		return KindSales, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedBook, s)
}

// Code código PLE del libro.
func (k Kind) Code() string {
	switch k {
	case KindJournal:
		return ple.BookJournal
	case KindLedger:
		return ple.BookLedger
	case KindPurchases:
		return ple.BookPurchases
	case KindSales:
		return ple.BookSales
	}
	return ""
}

// FieldCount cantidad fija de campos por línea.
func (k Kind) FieldCount() int {
	switch k {
	case KindJournal:
		return JournalFieldCount
	case KindLedger:
		return LedgerFieldCount
	case KindPurchases:
		return PurchasesFieldCount
	case KindSales:
		return SalesFieldCount
	}
	return 0
}

var periodPattern = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])$`)

// ValidatePeriod verifica el formato AAAAMM.
func ValidatePeriod(period string) error {
	if !periodPattern.MatchString(period) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}
	return nil
}

// Request datos de un libro a generar. Journal alimenta Diario y Mayor.
type Request struct {
	Kind        Kind
	RUC         string
	Period      string // AAAAMM
	Currency    string
	Opportunity string
	Workers     int // > 1 codifica los registros en paralelo

	Journal   []entity.JournalEntry
	Purchases []entity.PurchaseDocument
	Sales     []entity.SalesDocument
}

// Book libro codificado: nombre de archivo, líneas sin terminador y reporte de degradaciones.
type Book struct {
	Kind     Kind       `json:"kind"`
	FileName string     `json:"file_name"`
	Lines    []string   `json:"lines"`
	Report   ple.Report `json:"report"`
}

// EncodeBook codifica todos los registros del libro. Solo falla ante un libro no soportado o un
// periodo mal formado; los registros incompletos se degradan y quedan en Report.
func EncodeBook(req Request) (*Book, error) {
	if err := ValidatePeriod(req.Period); err != nil {
		return nil, err
	}

	var (
		lines  []string
		report ple.Report
	)
	switch req.Kind {
	case KindJournal:
		lines, report = encodeRecords(req.Journal, req.Period, JournalFields, req.Workers)
	case KindLedger:
		lines, report = encodeRecords(SortForLedger(req.Journal), req.Period, LedgerFields, req.Workers)
	case KindPurchases:
		lines, report = encodeRecords(req.Purchases, req.Period, PurchaseFields, req.Workers)
	case KindSales:
		lines, report = encodeRecords(req.Sales, req.Period, SalesFields, req.Workers)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBook, req.Kind)
	}

	return &Book{
		Kind:     req.Kind,
		FileName: ple.FileName(ple.FileNameParams{
			RUC:         req.RUC,
			Period:      req.Period,
			BookCode:    req.Kind.Code(),
			Opportunity: req.Opportunity,
			HasContent:  len(lines) > 0,
			Currency:    req.Currency,
		}),
		Lines:  lines,
		Report: report,
	}, nil
}

// mapper traduce un registro a sus campos; correlative es 1-based.
type mapper[T any] func(record T, period string, correlative int) []ple.FieldSpec

func encodeRecords[T any](records []T, period string, fields mapper[T], workers int) ([]string, ple.Report) {
	if workers > 1 && len(records) > workers {
		return encodeParallel(records, period, fields, workers)
	}
	lines := make([]string, 0, len(records))
	var report ple.Report
	for i, r := range records {
		line, issues := ple.FormatLineReport(fields(r, period, i+1))
		report.Add(i+1, issues...)
		lines = append(lines, line)
	}
	return lines, report
}
