package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/domain"
	"github.com/jhoicas/contasunat/internal/infrastructure/books"
	"github.com/jhoicas/contasunat/pkg/logger"
	"github.com/jhoicas/contasunat/pkg/ple"
)

// BooksConfig valores por defecto de la generación de libros.
type BooksConfig struct {
	Encoding    string // books.EncodingISO88591 | books.EncodingUTF8
	Opportunity string
	Currency    string
	Workers     int
}

// BooksUseCase exporta los libros electrónicos PLE (diario, mayor, compras, ventas) de un periodo.
type BooksUseCase struct {
	runner SnapshotRunner
	cfg    BooksConfig
	log    *logger.Logger
}

// NewBooksUseCase construye el caso de uso.
func NewBooksUseCase(runner SnapshotRunner, cfg BooksConfig, log *logger.Logger) *BooksUseCase {
	if cfg.Encoding == "" {
		cfg.Encoding = books.EncodingISO88591
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BooksUseCase{runner: runner, cfg: cfg, log: log}
}

// Export carga los registros del periodo y genera el archivo del libro.
//
// Retorna:
//   - domain.ErrUnsupportedBook si el libro no es uno de los cuatro soportados.
//   - domain.ErrInvalidPeriod   si el periodo no es AAAAMM.
//   - domain.ErrInvalidInput    si la codificación pedida no existe.
//   - domain.ErrNotFound        si el RUC no corresponde a una empresa registrada.
//
// Los registros incompletos no abortan la exportación: se degradan y se informan en Issues.
func (uc *BooksUseCase) Export(ctx context.Context, in dto.BookExportRequest) (*dto.BookExportResult, error) {
	kind, err := books.ParseKind(in.Book)
	if err != nil {
		return nil, err
	}
	if err := books.ValidatePeriod(in.Period); err != nil {
		return nil, err
	}
	enc := strings.ToUpper(strings.TrimSpace(in.Encoding))
	if enc == "" {
		enc = uc.cfg.Encoding
	}
	if enc != books.EncodingISO88591 && enc != books.EncodingUTF8 {
		return nil, fmt.Errorf("%w: codificación %q", domain.ErrInvalidInput, in.Encoding)
	}

	exportID := uuid.NewString()
	log := uc.log.WithExportID(exportID)

	req := books.Request{
		Kind:        kind,
		Period:      in.Period,
		Currency:    uc.cfg.Currency,
		Opportunity: uc.cfg.Opportunity,
		Workers:     uc.cfg.Workers,
	}
	err = uc.runner.ReadSnapshot(ctx, func(repos Repositories) error {
		company, err := repos.Companies.GetByRUC(ctx, in.RUC)
		if err != nil {
			return fmt.Errorf("libros: obtener empresa: %w", err)
		}
		if company == nil {
			return fmt.Errorf("%w: empresa con RUC %s", domain.ErrNotFound, in.RUC)
		}
		req.RUC = company.RUC

		switch kind {
		case books.KindJournal, books.KindLedger:
			req.Journal, err = repos.Journal.ListByPeriod(ctx, company.ID, in.Period)
		case books.KindPurchases:
			req.Purchases, err = repos.Registers.ListPurchases(ctx, company.ID, in.Period)
		case books.KindSales:
			req.Sales, err = repos.Registers.ListSales(ctx, company.ID, in.Period)
		}
		if err != nil {
			return fmt.Errorf("libros: cargar registros de %s: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	book, err := books.EncodeBook(req)
	if err != nil {
		return nil, err
	}

	out := &dto.BookExportResult{
		ExportID: exportID,
		Lines:    len(book.Lines),
		Issues:   book.Report.Issues,
	}
	if in.Zip {
		out.FileName = book.ZipName()
		out.ContentType = "application/zip"
		out.Content, err = book.Zip(enc)
	} else {
		out.FileName = book.FileName
		out.ContentType = "text/plain; charset=" + strings.ToLower(enc)
		out.Content, err = book.Bytes(enc)
	}
	if err != nil {
		return nil, fmt.Errorf("libros: escribir %s: %w", out.FileName, err)
	}

	event := log.Info()
	if book.Report.Degraded() {
		event = log.Warn()
	}
	event.
		Str("ruc", req.RUC).
		Str("book", kind.Code()).
		Str("period", in.Period).
		Str("file", out.FileName).
		Int("lines", out.Lines).
		Int("missing", book.Report.Count(ple.IssueMissing)).
		Int("truncated", book.Report.Count(ple.IssueTruncated)).
		Int("sanitized", book.Report.Count(ple.IssueSanitized)).
		Int("malformed", book.Report.Count(ple.IssueMalformed)).
		Msg("libro electrónico generado")

	return out, nil
}
