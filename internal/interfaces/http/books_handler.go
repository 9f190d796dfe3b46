package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/application/reporting"
)

// BooksHandler exportación de libros electrónicos PLE.
type BooksHandler struct {
	uc *reporting.BooksUseCase
}

// NewBooksHandler construye el handler.
func NewBooksHandler(uc *reporting.BooksUseCase) *BooksHandler {
	return &BooksHandler{uc: uc}
}

// Export genera el archivo del libro del periodo.
// GET /api/companies/:ruc/books/:book?period=AAAAMM[&encoding=UTF-8][&zip=true][&format=json]
//
// Por defecto responde el .txt como adjunto; format=json devuelve el resumen con las degradaciones
// en lugar del archivo. Las cabeceras X-Export-ID y X-PLE-Issues acompañan siempre la descarga.
func (h *BooksHandler) Export(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return badRequest(c, "VALIDATION", "period requerido (AAAAMM)")
	}
	out, err := h.uc.Export(c.Context(), dto.BookExportRequest{
		RUC:      GetRUC(c),
		Book:     c.Params("book"),
		Period:   period,
		Encoding: c.Query("encoding"),
		Zip:      c.QueryBool("zip", false),
	})
	if err != nil {
		return writeError(c, err)
	}

	if c.Query("format") == "json" {
		return c.JSON(out)
	}
	c.Set("X-Export-ID", out.ExportID)
	c.Set("X-PLE-Issues", strconv.Itoa(len(out.Issues)))
	c.Attachment(out.FileName)
	c.Set(fiber.HeaderContentType, out.ContentType)
	return c.Send(out.Content)
}
