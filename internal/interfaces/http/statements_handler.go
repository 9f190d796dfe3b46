package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/application/reporting"
)

// StatementsHandler estados financieros e indicadores.
type StatementsHandler struct {
	uc *reporting.StatementsUseCase
}

// NewStatementsHandler construye el handler.
func NewStatementsHandler(uc *reporting.StatementsUseCase) *StatementsHandler {
	return &StatementsHandler{uc: uc}
}

// Get devuelve estados, flujo de efectivo, indicadores y cuadre en JSON.
// GET /api/companies/:ruc/statements?from=AAAA-MM-DD&to=AAAA-MM-DD[&opening_cash=0.00]
func (h *StatementsHandler) Get(c *fiber.Ctx) error {
	in, err := parseStatementsRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	report, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// PDF devuelve el reporte de estados financieros en PDF.
// GET /api/companies/:ruc/statements/pdf?from=AAAA-MM-DD&to=AAAA-MM-DD
func (h *StatementsHandler) PDF(c *fiber.Ctx) error {
	in, err := parseStatementsRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	pdfBytes, filename, err := h.uc.GeneratePDF(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

func parseStatementsRequest(c *fiber.Ctx) (dto.StatementsRequest, error) {
	in := dto.StatementsRequest{RUC: GetRUC(c), OpeningCash: decimal.Zero}
	var err error
	if in.From, err = reporting.ParseDate(c.Query("from")); err != nil {
		return in, err
	}
	if in.To, err = reporting.ParseDate(c.Query("to")); err != nil {
		return in, err
	}
	if raw := c.Query("opening_cash"); raw != "" {
		if in.OpeningCash, err = decimal.NewFromString(raw); err != nil {
			return in, inputError("opening_cash inválido: " + raw)
		}
	}
	return in, nil
}
