package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/internal/domain/entity"
)

// InvoiceHandler genera el XML UBL 2.1 de comprobantes electrónicos.
type InvoiceHandler struct {
	uc *reporting.InvoiceXMLUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *reporting.InvoiceXMLUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// XML devuelve el XML sin firmar, los nombres de archivo SUNAT y el digest para el firmador.
// POST /api/invoices/xml
func (h *InvoiceHandler) XML(c *fiber.Ctx) error {
	var in entity.TaxInvoiceRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BuildXML(c.Context(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Zip devuelve el ZIP de envío con el XML sin firmar.
// POST /api/invoices/zip
func (h *InvoiceHandler) Zip(c *fiber.Ctx) error {
	var in entity.TaxInvoiceRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	zipBytes, zipName, err := h.uc.BuildZip(c.Context(), &in)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(zipName)
	c.Set(fiber.HeaderContentType, "application/zip")
	return c.Send(zipBytes)
}
