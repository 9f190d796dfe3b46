package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName      string
	BooksUC      *reporting.BooksUseCase
	StatementsUC *reporting.StatementsUseCase
	InvoiceUC    *reporting.InvoiceXMLUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	api := app.Group("/api")

	// Libros y estados por contribuyente
	company := api.Group("/companies/:ruc", RequireRUC(deps.Log))

	booksHandler := NewBooksHandler(deps.BooksUC)
	company.Get("/books/:book", booksHandler.Export)

	statementsHandler := NewStatementsHandler(deps.StatementsUC)
	company.Get("/statements", statementsHandler.Get)
	company.Get("/statements/pdf", statementsHandler.PDF)

	// Comprobantes electrónicos
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/xml", invoiceHandler.XML)
	invoices.Post("/zip", invoiceHandler.Zip)
}
