package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/internal/domain/pcge"
	"github.com/jhoicas/contasunat/internal/domain/statements"
	infrapdf "github.com/jhoicas/contasunat/internal/infrastructure/pdf"
	"github.com/jhoicas/contasunat/internal/infrastructure/postgres"
	infrasunat "github.com/jhoicas/contasunat/internal/infrastructure/sunat"
	httpRouter "github.com/jhoicas/contasunat/internal/interfaces/http"
	"github.com/jhoicas/contasunat/pkg/config"
	"github.com/jhoicas/contasunat/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ple_encoding", cfg.PLE.Encoding).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)

	booksUC := reporting.NewBooksUseCase(txRunner, reporting.BooksConfig{
		Encoding:    cfg.PLE.Encoding,
		Opportunity: cfg.PLE.Opportunity,
		Currency:    cfg.SUNAT.DefaultCurrency,
		Workers:     cfg.PLE.Workers,
	}, log)

	// PDF: reporte de estados financieros e indicadores
	pdfGenerator := infrapdf.NewStatementsPDFGenerator()
	statementsUC := reporting.NewStatementsUseCase(txRunner, pdfGenerator, statements.Options{
		Table:   pcge.Default,
		TaxRate: cfg.SUNAT.IncomeTaxRate,
	}, log)

	invoiceUC := reporting.NewInvoiceXMLUseCase(infrasunat.NewUBLBuilderService(), cfg.SUNAT.IGVRate, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ContaSUNAT API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:      cfg.App.Name,
		BooksUC:      booksUC,
		StatementsUC: statementsUC,
		InvoiceUC:    invoiceUC,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
