package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/internal/domain/pcge"
	"github.com/jhoicas/contasunat/internal/domain/statements"
	"github.com/jhoicas/contasunat/internal/infrastructure/pdf"
)

func newStatementsCommand(opts *globalOptions) *cobra.Command {
	var (
		dataPath    string
		from, to    string
		openingCash string
		pdfPath     string
		noTax       bool
	)

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Calcula estados financieros, flujo de efectivo e indicadores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			store, err := loadData(dataPath)
			if err != nil {
				return err
			}

			in := dto.StatementsRequest{RUC: store.Company().RUC}
			if in.From, err = reporting.ParseDate(from); err != nil {
				return err
			}
			if in.To, err = reporting.ParseDate(to); err != nil {
				return err
			}
			if in.OpeningCash, err = decimal.NewFromString(openingCash); err != nil {
				return fmt.Errorf("--opening-cash inválido %q: %w", openingCash, err)
			}

			stOpts := statements.Options{Table: pcge.Default, TaxRate: cfg.SUNAT.IncomeTaxRate}
			if noTax {
				stOpts.TaxRate = decimal.Zero
			}
			uc := reporting.NewStatementsUseCase(store, pdf.NewStatementsPDFGenerator(), stOpts, log)

			if pdfPath != "" {
				pdfBytes, _, err := uc.GeneratePDF(cmd.Context(), in)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
					return fmt.Errorf("escribiendo %s: %w", pdfPath, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), pdfPath)
				return nil
			}

			report, err := uc.Generate(cmd.Context(), in)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "archivo de datos YAML o JSON (requerido)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&from, "from", "", "fecha inicial AAAA-MM-DD (requerido)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&to, "to", "", "fecha final AAAA-MM-DD (requerido)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&openingCash, "opening-cash", "0", "saldo inicial de caja")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "escribir el reporte en PDF en lugar de JSON")
	cmd.Flags().BoolVar(&noTax, "no-tax", false, "no calcular impuesto a la renta")

	return cmd
}
