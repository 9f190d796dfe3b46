package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/infrastructure/filestore"
	infrasunat "github.com/jhoicas/contasunat/internal/infrastructure/sunat"
)

func newInvoiceCommand(opts *globalOptions) *cobra.Command {
	var (
		outDir string
		zip    bool
	)

	cmd := &cobra.Command{
		Use:   "invoice <comprobante.yaml|json>",
		Short: "Genera el XML UBL 2.1 sin firmar de un comprobante",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			var rec entity.TaxInvoiceRecord
			if err := filestore.ReadFile(args[0], &rec); err != nil {
				return err
			}

			uc := reporting.NewInvoiceXMLUseCase(infrasunat.NewUBLBuilderService(), cfg.SUNAT.IGVRate, log)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creando directorio %s: %w", outDir, err)
			}

			if zip {
				zipBytes, zipName, err := uc.BuildZip(cmd.Context(), &rec)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, zipName)
				if err := os.WriteFile(path, zipBytes, 0o644); err != nil {
					return fmt.Errorf("escribiendo %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			out, err := uc.BuildXML(cmd.Context(), &rec)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, out.FileName)
			if err := os.WriteFile(path, []byte(out.XML), 0o644); err != nil {
				return fmt.Errorf("escribiendo %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\ndigest: %s\n", path, out.DigestBase64)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directorio de salida")
	cmd.Flags().BoolVar(&zip, "zip", false, "generar el ZIP de envío")

	return cmd
}
