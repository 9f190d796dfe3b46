package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/application/reporting"
)

func newBookCommand(opts *globalOptions) *cobra.Command {
	var (
		dataPath string
		period   string
		encoding string
		outDir   string
		zip      bool
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "book <diario|mayor|compras|ventas>",
		Short: "Genera el archivo PLE de un libro para el periodo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			store, err := loadData(dataPath)
			if err != nil {
				return err
			}

			uc := reporting.NewBooksUseCase(store, reporting.BooksConfig{
				Encoding:    cfg.PLE.Encoding,
				Opportunity: cfg.PLE.Opportunity,
				Currency:    cfg.SUNAT.DefaultCurrency,
				Workers:     cfg.PLE.Workers,
			}, log)
			out, err := uc.Export(cmd.Context(), dto.BookExportRequest{
				RUC:      store.Company().RUC,
				Book:     args[0],
				Period:   period,
				Encoding: encoding,
				Zip:      zip,
			})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creando directorio %s: %w", outDir, err)
			}
			path := filepath.Join(outDir, out.FileName)
			if err := os.WriteFile(path, out.Content, 0o644); err != nil {
				return fmt.Errorf("escribiendo %s: %w", path, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%d líneas)\n", path, out.Lines)
			for _, is := range out.Issues {
				fmt.Fprintln(w, "  "+is.String())
			}
			if strict && len(out.Issues) > 0 {
				return fmt.Errorf("%d campos degradados", len(out.Issues))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "archivo de datos YAML o JSON (requerido)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&period, "period", "", "periodo AAAAMM (requerido)")
	_ = cmd.MarkFlagRequired("period")
	cmd.Flags().StringVar(&encoding, "encoding", "", "ISO-8859-1 o UTF-8 (por defecto PLE_ENCODING)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directorio de salida")
	cmd.Flags().BoolVar(&zip, "zip", false, "empaquetar el .txt en un .zip")
	cmd.Flags().BoolVar(&strict, "strict", false, "fallar si algún campo se degradó")

	return cmd
}
