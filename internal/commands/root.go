package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contasunat/internal/buildinfo"
	"github.com/jhoicas/contasunat/internal/infrastructure/filestore"
	"github.com/jhoicas/contasunat/pkg/config"
	"github.com/jhoicas/contasunat/pkg/logger"
)

// globalOptions flags compartidos por todos los subcomandos.
type globalOptions struct {
	logLevel string
	quiet    bool
}

// NewRootCommand crea el comando raíz con todos los subcomandos registrados.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:     "contasunat",
		Short:   "Libros electrónicos PLE, estados financieros y comprobantes UBL para SUNAT",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "sin logs")

	rootCmd.AddCommand(newBookCommand(opts))
	rootCmd.AddCommand(newStatementsCommand(opts))
	rootCmd.AddCommand(newInvoiceCommand(opts))

	return rootCmd
}

// setup carga la configuración y crea el logger sobre stderr del comando.
func (o *globalOptions) setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.quiet {
		return cfg, logger.Nop(), nil
	}
	level := cfg.App.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	return cfg, logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()}), nil
}

func loadData(path string) (*filestore.Store, error) {
	if path == "" {
		return nil, fmt.Errorf("--data requerido")
	}
	return filestore.Load(path)
}
