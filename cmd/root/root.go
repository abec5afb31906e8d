// Package root contains the root command for the application
package root

import (
	"abenov/kaspi-import/internal/categorizer"
	"abenov/kaspi-import/internal/config"
	"abenov/kaspi-import/internal/importer"
	"abenov/kaspi-import/internal/kaspiparser"
	"abenov/kaspi-import/internal/pdfextract"
	"abenov/kaspi-import/internal/reconciler"
	"abenov/kaspi-import/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "kaspi-import",
		Short: "A CLI tool to import Kaspi bank statements into a transaction ledger.",
		Long: `kaspi-import parses Kaspi bank statement PDFs, categorizes the
transactions and merges them into a per-owner ledger without creating
duplicates on repeated imports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to kaspi-import!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			// Logging and the CSV delimiter follow the resolved
			// configuration, not raw environment variables
			Log = config.ConfigureLoggingFromConfig(cfg)
			store.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			// Set the configured logger for all pipeline packages
			kaspiparser.SetLogger(Log)
			categorizer.SetLogger(Log)
			reconciler.SetLogger(Log)
			importer.SetLogger(Log)
			pdfextract.SetLogger(Log)
			store.SetLogger(Log)
		},
	}

	// Owner is the ledger owner identity, shared by commands operating on
	// a single owner's data
	Owner string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&Owner, "owner", "u", "", "Owner identity of the ledger")
}
