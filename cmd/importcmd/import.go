// Package importcmd handles the statement import command
package importcmd

import (
	"context"
	"fmt"
	"os"

	"abenov/kaspi-import/cmd/root"
	"abenov/kaspi-import/internal/categorizer"
	"abenov/kaspi-import/internal/importer"
	"abenov/kaspi-import/internal/pdfextract"
	"abenov/kaspi-import/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a Kaspi statement PDF into the ledger",
	Long: `Import parses a Kaspi bank statement PDF, categorizes every
transaction and inserts the ones not already present in the owner's ledger.
Re-importing the same statement inserts nothing.`,
	RunE: importFunc,
}

var inputFile string

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement PDF file to import")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	if root.Owner == "" {
		return fmt.Errorf("owner is required, pass --owner")
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close statement file")
		}
	}()

	cat, err := categorizer.NewFromFile(root.Cfg.Categorization.RulesFile)
	if err != nil {
		return err
	}

	imp := importer.New(
		pdfextract.NewPdftotextExtractor(),
		store.NewCSVStore(root.Cfg.Data.Directory),
		cat,
	)

	result, err := imp.Import(context.Background(), root.Owner, file)
	if err != nil {
		return err
	}

	if result.Inserted == 0 {
		root.Log.Infof("No new transactions found (%d duplicates skipped)", result.Skipped)
	} else {
		root.Log.Infof("Successfully added %d transactions (%d duplicates skipped)", result.Inserted, result.Skipped)
	}
	return nil
}
