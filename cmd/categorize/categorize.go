// Package categorize handles the one-off categorization command
package categorize

import (
	"fmt"

	"abenov/kaspi-import/cmd/root"
	"abenov/kaspi-import/internal/categorizer"
	"abenov/kaspi-import/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize runs the keyword rules against a single description and
prints the resulting category. Useful for checking how a merchant will be
classified before importing a statement. With --list it prints the category
vocabulary for the selected kind instead.`,
	RunE: categorizeFunc,
}

var (
	description string
	expense     bool
	list        bool
)

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().BoolVarP(&expense, "expense", "e", false, "Treat the transaction as an expense (default: income)")
	Cmd.Flags().BoolVarP(&list, "list", "l", false, "List the category vocabulary for the selected kind")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	kind := models.KindIncome
	if expense {
		kind = models.KindExpense
	}

	if list {
		for _, category := range categorizer.VocabularyFor(kind) {
			fmt.Println(category)
		}
		return nil
	}

	if description == "" {
		return fmt.Errorf("required flag \"description\" not set")
	}

	cat, err := categorizer.NewFromFile(root.Cfg.Categorization.RulesFile)
	if err != nil {
		return err
	}

	fmt.Println(cat.Categorize(description, kind))
	return nil
}
