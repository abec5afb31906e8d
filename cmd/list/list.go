// Package list handles the ledger listing command
package list

import (
	"fmt"
	"os"
	"sort"

	"abenov/kaspi-import/cmd/root"
	"abenov/kaspi-import/internal/store"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List stored transactions for an owner",
	Long: `List prints an owner's stored transactions as CSV, optionally
restricted to a date range or a category, newest first.`,
	RunE: listFunc,
}

var (
	fromDate string
	toDate   string
	category string
)

func init() {
	Cmd.Flags().StringVarP(&fromDate, "from", "f", "0000-00-00", "Earliest date to include (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&toDate, "to", "t", "9999-99-99", "Latest date to include (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only show transactions in this category")
}

func listFunc(cmd *cobra.Command, args []string) error {
	if root.Owner == "" {
		return fmt.Errorf("owner is required, pass --owner")
	}

	txStore := store.NewCSVStore(root.Cfg.Data.Directory)
	transactions, err := txStore.QueryRange(root.Owner, fromDate, toDate)
	if err != nil {
		return err
	}

	if category != "" {
		filtered := transactions[:0]
		for _, tx := range transactions {
			if tx.Category == category {
				filtered = append(filtered, tx)
			}
		}
		transactions = filtered
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	if len(transactions) == 0 {
		root.Log.Info("No transactions found")
		return nil
	}

	return gocsv.Marshal(&transactions, os.Stdout)
}
