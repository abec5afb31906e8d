// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionKind tells whether money came in or went out.
// The sign of a statement amount is carried here, never in Amount.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction represents a single financial event parsed from a Kaspi
// statement or already persisted in a ledger. Date is an ISO calendar day
// (YYYY-MM-DD); Amount is always a positive magnitude in the base currency
// unit (tenge). All stored amounts are assumed to be in that one unit;
// any multi-currency input must be converted before reaching this type.
type Transaction struct {
	Date        string          `csv:"Date"`        // ISO date, YYYY-MM-DD
	Kind        TransactionKind `csv:"Kind"`        // income or expense
	Amount      decimal.Decimal `csv:"Amount"`      // positive magnitude
	Category    string          `csv:"Category"`    // category label
	Description string          `csv:"Description"` // cleaned merchant text
	Owner       string          `csv:"Owner"`       // owner identity, set on insert
}

// DedupKey returns the composite identity used for duplicate detection.
// Kaspi statements carry no stable external transaction id, so identity
// is the tuple (date, amount, trimmed description).
func (t Transaction) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s", t.Date, t.Amount.String(), strings.TrimSpace(t.Description))
}

// IsIncome returns true if the transaction is incoming money
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true if the transaction is outgoing money
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// DateSpan returns the minimum and maximum ISO dates across a batch.
// ISO dates order lexicographically, so plain string comparison suffices.
// ok is false for an empty batch.
func DateSpan(batch []Transaction) (minDate, maxDate string, ok bool) {
	if len(batch) == 0 {
		return "", "", false
	}
	minDate, maxDate = batch[0].Date, batch[0].Date
	for _, tx := range batch[1:] {
		if tx.Date < minDate {
			minDate = tx.Date
		}
		if tx.Date > maxDate {
			maxDate = tx.Date
		}
	}
	return minDate, maxDate, true
}
