package store

import (
	"abenov/kaspi-import/internal/models"
)

// MockTransactionStore is an in-memory TransactionStore for testing.
type MockTransactionStore struct {
	Transactions map[string][]models.Transaction // keyed by owner

	// Error flags for testing error conditions
	QueryRangeError error
	BulkInsertError error
}

// NewMockTransactionStore creates an empty in-memory store.
func NewMockTransactionStore() *MockTransactionStore {
	return &MockTransactionStore{
		Transactions: make(map[string][]models.Transaction),
	}
}

// QueryRange returns the owner's transactions with from <= date <= to.
func (m *MockTransactionStore) QueryRange(owner, from, to string) ([]models.Transaction, error) {
	if m.QueryRangeError != nil {
		return nil, m.QueryRangeError
	}

	var result []models.Transaction
	for _, tx := range m.Transactions[owner] {
		if tx.Date >= from && tx.Date <= to {
			result = append(result, tx)
		}
	}
	return result, nil
}

// BulkInsert appends transactions to the owner's in-memory ledger.
func (m *MockTransactionStore) BulkInsert(owner string, transactions []models.Transaction) error {
	if m.BulkInsertError != nil {
		return m.BulkInsertError
	}

	for _, tx := range transactions {
		tx.Owner = owner
		m.Transactions[owner] = append(m.Transactions[owner], tx)
	}
	return nil
}
