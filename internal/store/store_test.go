package store

import (
	"os"
	"path/filepath"
	"testing"

	"abenov/kaspi-import/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Date:        "2024-01-05",
			Kind:        models.KindExpense,
			Amount:      decimal.RequireFromString("1500"),
			Category:    "Продукты",
			Description: "MAGNUM ALMATY",
		},
		{
			Date:        "2024-01-07",
			Kind:        models.KindIncome,
			Amount:      decimal.RequireFromString("2000"),
			Category:    "Пополнение",
			Description: "Пополнение с карты",
		},
	}
}

func TestCSVStore_RoundTrip(t *testing.T) {
	s := NewCSVStore(t.TempDir())

	require.NoError(t, s.BulkInsert("user-1", sampleTransactions()))

	got, err := s.QueryRange("user-1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-01-05", got[0].Date)
	assert.Equal(t, models.KindExpense, got[0].Kind)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("1500")))
	assert.Equal(t, "MAGNUM ALMATY", got[0].Description)
	assert.Equal(t, "user-1", got[0].Owner)
	assert.Equal(t, "user-1", got[1].Owner)
}

func TestCSVStore_QueryRangeBounds(t *testing.T) {
	s := NewCSVStore(t.TempDir())
	require.NoError(t, s.BulkInsert("user-1", sampleTransactions()))

	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"full window", "2024-01-01", "2024-01-31", 2},
		{"inclusive bounds", "2024-01-05", "2024-01-07", 2},
		{"partial window", "2024-01-06", "2024-01-31", 1},
		{"empty window", "2024-02-01", "2024-02-29", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.QueryRange("user-1", tt.from, tt.to)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestCSVStore_MissingLedgerIsEmpty(t *testing.T) {
	s := NewCSVStore(t.TempDir())

	got, err := s.QueryRange("nobody", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCSVStore_AppendsAcrossInserts(t *testing.T) {
	s := NewCSVStore(t.TempDir())
	txs := sampleTransactions()

	require.NoError(t, s.BulkInsert("user-1", txs[:1]))
	require.NoError(t, s.BulkInsert("user-1", txs[1:]))

	got, err := s.QueryRange("user-1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCSVStore_OwnersAreIsolated(t *testing.T) {
	s := NewCSVStore(t.TempDir())
	require.NoError(t, s.BulkInsert("user-1", sampleTransactions()))

	got, err := s.QueryRange("user-2", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCSVStore_InsertNothingIsNoop(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVStore(dir)

	require.NoError(t, s.BulkInsert("user-1", nil))

	_, err := os.Stat(filepath.Join(dir, "user-1.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestCSVStore_ConfiguredDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	dir := t.TempDir()
	s := NewCSVStore(dir)
	require.NoError(t, s.BulkInsert("user-1", sampleTransactions()))

	raw, err := os.ReadFile(filepath.Join(dir, "user-1.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Date;Kind;Amount")

	// Reads honor the same delimiter
	got, err := s.QueryRange("user-1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "MAGNUM ALMATY", got[0].Description)
}

func TestCSVStore_SanitizesOwnerPath(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVStore(dir)

	require.NoError(t, s.BulkInsert("../evil/user", sampleTransactions()))

	_, err := os.Stat(filepath.Join(dir, ".._evil_user.csv"))
	assert.NoError(t, err)
}
