package kaspiparser

import (
	"testing"

	"abenov/kaspi-import/internal/models"
	"abenov/kaspi-import/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecord(t *testing.T) {
	tests := []struct {
		name            string
		record          models.RawRecord
		wantDate        string
		wantKind        models.TransactionKind
		wantAmount      string
		wantDescription string
	}{
		{
			name: "expense with figure dash and space grouping",
			record: models.RawRecord{
				DescriptionText: "MAGNUM ALMATY",
				DateText:        "05.01.24",
				AmountText:      "−1 500,00",
			},
			wantDate:        "2024-01-05",
			wantKind:        models.KindExpense,
			wantAmount:      "1500",
			wantDescription: "MAGNUM ALMATY",
		},
		{
			name: "income with explicit plus",
			record: models.RawRecord{
				DescriptionText: "Пополнение",
				DateText:        "07.01.24",
				AmountText:      "+2 000,00",
			},
			wantDate:        "2024-01-07",
			wantKind:        models.KindIncome,
			wantAmount:      "2000",
			wantDescription: "Пополнение",
		},
		{
			name: "running balance stripped after last currency marker",
			record: models.RawRecord{
				DescriptionText: "8 500,00 ₸ YANDEX TAXI",
				DateText:        "06.01.24",
				AmountText:      "−700,00",
			},
			wantDate:        "2024-01-06",
			wantKind:        models.KindExpense,
			wantAmount:      "700",
			wantDescription: "YANDEX TAXI",
		},
		{
			name: "empty description falls back to placeholder",
			record: models.RawRecord{
				DescriptionText: "12 345,67 ₸",
				DateText:        "10.01.24",
				AmountText:      "−100,00",
			},
			wantDate:        "2024-01-10",
			wantKind:        models.KindExpense,
			wantAmount:      "100",
			wantDescription: "Транзакция Kaspi",
		},
		{
			name: "unsigned amount is income when positive",
			record: models.RawRecord{
				DescriptionText: "Возврат",
				DateText:        "31.12.23",
				AmountText:      "350,50",
			},
			wantDate:        "2023-12-31",
			wantKind:        models.KindIncome,
			wantAmount:      "350.5",
			wantDescription: "Возврат",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := NormalizeRecord(tt.record)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDate, tx.Date)
			assert.Equal(t, tt.wantKind, tx.Kind)
			assert.Equal(t, tt.wantAmount, tx.Amount.String())
			assert.Equal(t, tt.wantDescription, tx.Description)
			assert.True(t, tx.Amount.IsPositive(), "stored amount must be a positive magnitude")
		})
	}
}

func TestNormalizeRecord_RejectsBadAmount(t *testing.T) {
	_, err := NormalizeRecord(models.RawRecord{
		DescriptionText: "NOISE LINE",
		DateText:        "05.01.24",
		AmountText:      "abc,de",
	})

	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "amount", parseErr.Field)
}

func TestNormalizeRecord_RejectsBadDate(t *testing.T) {
	_, err := NormalizeRecord(models.RawRecord{
		DescriptionText: "SHOP",
		DateText:        "5.1.2024",
		AmountText:      "−100,00",
	})

	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "date", parseErr.Field)
}
