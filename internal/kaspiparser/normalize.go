package kaspiparser

import (
	"fmt"
	"strings"
	"unicode"

	"abenov/kaspi-import/internal/models"
	"abenov/kaspi-import/internal/parsererror"

	"github.com/shopspring/decimal"
)

// placeholderDescription is used when nothing remains of the description
// after cleaning.
const placeholderDescription = "Транзакция Kaspi"

// figureDash is the minus glyph Kaspi statements print for debits.
const figureDash = "−"

// NormalizeRecord converts one raw record into a canonical transaction.
// The date is expanded from DD.MM.YY by prefixing the year with 20 (the
// statement format did not exist before 2000), the amount is reduced to a
// positive decimal magnitude with the sign mapped onto the transaction kind,
// and the description is cleaned of any embedded running balance. A record
// whose amount does not parse is rejected.
func NormalizeRecord(record models.RawRecord) (models.Transaction, error) {
	amount, err := parseAmount(record.AmountText)
	if err != nil {
		return models.Transaction{}, err
	}

	date, err := expandDate(record.DateText)
	if err != nil {
		return models.Transaction{}, err
	}

	kind := models.KindExpense
	if amount.IsPositive() {
		kind = models.KindIncome
	}

	return models.Transaction{
		Date:        date,
		Kind:        kind,
		Amount:      amount.Abs(),
		Description: cleanDescription(record.DescriptionText),
	}, nil
}

// parseAmount normalizes the statement amount text to a signed decimal:
// interior whitespace and thousands grouping are stripped, the decimal comma
// becomes a dot, and the figure dash becomes an ASCII minus.
func parseAmount(amountText string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, amountText)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.ReplaceAll(cleaned, figureDash, "-")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{Field: "amount", Value: amountText, Err: err}
	}
	return amount, nil
}

// expandDate turns DD.MM.YY into an ISO YYYY-MM-DD date.
func expandDate(dateText string) (string, error) {
	parts := strings.Split(dateText, ".")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return "", &parsererror.ParseError{
			Field: "date",
			Value: dateText,
			Err:   fmt.Errorf("expected DD.MM.YY"),
		}
	}
	return fmt.Sprintf("20%s-%s-%s", parts[2], parts[1], parts[0]), nil
}

// cleanDescription strips the running balance Kaspi sometimes embeds ahead
// of the merchant name. The balance carries its own tenge marker, so only
// the text after the last marker occurrence is the true description. If the
// merchant name itself contains the marker this truncates too much; no real
// statement sample with that shape has been seen yet.
func cleanDescription(raw string) string {
	description := raw
	if idx := strings.LastIndex(description, tengeMarker); idx != -1 {
		description = description[idx+len(tengeMarker):]
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return placeholderDescription
	}
	return description
}
