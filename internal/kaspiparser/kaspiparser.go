// Package kaspiparser extracts transactions from the text of a Kaspi bank
// statement. The statement layout is a running line of
// "<description> <DD.MM.YY> <signed amount> ₸" repeated for every movement,
// with balance and total summary lines interleaved. The parser recovers raw
// (description, date, amount) triples from that layout and normalizes them
// into canonical transactions.
package kaspiparser

import (
	"regexp"
	"strings"

	"abenov/kaspi-import/internal/config"
	"abenov/kaspi-import/internal/models"
	"abenov/kaspi-import/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// transactionPattern matches one statement entry: a non-greedy description,
// a DD.MM.YY date, and a signed amount with space grouping, a decimal comma
// and a tenge marker. The marker is sometimes rendered as a plain "T" by the
// text extraction step, and the minus is the figure dash "−", not ASCII.
var transactionPattern = regexp.MustCompile(`(.*?)\s(\d{2}\.\d{2}\.\d{2})\s([+\-−]?\s?[\d\s]+,\d{2})\s?[₸T]`)

// Summary lines are identified by these substrings in the description
// residue ("balance" and "total" in the statement's language) and skipped.
var summaryMarkers = []string{"Остаток", "Всего"}

// tengeMarker is the currency glyph used to split a running balance figure
// out of the description residue.
const tengeMarker = "₸"

// FlattenPages joins per-page statement text into the single
// whitespace-collapsed string the extractor operates on.
func FlattenPages(pages []string) string {
	joined := strings.Join(pages, " ")
	return strings.Join(strings.Fields(joined), " ")
}

// ExtractRawRecords performs a single pass over flattened statement text and
// returns every span matching the statement layout as a raw record. Summary
// lines are dropped here; all field validation is left to the normalizer.
func ExtractRawRecords(text string) []models.RawRecord {
	matches := transactionPattern.FindAllStringSubmatch(text, -1)

	var records []models.RawRecord
	for _, m := range matches {
		rawDescription := strings.TrimSpace(m[1])

		if isSummaryLine(rawDescription) {
			log.WithField("description", rawDescription).Debug("Skipping summary line")
			continue
		}

		records = append(records, models.RawRecord{
			DescriptionText: rawDescription,
			DateText:        m[2],
			AmountText:      m[3],
		})
	}
	return records
}

// ParseStatement extracts and normalizes all transactions from flattened
// statement text. Records that fail normalization are dropped individually
// so that a few noisy lines do not sink the whole statement. If nothing
// survives, the statement layout has likely changed and a
// LayoutMismatchError is returned.
func ParseStatement(text string) ([]models.Transaction, error) {
	raw := ExtractRawRecords(text)

	var transactions []models.Transaction
	for _, record := range raw {
		tx, err := NormalizeRecord(record)
		if err != nil {
			log.WithError(err).WithField("description", record.DescriptionText).
				Debug("Dropping unparseable statement record")
			continue
		}
		transactions = append(transactions, tx)
	}

	if len(transactions) == 0 {
		log.WithField("text_length", len(text)).Warn("Statement pattern matched no transactions")
		return nil, &parsererror.LayoutMismatchError{TextLength: len(text)}
	}

	log.WithField("count", len(transactions)).Info("Parsed transactions from statement text")
	return transactions, nil
}

func isSummaryLine(description string) bool {
	for _, marker := range summaryMarkers {
		if strings.Contains(description, marker) {
			return true
		}
	}
	return false
}
