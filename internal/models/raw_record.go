package models

// RawRecord is an unvalidated (description, date, amount) triple as lexically
// matched from statement text. It only lives for the duration of one
// extraction pass; the normalizer either turns it into a Transaction or
// drops it.
type RawRecord struct {
	DescriptionText string // residue before the date, may embed a running balance
	DateText        string // DD.MM.YY as printed on the statement
	AmountText      string // signed, space-grouped, decimal-comma amount
}
