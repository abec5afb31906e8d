// Package store provides persistence for transaction ledgers. The import
// pipeline only relies on the narrow TransactionStore interface; the CSV
// implementation keeps one ledger file per owner.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"abenov/kaspi-import/internal/config"
	"abenov/kaspi-import/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the field separator used for all ledger CSV files.
// Configured via csv.delimiter; defaults to a comma.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for all gocsv reads and writes,
// including the list command's output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.Comma = Delimiter
		return reader
	})
}

// TransactionStore is the persistence seam the import pipeline depends on.
// QueryRange must return every stored transaction of the owner whose date
// falls inside [from, to] inclusive; BulkInsert must persist all given
// transactions or none.
type TransactionStore interface {
	QueryRange(owner, from, to string) ([]models.Transaction, error)
	BulkInsert(owner string, transactions []models.Transaction) error
}

// CSVStore stores each owner's ledger as one CSV file under a data
// directory.
type CSVStore struct {
	Directory string
}

// NewCSVStore creates a CSV-file-backed transaction store rooted at the
// given directory.
func NewCSVStore(directory string) *CSVStore {
	return &CSVStore{Directory: directory}
}

// QueryRange returns the owner's transactions with from <= date <= to.
// ISO dates compare lexicographically, so the range check is plain string
// comparison. A missing ledger file means an empty result, not an error.
func (s *CSVStore) QueryRange(owner, from, to string) ([]models.Transaction, error) {
	all, err := s.readLedger(owner)
	if err != nil {
		return nil, err
	}

	var result []models.Transaction
	for _, tx := range all {
		if tx.Date >= from && tx.Date <= to {
			result = append(result, tx)
		}
	}

	log.WithFields(logrus.Fields{
		"owner": owner,
		"from":  from,
		"to":    to,
		"count": len(result),
	}).Debug("Queried transaction window")

	return result, nil
}

// BulkInsert appends transactions to the owner's ledger, tagging each with
// the owner identity. The whole ledger is rewritten atomically via a
// temporary file so a failed write never truncates existing data.
func (s *CSVStore) BulkInsert(owner string, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	all, err := s.readLedger(owner)
	if err != nil {
		return err
	}

	for _, tx := range transactions {
		tx.Owner = owner
		all = append(all, tx)
	}

	if err := os.MkdirAll(s.Directory, 0750); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	path := s.ledgerPath(owner)
	tempPath := path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("error creating ledger file: %w", err)
	}

	if err := gocsv.MarshalFile(&all, file); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("error writing ledger file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("error closing ledger file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("error replacing ledger file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"owner": owner,
		"count": len(transactions),
		"file":  path,
	}).Info("Inserted transactions into ledger")

	return nil
}

// readLedger loads the owner's full ledger, or an empty slice when no file
// exists yet.
func (s *CSVStore) readLedger(owner string) ([]models.Transaction, error) {
	path := s.ledgerPath(owner)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close ledger file")
		}
	}()

	var transactions []models.Transaction
	if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, nil
		}
		return nil, fmt.Errorf("error parsing ledger file: %w", err)
	}
	return transactions, nil
}

// ledgerPath maps an owner identity to a file path, flattening any
// separator characters so an owner string cannot escape the data directory.
func (s *CSVStore) ledgerPath(owner string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, owner)
	return filepath.Join(s.Directory, safe+".csv")
}
