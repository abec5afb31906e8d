// Package importer orchestrates the statement import pipeline: extract text
// from the document, parse and categorize transactions, reconcile them
// against the already stored window and insert only what is new. Repeating
// an import is safe; duplicates are dropped, not re-inserted.
package importer

import (
	"context"
	"io"

	"abenov/kaspi-import/internal/categorizer"
	"abenov/kaspi-import/internal/config"
	"abenov/kaspi-import/internal/kaspiparser"
	"abenov/kaspi-import/internal/models"
	"abenov/kaspi-import/internal/parsererror"
	"abenov/kaspi-import/internal/pdfextract"
	"abenov/kaspi-import/internal/reconciler"
	"abenov/kaspi-import/internal/store"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Result reports the outcome of one statement import.
type Result struct {
	Inserted int // transactions actually written to the store
	Skipped  int // batch transactions dropped as duplicates
}

// Importer ties the pipeline stages to the two external collaborators.
// It holds no state between calls; concurrent imports for the same owner
// are expected to be serialized by the caller, since the store interaction
// is a get-then-insert rather than one transaction.
type Importer struct {
	extractor   pdfextract.PageExtractor
	store       store.TransactionStore
	categorizer *categorizer.Categorizer
}

// New creates an Importer with the given collaborators. A nil categorizer
// falls back to the built-in rule set.
func New(extractor pdfextract.PageExtractor, txStore store.TransactionStore, cat *categorizer.Categorizer) *Importer {
	if cat == nil {
		cat = categorizer.New()
	}
	return &Importer{
		extractor:   extractor,
		store:       txStore,
		categorizer: cat,
	}
}

// Import runs the full pipeline for one statement document and returns how
// many transactions were inserted. Zero inserted with a nil error means the
// whole statement was already present, which is a normal outcome of
// re-importing the same document. Each failure kind surfaces as its typed
// error: ExtractionError, LayoutMismatchError or StoreError. The pipeline
// makes a single attempt with no internal retries.
func (i *Importer) Import(ctx context.Context, owner string, document io.Reader) (Result, error) {
	pages, err := i.extractor.ExtractPages(document)
	if err != nil {
		return Result{}, &parsererror.ExtractionError{Source: "statement document", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	text := kaspiparser.FlattenPages(pages)
	batch, err := kaspiparser.ParseStatement(text)
	if err != nil {
		return Result{}, err
	}

	for idx := range batch {
		i.categorizer.CategorizeTransaction(&batch[idx])
	}

	minDate, maxDate, ok := models.DateSpan(batch)
	if !ok {
		// ParseStatement never returns an empty batch without an error
		return Result{}, &parsererror.LayoutMismatchError{TextLength: len(text)}
	}

	existing, err := i.store.QueryRange(owner, minDate, maxDate)
	if err != nil {
		return Result{}, &parsererror.StoreError{Op: "query", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	toInsert := reconciler.Reconcile(batch, existing)
	result := Result{
		Inserted: len(toInsert),
		Skipped:  len(batch) - len(toInsert),
	}

	if len(toInsert) == 0 {
		log.WithFields(logrus.Fields{
			"owner":   owner,
			"skipped": result.Skipped,
		}).Info("All statement transactions already present, nothing to insert")
		return result, nil
	}

	if err := i.store.BulkInsert(owner, toInsert); err != nil {
		return Result{}, &parsererror.StoreError{Op: "insert", Err: err}
	}

	log.WithFields(logrus.Fields{
		"owner":    owner,
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
	}).Info("Statement import complete")

	return result, nil
}
