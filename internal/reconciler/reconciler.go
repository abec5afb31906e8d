// Package reconciler decides which freshly parsed transactions are genuinely
// new relative to a window of already persisted ones. Kaspi statements carry
// no stable transaction id, so identity is the composite key
// (date, amount, trimmed description) and membership is a multiset: two
// legitimate same-key transactions on one day are distinguished by count,
// not by mere presence.
package reconciler

import (
	"abenov/kaspi-import/internal/config"
	"abenov/kaspi-import/internal/models"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Reconcile partitions batch against existing and returns the subset of
// batch to insert, preserving batch order. Each existing record cancels at
// most one batch record with the same composite key, so a second same-key
// occurrence in the batch is admitted as new when only one copy exists.
// The result does not depend on the order of existing.
func Reconcile(batch, existing []models.Transaction) []models.Transaction {
	counts := make(map[string]int, len(existing))
	for _, tx := range existing {
		counts[tx.DedupKey()]++
	}

	toInsert := make([]models.Transaction, 0, len(batch))
	for _, tx := range batch {
		key := tx.DedupKey()
		if counts[key] > 0 {
			counts[key]--
			log.WithField("key", key).Debug("Skipping duplicate transaction")
			continue
		}
		toInsert = append(toInsert, tx)
	}

	log.WithFields(logrus.Fields{
		"batch":     len(batch),
		"existing":  len(existing),
		"to_insert": len(toInsert),
	}).Debug("Reconciled import batch against existing window")

	return toInsert
}
