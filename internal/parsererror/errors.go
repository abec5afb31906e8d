// Package parsererror defines the typed errors surfaced by the import pipeline.
package parsererror

import "fmt"

// ExtractionError represents a failure to extract text from a statement
// document. The document is unreadable; the import is aborted without retry.
type ExtractionError struct {
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// LayoutMismatchError means text extraction succeeded but the statement
// pattern matched nothing. A real statement always carries at least a balance
// line, so zero matches indicates the bank changed the layout rather than an
// empty statement.
type LayoutMismatchError struct {
	TextLength int
}

func (e *LayoutMismatchError) Error() string {
	return fmt.Sprintf("no transactions recognized in %d characters of statement text: the statement layout may have changed", e.TextLength)
}

// StoreError represents a failure of the transaction store during an import.
// No partial insert is attempted and the call is not retried.
type StoreError struct {
	Op  string // "query" or "insert"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("transaction store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ParseError carries per-record diagnostics for a field that could not be
// normalized. Records that fail normalization are dropped, not escalated, so
// this error only ever reaches debug logs.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
