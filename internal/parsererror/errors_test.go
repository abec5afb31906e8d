package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionError(t *testing.T) {
	cause := errors.New("broken xref table")
	err := &ExtractionError{Source: "statement.pdf", Err: cause}

	assert.Contains(t, err.Error(), "statement.pdf")
	assert.ErrorIs(t, err, cause)
}

func TestLayoutMismatchError(t *testing.T) {
	err := &LayoutMismatchError{TextLength: 1234}

	assert.Contains(t, err.Error(), "1234")
	assert.Contains(t, err.Error(), "layout may have changed")
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StoreError{Op: "query", Err: cause}

	assert.Contains(t, err.Error(), "query")
	assert.ErrorIs(t, err, cause)
}

func TestParseError(t *testing.T) {
	cause := errors.New("not a number")
	err := &ParseError{Field: "amount", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "abc")
	assert.ErrorIs(t, err, cause)
}
