package pdfextract

import "io"

// MockPageExtractor implements PageExtractor for testing purposes.
// It returns predefined pages or an error instead of reading a real PDF.
type MockPageExtractor struct {
	MockPages []string
	MockErr   error
}

// NewMockPageExtractor creates a new MockPageExtractor with the given mock data.
func NewMockPageExtractor(pages []string, err error) *MockPageExtractor {
	return &MockPageExtractor{
		MockPages: pages,
		MockErr:   err,
	}
}

// ExtractPages returns the predefined pages or error.
func (e *MockPageExtractor) ExtractPages(r io.Reader) ([]string, error) {
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	return e.MockPages, nil
}
