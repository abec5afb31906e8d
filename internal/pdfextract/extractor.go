// Package pdfextract turns statement PDF bytes into per-page text. The
// production implementation shells out to the pdftotext command; tests use
// the mock. Everything past text extraction is the parser's concern.
package pdfextract

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"abenov/kaspi-import/internal/config"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// PageExtractor defines the interface for extracting per-page text from a
// statement document. This is the seam that keeps the import pipeline
// testable without real PDFs.
type PageExtractor interface {
	// ExtractPages reads a PDF document and returns the text of each page
	// in order, or an error if the document is unreadable.
	ExtractPages(r io.Reader) ([]string, error)
}

// PdftotextExtractor implements PageExtractor using the pdftotext
// command-line tool, which must be installed.
type PdftotextExtractor struct{}

// NewPdftotextExtractor creates a new PdftotextExtractor instance.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{}
}

// ExtractPages writes the document to a temporary file, runs pdftotext on
// it and splits the output on the form feeds pdftotext emits between pages.
func (e *PdftotextExtractor) ExtractPages(r io.Reader) ([]string, error) {
	tempFile, err := os.CreateTemp("", "*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			log.WithError(err).Warn("Failed to remove temporary file")
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to write temporary PDF file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	text, err := extractText(tempFile.Name())
	if err != nil {
		return nil, err
	}

	pages := strings.Split(text, "\f")
	// pdftotext terminates the last page with a form feed as well
	if n := len(pages); n > 0 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}

	log.WithField("pages", len(pages)).Debug("Extracted text from PDF")
	return pages, nil
}

// extractText runs pdftotext on a PDF file and returns the raw output.
var extractText = func(pdfFile string) (string, error) {
	textFile := pdfFile + ".txt"

	cmd := exec.Command("pdftotext", "-layout", pdfFile, textFile)
	if err := cmd.Run(); err != nil {
		log.WithError(err).Error("Failed to run pdftotext command")
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}

	output, err := os.ReadFile(textFile)
	if err != nil {
		log.WithError(err).Error("Failed to read text output")
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}

	if err := os.Remove(textFile); err != nil {
		log.WithError(err).Warn("Failed to remove text output file")
	}

	return string(output), nil
}
