package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrExtraction is returned when an uploaded document cannot be read as a PDF.
var ErrExtraction = errors.New("document is not a readable pdf")

// PDF extracts embedded text from PDF documents.
// Library used: github.com/ledongthuc/pdf. No OCR is attempted.
type PDF struct{}

// NewPDF constructs a PDF extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// ExtractText reads the whole document and returns its page-ordered text.
func (p *PDF) ExtractText(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("extract text: read: %w", err)
	}
	return ExtractTextFromBytes(ctx, raw)
}

// ExtractTextFromBytes extracts text from an in-memory PDF payload.
// Pages are joined with a newline, pages without text are skipped and the
// result is trimmed of surrounding whitespace.
func ExtractTextFromBytes(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("extract text: empty document: %w", ErrExtraction)
	}

	pages, err := readPages(ctx, data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

func readPages(ctx context.Context, data []byte) (pages []string, err error) {
	// The pdf package panics on some malformed xref tables.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("extract text: %v: %w", rec, ErrExtraction)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("extract text: %v: %w", err, ErrExtraction)
	}

	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// GetPlainText prefixes each page with a newline.
		text := strings.TrimSpace(pageText(reader.Page(i)))
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func pageText(page pdf.Page) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
