// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Frosty-STI/PDF-Text-Extractor/internal/observability"
)

// Reader reads per-page text from a PDF document using ledongthuc/pdf
type Reader struct {
	path   string
	file   *os.File
	reader *pdf.Reader

	// Observability
	observer *observability.StandardObserver
}

// OpenReader opens a PDF for text extraction. Failures wrap
// ErrDocumentOpen and abort the run.
func OpenReader(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentOpen, path, err)
	}
	return &Reader{path: path, file: f, reader: r}, nil
}

// SetObserver sets the observability component
func (r *Reader) SetObserver(observer *observability.StandardObserver) {
	r.observer = observer
}

// Close releases the underlying file
func (r *Reader) Close() error {
	return r.file.Close()
}

// Path returns the document path
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.reader.NumPage()
}

// PageText returns the text of the given 1-based page. It never fails
// for a valid index; pages whose text cannot be extracted yield an empty
// string.
func (r *Reader) PageText(pageNum int) string {
	var finishTiming func(bool, map[string]interface{})
	if r.observer != nil {
		finishTiming = r.observer.StartTiming("document_reader", "page_text", r.path)
	}

	text := ""
	ok := false
	p := r.reader.Page(pageNum)
	if !p.V.IsNull() {
		extracted, err := extractTextWithProperSpacing(p)
		if err == nil {
			text = extracted
			ok = true
		}
	}

	if finishTiming != nil {
		finishTiming(ok, map[string]interface{}{
			"page":         pageNum,
			"content_size": len(text),
		})
	}
	return text
}

// extractTextWithProperSpacing extracts text using row-based positioning
// for better spacing
func extractTextWithProperSpacing(p pdf.Page) (string, error) {
	// Try row-based extraction first (more accurate spacing)
	rows, err := p.GetTextByRow()
	if err != nil {
		// Fallback to simple text extraction if row-based fails
		return p.GetPlainText(nil)
	}

	// Sort rows by Y coordinate for proper reading order (top to bottom)
	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	sort.Slice(sortedRows, func(i, j int) bool {
		return getAverageY(sortedRows[i].Content) < getAverageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

// getAverageY calculates the average Y coordinate for text elements in a row
func getAverageY(textElements []pdf.Text) float64 {
	if len(textElements) == 0 {
		return 0
	}

	var totalY float64
	for _, element := range textElements {
		totalY += element.Y
	}
	return totalY / float64(len(textElements))
}

// reconstructRowText reconstructs text from a row with spacing derived
// from element coordinates. Narrow gaps become a single space; wide gaps
// (table column separators) become a double space, which the extraction
// patterns treat as a field terminator.
func reconstructRowText(textElements []pdf.Text) string {
	if len(textElements) == 0 {
		return ""
	}

	// Sort elements by X coordinate for left-to-right reading order
	sortedElements := make([]pdf.Text, len(textElements))
	copy(sortedElements, textElements)
	sort.Slice(sortedElements, func(i, j int) bool {
		return sortedElements[i].X < sortedElements[j].X
	})

	var buf bytes.Buffer
	for i, element := range sortedElements {
		buf.WriteString(element.S)

		if i < len(sortedElements)-1 {
			nextElement := sortedElements[i+1]
			currentEnd := element.X + element.W
			gap := nextElement.X - currentEnd

			// Use font size as a reference for what constitutes a gap
			fontSize := element.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}

			switch {
			case gap > fontSize*2:
				buf.WriteString("  ")
			case gap > fontSize*0.2:
				buf.WriteString(" ")
			}
		}
	}

	return buf.String()
}
