// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Frosty-STI/PDF-Text-Extractor/internal/observability"
)

// Writer produces the filtered output document using pdfcpu
type Writer struct {
	conf *model.Configuration

	// Observability
	observer *observability.StandardObserver
}

// NewWriter creates a Writer with the default pdfcpu configuration
func NewWriter() *Writer {
	return &Writer{conf: model.NewDefaultConfiguration()}
}

// SetObserver sets the observability component
func (w *Writer) SetObserver(observer *observability.StandardObserver) {
	w.observer = observer
}

// PageCount returns the page count of the document at path
func (w *Writer) PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrDocumentOpen, path, err)
	}
	return count, nil
}

// WritePages writes a new document at outputPath containing exactly the
// given 1-based pages of the document at targetPath, in the given order.
// Annotations and metadata are carried over as-is by pdfcpu.
func (w *Writer) WritePages(targetPath, outputPath string, pages []int) error {
	var finishTiming func(bool, map[string]interface{})
	if w.observer != nil {
		finishTiming = w.observer.StartTiming("document_writer", "write_pages", outputPath)
	}

	err := w.writePages(targetPath, outputPath, pages)

	if finishTiming != nil {
		finishTiming(err == nil, map[string]interface{}{
			"kept_pages": len(pages),
		})
	}
	return err
}

func (w *Writer) writePages(targetPath, outputPath string, pages []int) error {
	if len(pages) == 0 {
		return fmt.Errorf("%w: no pages to write", ErrDocumentWrite)
	}

	// Validate the input before collecting pages from it
	if err := api.ValidateFile(targetPath, w.conf); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentOpen, targetPath, err)
	}

	selected := make([]string, 0, len(pages))
	for _, p := range pages {
		selected = append(selected, strconv.Itoa(p))
	}

	if err := api.CollectFile(targetPath, outputPath, selected, w.conf); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentWrite, outputPath, err)
	}
	return nil
}
