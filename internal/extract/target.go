// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"

	"github.com/Frosty-STI/PDF-Text-Extractor/internal/normalize"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/observability"
)

// TargetExtractor finds every "Device Test: <dotted id> <name>" occurrence
// on a target report page. The dotted id has 2-4 numeric groups and is
// captured for reference only. Entries whose name contains a drop word
// (case-insensitive substring) are don't-care tests and are discarded
// before they reach the page index.
type TargetExtractor struct {
	pattern string
	regex   *regexp.Regexp

	// Uppercased drop words for case-insensitive substring checks
	dropWords []string

	// Observability
	observer *observability.StandardObserver
}

// NewTargetExtractor creates a TargetExtractor with the given drop words
func NewTargetExtractor(dropWords []string) *TargetExtractor {
	e := &TargetExtractor{
		// RE2 has no lookahead, so the terminator is consumed instead of
		// asserted. The name class excludes line breaks, so consuming the
		// terminator cannot swallow a following occurrence's text.
		pattern: `(?i)Device\s*Test:\s*(\d{1,3}(?:\.\d{1,3}){1,3})\s+([^\r\n]*?)(?:\s{2,}|\r|\n|$)`,
	}

	for _, w := range dropWords {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			e.dropWords = append(e.dropWords, w)
		}
	}

	e.regex = regexp.MustCompile(e.pattern)
	return e
}

// SetObserver sets the observability component
func (e *TargetExtractor) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// ExtractPage extracts all device-test entries from a page's raw text,
// applying layout normalization first and dropping don't-care tests.
func (e *TargetExtractor) ExtractPage(rawText string) []TargetEntry {
	text := normalize.Layout(rawText)

	var entries []TargetEntry
	for _, m := range e.regex.FindAllStringSubmatch(text, -1) {
		name := normalize.CleanName(m[2])
		if name == "" {
			continue
		}
		if e.isDropWorded(name) {
			continue
		}
		entries = append(entries, TargetEntry{
			ID:   strings.TrimSpace(m[1]),
			Name: name,
		})
	}
	return entries
}

// isDropWorded reports whether the name contains any configured drop word
func (e *TargetExtractor) isDropWorded(name string) bool {
	up := strings.ToUpper(name)
	for _, w := range e.dropWords {
		if strings.Contains(up, w) {
			return true
		}
	}
	return false
}

// ExtractDocument builds the page index for a target document, walking
// pages in ascending order. Pages with no entries do not appear in the
// index.
func (e *TargetExtractor) ExtractDocument(doc PageTexter, path string) PageIndex {
	var finishTiming func(bool, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("target_extractor", "extract_document", path)
	}

	index := NewPageIndex()
	pageCount := doc.PageCount()
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		for _, entry := range e.ExtractPage(doc.PageText(pageNum)) {
			index.Add(pageNum, entry.Name)
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"page_count":  pageCount,
			"entry_count": index.TotalEntries(),
			"pages_hit":   len(index),
		})
	}
	return index
}
