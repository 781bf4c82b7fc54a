// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"

	"github.com/Frosty-STI/PDF-Text-Extractor/internal/normalize"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/observability"
)

// SourceExtractor extracts test-case names from source specification
// pages. A source name follows a numeric prefix ("<int>[.<int>] __") and
// runs until a double space, the word "Test", or end of text. The prefix
// itself is discarded; only the name participates in matching.
type SourceExtractor struct {
	pattern string
	regex   *regexp.Regexp

	// Observability
	observer *observability.StandardObserver
}

// NewSourceExtractor creates and returns a new SourceExtractor instance
func NewSourceExtractor() *SourceExtractor {
	e := &SourceExtractor{
		pattern: `(?i)\b\d+(?:\.\d+)?\s*__\s*([^\r\n]*?)(?:\s{2,}|\bTest\b|$)`,
	}

	// Compile the regex pattern once at initialization
	e.regex = regexp.MustCompile(e.pattern)
	return e
}

// SetObserver sets the observability component
func (e *SourceExtractor) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// ExtractPage extracts at most one source name from a page's raw text.
// Layout normalization (soft hyphens, dash variants) is applied first.
// The second return value reports whether a name was found.
func (e *SourceExtractor) ExtractPage(rawText string) (string, bool) {
	// Trailing page whitespace would otherwise keep the end-of-text
	// terminator from matching a name on the last line.
	text := strings.TrimRight(normalize.Layout(rawText), " \t\r\n")
	m := e.regex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := normalize.CleanName(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}

// ExtractDocument walks the document's pages in ascending order and
// collects the extracted source names. Pages without a match contribute
// nothing; duplicates are kept and processed independently downstream.
func (e *SourceExtractor) ExtractDocument(doc PageTexter, path string) []string {
	var finishTiming func(bool, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("source_extractor", "extract_document", path)
	}

	var names []string
	pageCount := doc.PageCount()
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		if name, ok := e.ExtractPage(doc.PageText(pageNum)); ok {
			names = append(names, name)
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"page_count": pageCount,
			"name_count": len(names),
		})
	}
	return names
}
