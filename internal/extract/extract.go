// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract turns raw per-page document text into structured
// test-name records for matching.
package extract

// PageTexter provides per-page text access to a document. Pages are
// 1-based. PageText returns an empty string for pages without
// extractable text.
type PageTexter interface {
	PageCount() int
	PageText(pageNum int) string
}

// TargetEntry is one device-test occurrence found on a target page. The
// numeric ID is informational only and never used for matching.
type TargetEntry struct {
	ID   string
	Name string
}

// PageIndex maps a 1-based page number to the names found on that page,
// in order of appearance.
type PageIndex map[int][]string

// NewPageIndex returns an empty page index
func NewPageIndex() PageIndex {
	return make(PageIndex)
}

// Add appends a name to the given page's entry list
func (pi PageIndex) Add(page int, name string) {
	pi[page] = append(pi[page], name)
}

// TotalEntries returns the number of captured entries across all pages
func (pi PageIndex) TotalEntries() int {
	total := 0
	for _, names := range pi {
		total += len(names)
	}
	return total
}
