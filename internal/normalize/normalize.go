// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalize canonicalizes text extracted from PDF pages so that
// hyphenation and spacing variants of the same test name compare equal.
package normalize

import "strings"

var layoutReplacer = strings.NewReplacer(
	"­", "", // soft hyphen
	"–", "-", // en dash
	"—", "-", // em dash
)

// Layout removes soft hyphens and folds en/em dashes to ASCII hyphens.
// Applied to every page's raw text before pattern extraction.
func Layout(s string) string {
	if s == "" {
		return ""
	}
	return layoutReplacer.Replace(s)
}

// LooseKey builds the equality key used for loose matching: underscores
// become spaces, whitespace runs collapse to single spaces, ends are
// trimmed, and the result is lowercased when caseInsensitive is set.
// The same key function must be applied to source and target names.
func LooseKey(s string, caseInsensitive bool) string {
	key := strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), " ")
	if caseInsensitive {
		key = strings.ToLower(key)
	}
	return key
}

// CleanName trims a captured test name and strips trailing punctuation
// left over from headings (colons, semicolons, commas, hyphens).
func CleanName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ":;,-")
	return strings.TrimSpace(s)
}
