// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"reflect"
	"testing"
)

func TestSourceExtractor_ExtractPage(t *testing.T) {
	e := NewSourceExtractor()

	cases := []struct {
		name    string
		text    string
		want    string
		wantHit bool
	}{
		{
			name:    "double space terminator",
			text:    "2.1 __ Battery Voltage Check   Test",
			want:    "Battery Voltage Check",
			wantHit: true,
		},
		{
			name:    "Test keyword terminator",
			text:    "3 __ Startup Sequence Test continues here",
			want:    "Startup Sequence",
			wantHit: true,
		},
		{
			name:    "end of text terminator",
			text:    "4.2 __ Sensor Sweep",
			want:    "Sensor Sweep",
			wantHit: true,
		},
		{
			name:    "trailing newline on last line",
			text:    "4.2 __ Sensor Sweep\n",
			want:    "Sensor Sweep",
			wantHit: true,
		},
		{
			name:    "trailing punctuation stripped",
			text:    "5 __ Relay Toggle:  footer",
			want:    "Relay Toggle",
			wantHit: true,
		},
		{
			name:    "lowercase test keyword",
			text:    "6 __ Shutdown Path test",
			want:    "Shutdown Path",
			wantHit: true,
		},
		{
			name:    "soft hyphen and dash folded",
			text:    "7.1 __ Pre–Charge Bat­tery  Test",
			want:    "Pre-Charge Battery",
			wantHit: true,
		},
		{
			name:    "no numeric prefix",
			text:    "Battery Voltage Check",
			wantHit: false,
		},
		{
			name:    "empty name before Test",
			text:    "8 __ Test",
			wantHit: false,
		},
		{
			name:    "empty page",
			text:    "",
			wantHit: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, hit := e.ExtractPage(tc.text)
			if hit != tc.wantHit {
				t.Fatalf("ExtractPage(%q) hit = %v, want %v", tc.text, hit, tc.wantHit)
			}
			if hit && got != tc.want {
				t.Errorf("ExtractPage(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

// fakeDoc serves canned page text for extractor tests
type fakeDoc struct {
	pages []string
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) PageText(pageNum int) string {
	if pageNum < 1 || pageNum > len(d.pages) {
		return ""
	}
	return d.pages[pageNum-1]
}

func TestSourceExtractor_ExtractDocument(t *testing.T) {
	e := NewSourceExtractor()
	doc := &fakeDoc{pages: []string{
		"1.1 __ Battery Voltage Check  Test",
		"title page with no test name",
		"2 __ Sensor Sweep",
		"",
		"2 __ Sensor Sweep", // duplicate pages contribute duplicate names
	}}

	got := e.ExtractDocument(doc, "spec.pdf")
	want := []string{"Battery Voltage Check", "Sensor Sweep", "Sensor Sweep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractDocument = %v, want %v", got, want)
	}
}
