// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"reflect"
	"testing"
)

func TestTargetExtractor_ExtractPage(t *testing.T) {
	e := NewTargetExtractor([]string{"CONTY", "CRES", "P2P"})

	cases := []struct {
		name string
		text string
		want []TargetEntry
	}{
		{
			name: "single entry, double space terminator",
			text: "Device Test: 3.2.1 Battery Voltage Check  PASS",
			want: []TargetEntry{{ID: "3.2.1", Name: "Battery Voltage Check"}},
		},
		{
			name: "entry at end of text",
			text: "Device Test: 4.4 sensor calib",
			want: []TargetEntry{{ID: "4.4", Name: "sensor calib"}},
		},
		{
			name: "multiple entries across lines",
			text: "Device Test: 1.2 Startup Sequence\nDevice Test: 1.3 Shutdown Path\n",
			want: []TargetEntry{
				{ID: "1.2", Name: "Startup Sequence"},
				{ID: "1.3", Name: "Shutdown Path"},
			},
		},
		{
			name: "drop word excludes entry entirely",
			text: "Device Test: 1.2.3 CONTY Startup\nDevice Test: 1.2.4 Relay Toggle\n",
			want: []TargetEntry{{ID: "1.2.4", Name: "Relay Toggle"}},
		},
		{
			name: "drop word is case insensitive substring",
			text: "Device Test: 2.2 p2p handshake check\n",
			want: nil,
		},
		{
			name: "four dotted groups accepted",
			text: "Device Test: 1.2.3.4 Deep Path\n",
			want: []TargetEntry{{ID: "1.2.3.4", Name: "Deep Path"}},
		},
		{
			name: "single group id rejected",
			text: "Device Test: 7 Lone Number\n",
			want: nil,
		},
		{
			name: "flexible keyword spacing and case",
			text: "device  test: 5.5 Watchdog Reset\n",
			want: []TargetEntry{{ID: "5.5", Name: "Watchdog Reset"}},
		},
		{
			name: "trailing punctuation stripped",
			text: "Device Test: 6.1 Self-Test Run:-\n",
			want: []TargetEntry{{ID: "6.1", Name: "Self-Test Run"}},
		},
		{
			name: "no entries",
			text: "Summary of results\n",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.ExtractPage(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractPage(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestTargetExtractor_ExtractDocument(t *testing.T) {
	e := NewTargetExtractor([]string{"CONTY"})
	doc := &fakeDoc{pages: []string{
		"Device Test: 1.1 Battery Voltage Check\nDevice Test: 1.2 Sensor Sweep\n",
		"no tests here",
		"Device Test: 2.1 CONTY Startup\n",
		"Device Test: 3.1 Battery Voltage Check\n",
	}}

	index := e.ExtractDocument(doc, "report.pdf")

	want := PageIndex{
		1: {"Battery Voltage Check", "Sensor Sweep"},
		4: {"Battery Voltage Check"},
	}
	if !reflect.DeepEqual(index, want) {
		t.Errorf("ExtractDocument = %v, want %v", index, want)
	}
	if index.TotalEntries() != 3 {
		t.Errorf("TotalEntries = %d, want 3", index.TotalEntries())
	}
}

func TestPageIndex_Add(t *testing.T) {
	pi := NewPageIndex()
	pi.Add(2, "A")
	pi.Add(2, "B")
	pi.Add(5, "C")

	if !reflect.DeepEqual(pi[2], []string{"A", "B"}) {
		t.Errorf("page 2 entries = %v, want [A B]", pi[2])
	}
	if pi.TotalEntries() != 3 {
		t.Errorf("TotalEntries = %d, want 3", pi.TotalEntries())
	}
}
