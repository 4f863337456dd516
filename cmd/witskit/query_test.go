package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Critlist/witskit/internal/db"
)

func TestParseCLITime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "empty means unbounded", input: "", want: time.Time{}},
		{name: "rfc3339", input: "2026-03-14T09:00:00Z", want: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
		{name: "unix seconds", input: "1700000000", want: time.Unix(1700000000, 0).UTC()},
		{name: "garbage", input: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCLITime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCLITime(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCLITime(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseCLITime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitCodes(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"0108", []string{"0108"}},
		{"0108,0113", []string{"0108", "0113"}},
		{" 0108 , 0113 ", []string{"0108", "0113"}},
		{",,,", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitCodes(tt.input)); diff != "" {
			t.Errorf("splitCodes(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestPrintPointsTable(t *testing.T) {
	value := 3650.40
	points := []db.StoredPoint{
		{
			FrameID:    "f1",
			Source:     "tcp://rig:9600",
			ReceivedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			Code:       "0108",
			Name:       "DBTM",
			RawValue:   "3650.40",
			Value:      &value,
			Unit:       "ft",
		},
		{
			FrameID:    "f1",
			Source:     "tcp://rig:9600",
			ReceivedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			Code:       "0101",
			Name:       "WELLID",
			RawValue:   "ALPHA-7",
			Text:       "ALPHA-7",
			Unit:       "----",
		},
	}
	var buf bytes.Buffer
	printPointsTable(&buf, points)
	out := buf.String()
	if !strings.Contains(out, "3650.4") || !strings.Contains(out, "DBTM") {
		t.Errorf("points table missing numeric row:\n%s", out)
	}
	if !strings.Contains(out, "ALPHA-7") {
		t.Errorf("points table missing text row:\n%s", out)
	}
	if strings.Contains(out, "----") {
		t.Errorf("unitless sentinel should not print:\n%s", out)
	}
}

func TestPrintPointsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	printPointsTable(&buf, nil)
	if !strings.Contains(buf.String(), "No data points found") {
		t.Errorf("empty result should say so, got:\n%s", buf.String())
	}
}

func TestPrintFramesTable(t *testing.T) {
	frames := []db.StoredFrame{
		{
			FrameID:    "2f0a7c9e-1b3d-4e5f-8a9b-0c1d2e3f4a5b",
			Source:     "serial:/dev/ttyUSB0",
			ReceivedAt: time.Date(2026, 3, 14, 9, 0, 1, 0, time.UTC),
			PointCount: 12,
			ErrorCount: 1,
		},
	}
	var buf bytes.Buffer
	printFramesTable(&buf, frames)
	out := buf.String()
	if !strings.Contains(out, "2f0a7c9e") || !strings.Contains(out, "serial:/dev/ttyUSB0") {
		t.Errorf("frames table missing row fields:\n%s", out)
	}
}

func TestPrintStatsTable(t *testing.T) {
	stats := []db.SymbolStats{
		{Code: "0113", Name: "ROPA", Count: 42, Mean: 21.5, StdDev: 1.25, Min: 18.0, Max: 25.0, P50: 21.4, P90: 24.0},
	}
	var buf bytes.Buffer
	printStatsTable(&buf, stats)
	out := buf.String()
	if !strings.Contains(out, "ROPA") || !strings.Contains(out, "21.500") {
		t.Errorf("stats table missing computed row:\n%s", out)
	}
}

func TestWritePointsCSV(t *testing.T) {
	value := 23.38
	points := []db.StoredPoint{
		{
			FrameID:    "f1",
			Source:     "mock",
			ReceivedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			Code:       "0113",
			Name:       "ROPA",
			RecordType: 1,
			RawValue:   "23.38",
			Value:      &value,
			Unit:       "ft/hr",
		},
	}
	var buf bytes.Buffer
	if err := writePointsCSV(&buf, points); err != nil {
		t.Fatalf("writePointsCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV output has %d lines, want header + 1 row:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "received_at,code,name") {
		t.Errorf("CSV header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2026-03-14T09:00:00Z,0113,ROPA,1,23.38,23.38") {
		t.Errorf("CSV row = %q", lines[1])
	}
}
