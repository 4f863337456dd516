package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Critlist/witskit/internal/db"
	"github.com/Critlist/witskit/internal/wits"
)

// Round trip through the pipeline the CLI wires together: decode frame
// text, store it, query it back.
func TestDecodeStoreQueryRoundTrip(t *testing.T) {
	database, err := db.NewDB(filepath.Join(t.TempDir(), "wits.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer database.Close()

	frames, err := wits.DecodeAll(testFrame, wits.WithSource("bench"))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	stored, err := database.StoreFrames(frames)
	if err != nil {
		t.Fatalf("StoreFrames: %v", err)
	}
	if stored != 1 {
		t.Fatalf("stored %d frames, want 1", stored)
	}

	points, err := database.QueryDataPoints([]string{"0108"}, time.Time{}, time.Time{}, 0)
	if err != nil {
		t.Fatalf("QueryDataPoints: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	value := 3650.40
	want := db.StoredPoint{
		FrameID:    points[0].FrameID,
		Source:     "bench",
		ReceivedAt: points[0].ReceivedAt,
		Code:       "0108",
		RecordType: 1,
		Name:       "DBTM",
		RawValue:   "3650.40",
		Value:      &value,
		Unit:       "ft",
	}
	if diff := cmp.Diff(want, points[0]); diff != "" {
		t.Errorf("stored point mismatch (-want +got):\n%s", diff)
	}

	symbols, err := database.AvailableSymbols()
	if err != nil {
		t.Fatalf("AvailableSymbols: %v", err)
	}
	if len(symbols) != 2 {
		t.Errorf("got %d symbols, want 0108 and 0113", len(symbols))
	}
}
