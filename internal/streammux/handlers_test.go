package streammux

import (
	"strings"
	"testing"
	"time"

	"github.com/Critlist/witskit/internal/db"
	"github.com/Critlist/witskit/internal/wits"
)

func TestHandleFrame_StoresDecodedFrame(t *testing.T) {
	tmp := t.TempDir()
	d, err := db.NewDB(tmp + "/test.db")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	defer d.Close()

	dec := wits.NewDecoder(wits.WithSource("stream-test"))
	if err := HandleFrame(d, dec, "&&\n01083650.40\n011323.38\n!!"); err != nil {
		t.Fatalf("HandleFrame failed: %v", err)
	}

	frames, err := d.QueryFrames(time.Time{}, time.Time{}, 0)
	if err != nil {
		t.Fatalf("failed to read stored frames: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 stored frame, got %d", len(frames))
	}
	if frames[0].Source != "stream-test" {
		t.Fatalf("expected source stream-test, got %q", frames[0].Source)
	}
	if frames[0].PointCount != 2 {
		t.Fatalf("expected 2 points, got %d", frames[0].PointCount)
	}
	if frames[0].ErrorCount != 0 {
		t.Fatalf("expected no decode warnings, got %d", frames[0].ErrorCount)
	}
}

func TestHandleFrame_DecodeError(t *testing.T) {
	tmp := t.TempDir()
	d, err := db.NewDB(tmp + "/test.db")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	defer d.Close()

	dec := wits.NewDecoder()
	err = HandleFrame(d, dec, "no frame markers here")
	if err == nil {
		t.Fatalf("expected error for structurally broken payload")
	}
	if !strings.Contains(err.Error(), "failed to decode frame") {
		t.Fatalf("unexpected error: %v", err)
	}

	// nothing should have been stored
	frames, err := d.QueryFrames(time.Time{}, time.Time{}, 0)
	if err != nil {
		t.Fatalf("failed to read stored frames: %v", err)
	}
	if len(frames) != 0 {
		t.Fatalf("expected no stored frames, got %d", len(frames))
	}
}

func TestHandleFrame_StoresFrameWithWarnings(t *testing.T) {
	tmp := t.TempDir()
	d, err := db.NewDB(tmp + "/test.db")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	defer d.Close()

	// unknown code 9999 produces a warning but the frame still stores
	dec := wits.NewDecoder()
	if err := HandleFrame(d, dec, "&&\n01083650.40\n999912.5\n!!"); err != nil {
		t.Fatalf("HandleFrame failed: %v", err)
	}

	frames, err := d.QueryFrames(time.Time{}, time.Time{}, 0)
	if err != nil {
		t.Fatalf("failed to read stored frames: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 stored frame, got %d", len(frames))
	}
	if frames[0].ErrorCount != 1 {
		t.Fatalf("expected 1 decode warning, got %d", frames[0].ErrorCount)
	}
}
