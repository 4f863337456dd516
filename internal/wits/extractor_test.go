package wits

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractorSingleFrame(t *testing.T) {
	e := NewExtractor()
	frames := e.FeedString("&&\n01083650.40\n011323.38\n!!")
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	want := "&&\n01083650.40\n011323.38\n!!"
	if frames[0] != want {
		t.Errorf("frame = %q, want %q", frames[0], want)
	}
}

func TestExtractorChunkBoundaryIndependence(t *testing.T) {
	input := "noise before&&\n01083650.40\n!!between&&\n011323.38\n011412.5\n!!\n&&\n0105123456\n!!trailing"
	wantFrames := []string{
		"&&\n01083650.40\n!!",
		"&&\n011323.38\n011412.5\n!!",
		"&&\n0105123456\n!!",
	}

	for _, chunkSize := range []int{1, 2, 3, 5, 7, 16, 1000} {
		t.Run(fmt.Sprintf("chunk size %d", chunkSize), func(t *testing.T) {
			e := NewExtractor()
			var got []string
			for i := 0; i < len(input); i += chunkSize {
				end := i + chunkSize
				if end > len(input) {
					end = len(input)
				}
				got = append(got, e.FeedString(input[i:end])...)
			}
			if len(got) != len(wantFrames) {
				t.Fatalf("got %d frames, want %d: %q", len(got), len(wantFrames), got)
			}
			for i := range got {
				if got[i] != wantFrames[i] {
					t.Errorf("frame %d = %q, want %q", i, got[i], wantFrames[i])
				}
			}
		})
	}
}

func TestExtractorFrameCountInvariant(t *testing.T) {
	var sb strings.Builder
	const n = 50
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "&&\n0108%d.%02d\n!!", 3000+i, i)
	}
	e := NewExtractor()
	frames := e.FeedString(sb.String())
	if len(frames) != n {
		t.Fatalf("got %d frames, want %d", len(frames), n)
	}
	for i, f := range frames {
		want := fmt.Sprintf("&&\n0108%d.%02d\n!!", 3000+i, i)
		if f != want {
			t.Errorf("frame %d = %q, want %q", i, f, want)
		}
	}
}

func TestExtractorDiscardsGarbage(t *testing.T) {
	e := NewExtractor()
	frames := e.FeedString("garbage in front&&\n01083650.40\n!!garbage behind")
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if strings.Contains(frames[0], "garbage") {
		t.Errorf("emitted frame contains garbage: %q", frames[0])
	}
	if more := e.FeedString("&&\n0110100.0\n!!"); len(more) != 1 {
		t.Fatalf("frame after trailing garbage not extracted: %q", more)
	}
}

func TestExtractorPartialStaysBuffered(t *testing.T) {
	e := NewExtractor()
	if frames := e.FeedString("&&\n010836"); len(frames) != 0 {
		t.Fatalf("partial frame emitted early: %q", frames)
	}
	if frames := e.FeedString("50.40\n"); len(frames) != 0 {
		t.Fatalf("partial frame emitted early: %q", frames)
	}
	frames := e.FeedString("!!")
	if len(frames) != 1 || frames[0] != "&&\n01083650.40\n!!" {
		t.Fatalf("got %q, want the completed frame", frames)
	}
	if e.Rest() != "" {
		t.Errorf("Rest() = %q, want empty", e.Rest())
	}
}

func TestExtractorMarkerSplitAcrossChunks(t *testing.T) {
	e := NewExtractor()
	var frames []string
	for _, chunk := range []string{"junk&", "&\n0108x\n!", "!"} {
		frames = append(frames, e.FeedString(chunk)...)
	}
	if len(frames) != 1 || frames[0] != "&&\n0108x\n!!" {
		t.Fatalf("got %q, want one frame with markers split across chunks", frames)
	}
}

// A second start marker inside an unterminated frame is swallowed into that
// frame, per the literal scan. Pinned so nobody "fixes" it quietly.
func TestExtractorDoubleStartMarker(t *testing.T) {
	e := NewExtractor()
	frames := e.FeedString("&&\n0108aa\n&&\n0113bb\n!!")
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if frames[0] != "&&\n0108aa\n&&\n0113bb\n!!" {
		t.Errorf("frame = %q, want both start markers inside one frame", frames[0])
	}
}

func TestExtractorEndMarkerBeforeStart(t *testing.T) {
	e := NewExtractor()
	frames := e.FeedString("!!stale&&\n0108x\n!!")
	if len(frames) != 1 || frames[0] != "&&\n0108x\n!!" {
		t.Fatalf("got %q, want the end marker matched after the start marker", frames)
	}
}

func TestExtractorRest(t *testing.T) {
	e := NewExtractor()
	e.FeedString("&&\n0108partial")
	if rest := e.Rest(); rest != "&&\n0108partial" {
		t.Errorf("Rest() = %q, want the buffered partial frame", rest)
	}
}

func TestExtractAll(t *testing.T) {
	input := "x&&\n0108a\n!!y&&\n0113b\n!!&&\ntrailing partial"
	frames, err := ExtractAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ExtractAll returned error: %v", err)
	}
	want := []string{"&&\n0108a\n!!", "&&\n0113b\n!!"}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %q, want %q", i, frames[i], want[i])
		}
	}
}

func TestExtractorIdenticalInputIdenticalOutput(t *testing.T) {
	input := "pre&&\n0108one\n!!mid&&\n0113two\n!!post"
	a := NewExtractor().FeedString(input)
	b := NewExtractor().FeedString(input)
	if len(a) != len(b) {
		t.Fatalf("fresh extractors disagree: %d vs %d frames", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("frame %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}
