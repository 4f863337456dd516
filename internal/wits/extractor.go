package wits

import (
	"bytes"
	"io"
)

var (
	startBytes = []byte(StartMarker)
	endBytes   = []byte(EndMarker)
)

// Extractor reassembles complete WITS frames from a chunked byte stream.
// Chunk boundaries are arbitrary; feeding the same bytes in different chunk
// sizes yields the same frames. Text ahead of a start marker is discarded
// silently; a started but unterminated frame stays buffered until its end
// marker arrives. The scan is the literal protocol scan: it takes the first
// "&&" and the next "!!" after it, so a second "&&" inside an unterminated
// frame is swallowed into that frame's text rather than starting a new one.
//
// An Extractor serves exactly one stream and must not be fed from more than
// one goroutine. Dropping it discards any buffered partial frame.
type Extractor struct {
	buf []byte
}

// NewExtractor returns an empty Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Feed appends a chunk and returns the complete frames now available, in
// stream order. Each returned frame runs from its "&&" through its "!!"
// inclusive. Returns nil when no frame completed.
func (e *Extractor) Feed(p []byte) []string {
	e.buf = append(e.buf, p...)
	var frames []string
	for {
		start := bytes.Index(e.buf, startBytes)
		if start < 0 {
			return frames
		}
		rel := bytes.Index(e.buf[start:], endBytes)
		if rel < 0 {
			// Unterminated frame: drop the garbage ahead of it and wait
			// for more input.
			e.buf = e.buf[start:]
			return frames
		}
		end := start + rel + len(EndMarker)
		frames = append(frames, string(e.buf[start:end]))
		e.buf = e.buf[end:]
	}
}

// FeedString is Feed for string chunks.
func (e *Extractor) FeedString(s string) []string {
	return e.Feed([]byte(s))
}

// Rest returns the unconsumed buffer: garbage awaiting a start marker or a
// partial frame awaiting its end marker.
func (e *Extractor) Rest() string {
	return string(e.buf)
}

// ExtractAll reads r to EOF and returns every complete frame found. A
// trailing partial frame is discarded, matching stream-end semantics.
func ExtractAll(r io.Reader) ([]string, error) {
	e := NewExtractor()
	var frames []string
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			frames = append(frames, e.Feed(buf[:n])...)
		}
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
	}
}
