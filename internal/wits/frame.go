package wits

import (
	"strings"
	"time"
)

// Frame delimiters defined by WITS Level 0.
const (
	StartMarker = "&&"
	EndMarker   = "!!"
)

// DataPoint is one decoded measurement from a frame line. Value is set for
// numeric symbols that parsed cleanly; Text carries string symbols through
// unchanged. A nil Value on a numeric symbol means coercion failed and the
// failure is recorded in the frame's error list.
type DataPoint struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	RecordType  int      `json:"record_type"`
	RawValue    string   `json:"raw_value"`
	Value       *float64 `json:"value,omitempty"`
	Text        string   `json:"text,omitempty"`
	Unit        Unit     `json:"unit"`
}

// IsNumeric reports whether the point carries a parsed numeric value.
func (p DataPoint) IsNumeric() bool {
	return p.Value != nil
}

// DecodedFrame is the result of decoding one frame. Points preserve the line
// order of the original frame. Errors holds per-line issues (unknown codes,
// coercion failures, conversion warnings); a structurally broken frame is
// reported to the caller instead and produces no DecodedFrame.
type DecodedFrame struct {
	Source    string      `json:"source,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Points    []DataPoint `json:"points"`
	Errors    []string    `json:"errors,omitempty"`
}

// Point returns the first data point with the given code, if present.
func (f *DecodedFrame) Point(code string) (DataPoint, bool) {
	for _, p := range f.Points {
		if p.Code == code {
			return p, true
		}
	}
	return DataPoint{}, false
}

// StructuralError reports frame text that is not a well-formed WITS frame
// (missing markers, empty input). It fails that frame only.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "malformed frame: " + e.Reason
}

// ErrEmptyFrame is returned when frame text is empty or whitespace only.
var ErrEmptyFrame = &StructuralError{Reason: "empty frame text"}

// Validate reports whether text is structurally a WITS frame: after trimming
// whitespace it begins with "&&" and ends with "!!". Symbol resolution is not
// part of the check.
func Validate(text string) bool {
	t := strings.TrimSpace(text)
	return len(t) >= len(StartMarker)+len(EndMarker) &&
		strings.HasPrefix(t, StartMarker) &&
		strings.HasSuffix(t, EndMarker)
}
