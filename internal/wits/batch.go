package wits

// SplitFrames splits multi-frame text into individual frame strings using
// the same marker scan as the stream Extractor. Garbage between frames is
// dropped; a trailing partial frame is not returned.
func SplitFrames(text string) []string {
	return NewExtractor().FeedString(text)
}

// DecodeAll decodes every frame found in text, in order. Frames decode
// independently; one frame's errors do not stop the rest. Input containing
// no complete frame at all fails with a *StructuralError.
func DecodeAll(text string, opts ...Option) ([]*DecodedFrame, error) {
	raw := SplitFrames(text)
	if len(raw) == 0 {
		return nil, &StructuralError{Reason: "no frames found in input"}
	}
	frames := make([]*DecodedFrame, 0, len(raw))
	for _, r := range raw {
		frame, err := Decode(r, opts...)
		if err != nil {
			// Split frames carry both markers, so this only trips on
			// pathological input; keep batch isolation regardless.
			frame = &DecodedFrame{Errors: []string{err.Error()}}
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// Combine flattens a batch into one view, preserving per-frame order of
// points and errors. Source and Timestamp come from the first frame.
func Combine(frames []*DecodedFrame) *DecodedFrame {
	combined := &DecodedFrame{}
	for i, f := range frames {
		if i == 0 {
			combined.Source = f.Source
			combined.Timestamp = f.Timestamp
		}
		combined.Points = append(combined.Points, f.Points...)
		combined.Errors = append(combined.Errors, f.Errors...)
	}
	return combined
}

// HasErrors reports whether any frame in the batch carries errors. Strict
// callers use it to escalate.
func HasErrors(frames []*DecodedFrame) bool {
	for _, f := range frames {
		if len(f.Errors) > 0 {
			return true
		}
	}
	return false
}
