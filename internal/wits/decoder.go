// Package wits decodes WITS Level 0 drilling telemetry. A frame is a block
// of text between "&&" and "!!" markers whose lines each carry a 4-character
// symbol code and a raw value. The package holds the symbol catalog, the unit
// conversion tables, a chunk-stream frame extractor, and the frame decoder
// that turns raw frame text into typed, unit-labelled data points.
package wits

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnitSystem selects which of a symbol's two unit declarations applies.
type UnitSystem int

const (
	// FPS is the field unit system (feet, psi, gallons). The default,
	// matching common rig-site configuration.
	FPS UnitSystem = iota
	// Metric is the SI-leaning system (meters, kPa, liters).
	Metric
)

func (u UnitSystem) String() string {
	if u == Metric {
		return "metric"
	}
	return "fps"
}

type decodeConfig struct {
	source    string
	system    UnitSystem
	strict    bool
	convert   bool
	convertTo UnitSystem
}

// Option configures a decode call.
type Option func(*decodeConfig)

// WithSource labels decoded frames with a provenance string (address, file
// path, sensor name).
func WithSource(source string) Option {
	return func(c *decodeConfig) { c.source = source }
}

// WithUnitSystem selects the unit system for decoded values.
func WithUnitSystem(s UnitSystem) Option {
	return func(c *decodeConfig) { c.system = s }
}

// WithMetricUnits decodes values with metric unit labels.
func WithMetricUnits() Option {
	return func(c *decodeConfig) { c.system = Metric }
}

// WithFPSUnits decodes values with field unit labels. This is the default.
func WithFPSUnits() Option {
	return func(c *decodeConfig) { c.system = FPS }
}

// WithStrict marks the decode strict. Line-level handling is unchanged
// (unknown codes are recorded and skipped either way); callers running
// batches or streams use it to escalate frames that carry errors.
func WithStrict() Option {
	return func(c *decodeConfig) { c.strict = true }
}

// WithConvertTo re-expresses every numeric point in the given unit system
// after decoding. Points whose units do not convert keep their original
// value and unit, with a warning appended to the frame's error list.
func WithConvertTo(s UnitSystem) Option {
	return func(c *decodeConfig) { c.convert = true; c.convertTo = s }
}

// Decoder bundles a fixed option set for repeated decode calls, for callers
// that decode many frames the same way (stream monitors, storage writers).
// Decoders are stateless and safe for concurrent use.
type Decoder struct {
	opts []Option
}

// NewDecoder returns a Decoder applying opts to every call.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{opts: opts}
}

// Decode decodes one frame with the Decoder's options.
func (d *Decoder) Decode(text string) (*DecodedFrame, error) {
	return Decode(text, d.opts...)
}

// DecodeAll batch-decodes multi-frame text with the Decoder's options.
func (d *Decoder) DecodeAll(text string) ([]*DecodedFrame, error) {
	return DecodeAll(text, d.opts...)
}

// Decode parses one WITS frame into typed data points. Per-line problems
// (unknown codes, values that do not parse as the symbol's declared type)
// are collected in the result's Errors and never fail the call; only
// structurally broken text (empty, or missing either marker) returns an
// error, always a *StructuralError.
func Decode(text string, opts ...Option) (*DecodedFrame, error) {
	cfg := decodeConfig{system: FPS}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := strings.TrimSpace(text)
	if t == "" {
		return nil, ErrEmptyFrame
	}
	if !strings.HasPrefix(t, StartMarker) {
		return nil, &StructuralError{Reason: "missing start marker " + StartMarker}
	}
	if !strings.HasSuffix(t, EndMarker) {
		return nil, &StructuralError{Reason: "missing end marker " + EndMarker}
	}

	frame := &DecodedFrame{
		Source:    cfg.source,
		Timestamp: time.Now().UTC(),
	}

	body := t[len(StartMarker) : len(t)-len(EndMarker)]
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < 4 {
			frame.Errors = append(frame.Errors, fmt.Sprintf("line %q too short for a symbol code", line))
			continue
		}
		code, raw := line[:4], line[4:]
		symbol, ok := Lookup(code)
		if !ok {
			frame.Errors = append(frame.Errors, fmt.Sprintf("unknown symbol code %s", code))
			continue
		}

		point := DataPoint{
			Code:        code,
			Name:        symbol.Name,
			Description: symbol.Description,
			RecordType:  symbol.RecordType,
			RawValue:    raw,
			Unit:        symbol.Unit(cfg.system == Metric),
		}
		switch symbol.Type {
		case TypeInt:
			v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				frame.Errors = append(frame.Errors, fmt.Sprintf("symbol %s (%s): %q is not a whole number", code, symbol.Name, raw))
			} else {
				f := float64(v)
				point.Value = &f
			}
		case TypeFloat:
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				frame.Errors = append(frame.Errors, fmt.Sprintf("symbol %s (%s): %q is not a number", code, symbol.Name, raw))
			} else {
				point.Value = &v
			}
		default:
			point.Text = raw
		}
		frame.Points = append(frame.Points, point)
	}

	if cfg.convert {
		convertPoints(frame, cfg.convertTo)
	}
	return frame, nil
}

// convertPoints re-expresses numeric points in the target system using each
// symbol's declared unit pair. Unconvertible points keep their value and
// unit; the failure is appended as a warning.
func convertPoints(frame *DecodedFrame, target UnitSystem) {
	for i := range frame.Points {
		p := &frame.Points[i]
		if p.Value == nil {
			continue
		}
		symbol, ok := Lookup(p.Code)
		if !ok {
			continue
		}
		to := symbol.Unit(target == Metric)
		if p.Unit == to {
			continue
		}
		converted, err := Convert(*p.Value, p.Unit, to)
		if err != nil {
			frame.Errors = append(frame.Errors, fmt.Sprintf("symbol %s: %v", p.Code, err))
			continue
		}
		p.Value = &converted
		p.Unit = to
	}
}
