package wits

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr(v float64) *float64 { return &v }

func TestDecodeConcreteExample(t *testing.T) {
	const frame = "&&\n01083650.40\n011323.38\n!!"

	t.Run("fps default", func(t *testing.T) {
		got, err := Decode(frame)
		if err != nil {
			t.Fatalf("Decode returned error: %v", err)
		}
		if len(got.Errors) != 0 {
			t.Fatalf("Decode errors = %v, want none", got.Errors)
		}
		want := []DataPoint{
			{Code: "0108", Name: "DBTM", Description: "Depth Bit (measured)", RecordType: 1, RawValue: "3650.40", Value: ptr(3650.40), Unit: FEET},
			{Code: "0113", Name: "ROPA", Description: "Rate of Penetration (avg)", RecordType: 1, RawValue: "23.38", Value: ptr(23.38), Unit: FHR},
		}
		if diff := cmp.Diff(want, got.Points); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("metric", func(t *testing.T) {
		got, err := Decode(frame, WithMetricUnits())
		if err != nil {
			t.Fatalf("Decode returned error: %v", err)
		}
		if got.Points[0].Unit != METERS || got.Points[1].Unit != MHR {
			t.Errorf("metric units = %s, %s; want m, m/hr", got.Points[0].Unit, got.Points[1].Unit)
		}
	})
}

func TestDecodeSampleFrame(t *testing.T) {
	frame := "&&\n01083650.40\n011323.38\n011412.5\n012112.5\n!!"
	got, err := Decode(frame, WithSource("test-rig"))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got.Source != "test-rig" {
		t.Errorf("Source = %q, want test-rig", got.Source)
	}
	if len(got.Points) != 4 {
		t.Fatalf("got %d points, want 4", len(got.Points))
	}
	wantNames := []string{"DBTM", "ROPA", "HKLA", "RPMX"}
	for i, name := range wantNames {
		if got.Points[i].Name != name {
			t.Errorf("point %d name = %s, want %s", i, got.Points[i].Name, name)
		}
	}
	if got.Timestamp.IsZero() {
		t.Error("Timestamp not assigned")
	}
	if hkla, ok := got.Point("0114"); !ok || *hkla.Value != 12.5 || hkla.Unit != KLB {
		t.Errorf("0114 = %+v, want 12.5 klb", hkla)
	}
}

func TestDecodeUnknownCode(t *testing.T) {
	for _, tt := range []struct {
		name string
		opts []Option
	}{
		{"lenient", nil},
		{"strict", []Option{WithStrict()}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode("&&\n9999123\n!!", tt.opts...)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if len(got.Points) != 0 {
				t.Errorf("got %d points, want 0", len(got.Points))
			}
			if len(got.Errors) != 1 {
				t.Errorf("got %d errors, want 1: %v", len(got.Errors), got.Errors)
			}
		})
	}
}

func TestDecodeKnownAndUnknownMixed(t *testing.T) {
	for _, tt := range []struct {
		name string
		opts []Option
	}{
		{"lenient", nil},
		{"strict", []Option{WithStrict()}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode("&&\n01083650.40\n9999123\n!!", tt.opts...)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if len(got.Points) != 1 || got.Points[0].Code != "0108" {
				t.Errorf("points = %+v, want just 0108", got.Points)
			}
			if len(got.Errors) != 1 {
				t.Errorf("errors = %v, want exactly one", got.Errors)
			}
		})
	}
}

func TestDecodeStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no markers at all", "010812345"},
		{"missing end marker", "&&\n01083650.40\n"},
		{"missing start marker", "01083650.40\n!!"},
		{"empty string", ""},
		{"whitespace only", "  \n\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text)
			if err == nil {
				t.Fatalf("Decode(%q) succeeded with %d points, want StructuralError", tt.text, len(got.Points))
			}
			var structural *StructuralError
			if !errors.As(err, &structural) {
				t.Errorf("error type = %T, want *StructuralError", err)
			}
		})
	}
}

func TestDecodeEmptyUsesSentinel(t *testing.T) {
	_, err := Decode("")
	if !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("Decode(\"\") error = %v, want ErrEmptyFrame", err)
	}
}

func TestDecodeCoercionFailure(t *testing.T) {
	got, err := Decode("&&\n0108not-a-number\n010512.5\n!!")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(got.Points) != 2 {
		t.Fatalf("got %d points, want 2 (points kept with value absent)", len(got.Points))
	}
	for i, p := range got.Points {
		if p.IsNumeric() {
			t.Errorf("point %d (%s) has value %v, want absent", i, p.Code, *p.Value)
		}
		if p.RawValue == "" {
			t.Errorf("point %d lost its raw value", i)
		}
	}
	if len(got.Errors) != 2 {
		t.Errorf("errors = %v, want two coercion errors", got.Errors)
	}
}

func TestDecodeIntSymbol(t *testing.T) {
	got, err := Decode("&&\n0105250823\n0106134500\n!!")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(got.Errors) != 0 {
		t.Fatalf("errors = %v, want none", got.Errors)
	}
	if v, _ := got.Point("0105"); *v.Value != 250823 {
		t.Errorf("0105 = %v, want 250823", *v.Value)
	}
}

func TestDecodeStringPassthrough(t *testing.T) {
	got, err := Decode("&&\n0101NORTH SEA 7A-22\n!!")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	p := got.Points[0]
	if p.Text != "NORTH SEA 7A-22" || p.IsNumeric() {
		t.Errorf("string symbol = %+v, want raw text passed through", p)
	}
}

func TestDecodeCRLFLines(t *testing.T) {
	got, err := Decode("&&\r\n01083650.40\r\n011323.38\r\n!!")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(got.Points) != 2 || len(got.Errors) != 0 {
		t.Errorf("CRLF frame: %d points, errors %v; want 2 points, none", len(got.Points), got.Errors)
	}
}

func TestDecodeConvertToMetric(t *testing.T) {
	got, err := Decode("&&\n01083650.40\n012112.5\n!!", WithConvertTo(Metric))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	depth, _ := got.Point("0108")
	if depth.Unit != METERS {
		t.Errorf("0108 unit = %s, want m", depth.Unit)
	}
	if math.Abs(*depth.Value-1112.64192) > 1e-6 {
		t.Errorf("0108 value = %f, want 1112.64192", *depth.Value)
	}
	// Unitless channels ride through conversion untouched.
	rpm, _ := got.Point("0121")
	if rpm.Unit != UNITLESS || *rpm.Value != 12.5 {
		t.Errorf("0121 = %+v, want unchanged", rpm)
	}
	if len(got.Errors) != 0 {
		t.Errorf("errors = %v, want none", got.Errors)
	}
}

func TestDecodeConvertRoundTrip(t *testing.T) {
	fps, err := Decode("&&\n01083650.40\n!!")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	converted, err := Decode("&&\n01083650.40\n!!", WithConvertTo(Metric))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	back, err := Convert(*converted.Points[0].Value, METERS, FEET)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if math.Abs(back-*fps.Points[0].Value) > 1e-9 {
		t.Errorf("round trip drifted: %f vs %f", back, *fps.Points[0].Value)
	}
}

func TestDecoderReuse(t *testing.T) {
	d := NewDecoder(WithMetricUnits(), WithSource("mux"))
	for i := 0; i < 3; i++ {
		got, err := d.Decode("&&\n01083650.40\n!!")
		if err != nil {
			t.Fatalf("Decode returned error: %v", err)
		}
		if got.Source != "mux" || got.Points[0].Unit != METERS {
			t.Errorf("decoder options not applied: %+v", got.Points[0])
		}
	}
}

func TestDecodeShortLine(t *testing.T) {
	got, err := Decode("&&\n010\n01083650.40\n!!")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(got.Points) != 1 || len(got.Errors) != 1 {
		t.Errorf("short line handling: %d points, errors %v; want 1 point, 1 error", len(got.Points), got.Errors)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"well formed", "&&\n01083650.40\n!!", true},
		{"markers only", "&&!!", true},
		{"surrounding whitespace", "  &&\n0108x\n!!\n", true},
		{"missing end", "&&\n0108x\n", false},
		{"missing start", "0108x\n!!", false},
		{"empty", "", false},
		{"reversed markers", "!!\n0108x\n&&", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.text); got != tt.valid {
				t.Errorf("Validate(%q) = %v, want %v", tt.text, got, tt.valid)
			}
		})
	}
}
