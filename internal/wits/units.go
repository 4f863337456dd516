package wits

import (
	"fmt"
	"sort"
	"strings"
)

// Unit identifies one WITS measurement unit. The string value is the label
// attached to decoded data points (e.g. "m/hr", "psi").
type Unit string

// Unit constants, named after the WITS0 standard mnemonics.
const (
	MHR  Unit = "m/hr"    // meters per hour
	FHR  Unit = "ft/hr"   // feet per hour
	KPA  Unit = "kPa"     // kilopascals
	PSI  Unit = "psi"     // pounds per square inch
	BAR  Unit = "bar"     // bar
	LPM  Unit = "L/min"   // liters per minute
	GPM  Unit = "gal/min" // US gallons per minute
	M3PM Unit = "m3/min"  // cubic meters per minute
	BPM  Unit = "bbl/min" // barrels per minute

	METERS      Unit = "m"
	FEET        Unit = "ft"
	MILLIMETERS Unit = "mm"
	INCHES      Unit = "in"

	KGM3 Unit = "kg/m3" // kilograms per cubic meter
	PPG  Unit = "ppg"   // pounds per US gallon

	DEGC Unit = "degC"
	DEGF Unit = "degF"

	KDN Unit = "kdN" // kilodecanewtons
	KLB Unit = "klb" // thousands of pounds-force
	KGM Unit = "kgf" // kilograms-force
	LBF Unit = "lbf" // pounds-force

	KNM  Unit = "kN.m"   // kilonewton-meters
	KFLB Unit = "kft.lb" // thousands of foot-pounds

	M3  Unit = "m3"
	BBL Unit = "bbl"

	UNITLESS Unit = "----"
)

// Category groups units that convert among each other.
type Category string

// Unit categories. Two units are convertible iff they share a category.
const (
	DrillingRate  Category = "drilling_rate"
	Pressure      Category = "pressure"
	FlowRate      Category = "flow_rate"
	Length        Category = "length"
	Density       Category = "density"
	Temperature   Category = "temperature"
	Force         Category = "force"
	Torque        Category = "torque"
	Volume        Category = "volume"
	Dimensionless Category = "dimensionless"
)

// unitCategories maps every unit to its category.
var unitCategories = map[Unit]Category{
	MHR:  DrillingRate,
	FHR:  DrillingRate,
	KPA:  Pressure,
	PSI:  Pressure,
	BAR:  Pressure,
	LPM:  FlowRate,
	GPM:  FlowRate,
	M3PM: FlowRate,
	BPM:  FlowRate,

	METERS:      Length,
	FEET:        Length,
	MILLIMETERS: Length,
	INCHES:      Length,

	KGM3: Density,
	PPG:  Density,

	DEGC: Temperature,
	DEGF: Temperature,

	KDN: Force,
	KLB: Force,
	KGM: Force,
	LBF: Force,

	KNM:  Torque,
	KFLB: Torque,

	M3:  Volume,
	BBL: Volume,

	UNITLESS: Dimensionless,
}

// baseFactors gives the multiplier from a unit to its category's base unit
// (MHR, KPA, LPM, METERS, KGM3, KDN, KNM, M3). Temperature is affine and has
// no entry; UNITLESS converts only to itself.
var baseFactors = map[Unit]float64{
	MHR: 1.0,
	FHR: 0.3048, // ft/hr to m/hr

	KPA: 1.0,
	PSI: 6.894757, // psi to kPa
	BAR: 100.0,    // bar to kPa

	LPM:  1.0,
	GPM:  3.785412,   // gal/min to L/min
	M3PM: 1000.0,     // m3/min to L/min
	BPM:  158.987295, // bbl/min to L/min

	METERS:      1.0,
	FEET:        0.3048,
	MILLIMETERS: 0.001,
	INCHES:      0.0254,

	KGM3: 1.0,
	PPG:  119.826427, // ppg to kg/m3

	KDN: 1.0,
	KLB: 0.4448222,    // klb to kdN
	KGM: 0.000980665,  // kgf to kdN
	LBF: 0.0004448222, // lbf to kdN

	KNM:  1.0,
	KFLB: 1.355818, // kft.lb to kN.m

	M3:  1.0,
	BBL: 0.158987295, // bbl to m3

	UNITLESS: 1.0,
}

// unitNames maps spec mnemonics to units for parsing CLI and config input.
var unitNames = map[string]Unit{
	"MHR": MHR, "FHR": FHR,
	"KPA": KPA, "PSI": PSI, "BAR": BAR,
	"LPM": LPM, "GPM": GPM, "M3PM": M3PM, "BPM": BPM,
	"METERS": METERS, "FEET": FEET, "MILLIMETERS": MILLIMETERS, "INCHES": INCHES,
	"KGM3": KGM3, "PPG": PPG,
	"DEGC": DEGC, "DEGF": DEGF,
	"KDN": KDN, "KLB": KLB, "KGM": KGM, "LBF": LBF,
	"KNM": KNM, "KFLB": KFLB,
	"M3": M3, "BBL": BBL,
	"UNITLESS": UNITLESS,
}

// ConversionError reports a conversion request between incompatible or
// unknown units. It is returned as a distinct type so callers can tell a bad
// conversion request apart from per-line decode errors.
type ConversionError struct {
	From Unit
	To   Unit
}

func (e *ConversionError) Error() string {
	fc, fok := unitCategories[e.From]
	tc, tok := unitCategories[e.To]
	if !fok || !tok {
		return fmt.Sprintf("cannot convert %s to %s: unknown unit", e.From, e.To)
	}
	return fmt.Sprintf("cannot convert %s to %s: incompatible categories (%s vs %s)", e.From, e.To, fc, tc)
}

// CategoryOf returns the category for a unit. The second return is false for
// units outside the table.
func CategoryOf(u Unit) (Category, bool) {
	c, ok := unitCategories[u]
	return c, ok
}

// IsConvertible reports whether a value in unit a can be expressed in unit b.
func IsConvertible(a, b Unit) bool {
	ca, aok := unitCategories[a]
	cb, bok := unitCategories[b]
	return aok && bok && ca == cb
}

// Factor returns the linear multiplier taking a value in unit a to unit b.
// It returns false for incompatible pairs and for temperature pairs, which
// need the affine formula in Convert rather than a plain factor. Identity
// pairs always report exactly 1.0.
func Factor(a, b Unit) (float64, bool) {
	if !IsConvertible(a, b) {
		return 0, false
	}
	if a == b {
		return 1.0, true
	}
	if unitCategories[a] == Temperature {
		return 0, false
	}
	return baseFactors[a] / baseFactors[b], true
}

// Convert expresses value, given in unit a, in unit b. Cross-category and
// unknown-unit requests fail with a *ConversionError. Identity conversions
// return the value unchanged.
func Convert(value float64, a, b Unit) (float64, error) {
	if !IsConvertible(a, b) {
		return 0, &ConversionError{From: a, To: b}
	}
	if a == b {
		return value, nil
	}
	if unitCategories[a] == Temperature {
		if a == DEGC {
			return value*9.0/5.0 + 32.0, nil
		}
		return (value - 32.0) * 5.0 / 9.0, nil
	}
	return value * baseFactors[a] / baseFactors[b], nil
}

// ParseUnit resolves a spec mnemonic ("PSI") or unit label ("psi") to a Unit,
// case-insensitively.
func ParseUnit(s string) (Unit, bool) {
	if u, ok := unitNames[strings.ToUpper(s)]; ok {
		return u, true
	}
	for u := range unitCategories {
		if strings.EqualFold(string(u), s) {
			return u, true
		}
	}
	return "", false
}

// UnitName returns the WITS0 mnemonic for a unit ("psi" -> "PSI").
func UnitName(u Unit) string {
	for name, unit := range unitNames {
		if unit == u {
			return name
		}
	}
	return string(u)
}

// Categories lists all unit categories in a stable order.
func Categories() []Category {
	return []Category{
		DrillingRate, Pressure, FlowRate, Length, Density,
		Temperature, Force, Torque, Volume, Dimensionless,
	}
}

// UnitsIn lists the units of one category, base unit first, then by mnemonic.
func UnitsIn(cat Category) []Unit {
	var out []Unit
	for u, c := range unitCategories {
		if c == cat {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := baseFactors[out[i]], baseFactors[out[j]]
		if (fi == 1.0) != (fj == 1.0) {
			return fi == 1.0
		}
		return UnitName(out[i]) < UnitName(out[j])
	})
	return out
}
