package wits

import "strconv"

// ValueType declares how a symbol's raw text coerces to a typed value.
type ValueType int

const (
	TypeString ValueType = iota // alphanumeric, passed through unparsed
	TypeFloat                   // decimal number
	TypeInt                     // whole number
)

func (t ValueType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	default:
		return "string"
	}
}

// Symbol describes one WITS measurement channel. The 4-character code is
// globally unique; its first two characters name the record type and the last
// two the channel within that record.
type Symbol struct {
	Code        string    `json:"code"`
	RecordType  int       `json:"record_type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        ValueType `json:"type"`
	MetricUnit  Unit      `json:"metric_unit"`
	FPSUnit     Unit      `json:"fps_unit"`
}

// Unit returns the symbol's unit label in the requested system.
func (s Symbol) Unit(metric bool) Unit {
	if metric {
		return s.MetricUnit
	}
	return s.FPSUnit
}

// recordDescriptions names each record type defined by WITS Level 0.
var recordDescriptions = map[int]string{
	1:  "General Time-Based",
	2:  "Drilling - Depth-Based",
	3:  "Drilling - Connections",
	4:  "Hydraulics",
	5:  "Tripping - Time-Based",
	6:  "Tripping - Connections",
	7:  "Survey / Directional",
	8:  "MWD Formation Evaluation",
	9:  "MWD Mechanical",
	10: "Evaluation - Pressure",
	11: "Mud Tank Volumes",
	12: "Chromatograph Cycle-Based",
	13: "Chromatograph Depth-Based",
	14: "Lagged Mud Properties",
	15: "Cuttings / Lithology",
	16: "Hydrocarbon Show",
	17: "Cementing",
	18: "Drill Stem Testing",
	19: "Configuration",
	20: "Mud Report",
	21: "Bit Report",
	22: "Remarks",
	23: "Well Testing",
	24: "Vessel Motion / Mooring Status",
	25: "Weather / Sea State",
}

// recordCategories groups record types the way drilling crews talk about them.
var recordCategories = map[int]string{
	1: "Drilling", 2: "Drilling", 3: "Drilling", 4: "Drilling",
	5: "Tripping", 6: "Tripping",
	7: "Surveying",
	8: "MWD/LWD", 9: "MWD/LWD",
	10: "Evaluation", 12: "Evaluation", 13: "Evaluation",
	14: "Evaluation", 15: "Evaluation", 16: "Evaluation",
	11: "Operations", 17: "Operations", 18: "Operations",
	19: "Configuration", 20: "Configuration", 21: "Configuration",
	22: "Reporting", 23: "Reporting",
	24: "Marine", 25: "Marine",
}

// sym is the table-entry shorthand used by table.go. Code and RecordType are
// derived from the map key at init.
func sym(name, desc string, t ValueType, metric, fps Unit) Symbol {
	return Symbol{Name: name, Description: desc, Type: t, MetricUnit: metric, FPSUnit: fps}
}

func init() {
	for code, s := range symbolTable {
		s.Code = code
		if rt, err := strconv.Atoi(code[:2]); err == nil {
			s.RecordType = rt
		}
		symbolTable[code] = s
	}
}
