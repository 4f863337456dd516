package wits

import (
	"sort"
	"strings"
)

// Lookup returns the symbol for a 4-character code.
func Lookup(code string) (Symbol, bool) {
	s, ok := symbolTable[code]
	return s, ok
}

// Symbols returns every symbol in the catalog, ordered by code.
func Symbols() []Symbol {
	out := make([]Symbol, 0, len(symbolTable))
	for _, s := range symbolTable {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ByRecordType returns the symbols of one record type, ordered by code.
func ByRecordType(rt int) []Symbol {
	var out []Symbol
	for _, s := range symbolTable {
		if s.RecordType == rt {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Search returns symbols whose code, name or description contains the query,
// case-insensitively, ordered by code. An empty query matches nothing.
func Search(query string) []Symbol {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []Symbol
	for _, s := range symbolTable {
		if strings.Contains(strings.ToLower(s.Code), q) ||
			strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// RecordTypes returns the distinct record types present in the catalog,
// ascending.
func RecordTypes() []int {
	seen := map[int]bool{}
	for _, s := range symbolTable {
		seen[s.RecordType] = true
	}
	out := make([]int, 0, len(seen))
	for rt := range seen {
		out = append(out, rt)
	}
	sort.Ints(out)
	return out
}

// RecordDescription returns the human label for a record type.
func RecordDescription(rt int) string {
	if d, ok := recordDescriptions[rt]; ok {
		return d
	}
	return "Unknown record type"
}

// RecordCategory returns the operational grouping for a record type
// (Drilling, Tripping, Surveying, MWD/LWD, Evaluation, Operations,
// Configuration, Reporting, Marine).
func RecordCategory(rt int) string {
	if c, ok := recordCategories[rt]; ok {
		return c
	}
	return "Unknown"
}
