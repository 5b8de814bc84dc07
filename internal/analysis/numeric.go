package analysis

import (
	"errors"
	"strconv"
	"strings"
)

// Record is one input row keyed by header name. A field missing from the map
// is treated the same as a blank or unparseable value.
type Record map[string]string

// Dataset is the in-memory table handed to the analyzer.
type Dataset struct {
	Name    string
	Columns []string
	Records []Record
}

// ParseNumber converts a raw cell to a number. Blank and malformed values
// report ok=false instead of failing.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow still yields a usable ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// Number looks up field and coerces it with ParseNumber.
func (r Record) Number(field string) (float64, bool) {
	raw, ok := r[field]
	if !ok {
		return 0, false
	}
	return ParseNumber(raw)
}
