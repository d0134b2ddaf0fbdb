// Package models defines data structures for bin volume calculation.
package models

import (
	"math"
	"strconv"
	"strings"
)

// CellKind identifies which variant of Cell is populated.
type CellKind int

const (
	// Missing is an empty or absent cell.
	Missing CellKind = iota
	// Number is a numeric cell.
	Number
	// Text is a non-numeric cell.
	Text
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case Number:
		return "number"
	case Text:
		return "text"
	default:
		return "missing"
	}
}

// Cell is a single scalar value of an input table.
type Cell struct {
	// Kind selects which of Num and Raw is meaningful.
	Kind CellKind
	// Num holds the value of a Number cell.
	Num float64
	// Raw is the source text of the cell, if it came from a file.
	Raw string
}

// NumberCell returns a Number cell holding v.
func NumberCell(v float64) Cell {
	return Cell{Kind: Number, Num: v}
}

// TextCell returns a Text cell holding s.
func TextCell(s string) Cell {
	return Cell{Kind: Text, Raw: s}
}

// MissingCell returns an empty cell.
func MissingCell() Cell {
	return Cell{Kind: Missing}
}

// String returns the text form of the cell. Number cells keep their source
// text when they have one, otherwise the shortest decimal form is used.
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		if c.Raw != "" {
			return c.Raw
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Text:
		return c.Raw
	default:
		return ""
	}
}

// Float coerces the cell to a float64. The second result is false when the
// cell is missing, not numeric, or NaN.
func (c Cell) Float() (float64, bool) {
	var v float64
	switch c.Kind {
	case Number:
		v = c.Num
	case Text:
		f, ok := ParseNumber(c.Raw)
		if !ok {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseNumber parses s as a decimal floating-point number, ignoring
// surrounding whitespace. Hexadecimal forms and digit separators are not
// accepted.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
