// Package models defines data structures for workbook ingestion and brand analysis.
package models

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// CellKind tags the variant held by a Cell.
type CellKind uint8

const (
	// CellEmpty is a blank cell.
	CellEmpty CellKind = iota
	// CellText holds a string value.
	CellText
	// CellNumber holds a numeric value.
	CellNumber
)

// Cell is a single worksheet value: Text, Number or Empty.
type Cell struct {
	kind CellKind
	text string
	num  float64
}

// TextCell returns a Text cell. Blank text yields an Empty cell.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}
	return Cell{kind: CellText, text: s}
}

// NumberCell returns a Number cell.
func NumberCell(f float64) Cell {
	return Cell{kind: CellNumber, num: f}
}

// EmptyCell returns an Empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// Kind returns the variant tag.
func (c Cell) Kind() CellKind { return c.kind }

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool { return c.kind == CellEmpty }

// String returns the textual form of the cell. Numbers use the shortest
// representation that round-trips; Empty is "".
func (c Cell) String() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Trimmed returns String with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.String())
}

// Float coerces the cell to a number. It never fails: Number cells return
// their value, Text cells go through ParseNumber, Empty is 0.
func (c Cell) Float() float64 {
	switch c.kind {
	case CellNumber:
		return c.num
	case CellText:
		return ParseNumber(c.text)
	default:
		return 0
	}
}

// MarshalJSON renders Text as a JSON string, Number as a JSON number and
// Empty as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case CellText:
		return json.Marshal(c.text)
	case CellNumber:
		return []byte(strconv.FormatFloat(c.num, 'f', -1, 64)), nil
	default:
		return []byte("null"), nil
	}
}

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// ParseNumber strips every character outside [0-9.-] and parses the longest
// leading decimal. Anything unparsable is 0.
//
//	"12.5%"     -> 12.5
//	"$1,234.50" -> 1234.5
//	"N/A"       -> 0
func ParseNumber(s string) float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	m := leadingNumber.FindString(cleaned)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// Row is one data row aligned to its sheet's headers.
type Row []Cell

// At returns the cell at index i, or Empty when i is out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// IsBlank reports whether every cell in the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
