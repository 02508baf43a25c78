package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"12.5%", 12.5},
		{"N/A", 0},
		{"", 0},
		{"$1,234.50", 1234.5},
		{"-42", -42},
		{"  300 units", 300},
		{".5", 0.5},
		{"1.2.3", 1.2},
		{"--5", 0},
		{"-", 0},
		{"SAR 9,999", 9999},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, ParseNumber(tt.input), 1e-9, "ParseNumber(%q)", tt.input)
	}
}

func TestCellFloat(t *testing.T) {
	assert.Equal(t, 100.0, NumberCell(100).Float())
	assert.Equal(t, 12.5, TextCell("12.5%").Float())
	assert.Equal(t, 0.0, EmptyCell().Float())
	assert.Equal(t, 0.0, TextCell("n/a").Float())
}

func TestTextCellBlankIsEmpty(t *testing.T) {
	assert.True(t, TextCell("   ").IsEmpty())
	assert.Equal(t, CellText, TextCell(" Acme ").Kind())
	assert.Equal(t, "Acme", TextCell(" Acme ").Trimmed())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "300", NumberCell(300).String())
	assert.Equal(t, "0.25", NumberCell(0.25).String())
	assert.Equal(t, "", EmptyCell().String())
}

func TestRowAt(t *testing.T) {
	row := Row{TextCell("a"), NumberCell(1)}
	assert.Equal(t, "a", row.At(0).String())
	assert.True(t, row.At(5).IsEmpty())
	assert.True(t, row.At(-1).IsEmpty())
	assert.False(t, row.IsBlank())
	assert.True(t, Row{EmptyCell(), TextCell("")}.IsBlank())
}

func TestCellMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Row{TextCell("Acme \"Co\""), NumberCell(1.5), EmptyCell()})
	require.NoError(t, err)
	assert.JSONEq(t, `["Acme \"Co\"", 1.5, null]`, string(raw))
}

func TestBrandSet(t *testing.T) {
	set := NewBrandSet()
	assert.True(t, set.Add(" Acme "))
	assert.False(t, set.Add("Acme"))
	assert.False(t, set.Add("   "))
	assert.True(t, set.Add("Focus Co"))

	assert.Equal(t, []string{"Acme", "Focus Co"}, set.Values())
	assert.True(t, set.Contains("Focus Co "))
	assert.Equal(t, 2, set.Len())
}

func TestBrandSetZeroValues(t *testing.T) {
	var nilSet *BrandSet
	assert.Nil(t, nilSet.Values())
	assert.Zero(t, nilSet.Len())
	assert.False(t, nilSet.Contains("Acme"))

	raw, err := json.Marshal(nilSet)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	var set BrandSet
	assert.True(t, set.Add("Acme"))
	assert.True(t, set.Contains("Acme"))
}

func TestNewSheetDropsBlankRows(t *testing.T) {
	sheet := NewSheet("S", []string{"Brand", "Volume"}, []Row{
		{TextCell("Acme"), NumberCell(1)},
		{EmptyCell(), EmptyCell()},
		{},
		{TextCell(""), NumberCell(0)},
	})
	assert.Equal(t, 2, sheet.RowCount)
	assert.Equal(t, 2, sheet.ColumnCount)
}
