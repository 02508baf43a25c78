package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
	"github.com/xuri/excelize/v2"
)

// ExtractSheet reads a worksheet into a header row and typed data rows.
// The header is the first non-empty row; leading empty columns are skipped.
// It returns nil when the sheet holds no data at all.
func ExtractSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	minRow, _, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	headerRow := sliceFrom(rows[minRow], minCol)
	headers := make([]string, len(headerRow))
	for i, h := range headerRow {
		headers[i] = strings.TrimSpace(h)
	}

	data := make([]models.Row, 0, len(rows)-minRow-1)
	for i, raw := range rows[minRow+1:] {
		rowNum := minRow + i + 2
		isText := func(col int) bool {
			return storedAsText(f, sheetName, minCol+col+1, rowNum)
		}
		data = append(data, parseRow(sliceFrom(raw, minCol), isText))
	}

	sheet := models.NewSheet(sheetName, headers, data)
	sheet.UsedRange = UsedRange(rows)
	return sheet, nil
}

func sliceFrom(row []string, col int) []string {
	if col >= len(row) {
		return nil
	}
	return row[col:]
}

// parseRow converts raw values; isText reports whether the workbook stores
// the cell at a column offset as a string.
func parseRow(raw []string, isText func(col int) bool) models.Row {
	row := make(models.Row, len(raw))
	for i, v := range raw {
		cell := parseValue(v)
		if cell.Kind() == models.CellNumber && isText(i) {
			cell = models.TextCell(v)
		}
		row[i] = cell
	}
	return row
}

// storedAsText reports whether the cell is a shared, inline or formula
// string. Codes such as "00123" keep their text this way.
func storedAsText(f *excelize.File, sheetName string, col, row int) bool {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	typ, err := f.GetCellType(sheetName, axis)
	if err != nil {
		return false
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	default:
		return false
	}
}

// parseValue converts a raw cell string into a typed cell.
// Finite numbers become Number, other non-blank text stays Text.
func parseValue(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.EmptyCell()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}
