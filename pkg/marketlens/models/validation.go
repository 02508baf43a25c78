package models

// SheetValidation describes one sheet in a validation report.
type SheetValidation struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	RowCount    int      `json:"row_count"`
	ColumnCount int      `json:"column_count"`
	Headers     []string `json:"headers"`
	UsedRange   string   `json:"used_range,omitempty"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// ValidationReport summarizes whether a workbook is ready for analysis.
type ValidationReport struct {
	IsValid  bool              `json:"is_valid"`
	Sheets   []SheetValidation `json:"sheets"`
	Brands   []string          `json:"brands"`
	Errors   []string          `json:"errors,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// SheetPreview is the first rows of a sheet rendered as text.
type SheetPreview struct {
	Sheet     string     `json:"sheet"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"total_rows"`
}
