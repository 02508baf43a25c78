package models

// Sheet represents one worksheet reduced to a header row and data rows.
type Sheet struct {
	// Name is the worksheet name as it appears in the workbook.
	Name string `json:"name"`
	// Headers is the first row rendered as text. Blank headers are "".
	Headers []string `json:"headers"`
	// Rows contains the data rows below the header. Entirely empty rows are dropped.
	Rows []Row `json:"rows"`
	// RowCount is len(Rows).
	RowCount int `json:"row_count"`
	// ColumnCount is len(Headers).
	ColumnCount int `json:"column_count"`
	// UsedRange is the bounding box of non-empty cells (e.g. "A1:D10").
	UsedRange string `json:"used_range,omitempty"`
}

// NewSheet builds a Sheet, dropping rows that hold no data.
func NewSheet(name string, headers []string, rows []Row) *Sheet {
	kept := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.IsBlank() {
			continue
		}
		kept = append(kept, r)
	}
	return &Sheet{
		Name:        name,
		Headers:     headers,
		Rows:        kept,
		RowCount:    len(kept),
		ColumnCount: len(headers),
	}
}
