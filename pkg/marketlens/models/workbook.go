package models

import "time"

// FileMetadata describes the uploaded file a workbook was read from.
type FileMetadata struct {
	// FileName is the file name (no path).
	FileName string `json:"file_name"`
	// FileSize is the content length in bytes.
	FileSize int64 `json:"file_size"`
	// SheetNames lists every sheet in workbook order, including skipped empty ones.
	SheetNames []string `json:"sheet_names"`
	// ProcessedAt is when the workbook was parsed.
	ProcessedAt time.Time `json:"processed_at"`
}

// Workbook is an ordered set of parsed sheets plus the brand directory.
// It is read-only once returned by the reader.
type Workbook struct {
	Metadata FileMetadata `json:"metadata"`
	Sheets   []*Sheet     `json:"sheets"`
	Brands   *BrandSet    `json:"brands"`

	index map[string]int
}

// NewWorkbook returns an empty workbook for the given file.
func NewWorkbook(meta FileMetadata) *Workbook {
	return &Workbook{
		Metadata: meta,
		Brands:   NewBrandSet(),
		index:    make(map[string]int),
	}
}

// AddSheet appends a sheet. A sheet with a duplicate name replaces the earlier one in place.
func (w *Workbook) AddSheet(s *Sheet) {
	if w.index == nil {
		w.index = make(map[string]int)
	}
	if i, ok := w.index[s.Name]; ok {
		w.Sheets[i] = s
		return
	}
	w.index[s.Name] = len(w.Sheets)
	w.Sheets = append(w.Sheets, s)
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	i, ok := w.index[name]
	if !ok {
		return nil, false
	}
	return w.Sheets[i], true
}

// SheetNames returns the names of parsed sheets in order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of parsed sheets.
func (w *Workbook) Len() int { return len(w.Sheets) }
