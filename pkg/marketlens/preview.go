package marketlens

import (
	"fmt"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

// Preview returns the headers and first opts.PreviewRows rows of a sheet as text.
func Preview(wb *models.Workbook, sheetName string, opts Options) (models.SheetPreview, error) {
	sheet, ok := wb.Sheet(sheetName)
	if !ok {
		return models.SheetPreview{}, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	n := min(opts.previewRows(), len(sheet.Rows))
	rows := make([][]string, n)
	for i, row := range sheet.Rows[:n] {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		rows[i] = cells
	}

	return models.SheetPreview{
		Sheet:     sheet.Name,
		Headers:   sheet.Headers,
		Rows:      rows,
		TotalRows: sheet.RowCount,
	}, nil
}
