// Package parser turns raw workbook content into typed sheets.
package parser

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/columns"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
	"github.com/xuri/excelize/v2"
)

// OpenError reports that the content is not a readable workbook container.
type OpenError struct {
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open workbook: %v", e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadWorkbook parses workbook content into a Workbook. Sheets without any
// data are skipped, but their names stay in meta.SheetNames. The brand
// directory is built across every parsed sheet.
func ReadWorkbook(content []byte, meta models.FileMetadata) (*models.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, &OpenError{Err: err}
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	meta.SheetNames = sheetList
	wb := models.NewWorkbook(meta)

	for _, sheetName := range sheetList {
		sheet, err := ExtractSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		if sheet == nil {
			continue
		}
		wb.AddSheet(sheet)
	}

	CollectBrands(wb.Brands, wb.Sheets)
	return wb, nil
}

// CollectBrands adds the trimmed values of each sheet's first "brand"
// column to set.
func CollectBrands(set *models.BrandSet, sheets []*models.Sheet) {
	for _, sheet := range sheets {
		idx := columns.ResolveRole(sheet.Headers, columns.RoleBrand)
		if idx == columns.NotFound {
			continue
		}
		for _, row := range sheet.Rows {
			set.Add(row.At(idx).Trimmed())
		}
	}
}
