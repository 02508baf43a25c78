package marketlens

import (
	"fmt"
	"strings"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/columns"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

const coverageWarning = "Consider including sheets with Brand Share, Regional, and Distribution data for comprehensive analysis"

// Validate reports whether every sheet has data and whether recognized
// sheets carry the column their analyzer keys on. Missing columns are
// warnings; a sheet without data rows makes the report invalid.
func Validate(wb *models.Workbook) models.ValidationReport {
	report := models.ValidationReport{
		IsValid: true,
		Sheets:  make([]models.SheetValidation, 0, wb.Len()),
		Brands:  wb.Brands.Values(),
	}

	recognized := 0
	for _, sheet := range wb.Sheets {
		kind := columns.Classify(sheet.Name)
		sv := models.SheetValidation{
			Name:        sheet.Name,
			Kind:        kind.String(),
			RowCount:    sheet.RowCount,
			ColumnCount: sheet.ColumnCount,
			Headers:     sheet.Headers,
			UsedRange:   sheet.UsedRange,
		}

		if sheet.RowCount == 0 {
			sv.Errors = append(sv.Errors, "Sheet contains no data rows")
			report.IsValid = false
		}

		if role, ok := kind.KeyRole(); ok {
			recognized++
			if columns.ResolveRole(sheet.Headers, role) == columns.NotFound {
				sv.Warnings = append(sv.Warnings, fmt.Sprintf("No %s column detected", titleCase(role.Keyword())))
			}
		}

		report.Sheets = append(report.Sheets, sv)
	}

	if recognized < 2 {
		report.Warnings = append(report.Warnings, coverageWarning)
	}
	return report
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
