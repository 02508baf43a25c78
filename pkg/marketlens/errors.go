package marketlens

import (
	"errors"
	"fmt"
)

// ErrParse indicates the input is not a readable workbook.
var ErrParse = errors.New("invalid workbook format")

// ErrEmptyWorkbook indicates the workbook holds no sheet with data.
var ErrEmptyWorkbook = errors.New("workbook contains no usable sheets")

// ErrFileTooLarge indicates the input exceeds Options.MaxFileSize.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ErrFocusBrandRequired indicates an analysis was requested without a focus brand.
var ErrFocusBrandRequired = errors.New("focus brand is required")

// ErrSheetNotFound indicates a requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ParseError wraps the container error raised while reading a workbook.
// errors.Is(err, ErrParse) holds for every ParseError.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("%v: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%v %q: %v", ErrParse, e.FileName, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// SheetError represents a failure while analyzing one sheet.
type SheetError struct {
	SheetName string
	Kind      string // "brand_share", "regional", "wtd_distribution"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.SheetName, e.Kind, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, kind string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Kind:      kind,
		Err:       err,
	}
}
