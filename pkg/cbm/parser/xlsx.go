package parser

import (
	"fmt"
	"io"
	"slices"

	"github.com/ukaji3/cbmcalc-go/pkg/cbm/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a worksheet of an xlsx workbook into a table. An empty
// sheet name selects the first sheet.
func ReadXLSX(r io.Reader, sheet string) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	defer f.Close()

	return ExtractTable(f, sheet)
}

// ExtractTable reads a worksheet of an open workbook into a table.
func ExtractTable(f *excelize.File, sheet string) (*models.Table, error) {
	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, ErrEmptyTable
		}
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return BuildTable(rows)
}
