package catalog

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXLoader loads the catalog from a spreadsheet. The first sheet is used
// unless SheetName is set; the first row must be the header.
type XLSXLoader struct {
	Path      string
	SheetName string
}

// NewXLSXLoader returns a loader reading from the given path on every Load.
func NewXLSXLoader(path string) *XLSXLoader {
	return &XLSXLoader{Path: path}
}

// Load opens and parses the workbook.
func (l *XLSXLoader) Load(ctx context.Context) ([]Food, error) {
	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.Path, err)
	}
	defer f.Close()

	sheet := l.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("%s: workbook has no sheets", l.Path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: read sheet %q: %w", l.Path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", l.Path, sheet)
	}

	return parseRows(rows[0], rows[1:], fmt.Sprintf("%s#%s", l.Path, sheet))
}
