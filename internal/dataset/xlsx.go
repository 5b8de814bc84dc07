package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
)

type xlsxSource struct{}

func (xlsxSource) CanRead(filename string) bool {
	return hasExt(filename, ".xlsx")
}

// Read loads the selected worksheet, or the first one when opt.Sheet is empty.
// The first row is the header.
func (xlsxSource) Read(path string, opt Options) (*analysis.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return &analysis.Dataset{}, nil
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &analysis.Dataset{}, nil
	}
	return fromRows(rows[0], rows[1:]), nil
}
