package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
)

const utf8BOM = "\ufeff"

type csvSource struct{}

func (csvSource) CanRead(filename string) bool {
	return hasExt(filename, ".csv", ".tsv")
}

func (csvSource) Read(path string, _ Options) (*analysis.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	delim := ','
	if hasExt(path, ".tsv") {
		delim = '\t'
	}
	return ReadCSV(f, delim)
}

// ReadCSV reads a header row followed by data rows. A leading UTF-8 BOM is
// dropped from the first header name.
func ReadCSV(r io.Reader, delim rune) (*analysis.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &analysis.Dataset{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}
	return fromRows(header, rows), nil
}
