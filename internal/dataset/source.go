package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
)

// ErrUnsupported indicates no registered source can read the file.
var ErrUnsupported = errors.New("unsupported dataset format")

// Options tunes how a source reads its file.
type Options struct {
	// Sheet selects an XLSX worksheet by name; empty means the first sheet.
	Sheet string
}

// Source reads a tabular file into records keyed by header name.
type Source interface {
	CanRead(filename string) bool
	Read(path string, opt Options) (*analysis.Dataset, error)
}

var registry []Source

// Register adds a source implementation to the registry.
func Register(s Source) {
	registry = append(registry, s)
}

// Load picks a source by file extension and reads the dataset.
func Load(path string, opt Options) (*analysis.Dataset, error) {
	for _, s := range registry {
		if s.CanRead(path) {
			ds, err := s.Read(path, opt)
			if err != nil {
				return nil, err
			}
			if ds.Name == "" {
				ds.Name = filepath.Base(path)
			}
			return ds, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
}

func init() {
	Register(csvSource{})
	Register(xlsxSource{})
}

// fromRows builds a dataset from a header row and data rows. Cells past the
// header are ignored and short rows leave the remaining fields absent.
func fromRows(header []string, rows [][]string) *analysis.Dataset {
	ds := &analysis.Dataset{}
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		if !seen[h] {
			seen[h] = true
			ds.Columns = append(ds.Columns, h)
		}
	}
	ds.Records = make([]analysis.Record, 0, len(rows))
	for _, row := range rows {
		// empty worksheet rows carry no cells at all
		if len(row) == 0 {
			continue
		}
		rec := make(analysis.Record, len(header))
		for i, h := range header {
			if i >= len(row) {
				break
			}
			rec[h] = row[i]
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds
}

func hasExt(filename string, exts ...string) bool {
	name := strings.ToLower(filename)
	for _, e := range exts {
		if strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}
