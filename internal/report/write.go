package report

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
	"github.com/KaramelBytes/carsales-cli/internal/utils"
)

// Output file names inside the output directory.
const (
	InsightsFile = "insights.md"
	TableFile    = "top_manufacturers.csv"
	ManifestFile = "run.json"
)

// Manifest describes one run. Unlike the report and table it changes on
// every run.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Input       string    `json:"input"`
	Dataset     string    `json:"dataset"`
	Rows        int       `json:"rows"`
	Columns     int       `json:"columns"`
	Outputs     []string  `json:"outputs"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

// Written lists the files produced by Write.
type Written struct {
	Insights string
	Table    string
	Manifest string
}

// Write renders insights into dir: the Markdown report, the ranked table and
// the run manifest. Each file is written atomically.
func Write(dir string, ins *analysis.Insights, m Manifest) (*Written, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	out := &Written{
		Insights: filepath.Join(dir, InsightsFile),
		Table:    filepath.Join(dir, TableFile),
		Manifest: filepath.Join(dir, ManifestFile),
	}

	md := Markdown(ins)
	if err := utils.SafeWriteFile(out.Insights, []byte(md)); err != nil {
		return nil, fmt.Errorf("write insights: %w", err)
	}
	slog.Debug("wrote insights", slog.String("path", out.Insights), slog.Int("bytes", len(md)))

	rows := RankedTable(ins)
	csvBytes, err := TableCSV(rows)
	if err != nil {
		return nil, err
	}
	if err := utils.SafeWriteFile(out.Table, csvBytes); err != nil {
		return nil, fmt.Errorf("write table: %w", err)
	}
	slog.Debug("wrote ranked table", slog.String("path", out.Table), slog.Int("rows", len(rows)))

	if m.RunID == "" {
		m.RunID = NewRunID()
	}
	if m.GeneratedAt.IsZero() {
		m.GeneratedAt = time.Now().UTC()
	}
	m.Dataset = ins.Name
	m.Rows = ins.Rows
	m.Columns = ins.Columns
	m.Outputs = []string{out.Insights, out.Table}
	b, err := utils.PrettyJSON(m)
	if err != nil {
		return nil, err
	}
	if err := utils.SafeWriteFile(out.Manifest, b); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return out, nil
}
