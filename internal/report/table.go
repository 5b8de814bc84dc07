package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
)

// TableHeader is the header row of the ranked table.
var TableHeader = []string{"rank", "manufacturer", "total_sales_in_thousands"}

// Row is one ranked manufacturer with its total rounded to three decimals.
type Row struct {
	Rank         int
	Manufacturer string
	Total        float64
}

// RankedTable converts the top manufacturers into table rows.
func RankedTable(ins *analysis.Insights) []Row {
	rows := make([]Row, len(ins.TopMakers))
	for i, r := range ins.TopMakers {
		rows[i] = Row{Rank: r.Rank, Manufacturer: r.Key, Total: Round3(r.Total)}
	}
	return rows
}

// Round3 rounds half-to-even on the exact binary value, like a correctly
// rounded decimal conversion.
func Round3(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// FormatTotal prints a rounded total in its shortest form, keeping at least
// one fractional digit ("15.0", "123.457"). Non-finite totals print as inf,
// -inf and nan.
func FormatTotal(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return formatFixed(v, 0)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// TableCSV encodes rows with the header. Lines end in CRLF.
func TableCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(TableHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		rec := []string{strconv.Itoa(r.Rank), r.Manufacturer, FormatTotal(r.Total)}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r.Rank, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPreview draws the ranked table for a terminal.
func RenderPreview(out io.Writer, rows []Row) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No manufacturers with sales data.")
		return
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader(TableHeader)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rows {
		table.Append([]string{strconv.Itoa(r.Rank), r.Manufacturer, FormatTotal(r.Total)})
	}
	table.Render()
}
