package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
)

// Title heads the insights document.
const Title = "# Data Analysis: Car Sales Database"

// Takeaways are fixed narrative lines closing the report.
var Takeaways = []string{
	"Focus marketing on top-selling manufacturers and benchmark their model mix.",
	"Keep separate pricing strategy by vehicle type because average prices differ significantly.",
	"The negative sales-vs-price correlation suggests lower-priced models tend to sell more volume.",
}

// NotAvailable replaces a correlation that could not be computed.
const NotAvailable = "not available"

// Markdown renders the insights document. Lines are joined with "\n" and the
// document has no trailing newline.
func Markdown(ins *analysis.Insights) string {
	lines := []string{
		Title,
		"",
		fmt.Sprintf("- Total rows analyzed: **%d**", ins.Rows),
		fmt.Sprintf("- Columns analyzed: **%d**", ins.Columns),
		"",
		"## Data Quality (Missing Values in Numeric Columns)",
	}
	for _, m := range ins.Missing {
		lines = append(lines, fmt.Sprintf("- %s: %d missing", m.Column, m.Count))
	}

	lines = append(lines, "", fmt.Sprintf("## Top %d Manufacturers by Total Sales (in thousands)", ins.TopN))
	for _, r := range ins.TopMakers {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", r.Rank, r.Key, formatFixed(r.Total, 2)))
	}

	lines = append(lines, "", "## Average Price by Vehicle Type (in thousands)")
	for _, g := range ins.AvgPriceByType {
		lines = append(lines, fmt.Sprintf("- %s: %s", g.Key, formatFixed(g.Mean, 2)))
	}

	lines = append(lines,
		"",
		"## Correlation Insights",
		"- Horsepower vs Price correlation: "+formatCorr(ins.HorsepowerPrice),
		"- Sales vs Price correlation: "+formatCorr(ins.SalesPrice),
		"",
		"## Business Takeaways",
	)
	for _, t := range Takeaways {
		lines = append(lines, "- "+t)
	}
	return strings.Join(lines, "\n")
}

func formatCorr(c analysis.Correlation) string {
	if !c.OK || math.IsNaN(c.R) || math.IsInf(c.R, 0) {
		return NotAvailable
	}
	return formatFixed(c.R, 3)
}

// formatFixed prints v with prec decimals; non-finite values print as
// inf, -inf and nan.
func formatFixed(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
