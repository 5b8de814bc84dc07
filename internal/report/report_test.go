package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
)

func scenarioInsights() *analysis.Insights {
	ds := &analysis.Dataset{
		Name:    "scenario.csv",
		Columns: []string{"Manufacturer", "Vehicle_type", "Sales_in_thousands", "Price_in_thousands", "Horsepower"},
		Records: []analysis.Record{
			{"Manufacturer": "A", "Vehicle_type": "Car", "Sales_in_thousands": "10", "Price_in_thousands": "20", "Horsepower": "100"},
			{"Manufacturer": "A", "Vehicle_type": "Car", "Sales_in_thousands": "5", "Price_in_thousands": "15", "Horsepower": "90"},
			{"Manufacturer": "B", "Vehicle_type": "Truck", "Sales_in_thousands": "", "Price_in_thousands": "30", "Horsepower": ""},
		},
	}
	return analysis.Analyze(ds, analysis.DefaultOptions())
}

const scenarioMarkdown = `# Data Analysis: Car Sales Database

- Total rows analyzed: **3**
- Columns analyzed: **5**

## Data Quality (Missing Values in Numeric Columns)
- Sales_in_thousands: 1 missing
- __year_resale_value: 3 missing
- Price_in_thousands: 0 missing
- Engine_size: 3 missing
- Horsepower: 1 missing
- Fuel_efficiency: 3 missing
- Power_perf_factor: 3 missing

## Top 10 Manufacturers by Total Sales (in thousands)
1. A: 15.00

## Average Price by Vehicle Type (in thousands)
- Car: 17.50
- Truck: 30.00

## Correlation Insights
- Horsepower vs Price correlation: 1.000
- Sales vs Price correlation: 1.000

## Business Takeaways
- Focus marketing on top-selling manufacturers and benchmark their model mix.
- Keep separate pricing strategy by vehicle type because average prices differ significantly.
- The negative sales-vs-price correlation suggests lower-priced models tend to sell more volume.`

func TestMarkdown_Scenario(t *testing.T) {
	assert.Equal(t, scenarioMarkdown, Markdown(scenarioInsights()))
}

func TestMarkdown_EmptyDataset(t *testing.T) {
	ins := analysis.Analyze(&analysis.Dataset{}, analysis.DefaultOptions())
	md := Markdown(ins)

	assert.Contains(t, md, "- Total rows analyzed: **0**")
	assert.Contains(t, md, "- Columns analyzed: **0**")
	assert.Contains(t, md, "- Horsepower vs Price correlation: not available")
	assert.Contains(t, md, "- Sales vs Price correlation: not available")
	assert.Contains(t, md, "## Top 10 Manufacturers by Total Sales (in thousands)\n\n## Average Price")
	assert.False(t, strings.HasSuffix(md, "\n"))
}

func TestMarkdown_NegativeCorrelation(t *testing.T) {
	ins := &analysis.Insights{
		TopN:            3,
		HorsepowerPrice: analysis.Correlation{R: -0.12345, OK: true},
		TopMakers:       []analysis.RankedTotal{{Rank: 1, Key: "Ford", Total: 2022.5789}},
	}
	md := Markdown(ins)
	assert.Contains(t, md, "- Horsepower vs Price correlation: -0.123")
	assert.Contains(t, md, "## Top 3 Manufacturers")
	assert.Contains(t, md, "1. Ford: 2022.58")
}

func TestRound3AndFormatTotal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{15, "15.0"},
		{1.23456, "1.235"},
		{0.0625, "0.062"},
		{540.561, "540.561"},
		{0, "0.0"},
		{1234.5, "1234.5"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatTotal(Round3(c.in)), "input %v", c.in)
	}
}

func TestNonFiniteValues(t *testing.T) {
	ds := &analysis.Dataset{
		Name:    "overflow.csv",
		Columns: []string{"Manufacturer", "Vehicle_type", "Sales_in_thousands", "Price_in_thousands", "Horsepower"},
		Records: []analysis.Record{
			{"Manufacturer": "A", "Vehicle_type": "Car", "Sales_in_thousands": "1e400", "Price_in_thousands": "10", "Horsepower": "100"},
			{"Manufacturer": "B", "Vehicle_type": "Car", "Sales_in_thousands": "5", "Price_in_thousands": "nan", "Horsepower": "200"},
			{"Manufacturer": "C", "Vehicle_type": "Car", "Sales_in_thousands": "3", "Price_in_thousands": "30", "Horsepower": "300"},
		},
	}
	ins := analysis.Analyze(ds, analysis.DefaultOptions())

	md := Markdown(ins)
	assert.Contains(t, md, "1. A: inf")
	assert.Contains(t, md, "- Car: nan")
	assert.Contains(t, md, "- Horsepower vs Price correlation: not available")
	assert.Contains(t, md, "- Sales vs Price correlation: not available")
	assert.NotContains(t, md, "Inf")
	assert.NotContains(t, md, "NaN")

	b, err := TableCSV(RankedTable(ins))
	require.NoError(t, err)
	assert.Contains(t, string(b), "1,A,inf\r\n")

	assert.Equal(t, "-inf", FormatTotal(math.Inf(-1)))
	assert.Equal(t, "nan", FormatTotal(Round3(math.NaN())))
	assert.Equal(t, NotAvailable, formatCorr(analysis.Correlation{R: math.NaN(), OK: true}))
}

func TestTableCSV(t *testing.T) {
	rows := RankedTable(scenarioInsights())
	require.Len(t, rows, 1)

	b, err := TableCSV(rows)
	require.NoError(t, err)
	assert.Equal(t, "rank,manufacturer,total_sales_in_thousands\r\n1,A,15.0\r\n", string(b))

	b, err = TableCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "rank,manufacturer,total_sales_in_thousands\r\n", string(b))
}

func TestTableCSV_QuotesNames(t *testing.T) {
	b, err := TableCSV([]Row{{Rank: 1, Manufacturer: "Rolls, Royce", Total: 1.5}})
	require.NoError(t, err)
	assert.Contains(t, string(b), "1,\"Rolls, Royce\",1.5\r\n")
}

func TestRenderPreview(t *testing.T) {
	var buf bytes.Buffer
	RenderPreview(&buf, RankedTable(scenarioInsights()))
	out := buf.String()
	assert.Contains(t, out, "MANUFACTURER")
	assert.Contains(t, out, "15.0")

	buf.Reset()
	RenderPreview(&buf, nil)
	assert.Contains(t, buf.String(), "No manufacturers")
}

func TestWrite_IdempotentOutputs(t *testing.T) {
	ins := scenarioInsights()
	dir1 := filepath.Join(t.TempDir(), "a")
	dir2 := filepath.Join(t.TempDir(), "b")

	w1, err := Write(dir1, ins, Manifest{Input: "scenario.csv"})
	require.NoError(t, err)
	w2, err := Write(dir2, scenarioInsights(), Manifest{Input: "scenario.csv"})
	require.NoError(t, err)

	for _, pair := range [][2]string{{w1.Insights, w2.Insights}, {w1.Table, w2.Table}} {
		a, err := os.ReadFile(pair[0])
		require.NoError(t, err)
		b, err := os.ReadFile(pair[1])
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}

	md, err := os.ReadFile(w1.Insights)
	require.NoError(t, err)
	assert.Equal(t, scenarioMarkdown, string(md))

	raw, err := os.ReadFile(w1.Manifest)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotEmpty(t, m.RunID)
	assert.Equal(t, 3, m.Rows)
	assert.Equal(t, "scenario.csv", m.Dataset)
	assert.Equal(t, []string{w1.Insights, w1.Table}, m.Outputs)
}
