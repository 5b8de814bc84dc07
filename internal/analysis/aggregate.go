package analysis

// DefaultNumericColumns are audited for missing values when no list is configured.
var DefaultNumericColumns = []string{
	"Sales_in_thousands",
	"__year_resale_value",
	"Price_in_thousands",
	"Engine_size",
	"Horsepower",
	"Fuel_efficiency",
	"Power_perf_factor",
}

// Fields names the columns the aggregator reads.
type Fields struct {
	Manufacturer string
	VehicleType  string
	Sales        string
	Price        string
	Horsepower   string
}

// Options controls aggregation and ranking.
type Options struct {
	// NumericColumns are audited for missing values, in report order.
	NumericColumns []string
	Fields         Fields
	// TopN limits the manufacturer ranking.
	TopN int
	// Workers > 1 shards the aggregation pass.
	Workers int
}

// DefaultOptions returns the settings used for the car sales dataset.
func DefaultOptions() Options {
	cols := make([]string, len(DefaultNumericColumns))
	copy(cols, DefaultNumericColumns)
	return Options{
		NumericColumns: cols,
		Fields: Fields{
			Manufacturer: "Manufacturer",
			VehicleType:  "Vehicle_type",
			Sales:        "Sales_in_thousands",
			Price:        "Price_in_thousands",
			Horsepower:   "Horsepower",
		},
		TopN:    10,
		Workers: 1,
	}
}

// MissingCount is the number of records lacking a usable value for Column.
type MissingCount struct {
	Column string
	Count  int
}

// Aggregates is the result of one pass over the records.
type Aggregates struct {
	Records         int
	Missing         []MissingCount
	SalesByMaker    *GroupTotals
	PriceByType     *GroupLists
	Sales           []float64
	HorsepowerPrice AlignedPair
	SalesPrice      AlignedPair
}

func newAggregates(cols []string) *Aggregates {
	missing := make([]MissingCount, len(cols))
	for i, c := range cols {
		missing[i] = MissingCount{Column: c}
	}
	return &Aggregates{
		Missing:      missing,
		SalesByMaker: newGroupTotals(),
		PriceByType:  newGroupLists(),
	}
}

// MissingFor returns the missing count recorded for col.
func (a *Aggregates) MissingFor(col string) (int, bool) {
	for _, m := range a.Missing {
		if m.Column == col {
			return m.Count, true
		}
	}
	return 0, false
}

// Aggregate walks records once and accumulates missing counts, sales totals per
// manufacturer, prices per vehicle type and the two aligned correlation pairs.
// Each field is accumulated independently; a record with a bad sales value
// still contributes its price.
func Aggregate(records []Record, opt Options) *Aggregates {
	agg := newAggregates(opt.NumericColumns)
	for _, rec := range records {
		agg.observe(parseRow(rec, opt.NumericColumns, opt.Fields))
	}
	return agg
}

// parsedRow holds the coerced values of one record.
type parsedRow struct {
	missing  []bool
	maker    string
	vtype    string
	sales    float64
	hasSales bool
	price    float64
	hasPrice bool
	hp       float64
	hasHP    bool
}

func parseRow(rec Record, cols []string, f Fields) parsedRow {
	row := parsedRow{missing: make([]bool, len(cols))}
	for i, c := range cols {
		_, ok := rec.Number(c)
		row.missing[i] = !ok
	}
	row.maker = rec[f.Manufacturer]
	row.vtype = rec[f.VehicleType]
	row.sales, row.hasSales = rec.Number(f.Sales)
	row.price, row.hasPrice = rec.Number(f.Price)
	row.hp, row.hasHP = rec.Number(f.Horsepower)
	return row
}

func (a *Aggregates) observe(row parsedRow) {
	a.Records++
	for i, miss := range row.missing {
		if miss {
			a.Missing[i].Count++
		}
	}
	if row.hasSales {
		a.SalesByMaker.add(row.maker, row.sales)
		a.Sales = append(a.Sales, row.sales)
	}
	if row.hasPrice {
		a.PriceByType.add(row.vtype, row.price)
	}
	if row.hasHP && row.hasPrice {
		a.HorsepowerPrice.add(row.hp, row.price)
	}
	if row.hasSales && row.hasPrice {
		a.SalesPrice.add(row.sales, row.price)
	}
}
