package analysis

import (
	"testing"
)

func scenarioRecords() []Record {
	return []Record{
		{"Manufacturer": "A", "Vehicle_type": "Car", "Sales_in_thousands": "10", "Price_in_thousands": "20", "Horsepower": "100"},
		{"Manufacturer": "A", "Vehicle_type": "Car", "Sales_in_thousands": "5", "Price_in_thousands": "15", "Horsepower": "90"},
		{"Manufacturer": "B", "Vehicle_type": "Truck", "Sales_in_thousands": "", "Price_in_thousands": "30", "Horsepower": ""},
	}
}

func TestAggregate_Scenario(t *testing.T) {
	agg := Aggregate(scenarioRecords(), DefaultOptions())

	if agg.Records != 3 {
		t.Fatalf("records=%d", agg.Records)
	}
	if n, _ := agg.MissingFor("Sales_in_thousands"); n != 1 {
		t.Fatalf("missing sales=%d, want 1", n)
	}
	// columns absent from every record count as missing everywhere
	if n, _ := agg.MissingFor("Engine_size"); n != 3 {
		t.Fatalf("missing engine size=%d, want 3", n)
	}
	if n, _ := agg.MissingFor("Price_in_thousands"); n != 0 {
		t.Fatalf("missing price=%d, want 0", n)
	}
	if v, ok := agg.SalesByMaker.Total("A"); !ok || v != 15 {
		t.Fatalf("total A=%v ok=%v", v, ok)
	}
	if _, ok := agg.SalesByMaker.Total("B"); ok {
		t.Fatalf("B has no parseable sales and must not appear")
	}
	if got := agg.PriceByType.Values("Truck"); len(got) != 1 || got[0] != 30 {
		t.Fatalf("truck prices=%v", got)
	}
	if agg.HorsepowerPrice.Len() != 2 {
		t.Fatalf("hp/price pair len=%d, want 2", agg.HorsepowerPrice.Len())
	}
	if agg.SalesPrice.Len() != 2 {
		t.Fatalf("sales/price pair len=%d, want 2", agg.SalesPrice.Len())
	}
	if len(agg.Sales) != 2 {
		t.Fatalf("flat sales len=%d", len(agg.Sales))
	}
}

func TestAggregate_MissingOrderFollowsConfig(t *testing.T) {
	agg := Aggregate(nil, DefaultOptions())
	if len(agg.Missing) != len(DefaultNumericColumns) {
		t.Fatalf("missing entries=%d", len(agg.Missing))
	}
	for i, m := range agg.Missing {
		if m.Column != DefaultNumericColumns[i] || m.Count != 0 {
			t.Fatalf("entry %d = %+v", i, m)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil, DefaultOptions())
	if agg.Records != 0 || agg.SalesByMaker.Len() != 0 || agg.PriceByType.Len() != 0 {
		t.Fatalf("expected empty aggregates: %+v", agg)
	}
	if agg.HorsepowerPrice.Len() != 0 || agg.SalesPrice.Len() != 0 {
		t.Fatalf("expected empty pairs")
	}
}

func TestAggregate_AllUnparseable(t *testing.T) {
	recs := []Record{
		{"Horsepower": "n/a"},
		{"Horsepower": " "},
		{},
	}
	agg := Aggregate(recs, DefaultOptions())
	if n, _ := agg.MissingFor("Horsepower"); n != len(recs) {
		t.Fatalf("missing hp=%d, want %d", n, len(recs))
	}
}

func TestAggregate_IndependentFields(t *testing.T) {
	recs := []Record{
		// bad sales, good price: price still grouped
		{"Manufacturer": "X", "Vehicle_type": "Car", "Sales_in_thousands": "oops", "Price_in_thousands": "10", "Horsepower": "120"},
		// good sales, bad price: sales still totaled, pairs skip it
		{"Manufacturer": "X", "Vehicle_type": "Car", "Sales_in_thousands": "7", "Price_in_thousands": "", "Horsepower": "130"},
	}
	agg := Aggregate(recs, DefaultOptions())
	if v, _ := agg.SalesByMaker.Total("X"); v != 7 {
		t.Fatalf("total X=%v", v)
	}
	if got := agg.PriceByType.Values("Car"); len(got) != 1 {
		t.Fatalf("car prices=%v", got)
	}
	if agg.HorsepowerPrice.Len() != 1 || agg.SalesPrice.Len() != 0 {
		t.Fatalf("pairs hp=%d sales=%d", agg.HorsepowerPrice.Len(), agg.SalesPrice.Len())
	}
}

func TestAggregate_PairsStayAligned(t *testing.T) {
	recs := []Record{
		{"Horsepower": "100", "Price_in_thousands": "10"},
		{"Horsepower": "", "Price_in_thousands": "99"},
		{"Horsepower": "300", "Price_in_thousands": "x"},
		{"Horsepower": "200", "Price_in_thousands": "20"},
	}
	agg := Aggregate(recs, DefaultOptions())
	p := agg.HorsepowerPrice
	if len(p.X) != len(p.Y) || p.Len() != 2 {
		t.Fatalf("pair=%+v", p)
	}
	if p.X[0] != 100 || p.Y[0] != 10 || p.X[1] != 200 || p.Y[1] != 20 {
		t.Fatalf("misaligned pair=%+v", p)
	}
}

func TestAggregate_CustomFields(t *testing.T) {
	opt := DefaultOptions()
	opt.Fields.Manufacturer = "Make"
	opt.NumericColumns = []string{"Sales_in_thousands"}
	agg := Aggregate([]Record{{"Make": "Ford", "Sales_in_thousands": "3"}}, opt)
	if v, ok := agg.SalesByMaker.Total("Ford"); !ok || v != 3 {
		t.Fatalf("total Ford=%v ok=%v", v, ok)
	}
	if len(agg.Missing) != 1 {
		t.Fatalf("missing entries=%d", len(agg.Missing))
	}
}
