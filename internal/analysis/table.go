package analysis

import "context"

// Insights holds every finalized value the report needs.
type Insights struct {
	Name    string
	Rows    int
	Columns int
	TopN    int
	Missing []MissingCount
	// TopMakers ranks manufacturers by total sales.
	TopMakers []RankedTotal
	// AvgPriceByType is sorted by vehicle type.
	AvgPriceByType  []GroupMean
	HorsepowerPrice Correlation
	SalesPrice      Correlation
	// Sizes of the aligned samples behind each correlation.
	HorsepowerPricePoints int
	SalesPricePoints      int
}

// Analyze aggregates a dataset and reduces it to Insights.
func Analyze(ds *Dataset, opt Options) *Insights {
	ins, _ := AnalyzeContext(context.Background(), ds, opt)
	return ins
}

// AnalyzeContext is Analyze with cancellation for the sharded pass.
func AnalyzeContext(ctx context.Context, ds *Dataset, opt Options) (*Insights, error) {
	if ds == nil {
		ds = &Dataset{}
	}
	agg, err := AggregateParallel(ctx, ds.Records, opt, opt.Workers)
	if err != nil {
		return nil, err
	}
	ins := Reduce(agg, opt)
	ins.Name = ds.Name
	if len(ds.Records) > 0 {
		ins.Columns = len(ds.Columns)
	}
	return ins, nil
}

// Reduce turns raw aggregates into ranked and correlated values.
func Reduce(agg *Aggregates, opt Options) *Insights {
	missing := make([]MissingCount, len(agg.Missing))
	copy(missing, agg.Missing)
	return &Insights{
		Rows:                  agg.Records,
		TopN:                  opt.TopN,
		Missing:               missing,
		TopMakers:             TopN(agg.SalesByMaker, opt.TopN),
		AvgPriceByType:        AveragesByGroup(agg.PriceByType),
		HorsepowerPrice:       Correlate(agg.HorsepowerPrice),
		SalesPrice:            Correlate(agg.SalesPrice),
		HorsepowerPricePoints: agg.HorsepowerPrice.Len(),
		SalesPricePoints:      agg.SalesPrice.Len(),
	}
}
