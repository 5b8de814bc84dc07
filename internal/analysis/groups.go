package analysis

// GroupTotals accumulates a sum per key and remembers the order in which keys
// were first seen.
type GroupTotals struct {
	keys []string
	sums map[string]float64
}

func newGroupTotals() *GroupTotals {
	return &GroupTotals{sums: map[string]float64{}}
}

func (g *GroupTotals) add(key string, v float64) {
	if _, ok := g.sums[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.sums[key] += v
}

// Keys returns keys in first-appearance order.
func (g *GroupTotals) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Total returns the sum for key.
func (g *GroupTotals) Total(key string) (float64, bool) {
	v, ok := g.sums[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (g *GroupTotals) Len() int { return len(g.keys) }

// GroupLists collects values per key in input order.
type GroupLists struct {
	keys []string
	vals map[string][]float64
}

func newGroupLists() *GroupLists {
	return &GroupLists{vals: map[string][]float64{}}
}

func (g *GroupLists) add(key string, v float64) {
	if _, ok := g.vals[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.vals[key] = append(g.vals[key], v)
}

// Keys returns keys in first-appearance order.
func (g *GroupLists) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Values returns a copy of the values collected for key.
func (g *GroupLists) Values(key string) []float64 {
	vs := g.vals[key]
	out := make([]float64, len(vs))
	copy(out, vs)
	return out
}

// Len returns the number of distinct keys.
func (g *GroupLists) Len() int { return len(g.keys) }

// AlignedPair holds two equal-length sequences where index i of X and Y came
// from the same record.
type AlignedPair struct {
	X []float64
	Y []float64
}

func (p *AlignedPair) add(x, y float64) {
	p.X = append(p.X, x)
	p.Y = append(p.Y, y)
}

// Len returns the number of aligned points.
func (p AlignedPair) Len() int { return len(p.X) }
