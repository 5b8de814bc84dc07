package analysis

import "sort"

// RankedTotal is one row of the manufacturer ranking. Rank is 1-based.
type RankedTotal struct {
	Rank  int
	Key   string
	Total float64
}

// GroupMean is the average of the values collected for Key.
type GroupMean struct {
	Key  string
	Mean float64
}

// TopN orders totals descending and keeps the first n. Equal totals keep the
// order in which their keys first appeared in the input.
func TopN(totals *GroupTotals, n int) []RankedTotal {
	if totals == nil || n <= 0 {
		return nil
	}
	keys := totals.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return totals.sums[keys[i]] > totals.sums[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	out := make([]RankedTotal, len(keys))
	for i, k := range keys {
		out[i] = RankedTotal{Rank: i + 1, Key: k, Total: totals.sums[k]}
	}
	return out
}

// AveragesByGroup returns the mean of every non-empty group, sorted by key.
func AveragesByGroup(lists *GroupLists) []GroupMean {
	if lists == nil {
		return nil
	}
	out := make([]GroupMean, 0, lists.Len())
	for _, k := range lists.keys {
		m, ok := Mean(lists.vals[k])
		if !ok {
			continue
		}
		out = append(out, GroupMean{Key: k, Mean: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
