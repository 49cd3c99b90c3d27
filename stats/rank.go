package stats

import (
	"sort"

	"github.com/bitmark-inc/covid-visualizer/schema"
)

// TopByCases returns at most n countries ordered by total cases, highest
// first. Equal counts keep their input order.
func TopByCases(cs schema.Countries, n int) schema.Countries {
	if n <= 0 {
		return schema.Countries{}
	}

	sorted := make(schema.Countries, len(cs))
	copy(sorted, cs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cases > sorted[j].Cases
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}
