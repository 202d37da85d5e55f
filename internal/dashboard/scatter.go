package dashboard

import (
	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/launches"
)

// ScatterPoints projects the rows inside (low, high) onto
// (payload, outcome, booster category) triples.
// The payload filter runs first, then the site filter unless site is AllSites.
func ScatterPoints(ds *launches.Dataset, site string, low, high float64) contracts.ScatterPlot {
	low, high = launches.NormalizeRange(low, high)

	subset := launches.FilterByPayload(ds, low, high)
	if site != contracts.AllSites {
		subset = launches.FilterBySite(subset, site)
	}

	plot := contracts.ScatterPlot{
		Site:   site,
		Title:  scatterTitle(site, low, high),
		Low:    low,
		High:   high,
		Points: make([]contracts.ScatterPoint, 0, subset.Len()),
	}

	for _, r := range subset.Records() {
		plot.Points = append(plot.Points, contracts.ScatterPoint{
			PayloadMassKg:   r.PayloadMassKg,
			OutcomeClass:    r.OutcomeClass,
			BoosterCategory: r.BoosterCategory,
		})
	}

	return plot
}
