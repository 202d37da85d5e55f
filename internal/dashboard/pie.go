package dashboard

import (
	"strconv"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/launches"
)

// PieSummary counts landing outcomes for the site selector value.
//
// For contracts.AllSites it counts successful landings per launch site, in
// first-appearance order. For a single site it splits that site's launches by
// outcome class, "0" before "1". Groups without rows produce no slice.
func PieSummary(ds *launches.Dataset, site string) contracts.PieSummary {
	subset := launches.FilterBySite(ds, site)

	summary := contracts.PieSummary{
		Site:   site,
		Title:  pieTitle(site),
		Slices: make([]contracts.PieSlice, 0),
	}

	if site == contracts.AllSites {
		landed := launches.FilterByOutcome(subset, 1)

		counts := make(map[string]int)
		order := make([]string, 0)
		for _, r := range landed.Records() {
			if _, ok := counts[r.LaunchSite]; !ok {
				order = append(order, r.LaunchSite)
			}
			counts[r.LaunchSite]++
		}

		for _, s := range order {
			summary.Slices = append(summary.Slices, contracts.PieSlice{Label: s, Value: counts[s]})
		}
		return summary
	}

	var counts [2]int
	for _, r := range subset.Records() {
		counts[r.OutcomeClass]++
	}
	for class, n := range counts {
		if n == 0 {
			continue
		}
		summary.Slices = append(summary.Slices, contracts.PieSlice{Label: strconv.Itoa(class), Value: n})
	}

	return summary
}
