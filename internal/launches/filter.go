package launches

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

// FilterBySite narrows ds to the rows launched from site.
// contracts.AllSites returns ds itself. An unknown site yields an empty subset.
func FilterBySite(ds *Dataset, site string) *Dataset {
	if site == contracts.AllSites || ds.Len() == 0 {
		return ds
	}

	return ds.derive(ds.df.Filter(dataframe.F{
		Colname:    contracts.ColumnLaunchSite,
		Comparator: series.Eq,
		Comparando: site,
	}))
}

// FilterByPayload keeps rows with low < payload_mass_kg < high.
// Both bounds are exclusive; a reversed range is swapped first.
func FilterByPayload(ds *Dataset, low, high float64) *Dataset {
	low, high = NormalizeRange(low, high)
	if ds.Len() == 0 {
		return ds
	}

	above := ds.df.Filter(dataframe.F{
		Colname:    contracts.ColumnPayloadMass,
		Comparator: series.Greater,
		Comparando: low,
	})
	if above.Nrow() == 0 {
		return ds.derive(above)
	}

	return ds.derive(above.Filter(dataframe.F{
		Colname:    contracts.ColumnPayloadMass,
		Comparator: series.Less,
		Comparando: high,
	}))
}

// NormalizeRange orders a payload range so that low <= high
func NormalizeRange(low, high float64) (float64, float64) {
	if low > high {
		return high, low
	}
	return low, high
}

// InRange reports whether kg passes FilterByPayload for (low, high)
func InRange(kg, low, high float64) bool {
	low, high = NormalizeRange(low, high)
	return low < kg && kg < high
}

// FilterByOutcome keeps rows whose outcome class equals class
func FilterByOutcome(ds *Dataset, class int) *Dataset {
	if ds.Len() == 0 {
		return ds
	}

	return ds.derive(ds.df.Filter(dataframe.F{
		Colname:    contracts.ColumnOutcomeClass,
		Comparator: series.Eq,
		Comparando: class,
	}))
}
