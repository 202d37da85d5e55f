package dashboard

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/launches"
)

func loadBundled(t *testing.T) *launches.Dataset {
	t.Helper()

	f, err := os.Open("../../data/spacex_launch_dash.csv")
	require.NoError(t, err)
	defer f.Close()

	ds, err := launches.ReadCSV(f)
	require.NoError(t, err)
	return ds
}

func TestScatterPoints_AllSites(t *testing.T) {
	ds := sampleDataset(t)

	plot := ScatterPoints(ds, contracts.AllSites, 0, 10000)

	assert.Len(t, plot.Points, 3)
	assert.Equal(t,
		"Correlation between Payload and Success for ALL Sites between 0kg and 10,000kg",
		plot.Title)
	assert.Contains(t, plot.Title, "0kg")
	assert.Contains(t, plot.Title, "10,000kg")
	assert.Equal(t, []string{"v1.0", "v1.1"}, plot.Categories())
	assert.Equal(t, contracts.ScatterPoint{PayloadMassKg: 5000, OutcomeClass: 1, BoosterCategory: "v1.1"}, plot.Points[2])
}

func TestScatterPoints_Site(t *testing.T) {
	ds := sampleDataset(t)

	plot := ScatterPoints(ds, "KSC LC-39A", 0, 1000)
	assert.Empty(t, plot.Points, "5000kg exceeds the upper bound")
	assert.Equal(t,
		"Correlation between Payload and Success for Launch Site KSC LC-39A - payload between 0kg and 1,000kg",
		plot.Title)

	plot = ScatterPoints(ds, "KSC LC-39A", 0, 10000)
	require.Len(t, plot.Points, 1)
	assert.Equal(t, 5000.0, plot.Points[0].PayloadMassKg)
}

func TestScatterPoints_TitleTruncatesButFilterDoesNot(t *testing.T) {
	ds := sampleDataset(t)

	plot := ScatterPoints(ds, contracts.AllSites, 499.9, 500.9)

	require.Len(t, plot.Points, 1)
	assert.Equal(t, 500.0, plot.Points[0].PayloadMassKg)
	assert.Contains(t, plot.Title, "between 499kg and 500kg")
	assert.Equal(t, 499.9, plot.Low)
	assert.Equal(t, 500.9, plot.High)
}

func TestScatterPoints_ReversedRange(t *testing.T) {
	ds := sampleDataset(t)

	plot := ScatterPoints(ds, contracts.AllSites, 10000, 0)

	assert.Len(t, plot.Points, 3)
	assert.Equal(t, 0.0, plot.Low)
	assert.Equal(t, 10000.0, plot.High)
}

func TestScatterPoints_CountInvariant(t *testing.T) {
	ds := loadBundled(t)

	ranges := [][2]float64{{0, 10000}, {0, 2500}, {2500, 7500}, {9600, 10000}, {362, 9600}}
	sites := append([]string{contracts.AllSites}, ds.Sites()...)

	for _, site := range sites {
		for _, rg := range ranges {
			plot := ScatterPoints(ds, site, rg[0], rg[1])

			want := 0
			for _, r := range ds.Records() {
				if (site == contracts.AllSites || r.LaunchSite == site) && rg[0] < r.PayloadMassKg && r.PayloadMassKg < rg[1] {
					want++
				}
			}
			assert.Len(t, plot.Points, want, "%s %v", site, rg)

			for _, p := range plot.Points {
				assert.Greater(t, p.PayloadMassKg, rg[0])
				assert.Less(t, p.PayloadMassKg, rg[1])
			}
		}
	}
}

func TestFormatKg(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999.99, "999"},
		{1000, "1,000"},
		{9600.7, "9,600"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatKg(tt.in))
	}
}
