package launches

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

// sampleRecords is the three-row dataset used across the package tests
func sampleRecords() []contracts.LaunchRecord {
	return []contracts.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, OutcomeClass: 1, BoosterCategory: "v1.0"},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 600, OutcomeClass: 0, BoosterCategory: "v1.0"},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 5000, OutcomeClass: 1, BoosterCategory: "v1.1"},
	}
}

func mustDataset(t *testing.T, records []contracts.LaunchRecord) *Dataset {
	t.Helper()

	ds, err := FromRecords(records)
	require.NoError(t, err)
	return ds
}

func TestFromRecords(t *testing.T) {
	ds := mustDataset(t, sampleRecords())

	assert.Equal(t, 3, ds.Len())

	low, high := ds.PayloadBounds()
	assert.Equal(t, 500.0, low)
	assert.Equal(t, 5000.0, high)

	records := ds.Records()
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, i, r.RowIndex, "row index follows load order")
	}
	assert.Equal(t, "KSC LC-39A", records[2].LaunchSite)
	assert.Equal(t, 5000.0, records[2].PayloadMassKg)
	assert.Equal(t, 1, records[2].OutcomeClass)
	assert.Equal(t, "v1.1", records[2].BoosterCategory)
}

func TestFromRecords_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		records []contracts.LaunchRecord
		wantErr error
	}{
		{
			name:    "empty",
			records: nil,
			wantErr: ErrEmptyDataset,
		},
		{
			name: "negative payload",
			records: []contracts.LaunchRecord{
				{LaunchSite: "CCAFS LC-40", PayloadMassKg: -1, OutcomeClass: 1, BoosterCategory: "v1.0"},
			},
			wantErr: ErrInvalidSchema,
		},
		{
			name: "outcome class out of range",
			records: []contracts.LaunchRecord{
				{LaunchSite: "CCAFS LC-40", PayloadMassKg: 10, OutcomeClass: 3, BoosterCategory: "v1.0"},
			},
			wantErr: ErrInvalidSchema,
		},
		{
			name: "empty site",
			records: []contracts.LaunchRecord{
				{LaunchSite: "", PayloadMassKg: 10, OutcomeClass: 0, BoosterCategory: "v1.0"},
			},
			wantErr: ErrInvalidSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecords(tt.records)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDataset_Sites(t *testing.T) {
	ds := mustDataset(t, sampleRecords())

	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A"}, ds.Sites())
}

func TestDataset_Stats(t *testing.T) {
	ds := mustDataset(t, sampleRecords())

	stats := ds.Stats()
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 2, stats.Landed)
	assert.Equal(t, 500.0, stats.MinPayloadKg)
	assert.Equal(t, 5000.0, stats.MaxPayloadKg)
	assert.InDelta(t, 2.0/3.0, stats.SuccessRate(), 1e-9)
}

func TestDataset_BundledCSV(t *testing.T) {
	f, err := os.Open("../../data/spacex_launch_dash.csv")
	require.NoError(t, err)
	defer f.Close()

	ds, err := ReadCSV(f)
	require.NoError(t, err)

	assert.Equal(t, 56, ds.Len())
	assert.ElementsMatch(t,
		[]string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"},
		ds.Sites(),
	)

	low, high := ds.PayloadBounds()
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 9600.0, high)

	for _, r := range ds.Records() {
		assert.GreaterOrEqual(t, r.PayloadMassKg, low)
		assert.LessOrEqual(t, r.PayloadMassKg, high)
		assert.Contains(t, []int{0, 1}, r.OutcomeClass)
	}
}
