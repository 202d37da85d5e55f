package launches

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

var (
	// ErrInvalidSchema is returned when a source is missing columns or carries malformed values
	ErrInvalidSchema = errors.New("invalid launch dataset schema")

	// ErrEmptyDataset is returned when a source has no rows
	ErrEmptyDataset = errors.New("launch dataset is empty")
)

// Dataset is the immutable launch record table.
// Filters return new Datasets; nothing mutates an existing one.
// ⭐ SSOT: 데이터셋은 프로세스 시작 시 한 번만 로드
type Dataset struct {
	df         dataframe.DataFrame
	minPayload float64
	maxPayload float64
}

// FromRecords builds a dataset from typed records.
// Row indexes are reassigned in slice order.
func FromRecords(records []contracts.LaunchRecord) (*Dataset, error) {
	n := len(records)
	flights := make([]int, n)
	sites := make([]string, n)
	payloads := make([]float64, n)
	classes := make([]int, n)
	versions := make([]string, n)
	categories := make([]string, n)

	for i, r := range records {
		flights[i] = r.FlightNumber
		sites[i] = r.LaunchSite
		payloads[i] = r.PayloadMassKg
		classes[i] = r.OutcomeClass
		versions[i] = r.BoosterVersion
		categories[i] = r.BoosterCategory
	}

	df := dataframe.New(
		series.New(flights, series.Int, contracts.ColumnFlightNumber),
		series.New(sites, series.String, contracts.ColumnLaunchSite),
		series.New(classes, series.Int, contracts.ColumnOutcomeClass),
		series.New(payloads, series.Float, contracts.ColumnPayloadMass),
		series.New(versions, series.String, contracts.ColumnBoosterVersion),
		series.New(categories, series.String, contracts.ColumnBoosterCategory),
	)

	return newDataset(df)
}

// newDataset validates df, assigns row indexes and computes payload bounds
func newDataset(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, df.Err)
	}

	if err := validate(df); err != nil {
		return nil, err
	}

	indexes := make([]int, df.Nrow())
	for i := range indexes {
		indexes[i] = i
	}
	df = df.Mutate(series.New(indexes, series.Int, contracts.ColumnRowIndex))
	if df.Err != nil {
		return nil, fmt.Errorf("assign row index: %w", df.Err)
	}

	payload := df.Col(contracts.ColumnPayloadMass)

	return &Dataset{
		df:         df,
		minPayload: payload.Min(),
		maxPayload: payload.Max(),
	}, nil
}

// validate enforces the dataset invariants
func validate(df dataframe.DataFrame) error {
	names := make(map[string]bool)
	for _, name := range df.Names() {
		names[name] = true
	}
	for _, required := range contracts.RequiredColumns {
		if !names[required] {
			return fmt.Errorf("%w: missing column %q", ErrInvalidSchema, required)
		}
	}

	if df.Nrow() == 0 {
		return ErrEmptyDataset
	}

	for i, site := range df.Col(contracts.ColumnLaunchSite).Records() {
		if site == "" {
			return fmt.Errorf("%w: row %d has an empty launch site", ErrInvalidSchema, i)
		}
	}

	for i, kg := range df.Col(contracts.ColumnPayloadMass).Float() {
		if math.IsNaN(kg) || math.IsInf(kg, 0) {
			return fmt.Errorf("%w: row %d has a non-numeric payload mass", ErrInvalidSchema, i)
		}
		if kg < 0 {
			return fmt.Errorf("%w: row %d has a negative payload mass %v", ErrInvalidSchema, i, kg)
		}
	}

	classes, err := df.Col(contracts.ColumnOutcomeClass).Int()
	if err != nil {
		return fmt.Errorf("%w: outcome class: %v", ErrInvalidSchema, err)
	}
	for i, c := range classes {
		if c != 0 && c != 1 {
			return fmt.Errorf("%w: row %d has outcome class %d (want 0 or 1)", ErrInvalidSchema, i, c)
		}
	}

	return nil
}

// derive wraps a filtered frame, keeping the parent's payload bounds
func (d *Dataset) derive(df dataframe.DataFrame) *Dataset {
	return &Dataset{
		df:         df,
		minPayload: d.minPayload,
		maxPayload: d.maxPayload,
	}
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return d.df.Nrow()
}

// PayloadBounds returns the [min, max] payload mass computed at load time.
// They are the default payload filter bounds.
func (d *Dataset) PayloadBounds() (float64, float64) {
	return d.minPayload, d.maxPayload
}

func (d *Dataset) hasColumn(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Records returns the rows as typed records, in dataset order
func (d *Dataset) Records() []contracts.LaunchRecord {
	n := d.Len()
	if n == 0 {
		return []contracts.LaunchRecord{}
	}

	sites := d.df.Col(contracts.ColumnLaunchSite).Records()
	payloads := d.df.Col(contracts.ColumnPayloadMass).Float()
	categories := d.df.Col(contracts.ColumnBoosterCategory).Records()
	classes, _ := d.df.Col(contracts.ColumnOutcomeClass).Int()
	indexes, _ := d.df.Col(contracts.ColumnRowIndex).Int()

	var flights []int
	if d.hasColumn(contracts.ColumnFlightNumber) {
		flights, _ = d.df.Col(contracts.ColumnFlightNumber).Int()
	}
	var versions []string
	if d.hasColumn(contracts.ColumnBoosterVersion) {
		versions = d.df.Col(contracts.ColumnBoosterVersion).Records()
	}

	records := make([]contracts.LaunchRecord, n)
	for i := 0; i < n; i++ {
		records[i] = contracts.LaunchRecord{
			RowIndex:        indexes[i],
			LaunchSite:      sites[i],
			PayloadMassKg:   payloads[i],
			OutcomeClass:    classes[i],
			BoosterCategory: categories[i],
		}
		if i < len(flights) {
			records[i].FlightNumber = flights[i]
		}
		if i < len(versions) {
			records[i].BoosterVersion = versions[i]
		}
	}

	return records
}

// Sites returns the distinct launch sites in first-appearance order
func (d *Dataset) Sites() []string {
	seen := make(map[string]bool)
	sites := make([]string, 0)
	if d.Len() == 0 {
		return sites
	}

	for _, site := range d.df.Col(contracts.ColumnLaunchSite).Records() {
		if !seen[site] {
			seen[site] = true
			sites = append(sites, site)
		}
	}
	return sites
}

// Stats summarizes the dataset
func (d *Dataset) Stats() contracts.DatasetStats {
	stats := contracts.DatasetStats{
		Rows:         d.Len(),
		Sites:        d.Sites(),
		MinPayloadKg: d.minPayload,
		MaxPayloadKg: d.maxPayload,
	}

	for _, r := range d.Records() {
		if r.Landed() {
			stats.Landed++
		}
	}

	return stats
}
