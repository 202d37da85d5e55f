package launches

import (
	"bytes"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

// columnTypes forces numeric parsing of the columns the dashboard computes on.
// Everything else stays a string.
var columnTypes = map[string]series.Type{
	contracts.ColumnFlightNumber: series.Int,
	contracts.ColumnPayloadMass:  series.Float,
	contracts.ColumnOutcomeClass: series.Int,
}

// ReadCSV parses launch records and validates the schema
func ReadCSV(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes),
	)

	return newDataset(df)
}

// ParseCSV is ReadCSV over an in-memory document
func ParseCSV(data []byte) (*Dataset, error) {
	return ReadCSV(bytes.NewReader(data))
}
