package launches

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	f, err := os.Open("testdata/launches.csv")
	require.NoError(t, err)
	defer f.Close()

	ds, err := ReadCSV(f)
	require.NoError(t, err)

	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"}, ds.Sites())

	records := ds.Records()
	assert.Equal(t, "F9 v1.0  B0003", records[0].BoosterVersion)
	assert.Equal(t, 1, records[0].FlightNumber)
	assert.Equal(t, 9600.0, records[3].PayloadMassKg)
	assert.Equal(t, "FT", records[3].BoosterCategory)
}

func TestReadCSV_WithoutOptionalColumns(t *testing.T) {
	doc := "Launch Site,class,Payload Mass (kg),Booster Version Category\n" +
		"CCAFS LC-40,1,500,v1.0\n" +
		"KSC LC-39A,0,2500.5,FT\n"

	ds, err := ParseCSV([]byte(doc))
	require.NoError(t, err)

	records := ds.Records()
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].FlightNumber)
	assert.Equal(t, "", records[0].BoosterVersion)
	assert.Equal(t, 2500.5, records[1].PayloadMassKg)
}

func TestReadCSV_SchemaViolations(t *testing.T) {
	tests := []struct {
		file    string
		wantErr error
		wantMsg string
	}{
		{"testdata/missing_column.csv", ErrInvalidSchema, "Payload Mass (kg)"},
		{"testdata/bad_payload.csv", ErrInvalidSchema, "non-numeric payload"},
		{"testdata/bad_class.csv", ErrInvalidSchema, "outcome class 2"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			f, err := os.Open(tt.file)
			require.NoError(t, err)
			defer f.Close()

			_, err = ReadCSV(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Launch Site,class,Payload Mass (kg),Booster Version Category\n"))
	require.Error(t, err)
}
