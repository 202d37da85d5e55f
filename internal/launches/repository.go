package launches

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

// Repository stores launch records in PostgreSQL.
// It doubles as a dataset Source.
type Repository struct {
	pool  *pgxpool.Pool
	table string
}

// NewRepository creates a new Repository instance
func NewRepository(pool *pgxpool.Pool, table string) *Repository {
	return &Repository{pool: pool, table: table}
}

var copyColumns = []string{
	"row_index",
	"flight_number",
	"launch_site",
	"payload_mass_kg",
	"class",
	"booster_version",
	"booster_version_category",
}

func (r *Repository) ident() string {
	return pgx.Identifier{r.table}.Sanitize()
}

// Describe returns a human readable origin for logs
func (r *Repository) Describe() string {
	return "postgres:" + r.table
}

// EnsureSchema creates the launch table if it does not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			row_index                INTEGER PRIMARY KEY,
			flight_number            INTEGER,
			launch_site              TEXT NOT NULL,
			payload_mass_kg          DOUBLE PRECISION NOT NULL CHECK (payload_mass_kg >= 0),
			class                    SMALLINT NOT NULL CHECK (class IN (0, 1)),
			booster_version          TEXT,
			booster_version_category TEXT NOT NULL
		)
	`, r.ident())

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create launch table: %w", err)
	}

	return nil
}

// Import replaces the table contents with ds
func (r *Repository) Import(ctx context.Context, ds *Dataset) (int64, error) {
	records := ds.Records()

	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		rows[i] = []interface{}{
			rec.RowIndex,
			rec.FlightNumber,
			rec.LaunchSite,
			rec.PayloadMassKg,
			rec.OutcomeClass,
			rec.BoosterVersion,
			rec.BoosterCategory,
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM "+r.ident()); err != nil {
		return 0, fmt.Errorf("clear launch table: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{r.table}, copyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy launch records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return copied, nil
}

// Load reads every launch record ordered by row index
func (r *Repository) Load(ctx context.Context) (*Dataset, error) {
	query := fmt.Sprintf(`
		SELECT
			COALESCE(flight_number, 0),
			launch_site,
			payload_mass_kg,
			class,
			COALESCE(booster_version, ''),
			booster_version_category
		FROM %s
		ORDER BY row_index
	`, r.ident())

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query launch records: %w", err)
	}
	defer rows.Close()

	records := make([]contracts.LaunchRecord, 0)
	for rows.Next() {
		var rec contracts.LaunchRecord
		var class int16
		if err := rows.Scan(
			&rec.FlightNumber,
			&rec.LaunchSite,
			&rec.PayloadMassKg,
			&class,
			&rec.BoosterVersion,
			&rec.BoosterCategory,
		); err != nil {
			return nil, fmt.Errorf("scan launch record: %w", err)
		}
		rec.OutcomeClass = int(class)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate launch records: %w", err)
	}

	return FromRecords(records)
}
