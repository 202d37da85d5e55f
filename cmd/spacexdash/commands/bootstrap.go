package commands

import (
	"context"
	"fmt"

	"github.com/wonny/spacexdash/backend/internal/launches"
	"github.com/wonny/spacexdash/backend/pkg/config"
	"github.com/wonny/spacexdash/backend/pkg/database"
	"github.com/wonny/spacexdash/backend/pkg/httputil"
	"github.com/wonny/spacexdash/backend/pkg/logger"
)

// loadConfig loads configuration and applies global flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if datasetPath != "" {
		cfg.Dataset.Source = config.SourceCSV
		cfg.Dataset.Path = datasetPath
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// csvSource is the configured CSV source, regardless of DATASET_SOURCE
func csvSource(cfg *config.Config, log *logger.Logger) *launches.FileSource {
	return launches.NewFileSource(cfg.Dataset.Path, httputil.New(log))
}

// openSource resolves the configured dataset source.
// The returned cleanup closes any database pool it opened.
func openSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (launches.Source, func(), error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		db, err := database.New(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		return launches.NewRepository(db.Pool, cfg.Dataset.Table), db.Close, nil
	default:
		return csvSource(cfg, log), func() {}, nil
	}
}

// loadDataset loads and validates the launch dataset from the configured source
func loadDataset(ctx context.Context, cfg *config.Config, log *logger.Logger) (*launches.Dataset, string, error) {
	source, cleanup, err := openSource(ctx, cfg, log)
	if err != nil {
		return nil, "", err
	}
	defer cleanup()

	ds, err := source.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load dataset from %s: %w", source.Describe(), err)
	}

	log.WithFields(map[string]interface{}{
		"source": source.Describe(),
		"rows":   ds.Len(),
	}).Info("Launch dataset loaded")

	return ds, source.Describe(), nil
}
