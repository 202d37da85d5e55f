package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/wonny/spacexdash/backend/pkg/config"
)

func TestNew_MissingURL(t *testing.T) {
	_, err := New(context.Background(), &config.Config{})
	if err == nil {
		t.Fatal("Expected error when DATABASE_URL is empty")
	}
}

func TestNew_InvalidURL(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{URL: "://not a url"}}

	_, err := New(context.Background(), cfg)
	if err == nil {
		t.Fatal("Expected error for malformed DATABASE_URL")
	}
}

func TestHealthCheck(t *testing.T) {
	// Skip if DATABASE_URL is not set
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			URL:             url,
			MaxConns:        2,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: time.Minute,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	status, err := db.HealthCheck(ctx)
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}

	if !status.Healthy {
		t.Error("Expected database to be healthy")
	}

	if status.Stats.MaxConns != 2 {
		t.Errorf("Expected MaxConns=2, got %d", status.Stats.MaxConns)
	}
}
