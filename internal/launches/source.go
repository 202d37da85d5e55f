package launches

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/wonny/spacexdash/backend/pkg/httputil"
)

// Source loads the launch dataset once at startup
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
	Describe() string
}

// FileSource reads a CSV from a local path or an http(s) URL
type FileSource struct {
	path   string
	client *httputil.Client
}

// NewFileSource creates a CSV source.
// client is only used for remote paths and may be nil for local files.
func NewFileSource(path string, client *httputil.Client) *FileSource {
	return &FileSource{path: path, client: client}
}

// IsRemote reports whether the path is downloaded over HTTP
func (s *FileSource) IsRemote() bool {
	return strings.HasPrefix(s.path, "http://") || strings.HasPrefix(s.path, "https://")
}

// Describe returns a human readable origin for logs
func (s *FileSource) Describe() string {
	return "csv:" + s.path
}

// Load reads and validates the dataset
func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	if s.IsRemote() {
		if s.client == nil {
			return nil, fmt.Errorf("remote dataset %s requires an http client", s.path)
		}

		body, err := s.client.Fetch(ctx, s.path)
		if err != nil {
			return nil, fmt.Errorf("download dataset: %w", err)
		}

		ds, err := ParseCSV(body)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.path, err)
		}
		return ds, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return ds, nil
}
