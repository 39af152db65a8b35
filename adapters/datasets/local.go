package datasets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"watex/adapters/excel"
	"watex/domain/survey"
	"watex/internal"
	"watex/internal/config"
	apperrors "watex/internal/errors"
	"watex/ports"
)

var _ ports.DataFetcher = (*LocalFetcher)(nil)

// extensions are tried in order for every tag
var extensions = []string{".xlsx", ".csv"}

// LocalFetcher resolves dataset tags to survey files under a data directory.
// The tag "gbalo ves" maps to gbalo_ves.xlsx or gbalo_ves.csv.
type LocalFetcher struct {
	dir    string
	logger zerolog.Logger
}

// NewLocalFetcher creates a fetcher rooted at dir
func NewLocalFetcher(dir string) *LocalFetcher {
	return &LocalFetcher{dir: dir, logger: internal.Component("datasets")}
}

// NewLocalFetcherFromConfig roots the fetcher at the configured data directory
func NewLocalFetcherFromConfig(cfg *config.Config) *LocalFetcher {
	return NewLocalFetcher(cfg.Data.Dir)
}

// Fetch reads the table registered under tag
func (f *LocalFetcher) Fetch(ctx context.Context, tag string) (*survey.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := f.Resolve(tag)
	if err != nil {
		return nil, err
	}
	f.logger.Debug().Str("tag", tag).Str("file", path).Msg("fetching dataset")
	return excel.NewDataReader(excel.DefaultConfig(path)).ReadData()
}

// Resolve returns the file path of a tag
func (f *LocalFetcher) Resolve(tag string) (string, error) {
	name := normalizeTag(tag)
	if name == "" {
		return "", apperrors.InvalidInput("dataset tag cannot be empty")
	}
	for _, ext := range extensions {
		path := filepath.Join(f.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", apperrors.NotFound(fmt.Sprintf("dataset %q in %s", tag, f.dir))
}

// Tags lists the datasets available in the data directory
func (f *LocalFetcher) Tags() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, apperrors.FileError(f.dir, err)
	}
	var tags []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".xlsx" && ext != ".csv") {
			continue
		}
		tag := strings.ReplaceAll(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())), "_", " ")
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func normalizeTag(tag string) string {
	return strings.Join(strings.Fields(strings.ToLower(tag)), "_")
}
