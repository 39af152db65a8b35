package datasets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watex/internal/config"
	apperrors "watex/internal/errors"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLocalFetcher_Fetch(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "gbalo.csv", "station,resistivity\n0,120\n10,80\n")
	writeDataset(t, dir, "gbalo_ves.csv", "AB,rho\n1,100\n2,90\n")

	f := NewLocalFetcherFromConfig(&config.Config{Data: config.DataConfig{Dir: dir}})

	table, err := f.Fetch(context.Background(), "Gbalo  VES")
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "rho"}, table.Headers)

	tags, err := f.Tags()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gbalo", "gbalo ves"}, tags)
}

func TestLocalFetcher_Errors(t *testing.T) {
	f := NewLocalFetcher(t.TempDir())

	_, err := f.Fetch(context.Background(), "unknown")
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))

	_, err = f.Fetch(context.Background(), "  ")
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.GetCode(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Fetch(ctx, "gbalo")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewLocalFetcher(filepath.Join(t.TempDir(), "missing")).Tags()
	assert.Equal(t, apperrors.CodeFileError, apperrors.GetCode(err))
}
