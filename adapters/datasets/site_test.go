package datasets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"watex/domain/core"
	"watex/domain/survey"
)

// MockDataFetcher implements ports.DataFetcher for testing
type MockDataFetcher struct {
	mock.Mock
}

func (m *MockDataFetcher) Fetch(ctx context.Context, tag string) (*survey.Table, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*survey.Table), args.Error(1)
}

var erpTable = &survey.Table{
	Headers: []string{"station", "resistivity", "easting", "northing"},
	Rows: []survey.RawRow{
		{"station": "0", "resistivity": "120", "easting": "790000", "northing": "1092000"},
		{"station": "10", "resistivity": "80", "easting": "790010", "northing": "1092010"},
	},
}

var vesTable = &survey.Table{
	Headers: []string{"AB", "rho"},
	Rows:    []survey.RawRow{{"AB": "1", "rho": "100"}, {"AB": "2", "rho": "90"}},
}

func TestLoadSite(t *testing.T) {
	fetcher := new(MockDataFetcher)
	fetcher.On("Fetch", mock.Anything, "gbalo").Return(erpTable, nil)
	fetcher.On("Fetch", mock.Anything, "gbalo ves").Return(vesTable, nil)

	site, err := LoadSite(context.Background(), fetcher, "gbalo", "gbalo ves")
	require.NoError(t, err)

	assert.Equal(t, core.SiteID("gbalo"), site.ID)
	assert.Equal(t, []float64{0, 10}, site.ERP.Positions)
	assert.Equal(t, 790005.0, site.Easting)
	assert.Equal(t, 1092005.0, site.Northing)
	require.NotNil(t, site.VES)
	assert.Equal(t, []float64{100, 90}, site.VES.Resistivities)
	fetcher.AssertExpectations(t)
}

func TestLoadSite_WithoutSounding(t *testing.T) {
	fetcher := new(MockDataFetcher)
	fetcher.On("Fetch", mock.Anything, "gbalo").Return(erpTable, nil)

	site, err := LoadSite(context.Background(), fetcher, "gbalo", "")
	require.NoError(t, err)
	assert.Nil(t, site.VES)
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestLoadSite_Errors(t *testing.T) {
	fetcher := new(MockDataFetcher)
	fetcher.On("Fetch", mock.Anything, "offline").Return(nil, errors.New("unreachable"))
	fetcher.On("Fetch", mock.Anything, "gbalo").Return(erpTable, nil)
	fetcher.On("Fetch", mock.Anything, "bad ves").Return(erpTable, nil)

	_, err := LoadSite(context.Background(), fetcher, "offline", "")
	assert.EqualError(t, err, `fetch "offline": unreachable`)

	_, err = LoadSite(context.Background(), fetcher, "gbalo", "bad ves")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestDescribe(t *testing.T) {
	fetcher := new(MockDataFetcher)
	fetcher.On("Fetch", mock.Anything, "gbalo").Return(erpTable, nil)

	summaries, err := Describe(context.Background(), fetcher, "gbalo")
	require.NoError(t, err)
	require.Contains(t, summaries, "resistivity")
	assert.Equal(t, 100.0, summaries["resistivity"].Mean)
	assert.Equal(t, 2, summaries["easting"].Count)
}
