package excel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watex/domain/survey"
	apperrors "watex/internal/errors"
)

func testFeatures() []survey.Features {
	flow := 2.5
	return []survey.Features{
		{ID: "s1", Easting: 790120, Northing: 1092410, Power: 60, Magnitude: 80,
			Shape: survey.ShapeU, Type: survey.TypePC, SFI: 1.25, OhmS: 1084.5, ANR: 0.5,
			Flow: &flow, FlowClass: "FR2"},
		{ID: "s2", Power: 40, Magnitude: 35, Shape: survey.ShapeV, Type: survey.TypeEC},
	}
}

func TestWriteFeatures_ExcelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "features.xlsx")
	require.NoError(t, WriteFeatures(path, testFeatures()))

	table, err := NewDataReader(DefaultConfig(path)).ReadData()
	require.NoError(t, err)
	assert.Equal(t, FeatureHeaders, table.Headers)
	require.Len(t, table.Rows, 2)

	power, err := table.Float64Column("power")
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 40}, power)
	assert.Equal(t, "U", table.Rows[0]["shape"])
	assert.Equal(t, "FR2", table.Rows[0]["flow_class"])
	assert.Equal(t, "", table.Rows[1]["flow"])
}

func TestWriteFeatures_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.csv")
	require.NoError(t, WriteFeatures(path, testFeatures()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(FeatureHeaders, ","), lines[0])
	assert.Equal(t, "s1,790120,1092410,60,80,U,PC,1.25,1084.5,0.5,2.5,FR2", lines[1])
}

func TestWriteFeatures_CSVCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.csv")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := WriteFeatures(path, testFeatures())
	assert.Equal(t, apperrors.CodeFileError, apperrors.GetCode(err))
}

func TestWriteFeatures_UnsupportedFormat(t *testing.T) {
	err := WriteFeatures(filepath.Join(t.TempDir(), "features.json"), testFeatures())
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.GetCode(err))
}
