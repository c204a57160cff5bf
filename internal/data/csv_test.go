package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeries(t *testing.T) {
	path := writeFile(t, "date,quantity,promo\n2026-01-01,5,0\n2026-01-02,0,1\n2026-01-03,7.5,0\n")

	series, err := LoadSeries(path)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), series[0].Date)
	assert.Equal(t, 5.0, series[0].Quantity)
	assert.Equal(t, 0.0, series[0].Covariates["promo"])
	assert.Equal(t, 1.0, series[1].Covariates["promo"])
	assert.Equal(t, 7.5, series[2].Quantity)
}

func TestLoadSeriesMissingColumns(t *testing.T) {
	path := writeFile(t, "day,amount\n2026-01-01,5\n")

	_, err := LoadSeries(path)
	assert.ErrorContains(t, err, "missing date/quantity")
}

func TestLoadSeriesBadRow(t *testing.T) {
	path := writeFile(t, "date,quantity\n2026-01-01,abc\n")

	_, err := LoadSeries(path)
	assert.ErrorContains(t, err, "bad quantity")
}

func TestLoadPairs(t *testing.T) {
	path := writeFile(t, "date,actual,forecast\n2026-01-01,100,95\n2026-01-02,110,105\n")

	actuals, forecasts, err := LoadPairs(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 110}, actuals)
	assert.Equal(t, []float64{95, 105}, forecasts)
}

func TestLoadPairsMissingColumns(t *testing.T) {
	path := writeFile(t, "date,value\n2026-01-01,100\n")

	_, _, err := LoadPairs(path)
	assert.ErrorContains(t, err, "missing actual/forecast")
}
