package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestFillGaps(t *testing.T) {
	series := []TimeSeriesPoint{
		{Date: day(0), Quantity: 3},
		{Date: day(1), Quantity: 4},
		{Date: day(4), Quantity: 2},
		{Date: day(6), Quantity: 1},
	}

	filled := FillGaps(series)
	require.Len(t, filled, 7)

	for i, p := range filled {
		assert.Equal(t, day(i), p.Date)
	}
	assert.Equal(t, 3.0, filled[0].Quantity)
	assert.Zero(t, filled[2].Quantity)
	assert.Zero(t, filled[3].Quantity)
	assert.Equal(t, 2.0, filled[4].Quantity)
	assert.Zero(t, filled[5].Quantity)
	assert.Equal(t, 1.0, filled[6].Quantity)
}

func TestFillGapsNoGaps(t *testing.T) {
	series := []TimeSeriesPoint{
		{Date: day(0), Quantity: 1},
		{Date: day(1), Quantity: 2},
		{Date: day(2), Quantity: 3},
	}

	assert.Equal(t, series, FillGaps(series))
}

func TestFillGapsShortSeries(t *testing.T) {
	series := []TimeSeriesPoint{{Date: day(0), Quantity: 1}}
	assert.Equal(t, series, FillGaps(series))
	assert.Empty(t, FillGaps(nil))
}

func TestStatHelpers(t *testing.T) {
	values := []float64{5, 0, 0, 8, 0, 2}

	assert.InDelta(t, 2.5, Mean(values), 1e-9)
	assert.Equal(t, 3, NonzeroCount(values))
	assert.InDelta(t, 5.0, NonzeroMean(values), 1e-9)

	assert.Zero(t, Mean(nil))
	assert.Zero(t, NonzeroMean([]float64{0, 0}))
}

func TestStdDev(t *testing.T) {
	// Population stddev of {2,4,4,4,5,5,7,9} is exactly 2
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Zero(t, StdDev([]float64{42}))
}

func TestForecastOutcomeSummary(t *testing.T) {
	outcome := &ForecastOutcome{
		Recommended: []PredictionPoint{
			{PointForecast: 10},
			{PointForecast: 20},
			{PointForecast: 30},
		},
	}

	summary := outcome.Summary()
	assert.InDelta(t, 60, summary.HorizonTotalDemand, 1e-9)
	assert.InDelta(t, 20, summary.AvgDailyDemand, 1e-9)

	empty := (&ForecastOutcome{}).Summary()
	assert.Zero(t, empty.AvgDailyDemand)
	assert.Zero(t, empty.HorizonTotalDemand)
}
