// internal/domain/series.go
package domain

import (
	"math"
	"time"
)

// TimeSeriesPoint is a single day of demand history for one SKU.
// Covariates carry optional named flags (promo, holiday, price change)
// forwarded to models that can use them.
type TimeSeriesPoint struct {
	Date       time.Time          `json:"date"`
	Quantity   float64            `json:"quantity"`
	Covariates map[string]float64 `json:"covariates,omitempty"`
}

// Quantities extracts the demand values of a series in order.
func Quantities(series []TimeSeriesPoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Quantity
	}
	return out
}

// Mean returns the arithmetic mean of values, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

// NonzeroCount returns how many periods had any demand.
func NonzeroCount(values []float64) int {
	n := 0
	for _, v := range values {
		if v > 0 {
			n++
		}
	}
	return n
}

// NonzeroMean returns the mean of demand sizes over periods with demand,
// 0 when the series never had demand.
func NonzeroMean(values []float64) float64 {
	var sum float64
	n := 0
	for _, v := range values {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FillGaps returns a copy of series with every missing calendar day inside
// the series span inserted as a zero-quantity point. The input must already
// be sorted by date with no duplicates. Zero-filling is the documented
// gap policy: a day without a sales record is a day with no sales.
func FillGaps(series []TimeSeriesPoint) []TimeSeriesPoint {
	if len(series) < 2 {
		return series
	}

	out := make([]TimeSeriesPoint, 0, len(series))
	out = append(out, series[0])
	for i := 1; i < len(series); i++ {
		prev := out[len(out)-1].Date
		next := series[i].Date
		for d := prev.AddDate(0, 0, 1); d.Before(next); d = d.AddDate(0, 0, 1) {
			out = append(out, TimeSeriesPoint{Date: d, Quantity: 0})
		}
		out = append(out, series[i])
	}
	return out
}
