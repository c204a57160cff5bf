// internal/classifier/classifier.go
package classifier

import (
	"fmt"

	"github.com/andresuchdata/demandcast/internal/domain"
	"github.com/andresuchdata/demandcast/pkg/logger"
)

// Cutoffs for the Syntetos-Boylan demand pattern quadrants.
const (
	adiCutoff = 1.32
	cv2Cutoff = 0.49
)

// XYZ boundaries: X is CV <= 0.5, Y is 0.5 < CV <= 1.0, Z is CV > 1.0.
const (
	cvCutoffX = 0.5
	cvCutoffY = 1.0
)

// ABC split on cumulative revenue share: first 80% is A, next 15% B,
// remaining 5% C.
const (
	abcCutoffA = 0.80
	abcCutoffB = 0.95
)

// Classify derives the full demand profile of one SKU from its history.
// revenueRankPercentile is the SKU's position in the cross-item cumulative
// revenue ranking (0 = top earner, 1 = bottom); ranking itself needs
// visibility across the whole catalog and is computed by the caller.
func Classify(series []domain.TimeSeriesPoint, revenueRankPercentile float64) (domain.SKUClassification, error) {
	if len(series) < domain.MinHistoryPeriods {
		return domain.SKUClassification{}, fmt.Errorf("%w: need %d periods, got %d",
			domain.ErrInsufficientHistory, domain.MinHistoryPeriods, len(series))
	}
	if revenueRankPercentile < 0 || revenueRankPercentile > 1 {
		return domain.SKUClassification{}, fmt.Errorf("%w: revenue rank percentile %.4f outside [0,1]",
			domain.ErrInvalidInput, revenueRankPercentile)
	}

	values := domain.Quantities(series)
	for i, v := range values {
		if v < 0 {
			return domain.SKUClassification{}, fmt.Errorf("%w: negative quantity %.2f at period %d",
				domain.ErrInvalidInput, v, i)
		}
	}

	abc := abcClass(revenueRankPercentile)
	nonzero := domain.NonzeroCount(values)

	if nonzero == 0 {
		// All-zero history: no mean to normalize by, so CV is undefined.
		// Treat as maximal variability and flag it instead of failing.
		c := domain.SKUClassification{
			ABCClass:              abc,
			XYZClass:              domain.ClassZ,
			DemandPattern:         domain.PatternLumpy,
			CoefficientOfVar:      0,
			AverageDemandInterval: float64(len(series)),
			Degenerate:            true,
		}
		c.ForecastabilityScore = forecastability(c.ABCClass, c.XYZClass, c.DemandPattern)
		c.RecommendedMethod = routeMethod(c.ABCClass, c.XYZClass, c.DemandPattern)
		c.ExpectedMAPERange = expectedMAPE(c.XYZClass, c.DemandPattern)
		log := logger.With("classifier")
		log.Warn().
			Int("periods", len(series)).
			Msg("all-zero demand history, classified as degenerate lumpy")
		return c, nil
	}

	mean := domain.Mean(values)
	cv := domain.StdDev(values) / mean
	adi := float64(len(values)) / float64(nonzero)

	c := domain.SKUClassification{
		ABCClass:              abc,
		XYZClass:              xyzClass(cv),
		DemandPattern:         pattern(adi, cv),
		CoefficientOfVar:      cv,
		AverageDemandInterval: adi,
	}
	c.ForecastabilityScore = forecastability(c.ABCClass, c.XYZClass, c.DemandPattern)
	c.RecommendedMethod = routeMethod(c.ABCClass, c.XYZClass, c.DemandPattern)
	c.ExpectedMAPERange = expectedMAPE(c.XYZClass, c.DemandPattern)

	return c, nil
}

func abcClass(percentile float64) domain.ABCClass {
	switch {
	case percentile <= abcCutoffA:
		return domain.ClassA
	case percentile <= abcCutoffB:
		return domain.ClassB
	default:
		return domain.ClassC
	}
}

func xyzClass(cv float64) domain.XYZClass {
	switch {
	case cv <= cvCutoffX:
		return domain.ClassX
	case cv <= cvCutoffY:
		return domain.ClassY
	default:
		return domain.ClassZ
	}
}

// pattern is the single total function producing the demand pattern; every
// (adi, cv) pair maps to exactly one variant.
func pattern(adi, cv float64) domain.DemandPattern {
	cv2 := cv * cv
	switch {
	case adi >= adiCutoff && cv2 >= cv2Cutoff:
		return domain.PatternLumpy
	case adi >= adiCutoff:
		return domain.PatternIntermittent
	default:
		return domain.PatternRegular
	}
}

// Forecastability is a monotone product of per-axis factors: better segments
// on any axis never score lower. A-X-regular lands exactly at 1.0,
// C-Z-lumpy near 0.13.
var (
	abcFactor = map[domain.ABCClass]float64{
		domain.ClassA: 1.0,
		domain.ClassB: 0.9,
		domain.ClassC: 0.7,
	}
	xyzFactor = map[domain.XYZClass]float64{
		domain.ClassX: 1.0,
		domain.ClassY: 0.75,
		domain.ClassZ: 0.45,
	}
	patternFactor = map[domain.DemandPattern]float64{
		domain.PatternRegular:      1.0,
		domain.PatternIntermittent: 0.7,
		domain.PatternLumpy:        0.4,
	}
)

func forecastability(abc domain.ABCClass, xyz domain.XYZClass, p domain.DemandPattern) float64 {
	return abcFactor[abc] * xyzFactor[xyz] * patternFactor[p]
}

// routeMethod is the fixed routing table from classification to method.
// C-Z items override everything: they are not worth more than a min/max
// band regardless of pattern.
func routeMethod(abc domain.ABCClass, xyz domain.XYZClass, p domain.DemandPattern) domain.MethodID {
	if abc == domain.ClassC && xyz == domain.ClassZ {
		return domain.MethodMinMax
	}

	switch p {
	case domain.PatternLumpy:
		return domain.MethodSBA
	case domain.PatternIntermittent:
		return domain.MethodCroston
	default:
		if abc == domain.ClassC {
			return domain.MethodMovingAverage
		}
		return domain.MethodML
	}
}

// expectedMAPE is calibration metadata: the accuracy band historically seen
// for each segment, keyed by variability class and widened for non-regular
// patterns. Not derived from live data.
var baseMAPE = map[domain.XYZClass]domain.MAPERange{
	domain.ClassX: {Low: 5, High: 15},
	domain.ClassY: {Low: 15, High: 35},
	domain.ClassZ: {Low: 35, High: 70},
}

func expectedMAPE(xyz domain.XYZClass, p domain.DemandPattern) domain.MAPERange {
	r := baseMAPE[xyz]
	switch p {
	case domain.PatternIntermittent:
		r.Low += 10
		r.High += 15
	case domain.PatternLumpy:
		r.Low += 20
		r.High += 30
	}
	return r
}
