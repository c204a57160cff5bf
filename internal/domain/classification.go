// internal/domain/classification.go
package domain

// ABCClass segments SKUs by revenue contribution (80/15/5 split).
type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// XYZClass segments SKUs by demand variability.
type XYZClass string

const (
	ClassX XYZClass = "X" // CV <= 0.5
	ClassY XYZClass = "Y" // 0.5 < CV <= 1.0
	ClassZ XYZClass = "Z" // CV > 1.0
)

// DemandPattern is the Syntetos-Boylan demand shape category.
type DemandPattern string

const (
	PatternRegular      DemandPattern = "regular"
	PatternIntermittent DemandPattern = "intermittent"
	PatternLumpy        DemandPattern = "lumpy"
)

// MethodID identifies a forecasting method in the registry.
type MethodID string

const (
	MethodML            MethodID = "ml"
	MethodMovingAverage MethodID = "moving_average"
	MethodSBA           MethodID = "sba"
	MethodCroston       MethodID = "croston"
	MethodMinMax        MethodID = "min_max"
)

// MAPERange is the expected accuracy band for a segment, used as
// calibration metadata rather than a live measurement.
type MAPERange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// SKUClassification is the full demand profile of one SKU. It is a pure
// derivation from the history: recomputed whenever new history arrives,
// never mutated in place.
type SKUClassification struct {
	ABCClass              ABCClass      `json:"abc_class"`
	XYZClass              XYZClass      `json:"xyz_class"`
	DemandPattern         DemandPattern `json:"demand_pattern"`
	CoefficientOfVar      float64       `json:"coefficient_of_variation"`
	AverageDemandInterval float64       `json:"average_demand_interval"`
	ForecastabilityScore  float64       `json:"forecastability_score"`
	RecommendedMethod     MethodID      `json:"recommended_method"`
	ExpectedMAPERange     MAPERange     `json:"expected_mape_range"`

	// Degenerate marks an all-zero history. The SKU is carried as Z/lumpy
	// with CV left at zero rather than an infinity sentinel.
	Degenerate bool `json:"degenerate,omitempty"`
}
