// internal/inventory/calculator.go
package inventory

import (
	"fmt"
	"math"
	"time"

	"github.com/andresuchdata/demandcast/internal/domain"
)

// Service-level Z scores. Unlisted levels fall back to the 95% score.
var zScores = map[float64]float64{
	0.90: 1.28,
	0.95: 1.65,
	0.99: 2.33,
}

const defaultZScore = 1.65

// Stockout risk bands on projected horizon demand vs current stock.
const (
	riskLowBelow = 50
	riskMedBelow = 70
	riskHighUpTo = 90
)

// Calculator derives operational inventory metrics from a forecast summary.
// All methods are pure; the struct only carries fallback defaults.
type Calculator struct {
	defaults domain.InventoryParams
}

// NewCalculator builds a calculator whose defaults fill unset params.
func NewCalculator(defaults domain.InventoryParams) *Calculator {
	return &Calculator{defaults: defaults}
}

// Calculate computes all inventory metrics for one SKU.
// now anchors the stockout date projection.
func (c *Calculator) Calculate(summary domain.ForecastSummary, params domain.InventoryParams, now time.Time) (domain.InventoryMetrics, error) {
	params = c.applyDefaults(params)

	if err := validateParams(params); err != nil {
		return domain.InventoryMetrics{}, err
	}

	metrics := domain.InventoryMetrics{}

	// 1. Days of inventory remaining. Zero demand means the stock lasts
	// forever: +Inf, not an error.
	if summary.AvgDailyDemand > 0 {
		metrics.DaysOfInventoryRemaining = params.CurrentStock / summary.AvgDailyDemand
	} else {
		metrics.DaysOfInventoryRemaining = math.Inf(1)
	}

	// 2. Safety stock: variance-based when the caller supplied a demand
	// standard deviation, simplified day-count otherwise.
	metrics.SafetyStock = safetyStock(summary.AvgDailyDemand, params)

	// 3. Reorder point
	metrics.ReorderPoint = reorderPoint(summary.AvgDailyDemand, params.LeadTimeDays, metrics.SafetyStock)

	// 4. Recommended order quantity, floored at the MOQ
	orderQty := summary.HorizonTotalDemand + metrics.SafetyStock - params.CurrentStock
	metrics.RecommendedOrderQty = math.Max(orderQty, math.Max(params.MOQ, 0))

	// 5. Stockout risk
	metrics.StockoutRiskPct, metrics.StockoutRisk = stockoutRisk(summary.HorizonTotalDemand, params.CurrentStock)

	// 6. Stockout date projection
	if summary.AvgDailyDemand > 0 {
		days := params.CurrentStock / summary.AvgDailyDemand
		date := now.AddDate(0, 0, int(math.Floor(days)))
		metrics.StockoutDate = &date
	}

	return metrics, nil
}

func (c *Calculator) applyDefaults(params domain.InventoryParams) domain.InventoryParams {
	if params.ServiceLevel == 0 {
		params.ServiceLevel = c.defaults.ServiceLevel
	}
	if params.SafetyStockDays == 0 {
		params.SafetyStockDays = c.defaults.SafetyStockDays
	}
	if params.MOQ == 0 {
		params.MOQ = c.defaults.MOQ
	}
	return params
}

// validateParams is a hard gate: there is no sensible default for a
// negative lead time or stock, so nothing is clamped.
func validateParams(params domain.InventoryParams) error {
	if params.LeadTimeDays < 0 {
		return fmt.Errorf("%w: negative lead time %.2f", domain.ErrInvalidInput, params.LeadTimeDays)
	}
	if params.CurrentStock < 0 {
		return fmt.Errorf("%w: negative current stock %.2f", domain.ErrInvalidInput, params.CurrentStock)
	}
	if params.ServiceLevel <= 0 || params.ServiceLevel >= 1 {
		return fmt.Errorf("%w: service level %.4f outside (0,1)", domain.ErrInvalidInput, params.ServiceLevel)
	}
	return nil
}

func zScore(serviceLevel float64) float64 {
	if z, ok := zScores[serviceLevel]; ok {
		return z
	}
	return defaultZScore
}

func safetyStock(avgDailyDemand float64, params domain.InventoryParams) float64 {
	z := zScore(params.ServiceLevel)
	if params.DemandStdDev > 0 {
		return z * params.DemandStdDev * math.Sqrt(params.LeadTimeDays)
	}
	return avgDailyDemand * params.SafetyStockDays * (1 + z*0.2)
}

func reorderPoint(avgDailyDemand, leadTimeDays, safetyStock float64) float64 {
	return avgDailyDemand*leadTimeDays + safetyStock
}

// stockoutRisk expresses horizon demand as a percentage of current stock.
// No stock at all is always critical.
func stockoutRisk(horizonTotalDemand, currentStock float64) (float64, domain.StockoutRisk) {
	if currentStock <= 0 {
		return 100, domain.RiskCritical
	}

	pct := horizonTotalDemand / currentStock * 100
	switch {
	case pct < riskLowBelow:
		return pct, domain.RiskLow
	case pct < riskMedBelow:
		return pct, domain.RiskMedium
	case pct <= riskHighUpTo:
		return pct, domain.RiskHigh
	default:
		return pct, domain.RiskCritical
	}
}
