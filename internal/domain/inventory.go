// internal/domain/inventory.go
package domain

import "time"

// StockoutRisk buckets the projected horizon demand against current stock.
type StockoutRisk string

const (
	RiskLow      StockoutRisk = "low"
	RiskMedium   StockoutRisk = "medium"
	RiskHigh     StockoutRisk = "high"
	RiskCritical StockoutRisk = "critical"
)

// InventoryParams are the caller-supplied replenishment inputs.
// DemandStdDev is optional: when positive the variance-based safety stock
// formula is used, otherwise the simplified day-count fallback.
type InventoryParams struct {
	CurrentStock    float64 `json:"current_stock"`
	LeadTimeDays    float64 `json:"lead_time_days"`
	ServiceLevel    float64 `json:"service_level"`
	SafetyStockDays float64 `json:"safety_stock_days"`
	MOQ             float64 `json:"moq"`
	DemandStdDev    float64 `json:"demand_std_dev,omitempty"`
}

// InventoryMetrics are the operational outputs derived from one forecast.
type InventoryMetrics struct {
	DaysOfInventoryRemaining float64      `json:"days_of_inventory_remaining"`
	SafetyStock              float64      `json:"safety_stock"`
	ReorderPoint             float64      `json:"reorder_point"`
	RecommendedOrderQty      float64      `json:"recommended_order_qty"`
	StockoutRiskPct          float64      `json:"stockout_risk_pct"`
	StockoutRisk             StockoutRisk `json:"stockout_risk"`
	StockoutDate             *time.Time   `json:"stockout_date,omitempty"`
}
