// internal/config/config.go
package config

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Forecast  ForecastConfig
	Inventory InventoryConfig
	ML        MLConfig
}

type AppConfig struct {
	LogLevel string
}

type ForecastConfig struct {
	QuantileLevels []float64
	MaxHorizon     int
	BaselineWindow int
	CrostonAlpha   float64
	Workers        int
}

type InventoryConfig struct {
	ServiceLevel    float64
	SafetyStockDays float64
	MOQ             float64
}

type MLConfig struct {
	BaseURL string
	Timeout time.Duration
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("FORECAST_QUANTILE_LEVELS", "0.1,0.5,0.9")
		viper.SetDefault("FORECAST_MAX_HORIZON", 365)
		viper.SetDefault("FORECAST_BASELINE_WINDOW", 7)
		viper.SetDefault("FORECAST_CROSTON_ALPHA", 0.1)
		viper.SetDefault("FORECAST_WORKERS", 4)
		viper.SetDefault("INVENTORY_SERVICE_LEVEL", 0.95)
		viper.SetDefault("INVENTORY_SAFETY_STOCK_DAYS", 7.0)
		viper.SetDefault("INVENTORY_MOQ", 0.0)
		viper.SetDefault("ML_BASE_URL", "http://localhost:8000")
		viper.SetDefault("ML_TIMEOUT_SECONDS", 30)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			App: AppConfig{
				LogLevel: viper.GetString("LOG_LEVEL"),
			},
			Forecast: ForecastConfig{
				QuantileLevels: quantileLevels(),
				MaxHorizon:     viper.GetInt("FORECAST_MAX_HORIZON"),
				BaselineWindow: viper.GetInt("FORECAST_BASELINE_WINDOW"),
				CrostonAlpha:   viper.GetFloat64("FORECAST_CROSTON_ALPHA"),
				Workers:        viper.GetInt("FORECAST_WORKERS"),
			},
			Inventory: InventoryConfig{
				ServiceLevel:    viper.GetFloat64("INVENTORY_SERVICE_LEVEL"),
				SafetyStockDays: viper.GetFloat64("INVENTORY_SAFETY_STOCK_DAYS"),
				MOQ:             viper.GetFloat64("INVENTORY_MOQ"),
			},
			ML: MLConfig{
				BaseURL: viper.GetString("ML_BASE_URL"),
				Timeout: time.Duration(viper.GetInt("ML_TIMEOUT_SECONDS")) * time.Second,
			},
		}
	})

	return instance
}

// quantileLevels reads FORECAST_QUANTILE_LEVELS, falling back to the default
// p10/p50/p90 bands when the value is empty or unparsable.
func quantileLevels() []float64 {
	raw := strings.Split(viper.GetString("FORECAST_QUANTILE_LEVELS"), ",")
	levels := make([]float64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			continue
		}
		if v > 0 && v < 1 {
			levels = append(levels, v)
		}
	}
	if len(levels) == 0 {
		return []float64{0.1, 0.5, 0.9}
	}
	return levels
}
