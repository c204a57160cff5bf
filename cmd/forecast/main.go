package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/andresuchdata/demandcast/internal/classifier"
	"github.com/andresuchdata/demandcast/internal/config"
	"github.com/andresuchdata/demandcast/internal/data"
	"github.com/andresuchdata/demandcast/internal/domain"
	"github.com/andresuchdata/demandcast/internal/forecast"
	"github.com/andresuchdata/demandcast/internal/inventory"
	"github.com/andresuchdata/demandcast/internal/mlservice"
	"github.com/andresuchdata/demandcast/internal/orchestrator"
	"github.com/andresuchdata/demandcast/internal/quality"
	"github.com/andresuchdata/demandcast/pkg/logger"
)

// runOutput is what one SKU's forecast run prints.
type runOutput struct {
	Input     string                   `json:"input"`
	Outcome   *domain.ForecastOutcome  `json:"outcome,omitempty"`
	Inventory *domain.InventoryMetrics `json:"inventory,omitempty"`
	Error     string                   `json:"error,omitempty"`
}

func buildRegistry(cfg *config.Config) *forecast.Registry {
	registry := forecast.NewRegistry()
	registry.Register(domain.MethodMovingAverage, func() forecast.Model {
		return &forecast.MovingAverage{Window: cfg.Forecast.BaselineWindow}
	})
	registry.Register(domain.MethodSBA, func() forecast.Model { return forecast.NewSBA() })
	registry.Register(domain.MethodCroston, func() forecast.Model {
		return &forecast.Croston{Alpha: cfg.Forecast.CrostonAlpha}
	})
	registry.Register(domain.MethodMinMax, func() forecast.Model { return forecast.NewMinMax() })
	registry.Register(domain.MethodML, func() forecast.Model {
		return forecast.NewMLAdapter(mlservice.Shared(cfg.ML.BaseURL, cfg.ML.Timeout), cfg.ML.Timeout)
	})
	return registry
}

func runForecast(c *cli.Context) error {
	cfg := config.Load()
	registry := buildRegistry(cfg)
	orch := orchestrator.New(registry)
	calc := inventory.NewCalculator(domain.InventoryParams{
		ServiceLevel:    cfg.Inventory.ServiceLevel,
		SafetyStockDays: cfg.Inventory.SafetyStockDays,
		MOQ:             cfg.Inventory.MOQ,
	})

	req := orchestrator.Request{
		Horizon:               c.Int("horizon"),
		Method:                domain.MethodID(c.String("method")),
		WithBaseline:          c.Bool("baseline"),
		QuantileLevels:        cfg.Forecast.QuantileLevels,
		RevenueRankPercentile: c.Float64("revenue-percentile"),
	}

	inputs := c.StringSlice("input")
	if len(inputs) == 0 {
		return cli.Exit("at least one --input CSV is required", 1)
	}

	outputs := make([]runOutput, len(inputs))

	// Each SKU is an independent run; failures are reported per input,
	// not fatal to the batch.
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(cfg.Forecast.Workers)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			outputs[i] = runOne(ctx, orch, calc, input, req, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printJSON(outputs)
}

func runOne(ctx context.Context, orch *orchestrator.Orchestrator, calc *inventory.Calculator, input string, req orchestrator.Request, c *cli.Context) runOutput {
	out := runOutput{Input: input}

	series, err := data.LoadSeries(input)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	outcome, err := orch.Run(ctx, series, req)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Outcome = outcome

	if c.IsSet("stock") {
		metrics, err := calc.Calculate(outcome.Summary(), domain.InventoryParams{
			CurrentStock: c.Float64("stock"),
			LeadTimeDays: c.Float64("lead-time"),
			DemandStdDev: c.Float64("demand-stddev"),
		}, time.Now())
		if err != nil {
			out.Error = err.Error()
			return out
		}
		out.Inventory = &metrics
	}

	return out
}

func runClassify(c *cli.Context) error {
	series, err := data.LoadSeries(c.String("input"))
	if err != nil {
		return err
	}

	classification, err := classifier.Classify(domain.FillGaps(series), c.Float64("revenue-percentile"))
	if err != nil {
		return err
	}

	return printJSON(classification)
}

func runQuality(c *cli.Context) error {
	actuals, forecasts, err := data.LoadPairs(c.String("input"))
	if err != nil {
		return err
	}

	metrics, err := quality.Calculate(actuals, forecasts)
	if err != nil {
		return err
	}

	return printJSON(metrics)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.App.LogLevel)

	inputFlag := &cli.StringFlag{
		Name:     "input",
		Usage:    "Series CSV (date,quantity[,covariates...])",
		Required: true,
	}
	percentileFlag := &cli.Float64Flag{
		Name:  "revenue-percentile",
		Usage: "Cumulative revenue rank percentile of this SKU (0 = top earner)",
		Value: 0.5,
	}

	app := &cli.App{
		Name:  "forecast",
		Usage: "Demand classification and forecast routing engine",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Classify, forecast and derive inventory metrics for one or more SKUs",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "input",
						Usage:    "Series CSV, repeatable for batch runs",
						Required: true,
					},
					percentileFlag,
					&cli.IntFlag{Name: "horizon", Usage: "Days to forecast", Value: 30},
					&cli.StringFlag{Name: "method", Usage: "Override the routed method"},
					&cli.BoolFlag{Name: "baseline", Usage: "Also run the moving-average baseline"},
					&cli.Float64Flag{Name: "stock", Usage: "Current stock on hand"},
					&cli.Float64Flag{Name: "lead-time", Usage: "Supplier lead time in days", Value: 7},
					&cli.Float64Flag{Name: "demand-stddev", Usage: "Daily demand standard deviation, if known"},
				},
				Action: runForecast,
			},
			{
				Name:   "classify",
				Usage:  "Print the SKU classification without running models",
				Flags:  []cli.Flag{inputFlag, percentileFlag},
				Action: runClassify,
			},
			{
				Name:   "quality",
				Usage:  "Compute accuracy metrics from an actual/forecast CSV",
				Flags:  []cli.Flag{inputFlag},
				Action: runQuality,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}
