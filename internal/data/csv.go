// internal/data/csv.go
package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/andresuchdata/demandcast/internal/domain"
)

const dateLayout = "2006-01-02"

// LoadSeries reads a demand history CSV with a header row. Required columns
// are "date" (YYYY-MM-DD) and "quantity"; any other numeric column becomes a
// covariate with the column name as key.
func LoadSeries(path string) ([]domain.TimeSeriesPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open series file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s has no data rows", path)
	}

	header := records[0]
	dateCol, qtyCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "quantity", "qty":
			qtyCol = i
		}
	}
	if dateCol < 0 || qtyCol < 0 {
		return nil, fmt.Errorf("%s is missing date/quantity columns", path)
	}

	series := make([]domain.TimeSeriesPoint, 0, len(records)-1)
	for rowIdx, record := range records[1:] {
		date, err := time.Parse(dateLayout, strings.TrimSpace(record[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q: %w", rowIdx+2, record[dateCol], err)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(record[qtyCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad quantity %q: %w", rowIdx+2, record[qtyCol], err)
		}

		point := domain.TimeSeriesPoint{Date: date, Quantity: qty}
		for i, cell := range record {
			if i == dateCol || i == qtyCol || i >= len(header) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue
			}
			if point.Covariates == nil {
				point.Covariates = make(map[string]float64)
			}
			point.Covariates[strings.TrimSpace(header[i])] = v
		}
		series = append(series, point)
	}

	return series, nil
}

// LoadPairs reads an accuracy backfill CSV with "actual" and "forecast"
// columns, returning the two aligned slices.
func LoadPairs(path string) (actuals, forecasts []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open pairs file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s has no data rows", path)
	}

	actualCol, forecastCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "actual":
			actualCol = i
		case "forecast":
			forecastCol = i
		}
	}
	if actualCol < 0 || forecastCol < 0 {
		return nil, nil, fmt.Errorf("%s is missing actual/forecast columns", path)
	}

	for rowIdx, record := range records[1:] {
		a, err := strconv.ParseFloat(strings.TrimSpace(record[actualCol]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad actual %q: %w", rowIdx+2, record[actualCol], err)
		}
		fc, err := strconv.ParseFloat(strings.TrimSpace(record[forecastCol]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad forecast %q: %w", rowIdx+2, record[forecastCol], err)
		}
		actuals = append(actuals, a)
		forecasts = append(forecasts, fc)
	}

	return actuals, forecasts, nil
}
