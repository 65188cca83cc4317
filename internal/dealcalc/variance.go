package dealcalc

// Variances are the three signed deltas between the budget columns of one
// line item. They are always recomputable from the base amounts and are
// never stored as independent truth.
type Variances struct {
	// Forecast is forecast minus underwriting: how far bids moved from the
	// original estimate.
	Forecast float64 `json:"forecastVariance"`

	// Actual is actual spend minus the best available estimate: the
	// forecast when one exists, otherwise the underwriting amount.
	Actual float64 `json:"actualVariance"`

	// Total is actual spend minus underwriting, independent of forecast.
	Total float64 `json:"totalVariance"`
}

// ComputeVariances computes the three deltas for one budget line. A nil
// actual is treated as 0; forecast is optional per line, so actual spend is
// compared against the forecast when one exists and falls back to the
// underwriting amount otherwise.
func ComputeVariances(underwriting, forecast float64, actual *float64) Variances {
	spent := 0.0
	if actual != nil {
		spent = *actual
	}

	baseline := underwriting
	if forecast > 0 {
		baseline = forecast
	}

	return Variances{
		Forecast: forecast - underwriting,
		Actual:   spent - baseline,
		Total:    spent - underwriting,
	}
}
