package model

import "time"

// PricePoint represents a single daily closing price
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// SeriesPoint is one point of a derived time series (portfolio value,
// cumulative invested capital)
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SimulationResult represents the outcome of replaying a price series
// under a single purchase strategy
type SimulationResult struct {
	Strategy       string  `json:"strategy"`
	TotalInvested  float64 `json:"total_invested"`
	FinalValue     float64 `json:"final_value"`
	GainAbs        float64 `json:"gain_abs"`
	GainPct        float64 `json:"gain_pct"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"` // negative or zero
	BuyCount       int     `json:"buy_count"`

	// Per-date series aligned with the input price series
	Portfolio []SeriesPoint `json:"portfolio"`
	Invested  []SeriesPoint `json:"invested"`
}

// StrategyWarning reports a strategy excluded from a comparison
type StrategyWarning struct {
	Strategy string `json:"strategy"`
	Reason   string `json:"reason"`
}

// ComparisonResult represents a full multi-strategy comparison
type ComparisonResult struct {
	Period     string              `json:"period"`
	DataPoints int                 `json:"data_points"`
	Results    []SimulationResult  `json:"results"` // generation order
	Best       string              `json:"best"`    // strategy name with max gain
	Warnings   []StrategyWarning   `json:"warnings,omitempty"`
}

// CompanyMetrics holds the fundamental inputs for risk scoring
type CompanyMetrics struct {
	Identifier string  `json:"identifier"`
	PE         float64 `json:"pe"`
	EPS        float64 `json:"eps"`
	Beta       float64 `json:"beta"`
	MarketCap  float64 `json:"market_cap"`
	High52w    float64 `json:"high_52w"`
	Low52w     float64 `json:"low_52w"`
	Price      float64 `json:"price"`
}

// RiskScore represents the scored output for one company
type RiskScore struct {
	Identifier    string `json:"identifier"`
	Valuation     int    `json:"valuation"`
	Profitability int    `json:"profitability"`
	Volatility    int    `json:"volatility"`
	Size          int    `json:"size"`
	PriceStrength int    `json:"price_strength"`
	Composite     int    `json:"composite"` // sum of the five factors, 0-100
	Label         string `json:"label"`
}

// Risk labels in descending order of composite score
const (
	LabelLowRisk      = "Low Risk"
	LabelModerateRisk = "Moderate Risk"
	LabelElevatedRisk = "Elevated Risk"
	LabelHighRisk     = "High Risk"
)
