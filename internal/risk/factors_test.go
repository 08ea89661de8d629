package risk

import "testing"

func TestScoreValuation(t *testing.T) {
	cases := []struct {
		pe   float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{0.01, 15},
		{9.99, 15},
		{10, 20}, // inclusive lower bound
		{15, 20},
		{20, 20}, // inclusive upper bound
		{20.01, 15},
		{30, 15},
		{30.01, 10},
		{50, 10},
		{50.01, 5},
		{500, 5},
	}
	for _, tt := range cases {
		if got := scoreValuation(tt.pe); got != tt.want {
			t.Errorf("scoreValuation(%g) = %d, want %d", tt.pe, got, tt.want)
		}
	}
}

func TestScoreProfitability(t *testing.T) {
	cases := []struct {
		eps  float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.5, 5},
		{0.99, 5},
		{1, 10}, // inclusive lower bound
		{2.99, 10},
		{3, 15},
		{5.99, 15},
		{6, 20},
		{12, 20},
	}
	for _, tt := range cases {
		if got := scoreProfitability(tt.eps); got != tt.want {
			t.Errorf("scoreProfitability(%g) = %d, want %d", tt.eps, got, tt.want)
		}
	}
}

func TestScoreVolatility(t *testing.T) {
	cases := []struct {
		beta float64
		want int
	}{
		{-0.2, 5},
		{0, 20},
		{0.5, 20}, // inclusive upper bound
		{0.51, 18},
		{0.8, 18},
		{0.81, 15},
		{1.0, 15},
		{1.01, 12},
		{1.3, 12},
		{1.31, 8},
		{1.6, 8},
		{1.61, 4},
		{3, 4},
	}
	for _, tt := range cases {
		if got := scoreVolatility(tt.beta); got != tt.want {
			t.Errorf("scoreVolatility(%g) = %d, want %d", tt.beta, got, tt.want)
		}
	}
}

func TestScoreSize(t *testing.T) {
	cases := []struct {
		cap  float64
		want int
	}{
		{250e9, 20},
		{200e9, 20}, // inclusive lower bound
		{199e9, 18},
		{50e9, 18},
		{49e9, 15},
		{10e9, 15},
		{9e9, 10},
		{2e9, 10},
		{1.9e9, 5},
		{300e6, 5},
		{299e6, 2},
		{0, 2},
	}
	for _, tt := range cases {
		if got := scoreSize(tt.cap); got != tt.want {
			t.Errorf("scoreSize(%g) = %d, want %d", tt.cap, got, tt.want)
		}
	}
}

func TestScorePriceStrength(t *testing.T) {
	cases := []struct {
		name              string
		price, high, low  float64
		want              int
	}{
		{"at high", 100, 100, 50, 20},
		{"80pct of range", 90, 100, 50, 20}, // pct = 0.8, inclusive
		{"just below 80pct", 89.9, 100, 50, 16},
		{"60pct", 80, 100, 50, 16},
		{"40pct", 70, 100, 50, 12},
		{"20pct", 60, 100, 50, 8},
		{"at low", 50, 100, 50, 4},
		{"below low", 45, 100, 50, 4},
		{"degenerate range", 75, 75, 75, 10},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorePriceStrength(tt.price, tt.high, tt.low); got != tt.want {
				t.Errorf("scorePriceStrength(%g, %g, %g) = %d, want %d",
					tt.price, tt.high, tt.low, got, tt.want)
			}
		})
	}
}

func TestFactorScoreRange(t *testing.T) {
	// Every factor stays inside [0, 20] across a sweep of inputs
	inputs := []float64{-1e12, -100, -1.5, -0.001, 0, 0.3, 0.999, 1, 2.5, 5, 9.99,
		10, 19, 20, 29, 42, 55, 300e6, 5e9, 80e9, 500e9, 1e15}

	check := func(name string, got int) {
		if got < 0 || got > 20 {
			t.Errorf("%s produced out-of-range score %d", name, got)
		}
	}
	for _, v := range inputs {
		check("valuation", scoreValuation(v))
		check("profitability", scoreProfitability(v))
		check("volatility", scoreVolatility(v))
		check("size", scoreSize(v))
		check("price strength", scorePriceStrength(v, 100, 50))
	}
}
