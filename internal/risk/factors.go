package risk

// Each factor scorer maps one fundamental metric to an integer score in
// [0, 20]. The scorers are piecewise-constant over fixed buckets; the
// boundary inclusivity differs between factors and is part of the contract,
// so the guard chains below are not normalized to a common shape.

// scoreValuation scores the price-to-earnings ratio. A negative or zero P/E
// means the company is loss-making and scores nothing.
func scoreValuation(pe float64) int {
	switch {
	case pe <= 0:
		return 0
	case pe < 10:
		return 15
	case pe <= 20:
		return 20
	case pe <= 30:
		return 15
	case pe <= 50:
		return 10
	default:
		return 5
	}
}

// scoreProfitability scores earnings per share.
func scoreProfitability(eps float64) int {
	switch {
	case eps <= 0:
		return 0
	case eps < 1:
		return 5
	case eps < 3:
		return 10
	case eps < 6:
		return 15
	default:
		return 20
	}
}

// scoreVolatility scores beta. Lower beta scores higher; a negative beta is
// unusual enough to score low outright.
func scoreVolatility(beta float64) int {
	switch {
	case beta < 0:
		return 5
	case beta <= 0.5:
		return 20
	case beta <= 0.8:
		return 18
	case beta <= 1.0:
		return 15
	case beta <= 1.3:
		return 12
	case beta <= 1.6:
		return 8
	default:
		return 4
	}
}

// scoreSize scores market capitalization in dollars.
func scoreSize(marketCap float64) int {
	switch {
	case marketCap >= 200e9:
		return 20
	case marketCap >= 50e9:
		return 18
	case marketCap >= 10e9:
		return 15
	case marketCap >= 2e9:
		return 10
	case marketCap >= 300e6:
		return 5
	default:
		return 2
	}
}

// scorePriceStrength scores where the price sits in the 52-week range.
// When the range is degenerate (high == low) the position is undefined and
// the factor settles on a fixed mid score.
func scorePriceStrength(price, high52, low52 float64) int {
	if high52 == low52 {
		return 10
	}
	pct := (price - low52) / (high52 - low52)
	switch {
	case pct >= 0.8:
		return 20
	case pct >= 0.6:
		return 16
	case pct >= 0.4:
		return 12
	case pct >= 0.2:
		return 8
	default:
		return 4
	}
}
