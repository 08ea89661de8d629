package risk

import (
	"sort"

	"dcalab/pkg/model"
)

// labelThresholds maps composite scores to risk labels. Evaluated top-down,
// first match wins; thresholds are inclusive lower bounds.
var labelThresholds = []struct {
	MinScore int
	Label    string
}{
	{80, model.LabelLowRisk},
	{60, model.LabelModerateRisk},
	{40, model.LabelElevatedRisk},
}

func mapLabel(composite int) string {
	for _, t := range labelThresholds {
		if composite >= t.MinScore {
			return t.Label
		}
	}
	return model.LabelHighRisk
}

// Score computes the five factor scores and their composite for one company.
// Every finite input produces a result; non-finite rows are rejected by the
// metrics loader before they reach here.
func Score(m model.CompanyMetrics) model.RiskScore {
	s := model.RiskScore{
		Identifier:    m.Identifier,
		Valuation:     scoreValuation(m.PE),
		Profitability: scoreProfitability(m.EPS),
		Volatility:    scoreVolatility(m.Beta),
		Size:          scoreSize(m.MarketCap),
		PriceStrength: scorePriceStrength(m.Price, m.High52w, m.Low52w),
	}
	s.Composite = s.Valuation + s.Profitability + s.Volatility + s.Size + s.PriceStrength
	s.Label = mapLabel(s.Composite)
	return s
}

// ScoreAll scores every company and returns the results sorted by composite
// score descending.
func ScoreAll(metrics []model.CompanyMetrics) []model.RiskScore {
	scores := make([]model.RiskScore, len(metrics))
	for i, m := range metrics {
		scores[i] = Score(m)
	}
	SortByComposite(scores)
	return scores
}

// SortByComposite sorts scores by composite descending, in place. The sort
// is stable, so rows with equal composites keep their input order.
func SortByComposite(scores []model.RiskScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Composite > scores[j].Composite
	})
}
