package dca

import (
	"errors"
	"fmt"

	"dcalab/pkg/model"
)

// ErrNoViableStrategy is returned when every generated strategy has zero buy
// days in the analysis window.
var ErrNoViableStrategy = errors.New("no strategy has any buy days in the analysis window")

// Compare runs the simulation engine once per strategy and ranks the
// results. Strategies with zero buy days are excluded and reported as
// warnings; the comparison only fails when the exclusions empty the whole
// set.
//
// The best strategy is the one with the maximum absolute gain. Ties go to
// the strategy generated first, so the selection is a single linear scan
// over generation order rather than a sort.
func Compare(series []model.PricePoint, strategies []Strategy) (*model.ComparisonResult, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	cmp := &model.ComparisonResult{
		Period: series[0].Date.Format("2006-01-02") + " ~ " +
			series[len(series)-1].Date.Format("2006-01-02"),
		DataPoints: len(series),
	}

	for _, strategy := range strategies {
		if strategy.BuyDays(series) == 0 {
			cmp.Warnings = append(cmp.Warnings, model.StrategyWarning{
				Strategy: strategy.Name,
				Reason:   "no buy days in the analysis window",
			})
			continue
		}

		result, err := Simulate(series, strategy)
		if err != nil {
			return nil, fmt.Errorf("simulating %s: %w", strategy.Name, err)
		}
		cmp.Results = append(cmp.Results, *result)
	}

	if len(cmp.Results) == 0 {
		return nil, ErrNoViableStrategy
	}

	best := 0
	for i := 1; i < len(cmp.Results); i++ {
		if cmp.Results[i].GainAbs > cmp.Results[best].GainAbs {
			best = i
		}
	}
	cmp.Best = cmp.Results[best].Strategy

	return cmp, nil
}
