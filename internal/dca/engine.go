package dca

import (
	"errors"
	"math"

	"dcalab/pkg/model"
)

// ErrEmptySeries is returned when a simulation is attempted on a price
// series with no points.
var ErrEmptySeries = errors.New("price series is empty")

// Simulate replays the price series under a single strategy. The series must
// be ordered by ascending date; the loader guarantees this.
//
// The pass keeps running share and invested totals at full precision and
// records portfolio value and cumulative invested for every date, whether or
// not a buy occurred. Summary statistics are rounded to 2 decimal places;
// the rounding never feeds back into the accumulation.
func Simulate(series []model.PricePoint, strategy Strategy) (*model.SimulationResult, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	var (
		totalShares   float64
		totalInvested float64
		buyCount      int
	)

	portfolio := make([]model.SeriesPoint, 0, len(series))
	invested := make([]model.SeriesPoint, 0, len(series))

	for _, point := range series {
		if strategy.BuyOn(point.Date) {
			totalShares += strategy.AmountPerBuy / point.Close
			totalInvested += strategy.AmountPerBuy
			buyCount++
		}

		portfolio = append(portfolio, model.SeriesPoint{
			Date:  point.Date,
			Value: totalShares * point.Close,
		})
		invested = append(invested, model.SeriesPoint{
			Date:  point.Date,
			Value: totalInvested,
		})
	}

	finalValue := portfolio[len(portfolio)-1].Value
	gain := finalValue - totalInvested

	gainPct := 0.0
	if totalInvested > 0 {
		gainPct = gain / totalInvested * 100
	}

	return &model.SimulationResult{
		Strategy:       strategy.Name,
		TotalInvested:  round2(totalInvested),
		FinalValue:     round2(finalValue),
		GainAbs:        round2(gain),
		GainPct:        round2(gainPct),
		MaxDrawdownPct: round2(maxDrawdown(portfolio)),
		BuyCount:       buyCount,
		Portfolio:      portfolio,
		Invested:       invested,
	}, nil
}

// maxDrawdown returns the largest peak-to-trough decline as a negative
// percentage of the running peak. Dates before any capital is invested have
// a running peak of zero and count as zero drawdown.
func maxDrawdown(portfolio []model.SeriesPoint) float64 {
	var runningMax, maxDD float64
	for _, p := range portfolio {
		if p.Value > runningMax {
			runningMax = p.Value
		}
		if runningMax == 0 {
			continue
		}
		dd := (p.Value - runningMax) / runningMax * 100
		if dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
