package dca

import (
	"time"

	"dcalab/pkg/model"
)

// Strategy defines a periodic purchase rule: on which dates to buy and how
// much to spend per buy.
type Strategy struct {
	Name         string
	AmountPerBuy float64
	BuyOn        func(date time.Time) bool
}

// Weekdays covered by the per-weekday strategies, in generation order.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// GenerateStrategies builds the fixed comparison set for a weekly budget:
// a "Daily" strategy spending budget/5 on every trading day, and one
// "Every <Weekday>" strategy per weekday spending the full budget on that
// day. Generation order is stable and used as the comparison tie-break.
func GenerateStrategies(weeklyBudget float64) []Strategy {
	strategies := []Strategy{
		{
			Name:         "Daily",
			AmountPerBuy: weeklyBudget / 5,
			BuyOn:        func(time.Time) bool { return true },
		},
	}

	for _, day := range Weekdays {
		strategies = append(strategies, Strategy{
			Name:         "Every " + day.String(),
			AmountPerBuy: weeklyBudget,
			BuyOn:        func(date time.Time) bool { return date.Weekday() == day },
		})
	}

	return strategies
}

// BuyDays counts the dates in the series where the strategy's predicate
// holds. Used to exclude strategies with no buy opportunities.
func (s Strategy) BuyDays(series []model.PricePoint) int {
	count := 0
	for _, p := range series {
		if s.BuyOn(p.Date) {
			count++
		}
	}
	return count
}
