package tracker

import "trade-tracker-go/internal/models"

// StatusFilter selects a subset of trades by derived result.
type StatusFilter string

const (
	FilterAll    StatusFilter = "all"
	FilterActive StatusFilter = "active"
	FilterWin    StatusFilter = "win"
	FilterLoss   StatusFilter = "loss"
)

// ParseStatusFilter maps a query value to a filter, defaulting to "all".
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(s) {
	case FilterActive, FilterWin, FilterLoss:
		return StatusFilter(s)
	default:
		return FilterAll
	}
}

// FilterTrades returns the trades whose derived result matches the filter,
// preserving input order. The input slice is never mutated; the result is
// always a fresh slice.
func FilterTrades(trades []models.Trade, filter StatusFilter) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		switch filter {
		case FilterActive:
			if Classify(t) != ResultActive {
				continue
			}
		case FilterWin:
			if Classify(t) != ResultWin {
				continue
			}
		case FilterLoss:
			if Classify(t) != ResultLoss {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
