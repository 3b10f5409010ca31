package tracker

import (
	"fmt"

	"trade-tracker-go/internal/models"
)

// ComputeStats aggregates the closed trades of a collection. Every ratio
// with a possibly-zero denominator falls back to a fixed default so the
// output never contains NaN or Infinity.
func ComputeStats(trades []models.Trade) models.TradeStats {
	stats := models.TradeStats{
		WinRate:      "0.0",
		AvgWin:       "0",
		AvgLoss:      "0",
		ProfitFactor: "0.00",
	}

	var winTotal, lossTotal float64
	for _, t := range trades {
		switch Classify(t) {
		case ResultActive:
			continue
		case ResultWin:
			stats.Wins++
			winTotal += t.PnL
		case ResultLoss:
			stats.Losses++
			lossTotal += -t.PnL
		}
		stats.TotalTrades++
		stats.TotalProfit += t.PnL
	}

	if stats.TotalTrades > 0 {
		stats.WinRate = fmt.Sprintf("%.1f", float64(stats.Wins)/float64(stats.TotalTrades)*100)
	}

	var avgWin, avgLoss float64
	if stats.Wins > 0 {
		avgWin = winTotal / float64(stats.Wins)
		stats.AvgWin = fmt.Sprintf("%.2f", avgWin)
	}
	if stats.Losses > 0 {
		avgLoss = lossTotal / float64(stats.Losses)
		stats.AvgLoss = fmt.Sprintf("%.2f", avgLoss)
	}
	if avgLoss > 0 {
		stats.ProfitFactor = fmt.Sprintf("%.2f", avgWin/avgLoss)
	}

	return stats
}

// ResolveStats prefers a server-provided aggregate over local recomputation:
// server stats may cover trades beyond the fetched page. The local reduction
// is the fallback when the response carried none.
func ResolveStats(server *models.TradeStats, trades []models.Trade) models.TradeStats {
	if server != nil {
		return *server
	}
	return ComputeStats(trades)
}
