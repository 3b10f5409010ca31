package tracker

import (
	"testing"

	"trade-tracker-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, models.TradeStats{
		TotalTrades:  0,
		Wins:         0,
		Losses:       0,
		WinRate:      "0.0",
		TotalProfit:  0,
		AvgWin:       "0",
		AvgLoss:      "0",
		ProfitFactor: "0.00",
	}, stats)
}

func TestComputeStatsOnlyActiveTrades(t *testing.T) {
	stats := ComputeStats([]models.Trade{openTrade(), openTrade()})

	assert.Zero(t, stats.TotalTrades)
	assert.Equal(t, "0.0", stats.WinRate)
	assert.Equal(t, "0", stats.AvgWin)
	assert.Equal(t, "0", stats.AvgLoss)
	assert.Equal(t, "0.00", stats.ProfitFactor)
}

func TestComputeStats(t *testing.T) {
	trades := []models.Trade{
		closedTrade(300),  // win
		closedTrade(100),  // win
		closedTrade(-200), // loss
		closedTrade(0),    // breakeven counts as win
		openTrade(),       // excluded
	}

	stats := ComputeStats(trades)

	assert.Equal(t, 4, stats.TotalTrades)
	assert.Equal(t, 3, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, "75.0", stats.WinRate)
	assert.InDelta(t, 200.0, stats.TotalProfit, 1e-9)
	assert.Equal(t, "133.33", stats.AvgWin)
	assert.Equal(t, "200.00", stats.AvgLoss)
	assert.Equal(t, "0.67", stats.ProfitFactor)
}

func TestComputeStatsAllWins(t *testing.T) {
	stats := ComputeStats([]models.Trade{closedTrade(50), closedTrade(150)})

	assert.Equal(t, "100.0", stats.WinRate)
	assert.Equal(t, "100.00", stats.AvgWin)
	// No losses: the profit factor denominator is zero and must collapse
	// to the fixed default rather than Infinity.
	assert.Equal(t, "0", stats.AvgLoss)
	assert.Equal(t, "0.00", stats.ProfitFactor)
}

func TestComputeStatsAdditiveTotalProfit(t *testing.T) {
	setA := []models.Trade{closedTrade(120), closedTrade(-80)}
	setB := []models.Trade{closedTrade(-30), closedTrade(0), closedTrade(45)}

	union := append(append([]models.Trade{}, setA...), setB...)

	sumParts := ComputeStats(setA).TotalProfit + ComputeStats(setB).TotalProfit
	assert.InDelta(t, sumParts, ComputeStats(union).TotalProfit, 1e-9)
}

func TestComputeStatsOrderIndependent(t *testing.T) {
	forward := []models.Trade{closedTrade(10), closedTrade(-20), closedTrade(30), openTrade()}
	reversed := []models.Trade{openTrade(), closedTrade(30), closedTrade(-20), closedTrade(10)}

	assert.Equal(t, ComputeStats(forward), ComputeStats(reversed))
}

func TestResolveStatsPrefersServerAggregate(t *testing.T) {
	server := &models.TradeStats{
		TotalTrades:  250,
		Wins:         150,
		Losses:       100,
		WinRate:      "60.0",
		TotalProfit:  12345.67,
		AvgWin:       "210.40",
		AvgLoss:      "95.10",
		ProfitFactor: "2.21",
	}
	// Local page holds a single trade; the server aggregate covers the
	// whole room and wins.
	trades := []models.Trade{closedTrade(10)}

	assert.Equal(t, *server, ResolveStats(server, trades))
	assert.Equal(t, ComputeStats(trades), ResolveStats(nil, trades))
}
