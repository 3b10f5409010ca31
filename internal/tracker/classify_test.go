package tracker

import (
	"testing"

	"trade-tracker-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func closedTrade(pnl float64) models.Trade {
	exit := 100 + pnl
	return models.Trade{
		ID:         1,
		Ticker:     "NVDA",
		EntryDate:  "2026-08-03",
		ExitDate:   ptrS("2026-08-10"),
		EntryPrice: 100,
		ExitPrice:  ptrF(exit),
		Quantity:   1,
		PnL:        pnl,
		Status:     models.StatusClosed,
	}
}

func openTrade() models.Trade {
	return models.Trade{
		ID:         2,
		Ticker:     "AAPL",
		EntryDate:  "2026-08-24",
		EntryPrice: 228.40,
		Quantity:   60,
		Status:     models.StatusOpen,
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		trade    models.Trade
		expected Result
	}{
		{"open trade is active", openTrade(), ResultActive},
		{"positive pnl is a win", closedTrade(55.0), ResultWin},
		{"negative pnl is a loss", closedTrade(-12.5), ResultLoss},
		{"breakeven close is a win", closedTrade(0), ResultWin},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.trade))
		})
	}
}

func TestClassifyIgnoresStrayProfitOnOpenTrade(t *testing.T) {
	trade := openTrade()
	trade.PnL = -500 // stale server value; no exit recorded

	assert.Equal(t, ResultActive, Classify(trade))
}

func TestClassifyTotality(t *testing.T) {
	trades := []models.Trade{
		openTrade(),
		closedTrade(10),
		closedTrade(-10),
		closedTrade(0),
	}
	for _, tr := range trades {
		result := Classify(tr)
		assert.Contains(t, []Result{ResultActive, ResultWin, ResultLoss}, result)
		assert.Equal(t, tr.ExitDate == nil, result == ResultActive)
	}
}

func TestNormalizeClearsOpenTradeExitFields(t *testing.T) {
	trade := openTrade()
	trade.PnL = 123.45
	trade.PnLPercent = 6.7
	trade.HoldingDays = 9
	trade.ExitPrice = ptrF(99) // inconsistent with status=open

	got := Normalize(trade)

	assert.Nil(t, got.ExitDate)
	assert.Nil(t, got.ExitPrice)
	assert.Zero(t, got.PnL)
	assert.Zero(t, got.PnLPercent)
	assert.Zero(t, got.HoldingDays)
	assert.Equal(t, models.StatusOpen, got.Status)
}

func TestNormalizeLeavesClosedTradesAlone(t *testing.T) {
	trade := closedTrade(42)
	assert.Equal(t, trade, Normalize(trade))
}

// The exit date alone decides open vs closed: a record the server still
// flags as "open" but carries an exit is classified by its pnl, and
// normalization reconciles the status string to closed.
func TestExitDateIsAuthoritativeOverStatus(t *testing.T) {
	trade := closedTrade(-12.5)
	trade.Status = models.StatusOpen // stale server flag

	assert.False(t, trade.Open())
	assert.Equal(t, ResultLoss, Classify(trade))

	got := Normalize(trade)
	assert.Equal(t, models.StatusClosed, got.Status)
	assert.NotNil(t, got.ExitDate)
	assert.Equal(t, -12.5, got.PnL)
}
