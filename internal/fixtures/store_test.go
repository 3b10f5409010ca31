package fixtures

import (
	"context"
	"testing"

	"trade-tracker-go/internal/models"
	"trade-tracker-go/internal/platform"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// setupStore creates a seeded store on a fresh in-memory database.
func setupStore(t *testing.T) *Store {
	store, err := Open("file::memory:", zap.NewNop())
	assert.NoError(t, err)
	assert.NoError(t, store.Seed("explosive-swings"))
	return store
}

func TestSeedIsIdempotent(t *testing.T) {
	store := setupStore(t)
	assert.NoError(t, store.Seed("explosive-swings"))

	res, err := store.FetchTrades(context.Background(), "explosive-swings", 0)
	assert.NoError(t, err)
	assert.Len(t, res.Trades, 6)
}

func TestFetchTradesOrderAndLimit(t *testing.T) {
	store := setupStore(t)

	res, err := store.FetchTrades(context.Background(), "explosive-swings", 2)
	assert.NoError(t, err)
	assert.Len(t, res.Trades, 2)
	// Newest entry first.
	assert.Equal(t, "MSFT", res.Trades[0].Ticker)
	assert.Equal(t, "AAPL", res.Trades[1].Ticker)

	// Stats cover the whole room, not just the requested page.
	assert.NotNil(t, res.Stats)
	assert.Equal(t, 4, res.Stats.TotalTrades)
	assert.Equal(t, 3, res.Stats.Wins) // breakeven AMD close counts as a win
	assert.Equal(t, 1, res.Stats.Losses)
	assert.Equal(t, "75.0", res.Stats.WinRate)
}

func TestFetchTradesUnknownRoomIsEmpty(t *testing.T) {
	store := setupStore(t)

	res, err := store.FetchTrades(context.Background(), "day-trading", 0)
	assert.NoError(t, err)
	assert.Empty(t, res.Trades)
	assert.Equal(t, 0, res.Stats.TotalTrades)
}

func TestCloseTrade(t *testing.T) {
	store := setupStore(t)

	// AAPL fixture: open, entry 228.40, quantity 60, entered 2026-08-24.
	err := store.CloseTrade(context.Background(), "explosive-swings", 5, platform.CloseTradeRequest{
		ExitPrice: 230.40,
		ExitDate:  "2026-08-28",
		Notes:     "reclaimed the 50-day, took profits",
		Status:    models.StatusClosed,
	})
	assert.NoError(t, err)

	res, err := store.FetchTrades(context.Background(), "explosive-swings", 0)
	assert.NoError(t, err)

	var closed models.Trade
	for _, tr := range res.Trades {
		if tr.ID == 5 {
			closed = tr
		}
	}
	assert.Equal(t, models.StatusClosed, closed.Status)
	assert.NotNil(t, closed.ExitPrice)
	assert.InDelta(t, 230.40, *closed.ExitPrice, 1e-9)
	assert.InDelta(t, 120.0, closed.PnL, 1e-6)
	assert.InDelta(t, 0.8757, closed.PnLPercent, 1e-3)
	assert.Equal(t, 4, closed.HoldingDays)
	assert.Equal(t, "reclaimed the 50-day, took profits", closed.Notes)
}

func TestCloseTradeKeepsNotesWhenBlank(t *testing.T) {
	store := setupStore(t)

	err := store.CloseTrade(context.Background(), "explosive-swings", 5, platform.CloseTradeRequest{
		ExitPrice: 229.00,
		ExitDate:  "2026-08-27",
		Status:    models.StatusClosed,
	})
	assert.NoError(t, err)

	res, _ := store.FetchTrades(context.Background(), "explosive-swings", 0)
	for _, tr := range res.Trades {
		if tr.ID == 5 {
			assert.Equal(t, "Watching the 50-day reclaim.", tr.Notes)
		}
	}
}

func TestCloseTradeRejectsClosedTrade(t *testing.T) {
	store := setupStore(t)

	// NVDA fixture is already closed.
	err := store.CloseTrade(context.Background(), "explosive-swings", 1, platform.CloseTradeRequest{
		ExitPrice: 140,
		Status:    models.StatusClosed,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already closed")
}

func TestCloseTradeRejectsBadPrice(t *testing.T) {
	store := setupStore(t)

	err := store.CloseTrade(context.Background(), "explosive-swings", 5, platform.CloseTradeRequest{
		ExitPrice: 0,
	})
	assert.Error(t, err)

	// The trade is untouched.
	res, _ := store.FetchTrades(context.Background(), "explosive-swings", 0)
	for _, tr := range res.Trades {
		if tr.ID == 5 {
			assert.Equal(t, models.StatusOpen, tr.Status)
		}
	}
}

func TestCloseTradeUnknownID(t *testing.T) {
	store := setupStore(t)

	err := store.CloseTrade(context.Background(), "explosive-swings", 999, platform.CloseTradeRequest{ExitPrice: 10})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "trade not found")
}

func TestMeIsAdmin(t *testing.T) {
	store := setupStore(t)

	user, err := store.Me(context.Background())
	assert.NoError(t, err)
	assert.True(t, user.Admin())
}

func TestHoldingDays(t *testing.T) {
	assert.Equal(t, 7, holdingDays("2026-08-03", "2026-08-10"))
	assert.Equal(t, 0, holdingDays("2026-08-03", "2026-08-03"))
	assert.Equal(t, 0, holdingDays("not-a-date", "2026-08-03"))
}
