package fixtures

import "trade-tracker-go/internal/models"

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

// sampleTrades covers the result spectrum: wins, a loss, a breakeven close
// and open positions.
func sampleTrades(roomSlug string) []models.Trade {
	return []models.Trade{
		{
			RoomSlug:    roomSlug,
			Ticker:      "NVDA",
			TradeType:   "stock",
			EntryDate:   "2026-08-03",
			ExitDate:    ptrS("2026-08-10"),
			EntryPrice:  118.50,
			ExitPrice:   ptrF(131.20),
			Quantity:    100,
			PnL:         1270.00,
			PnLPercent:  10.72,
			HoldingDays: 7,
			Setup:       "Breakout",
			Status:      models.StatusClosed,
			Notes:       "Clean breakout over the range high, sold into strength.",
		},
		{
			RoomSlug:    roomSlug,
			Ticker:      "TSLA",
			TradeType:   "stock",
			EntryDate:   "2026-08-05",
			ExitDate:    ptrS("2026-08-07"),
			EntryPrice:  242.00,
			ExitPrice:   ptrF(233.10),
			Quantity:    50,
			PnL:         -445.00,
			PnLPercent:  -3.68,
			HoldingDays: 2,
			Setup:       "Momentum",
			Status:      models.StatusClosed,
			Notes:       "Momentum faded, stopped out below the entry day low.",
		},
		{
			RoomSlug:    roomSlug,
			Ticker:      "AMD",
			TradeType:   "stock",
			EntryDate:   "2026-08-11",
			ExitDate:    ptrS("2026-08-14"),
			EntryPrice:  164.00,
			ExitPrice:   ptrF(164.00),
			Quantity:    75,
			PnL:         0,
			PnLPercent:  0,
			HoldingDays: 3,
			Setup:       "Pullback",
			Status:      models.StatusClosed,
			Notes:       "Scratched at entry after the setup stalled.",
		},
		{
			RoomSlug:    roomSlug,
			Ticker:      "META",
			TradeType:   "stock",
			EntryDate:   "2026-08-17",
			ExitDate:    ptrS("2026-08-21"),
			EntryPrice:  520.00,
			ExitPrice:   ptrF(548.60),
			Quantity:    20,
			PnL:         572.00,
			PnLPercent:  5.50,
			HoldingDays: 4,
			Setup:       "Earnings",
			Status:      models.StatusClosed,
			Notes:       "Post-earnings drift long.",
		},
		{
			RoomSlug:   roomSlug,
			Ticker:     "AAPL",
			TradeType:  "stock",
			EntryDate:  "2026-08-24",
			EntryPrice: 228.40,
			Quantity:   60,
			Setup:      "Reversal",
			Status:     models.StatusOpen,
			Notes:      "Watching the 50-day reclaim.",
		},
		{
			RoomSlug:   roomSlug,
			Ticker:     "MSFT",
			TradeType:  "stock",
			EntryDate:  "2026-08-26",
			EntryPrice: 455.00,
			Quantity:   25,
			Setup:      "Breakout",
			Status:     models.StatusOpen,
			Notes:      "",
		},
	}
}
