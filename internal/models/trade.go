package models

// Trade statuses as reported by the platform API.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Setups is the closed tag set used by the trade tracker.
var Setups = []string{"Breakout", "Momentum", "Reversal", "Earnings", "Pullback"}

// Trade represents one tracked position in a trading room. JSON tags match
// the platform API wire format; the same struct backs the sqlite fixture
// store. Exit fields are nil while the trade is open.
type Trade struct {
	ID          int64    `json:"id" gorm:"primaryKey"`
	RoomSlug    string   `json:"room_slug,omitempty" gorm:"index"`
	Ticker      string   `json:"ticker"`
	TradeType   string   `json:"trade_type"`
	EntryDate   string   `json:"entry_date"` // YYYY-MM-DD
	ExitDate    *string  `json:"exit_date"`  // YYYY-MM-DD
	EntryPrice  float64  `json:"entry_price"`
	ExitPrice   *float64 `json:"exit_price"`
	Quantity    int      `json:"quantity"`
	PnL         float64  `json:"pnl"`
	PnLPercent  float64  `json:"pnl_percent"`
	HoldingDays int      `json:"holding_days"`
	Setup       string   `json:"setup"`
	Status      string   `json:"status"`
	Notes       string   `json:"notes"`
}

// Open reports whether the trade has no recorded exit date. The exit date
// is the single source of truth for the open/closed distinction; the Status
// string is advisory and is reconciled against it during normalization.
func (t *Trade) Open() bool {
	return t.ExitDate == nil
}
