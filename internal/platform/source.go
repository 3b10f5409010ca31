package platform

import (
	"context"

	"trade-tracker-go/internal/models"
)

// TradesResult is the outcome of one trade fetch. Stats is non-nil only
// when the backend included its own aggregate in the response.
type TradesResult struct {
	Trades []models.Trade
	Stats  *models.TradeStats
}

// CloseTradeRequest is the body of the close-trade write.
type CloseTradeRequest struct {
	ExitPrice float64 `json:"exit_price"`
	ExitDate  string  `json:"exit_date"` // YYYY-MM-DD
	Notes     string  `json:"notes"`
	Status    string  `json:"status"`
}

// AuthUser is the identity returned by the auth endpoint.
type AuthUser struct {
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

// Admin reports whether the user may see admin actions.
func (u AuthUser) Admin() bool {
	return u.Role == "admin" || u.IsAdmin
}

// Source is the data source the tracker reads from and writes through.
// Implemented by the live REST client and by the fixture store.
type Source interface {
	FetchTrades(ctx context.Context, roomSlug string, limit int) (*TradesResult, error)
	CloseTrade(ctx context.Context, roomSlug string, id int64, req CloseTradeRequest) error
	Me(ctx context.Context) (*AuthUser, error)
}
