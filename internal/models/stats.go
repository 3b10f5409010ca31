package models

// TradeStats summarizes the closed trades of a room. The ratio fields are
// pre-formatted strings so that zero denominators render as fixed defaults
// instead of NaN or Infinity.
type TradeStats struct {
	TotalTrades  int     `json:"total_trades"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      string  `json:"win_rate"`
	TotalProfit  float64 `json:"total_profit"`
	AvgWin       string  `json:"avg_win"`
	AvgLoss      string  `json:"avg_loss"`
	ProfitFactor string  `json:"profit_factor"`
}
