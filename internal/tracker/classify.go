package tracker

import "trade-tracker-go/internal/models"

// Result is the derived outcome of a trade.
type Result string

const (
	ResultActive Result = "ACTIVE"
	ResultWin    Result = "WIN"
	ResultLoss   Result = "LOSS"
)

// Classify derives the tri-state result of a trade. A trade with no exit is
// ACTIVE regardless of any stray pnl value; a closed trade is a WIN when its
// pnl is non-negative, so a breakeven close counts as a win.
func Classify(t models.Trade) Result {
	if t.Open() {
		return ResultActive
	}
	if t.PnL >= 0 {
		return ResultWin
	}
	return ResultLoss
}

// Normalize reconciles a wire trade with the open-trade invariant. The exit
// date decides which side a trade is on: while it is absent the exit fields
// must read as absent and the realized figures as zero, so a stray server
// value can never look like a real break-even close; once it is set the
// status string is forced to closed even when the server still says open.
func Normalize(t models.Trade) models.Trade {
	if t.Open() {
		t.Status = models.StatusOpen
		t.ExitPrice = nil
		t.PnL = 0
		t.PnLPercent = 0
		t.HoldingDays = 0
	} else {
		t.Status = models.StatusClosed
	}
	return t
}

// NormalizeAll applies Normalize to every trade, returning a new slice.
func NormalizeAll(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	for i, t := range trades {
		out[i] = Normalize(t)
	}
	return out
}
