package tracker

import (
	"context"
	"sync"
	"time"

	"trade-tracker-go/internal/models"
	"trade-tracker-go/internal/platform"

	"go.uber.org/zap"
)

// LoadErrorMessage is the user-facing message shown when a fetch fails.
const LoadErrorMessage = "Failed to load trades. Please try again."

// Tracker is one room's trade session. A successful load replaces the
// collection and stats wholesale; a failed load keeps whatever was loaded
// before and records a retryable error message. Retry is simply another
// Load call.
type Tracker struct {
	source   platform.Source
	logger   *zap.Logger
	roomSlug string
	limit    int
	now      func() time.Time

	mu         sync.Mutex
	trades     []models.Trade
	stats      models.TradeStats
	errMessage string

	// Close-trade state shared by every request of the room: at most one
	// close may be in flight, and the success notice outlives the request
	// that produced it.
	closing     bool
	notice      string
	noticeUntil time.Time
}

// NewTracker creates a session for one room.
func NewTracker(source platform.Source, logger *zap.Logger, roomSlug string, limit int) *Tracker {
	return &Tracker{
		source:   source,
		logger:   logger,
		roomSlug: roomSlug,
		limit:    limit,
		now:      time.Now,
		stats:    ComputeStats(nil),
	}
}

// RoomSlug returns the room this session tracks.
func (t *Tracker) RoomSlug() string {
	return t.roomSlug
}

// Load fetches the room's trades and stats. Server-provided stats are
// preferred verbatim; otherwise they are recomputed from the fetched page.
func (t *Tracker) Load(ctx context.Context) error {
	res, err := t.source.FetchTrades(ctx, t.roomSlug, t.limit)
	if err != nil {
		t.logger.Error("Failed to load trades",
			zap.String("room", t.roomSlug),
			zap.Error(err),
		)
		t.mu.Lock()
		t.errMessage = LoadErrorMessage
		t.mu.Unlock()
		return err
	}

	trades := NormalizeAll(res.Trades)
	stats := ResolveStats(res.Stats, trades)

	t.mu.Lock()
	t.trades = trades
	t.stats = stats
	t.errMessage = ""
	t.mu.Unlock()

	t.logger.Debug("Loaded trades",
		zap.String("room", t.roomSlug),
		zap.Int("count", len(trades)),
	)
	return nil
}

// Trades returns a copy of the loaded collection in display order.
func (t *Tracker) Trades() []models.Trade {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Trade, len(t.trades))
	copy(out, t.trades)
	return out
}

// Filtered returns the loaded trades narrowed by status filter.
func (t *Tracker) Filtered(filter StatusFilter) []models.Trade {
	return FilterTrades(t.Trades(), filter)
}

// Stats returns the current aggregate.
func (t *Tracker) Stats() models.TradeStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// ErrMessage returns the retryable load error, empty when the last load
// succeeded.
func (t *Tracker) ErrMessage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMessage
}

// Find locates a loaded trade by id.
func (t *Tracker) Find(id int64) (models.Trade, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tr := range t.trades {
		if tr.ID == id {
			return tr, true
		}
	}
	return models.Trade{}, false
}

// beginClose claims the room's single close-in-flight slot. A second close
// while one is submitting gets ErrSubmitting and never reaches the network.
func (t *Tracker) beginClose() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closing {
		return ErrSubmitting
	}
	t.closing = true
	return nil
}

// finishClose releases the slot, recording a transient success notice when
// one is given.
func (t *Tracker) finishClose(notice string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closing = false
	if notice != "" {
		t.notice = notice
		t.noticeUntil = t.now().Add(noticeTTL)
	}
}

// Notice returns the transient close confirmation; it auto-dismisses after
// noticeTTL.
func (t *Tracker) Notice() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.notice == "" || t.now().After(t.noticeUntil) {
		return ""
	}
	return t.notice
}

// IsAdmin resolves the admin gate from the auth endpoint.
func (t *Tracker) IsAdmin(ctx context.Context) (bool, error) {
	user, err := t.source.Me(ctx)
	if err != nil {
		return false, err
	}
	return user.Admin(), nil
}
