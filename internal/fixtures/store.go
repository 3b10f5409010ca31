package fixtures

import (
	"context"
	"fmt"
	"time"

	"trade-tracker-go/internal/models"
	"trade-tracker-go/internal/platform"
	"trade-tracker-go/internal/tracker"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store is a sqlite-backed development stand-in for the platform backend.
// It implements the same Source contract as the live client, so the
// dashboard can run against fixtures when platform.use_mock_data is set,
// and cmd/mockapi can serve the wire contract over HTTP.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

var _ platform.Source = (*Store)(nil)

// Open connects to the fixture database and migrates the schema.
func Open(dsn string, logger *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to fixture database: %w", err)
	}
	if err := db.AutoMigrate(&models.Trade{}); err != nil {
		return nil, fmt.Errorf("failed to migrate fixture database: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Seed populates the store with sample trades when it is empty.
func (s *Store) Seed(roomSlug string) error {
	var count int64
	if err := s.db.Model(&models.Trade{}).Where("room_slug = ?", roomSlug).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count fixtures: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range sampleTrades(roomSlug) {
		if err := s.db.Create(&t).Error; err != nil {
			return fmt.Errorf("failed to seed trade %s: %w", t.Ticker, err)
		}
	}
	s.logger.Info("Seeded fixture trades", zap.String("room", roomSlug))
	return nil
}

// FetchTrades lists a room's trades newest-entry first. The returned stats
// cover every trade in the room, not just the requested page.
func (s *Store) FetchTrades(ctx context.Context, roomSlug string, limit int) (*platform.TradesResult, error) {
	var page []models.Trade
	q := s.db.WithContext(ctx).
		Where("room_slug = ?", roomSlug).
		Order("entry_date desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&page).Error; err != nil {
		return nil, fmt.Errorf("failed to list fixture trades: %w", err)
	}

	var all []models.Trade
	if err := s.db.WithContext(ctx).Where("room_slug = ?", roomSlug).Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to list fixture trades: %w", err)
	}
	stats := tracker.ComputeStats(all)

	return &platform.TradesResult{Trades: page, Stats: &stats}, nil
}

// CloseTrade records the exit of an open trade, computing its realized
// figures the same way the backend does.
func (s *Store) CloseTrade(ctx context.Context, roomSlug string, id int64, req platform.CloseTradeRequest) error {
	if req.ExitPrice <= 0 {
		return fmt.Errorf("exit_price must be a positive number")
	}

	var trade models.Trade
	err := s.db.WithContext(ctx).
		Where("room_slug = ? AND id = ?", roomSlug, id).
		First(&trade).Error
	if err != nil {
		return fmt.Errorf("trade not found: %w", err)
	}
	if !trade.Open() {
		return fmt.Errorf("trade %d is already closed", id)
	}

	exitDate := req.ExitDate
	if exitDate == "" {
		exitDate = time.Now().Format("2006-01-02")
	}

	pnl := (req.ExitPrice - trade.EntryPrice) * float64(trade.Quantity)
	pnlPercent := (req.ExitPrice - trade.EntryPrice) / trade.EntryPrice * 100

	trade.Status = models.StatusClosed
	trade.ExitPrice = &req.ExitPrice
	trade.ExitDate = &exitDate
	trade.PnL = pnl
	trade.PnLPercent = pnlPercent
	trade.HoldingDays = holdingDays(trade.EntryDate, exitDate)
	if req.Notes != "" {
		trade.Notes = req.Notes
	}

	if err := s.db.WithContext(ctx).Save(&trade).Error; err != nil {
		return fmt.Errorf("failed to close fixture trade: %w", err)
	}

	s.logger.Info("Closed fixture trade",
		zap.Int64("id", id),
		zap.String("ticker", trade.Ticker),
		zap.Float64("pnl", pnl),
	)
	return nil
}

// Me returns a canned admin identity so the close action is reachable in
// development.
func (s *Store) Me(ctx context.Context) (*platform.AuthUser, error) {
	return &platform.AuthUser{Role: "admin", IsAdmin: true}, nil
}

// holdingDays is the whole-day span between two YYYY-MM-DD dates, zero when
// either fails to parse.
func holdingDays(entry, exit string) int {
	from, err1 := time.Parse("2006-01-02", entry)
	to, err2 := time.Parse("2006-01-02", exit)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
