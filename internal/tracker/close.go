package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"trade-tracker-go/internal/models"
	"trade-tracker-go/internal/platform"

	"go.uber.org/zap"
)

// FlowState is the close-trade workflow state.
type FlowState string

const (
	StateIdle       FlowState = "IDLE"
	StateModalOpen  FlowState = "MODAL_OPEN"
	StateSubmitting FlowState = "SUBMITTING"
)

// noticeTTL is how long the success confirmation stays visible.
const noticeTTL = 3 * time.Second

// ErrSubmitting is returned when a close is invoked while one is already in
// flight. The duplicate attempt never reaches the network.
var ErrSubmitting = errors.New("close already in progress")

// ErrNotOpen is returned when the flow is driven outside MODAL_OPEN.
var ErrNotOpen = errors.New("no trade selected for closing")

// ValidationError is a field-level input error. It blocks submission
// locally and is rendered next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CloseFlow drives the admin close-trade workflow:
// IDLE -> MODAL_OPEN -> SUBMITTING -> (SUCCESS -> IDLE) | (FAILURE -> MODAL_OPEN).
// A flow is one admin's modal, created per request; only the in-flight
// guard and the success notice live on the shared tracker, so concurrent
// requests can never swap each other's selected trade.
type CloseFlow struct {
	tracker *Tracker
	logger  *zap.Logger
	now     func() time.Time

	mu        sync.Mutex
	state     FlowState
	trade     models.Trade
	exitPrice string
	exitDate  string
	notes     string

	fieldErr   *ValidationError
	errMessage string
}

// NewCloseFlow creates an idle flow bound to a tracker session.
func NewCloseFlow(t *Tracker, logger *zap.Logger) *CloseFlow {
	return &CloseFlow{
		tracker: t,
		logger:  logger,
		now:     time.Now,
		state:   StateIdle,
	}
}

// Open selects an ACTIVE trade for closing, prefilling the exit date to
// today and the notes to the trade's existing notes.
func (f *CloseFlow) Open(id int64) error {
	trade, ok := f.tracker.Find(id)
	if !ok {
		return fmt.Errorf("trade %d not found", id)
	}
	if Classify(trade) != ResultActive {
		return fmt.Errorf("trade %d is already closed", id)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateModalOpen
	f.trade = trade
	f.exitPrice = ""
	f.exitDate = f.now().Format("2006-01-02")
	f.notes = trade.Notes
	f.fieldErr = nil
	f.errMessage = ""
	return nil
}

// Cancel discards any entered values and returns to IDLE.
func (f *CloseFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return
	}
	f.reset()
}

func (f *CloseFlow) reset() {
	f.state = StateIdle
	f.trade = models.Trade{}
	f.exitPrice = ""
	f.exitDate = ""
	f.notes = ""
	f.fieldErr = nil
	f.errMessage = ""
}

// SetExitPrice records the exit-price input as typed.
func (f *CloseFlow) SetExitPrice(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exitPrice = s
	f.fieldErr = nil
}

// SetExitDate overrides the prefilled exit date (YYYY-MM-DD).
func (f *CloseFlow) SetExitDate(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exitDate = s
}

// SetNotes overrides the prefilled notes.
func (f *CloseFlow) SetNotes(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = s
}

// parseExitPrice is the validation gate: the input must be present and
// parse as a positive number.
func parseExitPrice(s string) (float64, *ValidationError) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &ValidationError{Field: "exit_price", Message: "Exit price is required"}
	}
	price, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || price <= 0 {
		return 0, &ValidationError{Field: "exit_price", Message: "Exit price must be a positive number"}
	}
	return price, nil
}

// Preview returns the advisory P&L for the current exit-price input.
// ok is false while the input does not parse; the preview is discarded on
// cancel and never persisted.
func (f *CloseFlow) Preview() (profit, percent float64, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateIdle {
		return 0, 0, false
	}
	price, verr := parseExitPrice(f.exitPrice)
	if verr != nil {
		return 0, 0, false
	}
	profit = (price - f.trade.EntryPrice) * float64(f.trade.Quantity)
	percent = (price - f.trade.EntryPrice) / f.trade.EntryPrice * 100
	return profit, percent, true
}

// Submit validates the form, issues the close request, and on success
// refetches the room strictly after the close resolves. A submit while one
// is in flight returns ErrSubmitting without touching the network; a failed
// submit keeps the modal open with every entered value retained.
func (f *CloseFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return ErrSubmitting
	case StateIdle:
		f.mu.Unlock()
		return ErrNotOpen
	}

	price, verr := parseExitPrice(f.exitPrice)
	if verr != nil {
		f.fieldErr = verr
		f.mu.Unlock()
		return verr
	}

	exitDate := f.exitDate
	if exitDate == "" {
		exitDate = f.now().Format("2006-01-02")
	}
	req := platform.CloseTradeRequest{
		ExitPrice: price,
		ExitDate:  exitDate,
		Notes:     f.notes,
		Status:    models.StatusClosed,
	}
	trade := f.trade

	// Claim the room's close slot before leaving MODAL_OPEN: the guard is
	// shared across requests, so a close racing in from another session is
	// rejected here without touching the network.
	if err := f.tracker.beginClose(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = StateSubmitting
	f.fieldErr = nil
	f.errMessage = ""
	f.mu.Unlock()

	err := f.tracker.source.CloseTrade(ctx, f.tracker.roomSlug, trade.ID, req)
	if err != nil {
		f.logger.Error("Failed to close trade",
			zap.Int64("id", trade.ID),
			zap.Error(err),
		)
		f.tracker.finishClose("")
		f.mu.Lock()
		f.state = StateModalOpen
		f.errMessage = err.Error()
		f.mu.Unlock()
		return err
	}

	// Reconcile from the source of truth; no optimistic patching.
	if err := f.tracker.Load(ctx); err != nil {
		f.logger.Warn("Refetch after close failed", zap.Error(err))
	}
	f.tracker.finishClose(fmt.Sprintf("Trade %s closed successfully", trade.Ticker))

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()
	return nil
}

// State returns the current workflow state.
func (f *CloseFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FieldError returns the pending field-level validation error, if any.
func (f *CloseFlow) FieldError() *ValidationError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErr
}

// ErrMessage returns the close failure message; it persists until the next
// submit or cancel.
func (f *CloseFlow) ErrMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMessage
}
