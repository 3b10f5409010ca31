package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"trade-tracker-go/internal/config"
	"trade-tracker-go/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is a REST client for the platform API. It does not retry: a failed
// request surfaces an error and the caller decides whether to try again.
type Client struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

var _ Source = (*Client)(nil)

// NewClient creates a platform API client from configuration.
func NewClient(cfg *config.Platform, logger *zap.Logger) *Client {
	client := resty.New().SetBaseURL(cfg.BaseURL)
	if cfg.AuthToken != "" {
		client.SetAuthToken(cfg.AuthToken)
	}

	return &Client{
		client:  client,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
	}
}

// tradesEnvelope is the exact response schema of the trades endpoint.
type tradesEnvelope struct {
	Success bool               `json:"success"`
	Data    []models.Trade     `json:"data"`
	Stats   *models.TradeStats `json:"stats"`
	Error   string             `json:"error"`
	Message string             `json:"message"`
}

// writeEnvelope is the response schema of mutation endpoints.
type writeEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// meEnvelope is the response schema of the auth endpoint.
type meEnvelope struct {
	User *AuthUser `json:"user"`
}

// doRequest waits out the rate limiter, executes the request once, and maps
// transport and HTTP-level failures to errors.
func (c *Client) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
	resp, err := req.SetContext(ctx).Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), apiErrorMessage(resp))
	}
	return resp, nil
}

// apiErrorMessage extracts the error/message field of a 4xx/5xx envelope,
// falling back to the raw body.
func apiErrorMessage(resp *resty.Response) string {
	var env writeEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
	}
	return resp.String()
}

// envelopeError maps an application-level failure (success=false inside a
// 200 response) to an error carrying the server's message when present.
func envelopeError(op, errMsg, message string) error {
	switch {
	case errMsg != "":
		return fmt.Errorf("%s: %s", op, errMsg)
	case message != "":
		return fmt.Errorf("%s: %s", op, message)
	default:
		return fmt.Errorf("%s: request was not successful", op)
	}
}

// FetchTrades retrieves the trade collection of a room, plus the server's
// aggregate stats when it sends them.
func (c *Client) FetchTrades(ctx context.Context, roomSlug string, limit int) (*TradesResult, error) {
	var env tradesEnvelope
	req := c.client.R().
		SetResult(&env).
		SetQueryParam("limit", fmt.Sprintf("%d", limit))

	if _, err := c.doRequest(ctx, http.MethodGet, "/api/trades/"+roomSlug, req); err != nil {
		c.logger.Error("Failed to fetch trades", zap.String("room", roomSlug), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch trades: %w", err)
	}
	if !env.Success {
		return nil, envelopeError("failed to fetch trades", env.Error, env.Message)
	}
	if env.Data == nil {
		// One schema per endpoint: a successful response without a data
		// array is malformed, not an empty room.
		return nil, fmt.Errorf("failed to fetch trades: response missing data array")
	}

	return &TradesResult{Trades: env.Data, Stats: env.Stats}, nil
}

// CloseTrade records the exit of an open trade.
func (c *Client) CloseTrade(ctx context.Context, roomSlug string, id int64, body CloseTradeRequest) error {
	var env writeEnvelope
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&env)

	url := fmt.Sprintf("/api/trades/%s/%d", roomSlug, id)
	if _, err := c.doRequest(ctx, http.MethodPut, url, req); err != nil {
		c.logger.Error("Failed to close trade", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to close trade: %w", err)
	}
	if !env.Success {
		return envelopeError("failed to close trade", env.Error, env.Message)
	}

	c.logger.Info("Closed trade",
		zap.String("room", roomSlug),
		zap.Int64("id", id),
		zap.Float64("exit_price", body.ExitPrice),
	)
	return nil
}

// Me returns the authenticated user, used to gate admin actions.
func (c *Client) Me(ctx context.Context) (*AuthUser, error) {
	var env meEnvelope
	req := c.client.R().SetResult(&env)

	if _, err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", req); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	if env.User == nil {
		return nil, fmt.Errorf("failed to fetch current user: response missing user object")
	}
	return env.User, nil
}
