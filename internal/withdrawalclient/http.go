package withdrawalclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Config holds the HTTP client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// MaxFailures consecutive failures open the breaker for OpenTimeout.
	MaxFailures uint32
	OpenTimeout time.Duration
}

// Client calls the withdrawal network over HTTP.
//
// Calls go through a circuit breaker. Rejections are answers from a healthy
// service and never count as failures.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient returns an HTTP client for the withdrawal network.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:        "withdrawal-service",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrValidation)
		},
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

type withdrawalRequest struct {
	Address Address      `json:"address"`
	Amount  domain.Money `json:"amount"`
}

type stateResponse struct {
	State State `json:"state"`
}

// RequestWithdrawal asks the network to send amount to address. It is idempotent by id.
func (c *Client) RequestWithdrawal(ctx context.Context, id WithdrawalID, address Address, amount domain.Money) error {
	body, err := json.Marshal(withdrawalRequest{Address: address, Amount: amount})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	_, err = c.execute(ctx, http.MethodPut, "/withdrawals/"+id.String(), body)

	return err
}

// GetRequestState returns the state of a previously requested withdrawal.
func (c *Client) GetRequestState(ctx context.Context, id WithdrawalID) (State, error) {
	data, err := c.execute(ctx, http.MethodGet, "/withdrawals/"+id.String(), nil)
	if err != nil {
		return "", err
	}

	var res stateResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return "", fmt.Errorf("%w: decode state: %v", ErrUnavailable, err)
	}

	switch res.State {
	case StateProcessing, StateCompleted, StateFailed:
		return res.State, nil
	default:
		return "", fmt.Errorf("%w: unknown state %q", ErrUnavailable, res.State)
	}
}

func (c *Client) execute(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, method, path, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		return nil, err
	}

	return res.([]byte), nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusConflict,
		resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s %s: %d", ErrValidation, method, path, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: %s %s: %d", ErrUnavailable, method, path, resp.StatusCode)
	}
}
