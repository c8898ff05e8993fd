// Package paymentprovider HTTP-клиент внешнего платёжного сервиса.
//
// Клиент блокирует вызывающего до ответа или таймаута и никогда не повторяет запросы.
package paymentprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscriptions/internal/metrics"
)

// DefaultTimeout бюджет времени на один вызов платёжного сервиса.
const DefaultTimeout = 5 * time.Second

const maxResponseBody = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client, например в тестах.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMetrics включает учёт вызовов в prometheus.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создаёт клиент платёжного сервиса. Таймаут <= 0 заменяется на DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Charge списывает amount.
func (c *Client) Charge(ctx context.Context, amount int) (*ProcessResponse, error) {
	return c.process(ctx, TypePayment, amount)
}

// Refund возвращает amount.
func (c *Client) Refund(ctx context.Context, amount int) (*ProcessResponse, error) {
	return c.process(ctx, TypeRefund, amount)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		req.Header.Set(middleware.RequestIDHeader, reqID)
	}
	return req, nil
}

func (c *Client) process(ctx context.Context, kind string, amount int) (*ProcessResponse, error) {
	resp, err := c.do(ctx, kind, amount)
	if err != nil {
		c.metrics.ObserveGateway(kind, metrics.ResultFailure)
		return nil, err
	}
	c.metrics.ObserveGateway(kind, metrics.ResultSuccess)
	return resp, nil
}

func (c *Client) do(ctx context.Context, kind string, amount int) (*ProcessResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, ProcessPath, ProcessRequest{Type: kind, Amount: amount})
	if err != nil {
		return nil, &GatewayError{Type: kind, Message: DefaultErrorMessage, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GatewayError{Type: kind, Message: DefaultErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &GatewayError{Type: kind, StatusCode: resp.StatusCode, Message: DefaultErrorMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{
			Type:       kind,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
			Err:        fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	return &ProcessResponse{StatusCode: resp.StatusCode, Body: json.RawMessage(body)}, nil
}

// upstreamMessage достаёт поле error из ответа платёжного сервиса.
func upstreamMessage(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return DefaultErrorMessage
	}
	return errResp.Error
}
