// Package session performs authenticated calls against the clinic REST API and
// classifies every response into an Outcome the screens can branch on.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/logger"
	"github.com/and161185/kid-clinic/internal/metrics"
	"github.com/and161185/kid-clinic/internal/prefs"
)

// DefaultTimeout bounds a single call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// HeaderRequestID correlates client log lines with server logs.
const HeaderRequestID = "X-Request-ID"

// Client is safe for concurrent use.
type Client struct {
	http    *resty.Client
	store   prefs.Store
	log     *zap.Logger
	metrics *metrics.Session
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger; calls are logged without bodies or tokens.
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.log = logger.OrNop(l) } }

// WithMetrics records outcome counters and latencies.
func WithMetrics(m *metrics.Session) Option { return func(c *Client) { c.metrics = m } }

// New creates a client for baseURL reading the bearer token from store.
// A non-positive timeout means DefaultTimeout. Calls are never retried.
func New(baseURL string, timeout time.Duration, store prefs.Store, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		store: store,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.http.SetLogger(c.log.Sugar())
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.http.BaseURL }

// Call performs an authenticated request. Without a stored token it returns
// Unauthorized and sends nothing.
func (c *Client) Call(ctx context.Context, method, path string, body any) Outcome {
	token, ok := prefs.Token(ctx, c.store)
	if !ok {
		c.log.Debug("call skipped, no access token", zap.String("method", method), zap.String("path", path))
		o := Outcome{Kind: Unauthorized, Err: fmt.Errorf("%w: no access token", errs.ErrUnauthorized)}
		c.metrics.ObserveOutcome(string(o.Kind), method, 0)
		return o
	}
	return c.do(ctx, method, path, body, token)
}

// CallPublic performs a request without the Authorization header.
func (c *Client) CallPublic(ctx context.Context, method, path string, body any) Outcome {
	return c.do(ctx, method, path, body, "")
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string) Outcome {
	start := time.Now()
	reqID := newRequestID()

	req := c.http.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, reqID)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Outcome{Kind: Failed, Err: fmt.Errorf("session: encode body: %w: %w", errs.ErrInvalidInput, err)}
		}
		req.SetBody(b)
	}

	resp, err := req.Execute(method, path)

	var o Outcome
	if err != nil {
		o = Outcome{Kind: NetworkError, Err: fmt.Errorf("%w: %w", errs.ErrNetwork, err)}
	} else {
		o = classify(resp.StatusCode(), resp.Body())
	}
	took := time.Since(start)
	c.metrics.ObserveOutcome(string(o.Kind), method, took)

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
		zap.String("kind", string(o.Kind)),
		zap.Int("status", o.Status),
		zap.Duration("dur", took),
	}
	switch o.Kind {
	case Success:
		c.log.Debug("call", fields...)
	case NetworkError:
		if errors.Is(err, context.Canceled) {
			c.log.Debug("call canceled", fields...)
			break
		}
		c.log.Warn("call", append(fields, zap.Error(err))...)
	default:
		c.log.Info("call", fields...)
	}
	return o
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Sprintf("kc-%d", time.Now().UnixNano())
	}
	return id.String()
}

// Methods re-exported so callers need not import net/http for the verb names.
const (
	MethodGet   = http.MethodGet
	MethodPost  = http.MethodPost
	MethodPatch = http.MethodPatch
)
