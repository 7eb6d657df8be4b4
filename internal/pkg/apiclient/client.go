// Package apiclient is the single request pipeline every backend call goes
// through: attach credential, dispatch, classify the envelope, apply the
// failure side effects, then resolve or reject.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

// Credentials is the persisted session the pipeline reads the bearer token
// from and clears on authentication failure.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	ClearAuth(ctx context.Context) error
}

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier surfaces a message to the user.
type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

type NotifierFunc func(ctx context.Context, level Level, message string)

func (f NotifierFunc) Notify(ctx context.Context, level Level, message string) {
	f(ctx, level, message)
}

type EventKind int

const (
	// EventSessionInvalidated fires once per response that failed
	// authentication, after the persisted session has been cleared.
	EventSessionInvalidated EventKind = iota + 1
)

type Event struct {
	Kind    EventKind
	Method  string
	Path    string
	Message string
}

type Listener func(ctx context.Context, ev Event)

// Request describes one backend call. Query is encoded with EncodeQuery;
// Body, when non-nil, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  any
	Body   any
}

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

type Client struct {
	baseURL  *url.URL
	http     *http.Client
	creds    Credentials
	notifier Notifier
	logger   *zap.Logger

	mu        sync.RWMutex
	listeners []Listener
}

// NewHTTPClient builds the shared transport. Requests exceeding timeout
// fail as network errors.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func New(opts Options, creds Credentials, notifier Notifier) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid API base URL")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = NewHTTPClient(10 * time.Second)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NotifierFunc(func(context.Context, Level, string) {})
	}
	return &Client{
		baseURL:  base,
		http:     httpClient,
		creds:    creds,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// Subscribe registers l for pipeline events.
func (c *Client) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Do runs req through the pipeline and decodes the envelope data into out
// (which may be nil).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	start := time.Now()
	outcome := outcomeSuccess
	defer func() {
		RequestsTotal.WithLabelValues(req.Method, outcome).Inc()
		RequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	}()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		outcome = outcomeFailure
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		outcome = outcomeTransport
		c.logger.Warn("API transport failure",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		c.notify(ctx, LevelError, msgNetworkError)
		return &Error{Message: msgNetworkError, Err: errors.Wrapf(err, "%s %s", req.Method, req.Path)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = outcomeTransport
		c.notify(ctx, LevelError, msgNetworkError)
		return &Error{Status: resp.StatusCode, Message: msgNetworkError, Err: errors.Wrap(err, "read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = outcomeTransport
		return c.transportFailure(ctx, req, resp.StatusCode, raw)
	}

	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		outcome = outcomeFailure
		c.notify(ctx, LevelError, msgRequestFailed)
		return &Error{Status: resp.StatusCode, Message: msgRequestFailed, Err: errors.Wrap(err, "decode envelope")}
	}

	if env.Code != models.CodeSuccess {
		message := env.Message
		if message == "" {
			message = msgRequestFailed
		}
		c.notify(ctx, LevelError, message)
		outcome = outcomeFailure
		if env.Code == models.CodeUnauthorized {
			outcome = outcomeUnauthorized
			c.invalidate(ctx, req, message)
		}
		return &Error{Status: resp.StatusCode, Code: env.Code, Message: message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			outcome = outcomeFailure
			return &Error{Status: resp.StatusCode, Code: env.Code, Message: msgRequestFailed, Err: errors.Wrap(err, "decode data")}
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := *c.baseURL
	u.Path = u.Path + "/" + strings.TrimLeft(req.Path, "/")
	u.RawQuery = EncodeQuery(req.Query).Encode()

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			c.logger.Warn("Failed to read session token", zap.Error(err))
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return httpReq, nil
}

// transportFailure handles a non-2xx response. A 401 invalidates the
// session; the notification prefers the body's envelope message.
func (c *Client) transportFailure(ctx context.Context, req Request, status int, raw []byte) error {
	message := msgNetworkError
	var env models.Envelope
	if json.Unmarshal(raw, &env) == nil && env.Message != "" {
		message = env.Message
	}

	if status == http.StatusUnauthorized {
		c.invalidate(ctx, req, message)
	}
	c.notify(ctx, LevelError, message)
	return &Error{Status: status, Message: message, Err: errors.Errorf("%s %s: HTTP %d", req.Method, req.Path, status)}
}

// notify is silent once the caller has given up on the request.
func (c *Client) notify(ctx context.Context, level Level, message string) {
	if ctx.Err() != nil {
		return
	}
	c.notifier.Notify(ctx, level, message)
}

func (c *Client) invalidate(ctx context.Context, req Request, message string) {
	SessionInvalidations.Inc()
	if c.creds != nil {
		if err := c.creds.ClearAuth(ctx); err != nil {
			c.logger.Error("Failed to clear persisted session", zap.Error(err))
		}
	}
	c.logger.Info("Session invalidated by backend",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.String("message", message))

	c.mu.RLock()
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	ev := Event{Kind: EventSessionInvalidated, Method: req.Method, Path: req.Path, Message: message}
	for _, l := range listeners {
		l(ctx, ev)
	}
}
