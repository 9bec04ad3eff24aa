// Package rosterapi implements ports.RosterAPI over the activities server's
// HTTP contract.
package rosterapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	jmespath "github.com/jmespath-community/go-jmespath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/roster"
	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
)

const (
	maxResponseBodyBytes = 1 << 20

	// RequestIDHeader carries a per-call identifier for server-side correlation.
	RequestIDHeader = "X-Request-ID"

	defaultDetailExpr = "detail"
	tracerName        = "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/adapters/rosterapi"
)

// Config configures the API client.
type Config struct {
	BaseURL string
	// Timeout bounds each call. Zero keeps the transport default.
	Timeout time.Duration
	// DetailExpr is a JMESPath expression locating the failure detail in
	// non-2xx bodies. Defaults to "detail".
	DetailExpr string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the activities server.
type Client struct {
	base       *url.URL
	http       *http.Client
	jar        *resettableJar
	detailExpr string
	logger     *slog.Logger
	tracer     trace.Tracer
}

var _ ports.RosterAPI = (*Client)(nil)

// NewClient validates cfg and builds a client with its own cookie jar.
func NewClient(cfg Config) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	expr := strings.TrimSpace(cfg.DetailExpr)
	if expr == "" {
		expr = defaultDetailExpr
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid detail expression %q: %w", expr, err)
	}

	jar, err := newResettableJar()
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	hc := &http.Client{}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		hc = &copied
	}
	hc.Jar = jar
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:       base,
		http:       hc,
		jar:        jar,
		detailExpr: expr,
		logger:     logger.With("component", "rosterapi"),
		tracer:     otel.Tracer(tracerName),
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("base URL must include a host")
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// CheckAuth calls GET /check-auth.
func (c *Client) CheckAuth(ctx context.Context, authHeader string) (auth.Session, error) {
	res, err := c.do(ctx, "check_auth", http.MethodGet, c.endpoint(nil, "check-auth"), authHeader)
	if err != nil {
		return auth.Session{}, err
	}
	if !res.ok() {
		return auth.Session{}, c.rejection(res)
	}

	var sess auth.Session
	if err := json.Unmarshal(res.body, &sess); err != nil {
		return auth.Session{}, apperrors.Transport(err, "decode check-auth response")
	}
	return sess, nil
}

// Login calls POST /login. The response body is ignored.
func (c *Client) Login(ctx context.Context, authHeader string) error {
	res, err := c.do(ctx, "login", http.MethodPost, c.endpoint(nil, "login"), authHeader)
	if err != nil {
		return err
	}
	if !res.ok() {
		return c.rejection(res)
	}
	return nil
}

// ListActivities calls GET /activities without credentials.
func (c *Client) ListActivities(ctx context.Context) (roster.Roster, error) {
	res, err := c.do(ctx, "list_activities", http.MethodGet, c.endpoint(nil, "activities"), "")
	if err != nil {
		return roster.Roster{}, err
	}
	if !res.ok() {
		return roster.Roster{}, c.rejection(res)
	}

	var r roster.Roster
	if err := json.Unmarshal(res.body, &r); err != nil {
		return roster.Roster{}, apperrors.Transport(err, "decode activities response")
	}
	return r, nil
}

// Signup calls POST /activities/{name}/signup?email=E.
func (c *Client) Signup(ctx context.Context, authHeader, activity, email string) (string, error) {
	return c.mutate(ctx, "signup", http.MethodPost, activity, email, authHeader)
}

// Unregister calls DELETE /activities/{name}/unregister?email=E.
func (c *Client) Unregister(ctx context.Context, authHeader, activity, email string) (string, error) {
	return c.mutate(ctx, "unregister", http.MethodDelete, activity, email, authHeader)
}

// ForgetSession drops every cookie the server has set.
func (c *Client) ForgetSession() {
	if err := c.jar.Reset(); err != nil {
		c.logger.Warn("failed to reset cookie jar", "error", err)
	}
}

type messageBody struct {
	Message string `json:"message"`
}

func (c *Client) mutate(ctx context.Context, op, method, activity, email, authHeader string) (string, error) {
	u := c.endpoint(url.Values{"email": {email}}, "activities", activity, op)
	res, err := c.do(ctx, op, method, u, authHeader)
	if err != nil {
		return "", err
	}
	if !res.ok() {
		return "", c.rejection(res)
	}

	var body messageBody
	if err := json.Unmarshal(res.body, &body); err != nil {
		return "", apperrors.Transport(err, "decode "+op+" response")
	}
	return body.Message, nil
}

// endpoint joins escaped path segments onto the base URL. Path keeps the
// decoded form and RawPath the percent-encoded one, so names containing "/"
// or spaces survive as a single segment.
func (c *Client) endpoint(query url.Values, segments ...string) *url.URL {
	u := *c.base
	decoded := strings.TrimRight(c.base.Path, "/")
	escaped := strings.TrimRight(c.base.EscapedPath(), "/")
	for _, s := range segments {
		decoded += "/" + s
		escaped += "/" + url.PathEscape(s)
	}
	u.Path = decoded
	u.RawPath = escaped
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return &u
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool { return r.status >= 200 && r.status < 300 }

func (c *Client) do(ctx context.Context, op, method string, u *url.URL, authHeader string) (response, error) {
	ctx, span := c.tracer.Start(ctx, "rosterapi."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", u.Path),
		),
	)
	defer span.End()

	requestID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return response{}, apperrors.Transport(err, "build "+op+" request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send request")
		c.logger.DebugContext(ctx, "roster api call failed",
			"operation", op,
			"request_id", requestID,
			"error", err,
		)
		return response{}, apperrors.Transport(err, op+" request")
	}

	body, readErr := readResponseBody(resp.Body)
	if closeErr := resp.Body.Close(); closeErr != nil && readErr == nil {
		readErr = closeErr
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.DebugContext(ctx, "roster api call",
		"operation", op,
		"method", method,
		"path", u.EscapedPath(),
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)
	if readErr != nil {
		span.RecordError(readErr)
		span.SetStatus(codes.Error, "read response body")
		return response{}, apperrors.Transport(readErr, "read "+op+" response")
	}

	res := response{status: resp.StatusCode, body: body}
	if !res.ok() {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	return res, nil
}

func readResponseBody(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxResponseBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxResponseBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxResponseBodyBytes)
	}
	return data, nil
}

// rejection converts a non-2xx response into a server_rejection error. The
// detail is empty when the body is not JSON or the expression does not yield a
// non-empty string.
func (c *Client) rejection(res response) error {
	return apperrors.Rejection(res.status, c.extractDetail(res.body))
}

func (c *Client) extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	v, err := jmespath.Search(c.detailExpr, data)
	if err != nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
