// Package dashboardapi is the HTTP adapter for the analytics backend that
// serves the usage dashboard reports.
package dashboardapi

import (
	"bytes"
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
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/lorrc/usage-dashboard/internal/core/domain"
	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
	"github.com/lorrc/usage-dashboard/internal/core/ports"
	"github.com/lorrc/usage-dashboard/internal/infrastructure/logging"
)

const (
	// DefaultAPIPrefix is the versioned prefix the backend mounts its routes under
	DefaultAPIPrefix = "/api/v1"

	MostUsedDomainsPath = "/dashboard/most-used-domains"
	ServerUsagePath     = "/dashboard/server-usage-by-time-range"

	// RequestIDHeader is the HTTP header name for request IDs
	RequestIDHeader = "X-Request-ID"

	opMostUsedDomains = "most-used-domains"
	opServerUsage     = "server-usage-by-time-range"

	maxResponseBytes = 8 << 20
	maxErrorBody     = 512
)

var _ ports.DashboardQueryClient = (*Client)(nil)

// Config holds client configuration
type Config struct {
	BaseURL           string        // e.g. http://localhost:8080
	APIPrefix         string        // Defaults to DefaultAPIPrefix
	Timeout           time.Duration // 0 leaves the transport default in place
	RequestsPerSecond float64       // 0 disables client-side rate limiting
	BurstSize         int
	HTTPClient        *http.Client // Optional, overrides Timeout
	Logger            *slog.Logger
}

// Client talks to the analytics backend. It is safe for concurrent use and
// keeps no per-call state.
type Client struct {
	httpClient *http.Client
	endpoint   string
	limiter    *rate.Limiter
	log        *logging.OutboundLogger
}

// NewClient creates a backend client with the given configuration
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base url %q: host is required", cfg.BaseURL)
	}

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = DefaultAPIPrefix
	}
	prefix = "/" + strings.Trim(prefix, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.BurstSize
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	var outbound *logging.OutboundLogger
	if cfg.Logger != nil {
		outbound = &logging.OutboundLogger{Logger: cfg.Logger}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(base.String(), "/") + prefix,
		limiter:    limiter,
		log:        outbound,
	}, nil
}

// FetchMostUsedDomains posts query to the most-used-domains report.
func (c *Client) FetchMostUsedDomains(ctx context.Context, query domain.DashboardQuery) ([]domain.DomainUsage, error) {
	return fetch(ctx, c, opMostUsedDomains, MostUsedDomainsPath, query, decodeDomainUsage)
}

// FetchServerUsageByRange posts query to the server-usage-by-time-range report.
func (c *Client) FetchServerUsageByRange(ctx context.Context, query domain.DashboardQuery) ([]domain.ServerUsage, error) {
	return fetch(ctx, c, opServerUsage, ServerUsagePath, query, decodeServerUsage)
}

// fetch performs one POST and decodes the array body with decode. It never
// returns rows together with an error.
func fetch[T any](
	ctx context.Context,
	c *Client,
	op, path string,
	query domain.DashboardQuery,
	decode func([]json.RawMessage) ([]T, error),
) (rows []T, err error) {
	body, err := encodeQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requestID := logging.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = logging.WithRequestID(ctx, requestID)
	}

	target := c.endpoint + path
	start := time.Now()
	status := 0
	defer func() {
		c.log.LogCall(ctx, http.MethodPost, target, status, time.Since(start), err)
	}()

	if c.limiter != nil {
		if werr := c.limiter.Wait(ctx); werr != nil {
			return nil, apperrors.NewNetworkError(op, target, werr)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkError(op, target, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, apperrors.NewNetworkError(op, target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewServerError(op, resp.StatusCode, snippet(payload))
	}
	if len(payload) > maxResponseBytes {
		return nil, apperrors.NewDecodeError(op, errors.New("response body too large"))
	}

	items, err := decodeArray(payload)
	if err != nil {
		return nil, apperrors.NewDecodeError(op, err)
	}
	rows, err = decode(items)
	if err != nil {
		return nil, apperrors.NewDecodeError(op, err)
	}
	return rows, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}
