package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fittracker/fitness-app/internal/config"
	"fittracker/fitness-app/internal/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	cacheSize      = 4 * 1024 * 1024
	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 2 * 1024 * 1024
)

// Client talks to the remote fitness API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *freecache.Cache
	cacheTTL   time.Duration
	metrics    *metrics.Manager
}

// NewClient builds a client from the app configuration. A nil metrics
// manager disables instrumentation.
func NewClient(cfg config.AppConfig, m *metrics.Manager) (*Client, error) {
	base, err := url.Parse(cfg.RemoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("remote url %q must be absolute", cfg.RemoteURL)
	}

	timeout := cfg.RemoteTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		cacheTTL:   cfg.VideoCacheTTL,
		metrics:    m,
	}
	if cfg.RemoteRateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RemoteRateLimit), 1)
	}
	if cfg.VideoCacheTTL > 0 {
		c.cache = freecache.NewCache(cacheSize)
	}

	log.Debugf("remote client for %s, timeout %s", base, timeout)
	return c, nil
}

// call performs one JSON request. body and out may be nil. token, when
// set, is sent as a bearer credential. The raw response body is returned
// for callers that cache it.
func (c *Client) call(ctx context.Context, op, method string, path []string, token string, body, out any) (raw []byte, err error) {
	start := time.Now()
	defer func() {
		c.observe(op, start, err)
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &RemoteError{Op: op, Err: err}
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	target := c.baseURL.JoinPath(path...)
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debugf("remote: %s %s", method, target.Path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("remote: %s %s failed: %s", method, target.Path, err)
		return nil, &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, &RemoteError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(raw) > maxResponseSize {
		return nil, &RemoteError{Op: op, StatusCode: resp.StatusCode, Message: "response too large", Err: ErrResponseTooLarge}
	}
	log.Debugf("remote: %s %s -> %d (%d bytes)", method, target.Path, resp.StatusCode, len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := newStatusError(op, resp.StatusCode, raw)
		log.Errorf("remote: %s", re)
		return nil, re
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, &RemoteError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
		}
	}
	return raw, nil
}

func (c *Client) observe(op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.CounterRemoteCalls.WithLabelValues(op, outcome).Inc()
	c.metrics.HistRemoteDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
