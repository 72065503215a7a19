package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

	maxBackoff = 30 * time.Second
)

// Fetcher is the shared HTTP transport for provider clients. A call is a
// single best-effort request unless retries are enabled explicitly; only
// 429, 403 and 5xx answers are retried.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxRetries int
	retryDelay time.Duration
}

type Option func(*Fetcher)

func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.httpClient = c
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.httpClient.Timeout = timeout
		}
	}
}

// WithRetries enables bounded retries with exponential backoff and jitter
// for rate-limit, forbidden and server-error answers.
func WithRetries(maxRetries int, retryDelay time.Duration) Option {
	return func(f *Fetcher) {
		if maxRetries > 0 {
			f.maxRetries = maxRetries
		}
		if retryDelay > 0 {
			f.retryDelay = retryDelay
		}
	}
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
		retryDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get fetches url and returns the response body. Errors are mapped onto the
// domain sentinels: 404 to ErrNotFound, 429 to ErrRateLimited, network
// failures and remaining non-2xx statuses to ErrRequestFailed. Context
// cancellation passes through untouched.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; ; attempt++ {
		body, retryable, err := f.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable || attempt >= f.maxRetries {
			return nil, lastErr
		}

		if err := sleep(ctx, backoff(f.retryDelay, attempt)); err != nil {
			return nil, err
		}
	}
}

// GetJSON fetches url and decodes the body. A body that does not decode is a
// schema mismatch, not a transport failure.
func (f *Fetcher) GetJSON(ctx context.Context, url string, v any) error {
	body, err := f.Get(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", derr.ErrSchemaMismatch, url, err)
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("%w: do request: %v", derr.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, false, fmt.Errorf("%w: read body: %v", derr.ErrRequestFailed, err)
		}
		return data, false, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("%w: %s", derr.ErrNotFound, url)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("%w: %s", derr.ErrRateLimited, url)
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, fmt.Errorf("%w: unexpected status %s for %s", derr.ErrRequestFailed, resp.Status, url)
	default:
		return nil, false, fmt.Errorf("%w: unexpected status %s for %s", derr.ErrRequestFailed, resp.Status, url)
	}
}

func backoff(retryDelay time.Duration, attempt int) time.Duration {
	d := retryDelay << attempt
	d += time.Duration(rand.Int63n(int64(time.Second)))
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
