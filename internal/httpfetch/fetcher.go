// Package httpfetch implements the retrying HTTP executor every source
// client is built on: rate-limited, jittered, Retry-After aware, and
// classifying every failure as transient, permanent, or rate-limited.
package httpfetch

import (
	"context"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/albapepper/scoracle-ingest/internal/ratelimit"
)

// Fetcher executes rate-limited, retrying GET requests against one upstream
// source. A Fetcher is safe for concurrent use.
type Fetcher struct {
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	headers    http.Header
	maxRetries int
	baseDelay  time.Duration
	minBackoff time.Duration
	maxBackoff time.Duration
	jitterMax  time.Duration

	// sleep is overridable in tests to avoid real waits.
	sleep func(time.Duration)
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.httpClient.Timeout = d }
}

// WithProxy routes requests through proxyURL when non-empty.
func WithProxy(proxyURL string) Option {
	return func(f *Fetcher) {
		if proxyURL == "" {
			return
		}
		if u, err := url.Parse(proxyURL); err == nil {
			f.httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(u)}
		}
	}
}

// WithMaxRetries overrides the default retry budget (5).
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxRetries = n
		}
	}
}

// WithHeaders merges additional headers into every request (e.g. a JSON or
// HTML Accept header per source).
func WithHeaders(h http.Header) Option {
	return func(f *Fetcher) {
		for k, vs := range h {
			for _, v := range vs {
				f.headers.Add(k, v)
			}
		}
	}
}

// New builds a Fetcher gated by limiter.
func New(limiter *ratelimit.Limiter, opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    limiter,
		headers:    defaultHeaders(),
		maxRetries: 5,
		baseDelay:  500 * time.Millisecond,
		minBackoff: 500 * time.Millisecond,
		maxBackoff: 10 * time.Second,
		jitterMax:  500 * time.Millisecond,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func defaultHeaders() http.Header {
	h := http.Header{}
	h.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Referer", "https://www.nba.com/")
	h.Set("Origin", "https://www.nba.com")
	return h
}

// Get performs a rate-limited, retrying GET against url with query params,
// returning the raw response body and headers on success.
func (f *Fetcher) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, http.Header, error) {
	fullURL := rawURL
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		if err := f.limiter.Acquire(ctx); err != nil {
			return nil, nil, &Error{Kind: KindTransient, URL: fullURL, Err: err}
		}
		f.sleep(time.Duration(rand.Int63n(int64(f.jitterMax) + 1)))

		body, headers, fetchErr := f.attempt(ctx, fullURL)
		if fetchErr == nil {
			return body, headers, nil
		}

		ferr, ok := fetchErr.(*Error)
		if !ok || !ferr.IsRetryable() {
			return nil, nil, fetchErr
		}
		lastErr = fetchErr

		if attempt == f.maxRetries {
			break
		}

		if ferr.Kind == KindRateLimited && headers != nil {
			if retryAfter := parseRetryAfter(headers); retryAfter > 0 {
				f.sleep(retryAfter)
			}
		}
		f.sleep(f.backoff(attempt))
	}
	return nil, nil, lastErr
}

func (f *Fetcher) attempt(ctx context.Context, fullURL string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, nil, &Error{Kind: KindPermanent, URL: fullURL, Err: err}
	}
	for k, vs := range f.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, nil, &Error{Kind: KindTransient, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: KindTransient, URL: fullURL, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, resp.Header, &Error{Kind: KindRateLimited, StatusCode: resp.StatusCode, URL: fullURL, Err: errStatus(resp.StatusCode)}
	case resp.StatusCode >= 500:
		return nil, resp.Header, &Error{Kind: KindTransient, StatusCode: resp.StatusCode, URL: fullURL, Err: errStatus(resp.StatusCode)}
	case resp.StatusCode >= 400:
		return nil, resp.Header, &Error{Kind: KindPermanent, StatusCode: resp.StatusCode, URL: fullURL, Err: errStatus(resp.StatusCode)}
	}

	return body, resp.Header, nil
}

// backoff returns exponential backoff for attempt k, clamped to [min, max].
func (f *Fetcher) backoff(k int) time.Duration {
	d := time.Duration(float64(f.baseDelay) * math.Pow(2, float64(k-1)))
	if d < f.minBackoff {
		return f.minBackoff
	}
	if d > f.maxBackoff {
		return f.maxBackoff
	}
	return d
}

func parseRetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

type statusError struct{ code int }

func (e statusError) Error() string { return "unexpected status " + strconv.Itoa(e.code) }

func errStatus(code int) error { return statusError{code: code} }
