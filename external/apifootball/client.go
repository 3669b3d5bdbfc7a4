package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL      = "https://v3.football.api-sports.io"
	defaultTimeout      = 20 * time.Second
	defaultRetryBackoff = time.Second
	apiKeyHeader        = "x-apisports-key"
	maxBodyBytes        = 6 << 20

	rateLimitedHint    = "the football data provider is rate limiting requests, please try again shortly"
	unavailableHint    = "football data is temporarily unavailable, please try again later"
	rejectedHint       = "the football data provider could not serve this request"
	unreadableBodyHint = "received an unreadable response from the football data provider"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client talks to API-Football v3. It is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.Breaker
	flight       singleflight.Group
	// flightTimeout bounds a shared upstream call including its retries.
	flightTimeout time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}

	breaker := resilience.NewBreaker("api-football", cfg.CircuitBreaker,
		resilience.WithStateListener(func(name string, from, to resilience.State) {
			logger.Warn("circuit breaker state changed", "dependency", name, "from", from.String(), "to", to.String())
		}),
	)

	maxRetries := max(cfg.MaxRetries, 0)
	backoffTotal := retryBackoff * time.Duration(maxRetries*(maxRetries+1)/2)

	return &Client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		apiKey:        strings.TrimSpace(cfg.APIKey),
		maxRetries:    maxRetries,
		retryBackoff:  retryBackoff,
		logger:        logger,
		breaker:       breaker,
		flightTimeout: httpClient.Timeout*time.Duration(maxRetries+1) + backoffTotal,
	}
}

type flightResult struct {
	raw       []byte
	transient bool
}

func transientOf(res singleflight.Result) bool {
	out, ok := res.Val.(flightResult)
	return ok && out.transient
}

// getJSON fetches path and decodes the body into target. Identical concurrent requests
// share one upstream call, and every caller reports its outcome to the breaker.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	done, err := c.breaker.Acquire()
	if err != nil {
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "path", path, "state", c.breaker.State().String())
		return crerr.WithHint(
			fmt.Errorf("%w: football data provider circuit is open", usecase.ErrDependencyUnavailable),
			unavailableHint,
		)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// The shared call outlives any single caller; each caller only abandons its own wait.
	ch := c.flight.DoChan(fullURL, func() (any, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
		defer cancel()

		raw, transient, reqErr := c.executeRequest(sharedCtx, fullURL)
		return flightResult{raw: raw, transient: transient}, reqErr
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		go func() {
			abandoned := <-ch
			done(transientOf(abandoned))
		}()
		return ctx.Err()
	}
	done(transientOf(res))
	if res.Err != nil {
		return res.Err
	}

	out := res.Val.(flightResult)
	if err := sonic.Unmarshal(out.raw, target); err != nil {
		return crerr.WithHint(crerr.Wrapf(err, "decode provider payload path=%s", path), unreadableBodyHint)
	}

	return nil
}

// executeRequest retries transport failures, 429 and 5xx with linear back-off. transient
// reports whether the final failure should count against the circuit breaker.
func (c *Client) executeRequest(ctx context.Context, fullURL string) (raw []byte, transient bool, err error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, buildErr := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if buildErr != nil {
			return nil, false, fmt.Errorf("build request: %w", buildErr)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(apiKeyHeader, c.apiKey)

		started := time.Now()
		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			if ctx.Err() != nil {
				return nil, false, ctx.Err()
			}
			lastErr = crerr.WithHint(
				fmt.Errorf("%w: send request: %s", usecase.ErrDependencyUnavailable, c.sanitize(doErr.Error())),
				unavailableHint,
			)
		} else {
			body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()

			switch {
			case readErr != nil:
				lastErr = crerr.WithHint(
					fmt.Errorf("%w: read response body: %s", usecase.ErrDependencyUnavailable, c.sanitize(readErr.Error())),
					unavailableHint,
				)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				c.logger.DebugContext(ctx, "api-football request completed",
					"url", redactAPIURL(fullURL),
					"status", resp.StatusCode,
					"duration_ms", time.Since(started).Milliseconds(),
				)
				return body, false, nil
			case resp.StatusCode == http.StatusTooManyRequests:
				lastErr = crerr.WithHint(
					fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrRateLimited, resp.StatusCode, c.sanitize(abbreviateBody(body))),
					rateLimitedHint,
				)
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.WithHint(
					fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrDependencyUnavailable, resp.StatusCode, c.sanitize(abbreviateBody(body))),
					unavailableHint,
				)
			default:
				return nil, false, crerr.WithHint(
					fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrProviderRejected, resp.StatusCode, c.sanitize(abbreviateBody(body))),
					rejectedHint,
				)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, false, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "api-football request failed", "url", redactAPIURL(fullURL), "attempts", c.maxRetries+1, "error", lastErr)
	return nil, true, lastErr
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// redactAPIURL keeps logged URLs free of credentials even if a key ever ends up in the query.
func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	for _, key := range []string{"key", "apikey", "api_key"} {
		if query.Has(key) {
			query.Set(key, "REDACTED")
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
