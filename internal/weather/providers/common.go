package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// RateConfig bounds the outbound request rate of one client.
type RateConfig struct {
	RPS   float64
	Burst int
}

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	Client *http.Client
	Rate   RateConfig
}

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// endpoint is the shared plumbing of the Open-Meteo clients.
type endpoint struct {
	name    string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	circuit *gobreaker.CircuitBreaker
}

func newEndpoint(name, baseURL string, cfg HTTPClientConfig) endpoint {
	limit := rate.Inf
	burst := cfg.Rate.Burst
	if cfg.Rate.RPS > 0 {
		limit = rate.Limit(cfg.Rate.RPS)
	}
	if burst <= 0 {
		burst = 1
	}

	return endpoint{
		name:    name,
		baseURL: baseURL,
		client:  cfg.Client,
		limiter: rate.NewLimiter(limit, burst),
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:         name,
			MaxRequests:  5,
			Interval:     1 * time.Minute,
			Timeout:      2 * time.Minute,
			IsSuccessful: countsAsSuccess,
		}),
	}
}

// countsAsSuccess keeps caller cancellations and 4xx answers out of the
// breaker's failure count. The breaker is shared by every session.
func countsAsSuccess(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, context.Canceled):
		return true
	case errors.Is(err, errUnexpected):
		return true
	default:
		return false
	}
}

// do executes exactly one attempt of the request through the rate limiter and
// the circuit breaker. Every failure is wrapped in weather.ErrTransport.
func (e endpoint) do(ctx context.Context, buildRequest func() (*http.Request, error)) (*http.Response, error) {
	if e.client == nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrTransport, errNoHTTPClient)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %v", weather.ErrTransport, err)
	}

	req, err := buildRequest()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrTransport, err)
	}

	// Ensure the request obeys context cancellation.
	req = req.WithContext(ctx)

	result, err := e.circuit.Execute(func() (interface{}, error) {
		resp, execErr := e.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}

		// Anything but 2xx consumes the body here; the caller never sees it.
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				return nil, errRateLimited
			case resp.StatusCode >= 500:
				return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
			default:
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s: %v: %v", weather.ErrTransport, e.name, errCircuitOpen, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", weather.ErrTransport, e.name, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type from circuit breaker", weather.ErrTransport)
	}
	return resp, nil
}
