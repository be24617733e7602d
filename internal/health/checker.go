package health

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rileyhilliard/panicribbon/internal/errors"
)

// DefaultTimeout bounds a single health check request.
const DefaultTimeout = 5 * time.Second

// maxDrainBytes caps how much of a response body is read before closing.
const maxDrainBytes = 64 << 10

// Observation is the outcome of one probe.
type Observation struct {
	Healthy bool

	// LatencyMs is the reported latency: the elapsed time on success,
	// NoLatency on any failure.
	LatencyMs int64

	// Elapsed is the raw measured time, kept for logging even on failure.
	Elapsed time.Duration

	// StatusCode is the response code, 0 if no response arrived.
	StatusCode int

	// TimedOut is set when the request hit the timeout.
	TimedOut bool

	// Err is set for network errors, timeouts, and non-200 responses.
	Err error
}

// Status converts the observation into a Store record.
func (o Observation) Status(at time.Time) Status {
	return Status{
		Healthy:    o.Healthy,
		LatencyMs:  o.LatencyMs,
		StatusCode: o.StatusCode,
		CheckedAt:  at,
	}
}

// Prober performs a single health probe. Checker is the HTTP implementation.
type Prober interface {
	Probe(ctx context.Context, spec ServiceSpec) Observation
}

// Checker probes services over HTTP.
type Checker struct {
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
}

// CheckerOption configures the Checker.
type CheckerOption func(*Checker)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) CheckerOption {
	return func(c *Checker) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) CheckerOption {
	return func(c *Checker) {
		c.client = client
	}
}

// NewChecker creates an HTTP checker with a 5 second timeout.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		timeout: DefaultTimeout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
			// A redirect is not a 200; report what the endpoint itself said.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}

	return c
}

// Timeout returns the per-request timeout.
func (c *Checker) Timeout() time.Duration {
	return c.timeout
}

// Probe issues one GET to spec.HealthCheckURL. No retries.
//
// Healthy means the status code is exactly 200. On success LatencyMs is the
// elapsed time from just before the request to just after the response
// headers arrived, and may be 0. Every failure reports NoLatency.
func (c *Checker) Probe(ctx context.Context, spec ServiceSpec) Observation {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.HealthCheckURL, nil)
	if err != nil {
		return Observation{
			LatencyMs: NoLatency,
			Err: errors.WrapWithCode(err, errors.ErrProbe,
				"Invalid health check URL",
				"Check healthCheckUrl for "+spec.Name),
		}
	}
	req.Header.Set("User-Agent", "panicribbon/1.0")

	start := c.now()
	resp, err := c.client.Do(req)
	elapsed := c.now().Sub(start)

	if err != nil {
		obs := Observation{
			LatencyMs: NoLatency,
			Elapsed:   elapsed,
			TimedOut:  isTimeout(err),
		}
		msg := "Health check request failed"
		if obs.TimedOut {
			msg = fmt.Sprintf("Health check timed out after %s", c.timeout)
		}
		obs.Err = errors.WrapWithCode(err, errors.ErrProbe, msg, "")
		return obs
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode != http.StatusOK {
		return Observation{
			LatencyMs:  NoLatency,
			Elapsed:    elapsed,
			StatusCode: resp.StatusCode,
			Err: errors.New(errors.ErrProbe,
				fmt.Sprintf("Health check returned %d", resp.StatusCode), ""),
		}
	}

	return Observation{
		Healthy:    true,
		LatencyMs:  elapsed.Milliseconds(),
		Elapsed:    elapsed,
		StatusCode: resp.StatusCode,
	}
}

// isTimeout reports whether err came from the request deadline.
func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
