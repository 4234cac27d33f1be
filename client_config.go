package crpt_go

import (
	"net/http"
	"time"

	"github.com/Freusturz/crpt-go/api"
	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/rate"
)

const (
	// DefaultEndpoint is the production CRPT API base URL.
	DefaultEndpoint = "https://ismp.crpt.ru/api/v3"

	// DefaultSignatureHeader carries the detached signature of the
	// submitted document.
	DefaultSignatureHeader = "X-Signature"
)

type config struct {
	// endpoint is the base URL of the CRPT API.
	// It's useful for pointing the client at the sandbox
	// environment or a local stub.
	// default: DefaultEndpoint
	endpoint string

	// signatureHeader is the name of the HTTP header carrying
	// the document signature.
	// default: DefaultSignatureHeader
	signatureHeader string

	// window is the duration of the sliding rate-limit window:
	// at most requestLimit submissions may start within any
	// trailing interval of this length.
	// default: 1 second
	window time.Duration

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled. Independent of any time spent
	// waiting for a rate-limit permit.
	// default: 30 seconds
	timeout time.Duration

	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// logger provides logging functionality for all internal
	// crpt-go client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter overrides the rate limiter built from requestLimit
	// and window. Mostly useful for tests (rate.NoopLimiter) or
	// for sharing one limiter between clients that hit the same
	// account quota.
	// default: a rate.SlidingWindow per client
	limiter rate.Limiter

	// serializer converts documents into request bodies.
	// default: api.JsonSerializer (encoding/json)
	serializer api.Serializer
}

func defaultConfig() *config {
	return &config{
		endpoint:        DefaultEndpoint,
		signatureHeader: DefaultSignatureHeader,
		window:          time.Second,
		timeout:         30 * time.Second,
		transport:       http.DefaultTransport,
		logger:          logger.Noop{},
		serializer:      &api.JsonSerializer{},
	}
}

type ConfigOption func(c *config)

func WithEndpoint(endpoint string) ConfigOption {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

func WithSignatureHeader(header string) ConfigOption {
	return func(c *config) {
		c.signatureHeader = header
	}
}

func WithWindow(window time.Duration) ConfigOption {
	return func(c *config) {
		c.window = window
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithSerializer(serializer api.Serializer) ConfigOption {
	return func(c *config) {
		c.serializer = serializer
	}
}
