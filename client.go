package crpt_go

import (
	"fmt"
	"net/http"

	"github.com/Freusturz/crpt-go/api"
	crpt_errors "github.com/Freusturz/crpt-go/errors"
	"github.com/Freusturz/crpt-go/rate"
)

// Client is a thread-safe CRPT API client. All submissions made through
// it share one rate limiter: at most requestLimit requests start within
// any trailing window, and callers over the limit block until capacity
// frees up.
//
// A Client is immutable after construction and safe for use from any
// number of goroutines. Independent clients do not share limiter state.
type Client struct {
	httpClient *http.Client
	limiter    rate.Limiter

	documents *api.Documents
}

// NewClient builds a Client admitting at most requestLimit submissions
// per configured window (1 second unless WithWindow says otherwise).
// It fails if requestLimit is not positive or a required option was
// blanked out.
func NewClient(requestLimit int, opts ...ConfigOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateConfig(requestLimit, cfg); err != nil {
		return nil, err
	}

	limiter := cfg.limiter
	if limiter == nil {
		var err error
		limiter, err = rate.NewSlidingWindow(requestLimit, cfg.window)
		if err != nil {
			return nil, invalidConfig(err)
		}
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		documents: api.NewDocumentsApi(
			cfg.endpoint,
			cfg.signatureHeader,
			httpClient,
			cfg.logger,
			limiter,
			cfg.serializer,
		),
	}, nil
}

func (c *Client) Documents() *api.Documents {
	return c.documents
}

func validateConfig(requestLimit int, cfg *config) error {
	if requestLimit <= 0 {
		return invalidConfig(fmt.Errorf("requestLimit must be positive, got %d", requestLimit))
	}
	if cfg.endpoint == "" {
		return invalidConfig(fmt.Errorf("endpoint must not be empty"))
	}
	if cfg.signatureHeader == "" {
		return invalidConfig(fmt.Errorf("signatureHeader must not be empty"))
	}
	if cfg.window <= 0 {
		return invalidConfig(fmt.Errorf("window must be positive, got %v", cfg.window))
	}
	if cfg.timeout <= 0 {
		return invalidConfig(fmt.Errorf("timeout must be positive, got %v", cfg.timeout))
	}
	return nil
}

func invalidConfig(err error) *crpt_errors.ApiError {
	return &crpt_errors.ApiError{
		Stage:     crpt_errors.STAGE_CONFIG,
		Type:      crpt_errors.TYPE_INVALID_CONFIG,
		SourceErr: err,
	}
}
