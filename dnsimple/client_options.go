package dnsimple

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient Doer
	logger     zerolog.Logger
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
}

// WithBaseURL points the client at another API endpoint, e.g. SandboxBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithUserAgent sets a custom user agent, sent in front of the library default.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It has no effect when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client Doer) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
