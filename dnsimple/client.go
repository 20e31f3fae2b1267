package dnsimple

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// Version is the library version, reported in the default user agent
	Version = "0.1.0"
	// APIVersion is the versioned root every request is issued under
	APIVersion = "v2"
	// DefaultBaseURL is the production endpoint
	DefaultBaseURL = "https://api.dnsimple.com"
	// SandboxBaseURL is the sandbox endpoint
	SandboxBaseURL = "https://api.sandbox.dnsimple.com"
	// DefaultTimeout is the timeout of the default HTTP client
	DefaultTimeout = 30 * time.Second
)

// DefaultUserAgent is sent on every request, after any custom user agent
var DefaultUserAgent = "dnsimple-go/" + Version

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client holds the connection configuration and the resource services.
// Base URL, user agent and credentials may be changed at any time and take
// effect on the next request. A Client is safe for concurrent use.
type Client struct {
	mu          sync.RWMutex
	baseURL     string
	userAgent   string
	credentials Credentials

	httpClient Doer
	logger     zerolog.Logger
	transport  *Transport

	Identity *IdentityService
	Accounts *AccountsService
	Domains  *DomainsService
	Zones    *ZonesService
	Webhooks *WebhooksService
}

// NewClient creates a new client. credentials may be nil and set later with SetCredentials.
func NewClient(credentials Credentials, opts ...Option) (*Client, error) {
	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	c := &Client{
		userAgent:   options.userAgent,
		credentials: credentials,
		httpClient:  httpClient,
		logger:      options.logger,
	}
	if err := c.SetBaseURL(options.baseURL); err != nil {
		return nil, err
	}

	c.transport = &Transport{client: c}
	base := service{client: c}
	c.Identity = &IdentityService{service: base}
	c.Accounts = &AccountsService{service: base}
	c.Domains = &DomainsService{service: base}
	c.Zones = &ZonesService{service: base}
	c.Webhooks = &WebhooksService{service: base}

	return c, nil
}

// BaseURL returns the current API endpoint
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL changes the API endpoint. The user agent is left untouched.
func (c *Client) SetBaseURL(baseURL string) error {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: base URL %q: %v", ErrInvalidConfig, baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q must be absolute", ErrInvalidConfig, baseURL)
	}

	c.mu.Lock()
	c.baseURL = baseURL
	c.mu.Unlock()
	return nil
}

// UserAgent returns the composed user agent sent with every request
func (c *Client) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.userAgent == "" {
		return DefaultUserAgent
	}
	return c.userAgent + " " + DefaultUserAgent
}

// SetUserAgent sets the custom part of the user agent
func (c *Client) SetUserAgent(userAgent string) {
	c.mu.Lock()
	c.userAgent = userAgent
	c.mu.Unlock()
}

// SetCredentials replaces the authenticator. The last one set wins.
func (c *Client) SetCredentials(credentials Credentials) {
	c.mu.Lock()
	c.credentials = credentials
	c.mu.Unlock()
}

// Transport returns the executor resource services go through
func (c *Client) Transport() *Transport {
	return c.transport
}

// versionedRoot returns <base-url>/<version>/
func (c *Client) versionedRoot() string {
	return c.BaseURL() + "/" + APIVersion + "/"
}

func (c *Client) currentCredentials() Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credentials
}
