package kling

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the default Kling API base URL.
const DefaultBaseURL = "https://api-singapore.klingai.com"

// Client is the Kling API client.
type Client struct {
	// Video provides video generation and task query operations.
	Video *VideoService

	// Account provides account operations.
	Account *AccountService

	config *clientConfig
	http   *httpClient
}

// clientConfig holds the client configuration.
type clientConfig struct {
	accessKey  string
	secretKey  string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	now        func() time.Time
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout. Zero, the default, means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithClock sets the time source used when signing tokens.
func WithClock(now func() time.Time) Option {
	return func(c *clientConfig) {
		c.now = now
	}
}

// NewClient creates a new Kling API client.
//
// The access key and secret key are issued by the Kling developer console.
// A fresh token is signed with them for every request.
//
// Example:
//
//	client := kling.NewClient(creds.AccessKey, creds.SecretKey)
//	client := kling.NewClient(ak, sk, kling.WithTimeout(2*time.Minute))
func NewClient(accessKey, secretKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		accessKey: accessKey,
		secretKey: secretKey,
		baseURL:   DefaultBaseURL,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	c := &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}

	c.Video = newVideoService(c)
	c.Account = newAccountService(c)

	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}
