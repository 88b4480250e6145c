package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/models"
)

// defaultTimeout bounds a whole catalog call (request and body) when client_timeout is unset or invalid.
const defaultTimeout = 30 * time.Second

// Client defines the interface for querying the show catalog API
type Client interface {
	// SearchShows returns the shows matching term, in catalog order.
	// The term is sent as-is, including the empty string.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// ListEpisodes returns the episodes of the show, in catalog order.
	ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	executor   failsafe.Executor[*payload]
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	callTimeout := defaultTimeout
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			callTimeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to keep its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	c := &client{
		httpClient: &http.Client{Transport: newCompressionTransport(baseTransport)},
		baseURL:    cfg.CatalogBaseURL,
		userAgent:  userAgent,
	}
	if c.baseURL == "" {
		c.baseURL = config.DefaultCatalogBaseURL
	}

	// A zero or negative timeout lets a hung request block until the caller's context ends.
	if callTimeout > 0 {
		c.executor = failsafe.With[*payload](timeout.New[*payload](callTimeout))
	}

	return c
}

// Close releases idle connections held by the underlying transport.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
