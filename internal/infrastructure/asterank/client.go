package asterank

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"PlanetDashboard/internal/config"
	"PlanetDashboard/internal/domain"
	"PlanetDashboard/internal/source"
)

// maxBody caps the payload read from the API.
const maxBody = 64 << 20

// Client fetches Kepler candidates from the asterank API in a single request.
type Client struct {
	endpoint string
	params   map[string]string
	client   *http.Client
	logger   *slog.Logger
}

var _ source.Source = (*Client)(nil)

// NewClient builds a client from source configuration; a nil httpClient gets
// the configured timeout.
func NewClient(cfg config.SourceConfig, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		endpoint: cfg.URL,
		params:   cfg.Params(),
		client:   httpClient,
		logger:   log,
	}
}

// Name identifies the source inside the registry.
func (c *Client) Name() string {
	return "asterank"
}

// Fetch downloads and decodes the candidate list.
func (c *Client) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	endpoint, err := buildURL(c.endpoint, c.params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "PlanetDashboard/1.0")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request kepler data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("asterank returned %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	records, err := Decode(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		c.logger.Info("fetched kepler data", "records", len(records), "elapsed", time.Since(start))
	}
	return records, nil
}

func buildURL(base string, params map[string]string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid asterank url %s: %w", base, err)
	}

	query := parsed.Query()
	for k, v := range params {
		query.Set(k, v)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
