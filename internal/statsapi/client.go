package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultFetchTimeout bounds the schedule fetch. Photo downloads are not
// bounded by this; they run on their own goroutines (see internal/media).
const DefaultFetchTimeout = 30 * time.Second

// Client fetches schedule documents from the stats API.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a schedule client for the given endpoint. An empty
// endpoint falls back to DefaultScheduleURL.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultScheduleURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: DefaultFetchTimeout},
		endpoint:   endpoint,
	}
}

// Endpoint returns the endpoint this client fetches from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch downloads and deserializes the schedule document. Any failure is
// returned as an *APIError identifying the failing stage; the caller is
// expected to treat it as fatal to content display.
func (c *Client) Fetch(ctx context.Context) (*Schedule, error) {
	target, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &APIError{Source: c.endpoint, Stage: StageURLParsing, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, &APIError{Source: c.endpoint, Stage: StageURLParsing, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Source: c.endpoint, Stage: StageConnection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Source: c.endpoint,
			Stage:  StageDownload,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Source: c.endpoint, Stage: StageDownload, Err: err}
	}

	var schedule Schedule
	if err := json.Unmarshal(buf, &schedule); err != nil {
		return nil, &APIError{Source: c.endpoint, Stage: StageDeserialization, Err: err}
	}
	return &schedule, nil
}
