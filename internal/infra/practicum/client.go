// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ConnectivityError reports a request that never produced an HTTP response.
type ConnectivityError struct {
	Endpoint string
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("practicum API unreachable (%s): %v", e.Endpoint, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// UnexpectedStatusError reports a completed request that came back with a
// non-200 status.
type UnexpectedStatusError struct {
	StatusCode int
	Endpoint   string
	FromDate   int64
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("practicum API returned status %d (endpoint=%s, from_date=%d)", e.StatusCode, e.Endpoint, e.FromDate)
}

// Client fetches homework statuses from the Practicum API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient creates a Practicum API client. The timeout bounds every request;
// the upstream service has no SLA, so an unbounded wait would stall the whole
// poll cycle.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}
}

// HomeworkStatuses fetches homework updates since fromDate (unix seconds) and
// returns the decoded response body. It performs exactly one request per call;
// retrying is the caller's concern.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build practicum request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := url.Values{}
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UnexpectedStatusError{StatusCode: resp.StatusCode, Endpoint: c.endpoint, FromDate: fromDate}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode practicum response: %w", err)
	}
	return payload, nil
}
