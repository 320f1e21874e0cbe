package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-backend/internal/metrics"
)

// =====================================================
// FORM RELAY CLIENT
// =====================================================

// Payload is the JSON body the relay expects.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// StatusError is returned when the relay answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("relay returned status %d: %s", e.StatusCode, e.Body)
}

// Client delivers contact submissions to the configured FormSpree-style
// relay endpoint. Fire-once: a single POST per submission, no retry, no
// backoff, no idempotency key.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a relay client for the given endpoint. The endpoint
// is chosen by config (production relay vs. local test mock) before it
// reaches this constructor.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send posts the payload to the relay. Any transport failure or non-2xx
// response is an error; any 2xx is success, the response body is not
// interpreted beyond logging.
func (c *Client) Send(ctx context.Context, p Payload) error {
	// Step 1: Build request body
	bodyJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal relay payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyJSON))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	// Step 2: Single call to relay
	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.RelayRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("failed to call relay: %w", err)
	}
	defer resp.Body.Close()

	// Step 3: Any 2xx is success
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep a bounded sample of the body for the log line
		sample, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(sample)}
	}

	return nil
}
