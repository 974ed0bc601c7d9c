// Package webhook delivers analysis results to HTTP endpoints after a run.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/giada-balinzo/chatmine/pkg/output"
	"github.com/giada-balinzo/chatmine/pkg/stats"
)

// DefaultTimeout bounds a delivery when the endpoint sets no timeout.
const DefaultTimeout = 10 * time.Second

// maxResponseBytes caps how much of an endpoint's reply is retained.
const maxResponseBytes = 1 << 20

// Client posts run results to webhook endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook client.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// SendOptions configures one delivery.
type SendOptions struct {
	URL     string
	Token   string        // Bearer token (optional)
	Timeout time.Duration // Per-delivery timeout (DefaultTimeout when zero)
}

// Response is the outcome of one delivery attempt. Transport failures and
// HTTP-level failures both land in Error; callers decide whether either
// fails the run.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
	Error      error
}

// Success reports whether the endpoint accepted the delivery (2xx).
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// payload is the webhook body: run identity plus the aggregate result.
// Per-file sections are deliberately omitted to keep the body small;
// endpoints that want full detail should consume the JSON report instead.
type payload struct {
	Tool       string         `json:"tool"`
	Directory  string         `json:"directory"`
	AnalyzedAt time.Time      `json:"analyzed_at"`
	Summary    output.Summary `json:"summary"`
	Total      *stats.Result  `json:"total"`
}

func buildPayload(report *output.Report) payload {
	return payload{
		Tool:       "chatmine",
		Directory:  report.Metadata.Directory,
		AnalyzedAt: report.Metadata.AnalyzedAt,
		Summary:    report.Summary,
		Total:      report.Total,
	}
}

// Send posts the aggregate of an analysis run to one endpoint.
func (c *Client) Send(ctx context.Context, report *output.Report, opts SendOptions) *Response {
	start := time.Now()

	body, err := json.Marshal(buildPayload(report))
	if err != nil {
		return fail(start, fmt.Errorf("encoding payload: %w", err))
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(body))
	if err != nil {
		return fail(start, fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "chatmine-webhook")
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(start, fmt.Errorf("posting result: %w", err))
	}
	defer httpResp.Body.Close()

	replyBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return fail(start, fmt.Errorf("reading response: %w", err))
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       string(replyBody),
		Duration:   time.Since(start),
	}
	if resp.StatusCode >= 400 {
		resp.Error = fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return resp
}

func fail(start time.Time, err error) *Response {
	return &Response{Error: err, Duration: time.Since(start)}
}
