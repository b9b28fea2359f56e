package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"leetcode_proxy/internal/common"
	"leetcode_proxy/internal/domain/model"
	"leetcode_proxy/internal/platform/metrics"
)

const (
	DefaultEndpoint = "https://leetcode.com/graphql"
	DefaultTimeout  = 12 * time.Second

	// maxBodyBytes bounds how much of an upstream response we are willing to buffer.
	maxBodyBytes = 4 << 20
	userAgent    = "leetcode-proxy/1.0"
)

// HTTPClient is the subset of *http.Client the client needs; tests swap it out.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient HTTPClient
	metrics    *metrics.UpstreamMetrics
}

// NewClient creates a LeetCode GraphQL client. A nil httpClient gets a
// dedicated *http.Client bounded by timeout; m may be nil.
func NewClient(endpoint string, timeout time.Duration, httpClient HTTPClient, m *metrics.UpstreamMetrics) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint:   endpoint,
		timeout:    timeout,
		httpClient: httpClient,
		metrics:    m,
	}
}

type graphQLRequest struct {
	Query     string           `json:"query"`
	Variables profileVariables `json:"variables"`
}

type profileVariables struct {
	Username string `json:"username"`
}

// FetchUserProfile issues exactly one ProfileQuery request for username.
//
// Transport failures, non-2xx statuses and undecodable bodies come back as
// *common.UpstreamError of kind common.ErrGatewayUnavailable. A decoded
// payload is returned as-is, including one that carries GraphQL errors; a
// non-2xx response whose body is a GraphQL error document is treated the same
// way so the caller can classify it.
func (c *Client) FetchUserProfile(ctx context.Context, username string) (*model.UpstreamPayload, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     ProfileQuery,
		Variables: profileVariables{Username: username},
	})
	if err != nil {
		return nil, common.Errorf("encoding leetcode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, common.Errorf("building leetcode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")
	req.Header.Set("User-Agent", userAgent)
	if reqID := chiMiddleware.GetReqID(ctx); reqID != "" {
		req.Header.Set(chiMiddleware.RequestIDHeader, reqID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe(metrics.OutcomeTransportError, time.Since(start))
		if isTimeout(err) {
			return nil, common.GatewayError(0, err, "Failed to reach LeetCode: request timed out after %s: %v", c.timeout, err)
		}
		return nil, common.GatewayError(0, err, "Failed to reach LeetCode: %v", err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload model.UpstreamPayload
		if readErr == nil && json.Unmarshal(raw, &payload) == nil && len(payload.Errors) > 0 {
			c.metrics.Observe(metrics.OutcomeGraphQLError, elapsed)
			return &payload, nil
		}
		c.metrics.Observe(metrics.OutcomeBadStatus, elapsed)
		return nil, common.GatewayError(resp.StatusCode, nil, "LeetCode API error: HTTP %d", resp.StatusCode)
	}

	if readErr != nil {
		c.metrics.Observe(metrics.OutcomeTransportError, elapsed)
		if isTimeout(readErr) {
			return nil, common.GatewayError(resp.StatusCode, readErr, "Failed to reach LeetCode: request timed out after %s: %v", c.timeout, readErr)
		}
		return nil, common.GatewayError(resp.StatusCode, readErr, "Failed to reach LeetCode: %v", readErr)
	}

	var payload model.UpstreamPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.metrics.Observe(metrics.OutcomeInvalidBody, elapsed)
		log.Printf("WARN: undecodable LeetCode response for %q (%d bytes): %v", username, len(raw), err)
		return nil, common.GatewayError(resp.StatusCode, err, "Invalid response from LeetCode: %v", err)
	}

	if len(payload.Errors) > 0 {
		c.metrics.Observe(metrics.OutcomeGraphQLError, elapsed)
	} else {
		c.metrics.Observe(metrics.OutcomeOK, elapsed)
	}
	return &payload, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
