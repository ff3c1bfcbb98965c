// Package answer is a client for the remote answer service, which maps a
// question string to an answer string over HTTP.
package answer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/alphaui/alphachat/logger"
)

// DefaultEndpoint is the local development address of the answer service.
const DefaultEndpoint = "http://127.0.0.1:5000/chat"

const maxResponseBytes = 1 << 20

// ErrUnreachable wraps every failure to obtain an answer: transport errors,
// unexpected status codes and malformed bodies alike.
var ErrUnreachable = errors.New("answer service unreachable")

// ErrResponseTooLarge is returned, wrapped in ErrUnreachable, when the reply
// body exceeds maxResponseBytes.
var ErrResponseTooLarge = errors.New("answer response too large")

// Config configures a Client.
type Config struct {
	Endpoint   string        // defaults to DefaultEndpoint
	Timeout    time.Duration // zero means no timeout
	HTTPClient *http.Client  // optional
}

// Client posts questions to the answer service.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the configured endpoint.
func NewClient(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{endpoint: endpoint, http: hc}
}

// Endpoint returns the URL questions are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Ask posts {"question": question} and returns the "answer" field of the
// response. The question is sent verbatim.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body, err := sjson.SetBytes([]byte(`{}`), "question", question)
	if err != nil {
		return "", fmt.Errorf("encode question: %w", err)
	}

	reqID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("answer request failed", "id", reqID, "endpoint", c.endpoint, "err", err)
		return "", fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		logger.Warn("answer read failed", "id", reqID, "err", err)
		return "", fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}
	if len(data) > maxResponseBytes {
		logger.Warn("answer rejected", "id", reqID, "status", resp.StatusCode, "limit", maxResponseBytes, "err", ErrResponseTooLarge)
		return "", fmt.Errorf("%w: %w", ErrUnreachable, ErrResponseTooLarge)
	}

	answer, err := parseAnswer(resp.StatusCode, data)
	if err != nil {
		logger.Warn("answer rejected", "id", reqID, "status", resp.StatusCode, "err", err)
		return "", err
	}
	logger.Debug("answer received", "id", reqID, "status", resp.StatusCode, "elapsed", time.Since(start))
	return answer, nil
}

func parseAnswer(status int, data []byte) (string, error) {
	if status < 200 || status > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUnreachable, status)
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: response is not JSON", ErrUnreachable)
	}
	res := gjson.GetBytes(data, "answer")
	if !res.Exists() {
		return "", fmt.Errorf("%w: response has no answer field", ErrUnreachable)
	}
	if res.Type != gjson.String {
		return "", fmt.Errorf("%w: answer is %s, not a string", ErrUnreachable, res.Type)
	}
	return res.String(), nil
}
