package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// maxErrorBody is the maximum number of bytes read from an error response body.
const maxErrorBody = 4096

// APIError is returned for non-2xx Discord API responses. It supports
// errors.Is matching by status code.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the formatted error string.
func (e *APIError) Error() string {
	return fmt.Sprintf("discord: HTTP %d: %s", e.StatusCode, e.Message)
}

// Is supports errors.Is matching by status code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Sentinel errors for the failure modes callers branch on.
var (
	ErrUnauthorized = &APIError{StatusCode: 401, Message: "unauthorized"}
	ErrForbidden    = &APIError{StatusCode: 403, Message: "forbidden"}
	ErrNotFound     = &APIError{StatusCode: 404, Message: "not found"}
)

// Client posts messages to a single Discord channel.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	channelID  string
	logger     *slog.Logger
}

// NewClient creates a new Discord Client with the given configuration.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		channelID:  cfg.ChannelID,
		logger:     logger.With("component", "discord"),
	}, nil
}

type createMessageRequest struct {
	Content string `json:"content"`
	TTS     bool   `json:"tts"`
}

// Send posts content to the configured channel.
func (c *Client) Send(ctx context.Context, content string) error {
	body, err := json.Marshal(createMessageRequest{Content: content, TTS: false})
	if err != nil {
		return fmt.Errorf("discord: marshal message: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v9/channels/%s/messages", c.baseURL, c.channelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	c.logger.Info("message sent", "channel_id", c.channelID, "length", len(content))
	return nil
}
