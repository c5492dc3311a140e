package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
)

// TooManyRequestsError represents a rate limiting signal from the messaging API.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Unwrap lets callers treat rate limiting as an unavailable provider.
func (e TooManyRequestsError) Unwrap() error {
	return domainErrors.ErrExternalUnavailable
}

// Disabled is used when no API credentials are configured.
type Disabled struct{}

// SendText always reports the provider as unavailable.
func (Disabled) SendText(context.Context, string, string) error {
	return fmt.Errorf("messaging api not configured: %w", domainErrors.ErrExternalUnavailable)
}

// CloudAPIClient sends text messages through the WhatsApp Cloud API.
type CloudAPIClient struct {
	baseURL    *url.URL
	senderID   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

type textMessage struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type textPayload struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// NewCloudAPIClient creates a client with a default timeout.
func NewCloudAPIClient(baseURL, senderID, token string, logger *slog.Logger) (*CloudAPIClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse messaging url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("messaging url must be absolute")
	}
	if senderID == "" || token == "" {
		return nil, fmt.Errorf("messaging sender id and token are required")
	}
	return &CloudAPIClient{
		baseURL:  parsed,
		senderID: senderID,
		token:    token,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SendText posts a plain text message to the given E.164 number. Every
// failure wraps ErrExternalUnavailable.
func (c *CloudAPIClient) SendText(ctx context.Context, to, body string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, c.senderID, "messages")

	payload, err := json.Marshal(textMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               strings.TrimPrefix(to, "+"),
		Type:             "text",
		Text:             textPayload{Body: body},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("messaging request: %v: %w", err, domainErrors.ErrExternalUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("messaging request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return fmt.Errorf("messaging error %s: %w", resp.Status, domainErrors.ErrExternalUnavailable)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
