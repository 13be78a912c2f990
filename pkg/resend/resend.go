// Package resend is a minimal client for the Resend transactional email
// API (https://resend.com). Only the single send-email operation used by
// the contact form is implemented.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ldbiro/ldbiro-web/pkg/httpclient"
	"github.com/ldbiro/ldbiro-web/pkg/logger"
	"github.com/ldbiro/ldbiro-web/pkg/metrics"
)

const defaultBaseURL = "https://api.resend.com"

// SendEmailRequest is the payload for the send-email operation.
type SendEmailRequest struct {
	From    string            `json:"from"`
	To      []string          `json:"to"`
	ReplyTo string            `json:"reply_to,omitempty"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html,omitempty"`
	Text    string            `json:"text,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// SendEmailResponse is returned on successful dispatch.
type SendEmailResponse struct {
	ID string `json:"id"`
}

// APIError is a structured error reported by the Resend API.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resend: %s (%d): %s", e.Name, e.StatusCode, e.Message)
}

// Client sends transactional email through the Resend API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient httpclient.Client
}

// NewClient creates a Resend API client.
func NewClient(apiKey string, httpClient httpclient.Client) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used by tests to point the client at a local server.
func NewClientWithBaseURL(apiKey, baseURL string, httpClient httpclient.Client) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// SendEmail dispatches a single email synchronously and returns the
// provider-assigned message ID.
func (c *Client) SendEmail(ctx context.Context, email *SendEmailRequest) (*SendEmailResponse, error) {
	start := time.Now()

	resp, err := c.send(ctx, email)

	status := "success"
	if err != nil {
		status = "error"
	}
	duration := metrics.MeasureDuration(start)
	metrics.EmailSendDuration.WithLabelValues("send_email", status).Observe(duration)
	metrics.EmailSendTotal.WithLabelValues("send_email", status).Inc()
	logger.LogAPICall("resend", "send_email", status, duration)

	return resp, err
}

func (c *Client) send(ctx context.Context, email *SendEmailRequest) (*SendEmailResponse, error) {
	payload, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call email API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}

	var result SendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode email API response: %w", err)
	}

	return &result, nil
}

func decodeAPIError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		return fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(body))
	}
	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = resp.StatusCode
	}
	return &apiErr
}
