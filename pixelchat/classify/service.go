package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// globalService ...
var globalService *Service

// GlobalService returns the global service instance.
func GlobalService() *Service {
	return globalService
}

// Service sends chat messages to an OpenAI-compatible chat completion endpoint
// and parses the judge's verdict. It holds the endpoint configuration, the
// HTTP client and logger.
type Service struct {
	endpoint string
	model    string
	key      string
	prompt   string
	language string

	client *http.Client
	log    *slog.Logger
}

const (
	maxRetries        = 2
	retryDelay        = 300 * time.Millisecond
	defaultReqTimeout = 5 * time.Second
)

// NewService initializes a new global service instance with the provided logger
// and endpoint configuration. A non-positive timeout falls back to the default.
func NewService(log *slog.Logger, endpoint, model, key, prompt, language string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultReqTimeout
	}
	globalService = &Service{
		endpoint: endpoint,
		model:    model,
		key:      key,
		prompt:   prompt,
		language: language,
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	return globalService
}

// chatMessage ...
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the outbound chat completion request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// responseFormat ...
type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the chat completion envelope; only the first choice's
// message content is used.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends the message to the configured endpoint and returns its
// classification. It returns an error when the request fails, the endpoint
// responds non-2xx or the response body cannot be parsed; callers are
// expected to fail open on any error.
func (s *Service) Classify(message string) (Classification, error) {
	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: s.prompt + " Language: " + s.language},
			{Role: "user", Content: message},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return Classification{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		c, err := s.classifyOnce(body)
		if err != nil {
			lastErr = err
			if isTemporaryError(err) {
				continue
			}
			return Classification{}, err
		}
		return c, nil
	}
	return Classification{}, lastErr
}

// classifyOnce performs a single request attempt. The request context must
// stay alive until the response body has been fully consumed; a slow body on
// a 200 response is still a valid verdict.
func (s *Service) classifyOnce(body []byte) (Classification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.client.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return Classification{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.key)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return Classification{}, fmt.Errorf("classification request failed: %w", err)
	}
	return s.decodeResponse(resp)
}

// decodeResponse reads a chat completion response and extracts the verdict
// embedded in the first choice's message content.
func (s *Service) decodeResponse(resp *http.Response) (Classification, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return Classification{}, fmt.Errorf("classification failed: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var envelope chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Classification{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Choices) == 0 {
		return Classification{}, errors.New("classification response contains no choices")
	}

	content := envelope.Choices[0].Message.Content
	s.log.Debug(fmt.Sprintf("Classification content: %s", content))

	c, err := parseClassification(content)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to parse classification content: %w", err)
	}
	return c, nil
}

// isTemporaryError checks if an error is temporary and can be retried.
// It checks for context deadline exceeded errors and network-related errors.
func isTemporaryError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
