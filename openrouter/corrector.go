// Package openrouter implements dailystoic.Corrector against an
// OpenAI-compatible chat completions endpoint.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ktatarski/dailystoic"
)

const (
	// DefaultEndpoint is the OpenRouter chat completions endpoint.
	DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "openai/gpt-4o"

	// DefaultMaxTokens bounds the corrected output. The fields being
	// corrected are a short quote and a one-paragraph explanation.
	DefaultMaxTokens = 500
)

// Ensure Corrector implements dailystoic.Corrector at compile time.
var _ dailystoic.Corrector = (*Corrector)(nil)

// Corrector sends field text to an OpenAI-compatible chat completions
// endpoint and returns the corrected text from the first choice.
type Corrector struct {
	client    *http.Client
	endpoint  string
	apiKey    string
	model     string
	maxTokens int
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithEndpoint overrides the chat completions endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Corrector) {
		c.endpoint = endpoint
	}
}

// WithModel overrides the model identifier sent with each request.
func WithModel(model string) Option {
	return func(c *Corrector) {
		c.model = model
	}
}

// WithMaxTokens overrides the response token budget.
func WithMaxTokens(n int) Option {
	return func(c *Corrector) {
		c.maxTokens = n
	}
}

// WithHTTPClient overrides the HTTP client, e.g. to set a timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Corrector) {
		c.client = client
	}
}

// NewCorrector creates a new Corrector authenticating with apiKey.
func NewCorrector(apiKey string, opts ...Option) *Corrector {
	c := &Corrector{
		client:    http.DefaultClient,
		endpoint:  DefaultEndpoint,
		apiKey:    apiKey,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Correct sends text to the endpoint and returns the corrected version.
// A top-level error object in the response, a non-2xx status, or a
// response with no content all fail with ECORRECTION; the input text is
// never returned as a fallback.
func (c *Corrector) Correct(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: dailystoic.CorrectionPrompt(text)},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.EINTERNAL, "marshal correction request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "build correction request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "correction request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "read correction response: %v", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "unparseable correction response: %v", err)
	}

	// The service reports failures as an error object, usually alongside
	// a non-2xx status. The error object wins: its message is actionable.
	if parsed.Error != nil {
		if parsed.Error.Message != "" {
			return "", dailystoic.Errorf(dailystoic.ECORRECTION, "correction service error: %s", parsed.Error.Message)
		}
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "correction service reported an error with no message")
	}
	if resp.StatusCode != http.StatusOK {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "correction service returned HTTP %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "correction response has no content")
	}

	return parsed.Choices[0].Message.Content, nil
}
