// Package anthropic implements dailystoic.Corrector using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ktatarski/dailystoic"
)

// DefaultModel is the Claude model used when none is configured.
const DefaultModel = "claude-sonnet-4-5-20250929"

// DefaultMaxTokens bounds the corrected output.
const DefaultMaxTokens = 500

// Ensure Corrector implements dailystoic.Corrector at compile time.
var _ dailystoic.Corrector = (*Corrector)(nil)

// Corrector implements dailystoic.Corrector using Claude.
type Corrector struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewCorrector creates a new Corrector authenticating with apiKey.
// An empty model selects DefaultModel; maxTokens <= 0 selects
// DefaultMaxTokens.
func NewCorrector(apiKey, model string, maxTokens int64) *Corrector {
	if model == "" {
		model = DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Corrector{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Correct sends text to Claude and returns the corrected version.
func (c *Corrector) Correct(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", dailystoic.Errorf(dailystoic.EINVALID, "text required")
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(dailystoic.CorrectionPrompt(text))),
		},
	})
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "anthropic request failed: %v", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", dailystoic.Errorf(dailystoic.ECORRECTION, "anthropic response has no text content")
}
