// Package gemini implements dailystoic.Corrector using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/ktatarski/dailystoic"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Corrector implements dailystoic.Corrector at compile time.
var _ dailystoic.Corrector = (*Corrector)(nil)

// Corrector implements dailystoic.Corrector using Google Gemini.
type Corrector struct {
	client *genai.Client
	model  string
}

// NewCorrector creates a new Corrector. An empty model selects DefaultModel.
func NewCorrector(client *genai.Client, model string) *Corrector {
	if model == "" {
		model = DefaultModel
	}
	return &Corrector{client: client, model: model}
}

// Correct sends text to Gemini and returns the corrected version.
func (c *Corrector) Correct(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", dailystoic.Errorf(dailystoic.EINVALID, "text required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: dailystoic.CorrectionPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "gemini returned nil result")
	}

	corrected := result.Text()
	if corrected == "" {
		return "", dailystoic.Errorf(dailystoic.ECORRECTION, "gemini response has no content")
	}

	return corrected, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Correction is a restoration task, so the temperature stays low.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You restore scanned text. Follow the correction instructions exactly and output only the corrected text.",
			}},
		},
		Temperature: &temp,
	}
}
