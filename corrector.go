package dailystoic

import (
	"context"
	"strings"
)

// Corrector repairs OCR and line-wrapping artifacts in extracted text.
// Implementations call an external text-correction service; they forward
// the text and return the corrected version without further transformation.
type Corrector interface {
	// Correct returns a cleaned-up copy of text.
	// Returns ECORRECTION if the service fails or its response is unusable.
	Correct(ctx context.Context, text string) (string, error)
}

// CorrectionPrompt builds the instruction prompt shared by all correction
// providers. The instructions are fixed: the collaborator restores the
// text without editorializing.
func CorrectionPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Fix the text based on the following instructions:\n")
	sb.WriteString("- Keep the quote as close to its original as possible.\n")
	sb.WriteString("- Some words may be missing characters, combined together, or have a space in the middle of a word. Correct these.\n")
	sb.WriteString("- Merge any line breaks that occur in the middle of a sentence.\n")
	sb.WriteString("- Preserve paragraph breaks (indicated by empty lines or where appropriate).\n")
	sb.WriteString("- Add an extra line break between paragraphs to improve readability.\n")
	sb.WriteString("- Do not wrap the text in quotation marks unless it already has them.\n")
	sb.WriteString("- If the text ends with a few lines in all caps that seem out of context, remove them.\n")
	sb.WriteString("- Do not add any commentary or explanation; output only the corrected text.\n")
	sb.WriteString("Text:\n")
	sb.WriteString(text)
	return sb.String()
}
