package mock

import (
	"context"

	"github.com/ktatarski/dailystoic"
)

var _ dailystoic.Corrector = (*Corrector)(nil)

// Corrector is a mock implementation of dailystoic.Corrector.
type Corrector struct {
	CorrectFn func(ctx context.Context, text string) (string, error)
}

func (c *Corrector) Correct(ctx context.Context, text string) (string, error) {
	return c.CorrectFn(ctx, text)
}
