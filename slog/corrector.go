package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ktatarski/dailystoic"
)

// Ensure Corrector implements dailystoic.Corrector.
var _ dailystoic.Corrector = (*Corrector)(nil)

// Corrector wraps a dailystoic.Corrector with logging.
type Corrector struct {
	next   dailystoic.Corrector
	logger *slog.Logger
}

// NewCorrector creates a new logging Corrector.
func NewCorrector(next dailystoic.Corrector, logger *slog.Logger) *Corrector {
	return &Corrector{next: next, logger: logger}
}

// Correct delegates to the wrapped corrector and logs the operation.
func (c *Corrector) Correct(ctx context.Context, text string) (corrected string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("text correction",
			"in_bytes", len(text),
			"out_bytes", len(corrected),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Correct(ctx, text)
}
