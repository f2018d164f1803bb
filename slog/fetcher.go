// Package slog provides logging decorators for the dailystoic capability
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ktatarski/dailystoic"
)

// Ensure Fetcher implements dailystoic.Fetcher.
var _ dailystoic.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a dailystoic.Fetcher with logging.
type Fetcher struct {
	next   dailystoic.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next dailystoic.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *Fetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("page fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
