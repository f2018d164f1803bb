// Package extract orchestrates a single run: fetch the source document,
// locate the target day's entry, segment it into fields, and correct the
// free-text fields through the correction collaborator.
package extract

import (
	"context"

	"github.com/ktatarski/dailystoic"
	"golang.org/x/sync/errgroup"
)

// Pipeline extracts one day's entry from the source document.
type Pipeline struct {
	Fetcher   dailystoic.Fetcher
	Corrector dailystoic.Corrector

	// URL of the source page.
	URL string
}

// Raw returns the segmented entry for date without text correction.
//
// The final day of the cycle has no successor header after it; the
// locator is told so explicitly and reads to the end of the document
// instead of searching for a boundary that does not exist.
func (p *Pipeline) Raw(ctx context.Context, date dailystoic.DateLabel) (*dailystoic.Entry, error) {
	body, err := p.Fetcher.Fetch(ctx, p.URL)
	if err != nil {
		return nil, err
	}

	var next *dailystoic.DateLabel
	if !date.IsLast() {
		n := date.Next()
		next = &n
	}

	block, err := dailystoic.LocateEntry(body, date, next)
	if err != nil {
		return nil, err
	}

	return dailystoic.SegmentEntry(block)
}

// Entry returns the finalized entry for date: Raw plus corrected Quote
// and Explanation. The two correction calls run concurrently and are
// both joined before the entry is returned; if either fails, no entry is
// returned, so a partially corrected record can never escape as success.
func (p *Pipeline) Entry(ctx context.Context, date dailystoic.DateLabel) (*dailystoic.Entry, error) {
	entry, err := p.Raw(ctx, date)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		quote, err := p.Corrector.Correct(gctx, entry.Quote)
		if err != nil {
			return err
		}
		entry.Quote = quote
		return nil
	})
	g.Go(func() error {
		explanation, err := p.Corrector.Correct(gctx, entry.Explanation)
		if err != nil {
			return err
		}
		entry.Explanation = explanation
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entry, nil
}
