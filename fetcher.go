package dailystoic

import "context"

// Fetcher retrieves the full body of the source page as plain text.
// The document is treated as an ordered sequence of lines; it must be
// stable across calls within one run.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// Returns EUNAVAILABLE if the document cannot be retrieved.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}
