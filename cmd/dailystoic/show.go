package main

import (
	"fmt"
	"strings"

	"github.com/ktatarski/dailystoic"
	"github.com/ktatarski/dailystoic/extract"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dailystoic.ErrorMessage(err))
		return err
	}

	pipeline := &extract.Pipeline{
		Fetcher:   deps.Fetcher,
		Corrector: deps.Corrector,
		URL:       deps.Config.PageURL,
	}

	var entry *dailystoic.Entry
	if c.Raw {
		entry, err = pipeline.Raw(deps.Ctx, date)
	} else {
		entry, err = pipeline.Entry(deps.Ctx, date)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dailystoic.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Date:\n%s\n\n", entry.Date)
	fmt.Fprintf(deps.Stdout, "Title:\n%s\n\n", entry.Title)
	fmt.Fprintf(deps.Stdout, "Quote:\n%s\n\n", entry.Quote)
	fmt.Fprintf(deps.Stdout, "Quoter:\n%s\n\n", entry.Attribution)
	fmt.Fprintf(deps.Stdout, "Explanation:\n%s\n", entry.Explanation)
	return nil
}

// ResolveDate turns the positional date tokens into a DateLabel.
// Kong splits "March 3" into two tokens; joining them back keeps quoting
// optional on the command line. No tokens means today.
func ResolveDate(args []string) (dailystoic.DateLabel, error) {
	if len(args) == 0 {
		return dailystoic.Today(), nil
	}
	return dailystoic.ParseDateLabel(strings.Join(args, " "))
}
