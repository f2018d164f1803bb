package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	main "github.com/ktatarski/dailystoic/cmd/dailystoic"
	"github.com/ktatarski/dailystoic/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `March 3rd
THE BIG THREE
All you need are these: certainty of
judgment in the present moment;
—MARCUS AURELIUS, MEDITATIONS, 9.6
Perception, Action, Will. Those are
the three overlapping disciplines.
March 4th
NEXT TITLE
Another quote.
—SENECA
Another explanation.
`

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Config: main.Config{PageURL: "https://example.com/daily"},
		Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return testDoc, nil
			},
		},
		Corrector: &mock.Corrector{
			CorrectFn: func(_ context.Context, text string) (string, error) {
				return "[corrected] " + text, nil
			},
		},
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the five labeled fields in order", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})

		cmd := &main.ShowCmd{Date: []string{"March", "3"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Date:\nMarch 3rd\n")
		assert.Contains(t, out, "Title:\nTHE BIG THREE\n")
		assert.Contains(t, out, "Quote:\n[corrected] All you need")
		assert.Contains(t, out, "Quoter:\n—MARCUS AURELIUS, MEDITATIONS, 9.6\n")
		assert.Contains(t, out, "Explanation:\n[corrected] Perception")

		labels := []string{"Date:", "Title:", "Quote:", "Quoter:", "Explanation:"}
		last := -1
		for _, label := range labels {
			idx := strings.Index(out, label)
			assert.Greater(t, idx, last, label)
			last = idx
		}
	})

	t.Run("raw skips correction", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})
		deps.Corrector = nil // must not be touched

		cmd := &main.ShowCmd{Date: []string{"March", "3"}, Raw: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "[corrected]")
		assert.Contains(t, stdout.String(), "Quote:\nAll you need")
	})

	t.Run("reports an invalid date on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &main.ShowCmd{Date: []string{"Smarch", "1"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid date")
		assert.Empty(t, stdout.String())
	})

	t.Run("reports a missing entry on stderr without partial output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &main.ShowCmd{Date: []string{"July", "4"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "July 4")
		assert.Empty(t, stdout.String())
	})
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	t.Run("joins multi-token dates", func(t *testing.T) {
		t.Parallel()

		d, err := main.ResolveDate([]string{"March", "3"})

		require.NoError(t, err)
		assert.Equal(t, "March 3", d.String())
	})

	t.Run("defaults to today", func(t *testing.T) {
		t.Parallel()

		d, err := main.ResolveDate(nil)

		require.NoError(t, err)
		assert.NotEmpty(t, d.String())
	})
}
