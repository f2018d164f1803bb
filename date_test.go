package dailystoic_test

import (
	"testing"

	"github.com/ktatarski/dailystoic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLabel(t *testing.T) {
	t.Parallel()

	t.Run("parses a valid label", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("March 3")

		require.NoError(t, err)
		assert.Equal(t, "March 3", d.String())
	})

	t.Run("accepts February 29 via the leap-year anchor", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("February 29")

		require.NoError(t, err)
		assert.Equal(t, "February 29", d.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("  July 4 ")

		require.NoError(t, err)
		assert.Equal(t, "July 4", d.String())
	})

	t.Run("rejects out-of-range days", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"February 30", "April 31", "January 0", "December 32"} {
			_, err := dailystoic.ParseDateLabel(input)
			require.Error(t, err, input)
			assert.Equal(t, dailystoic.EINVALID, dailystoic.ErrorCode(err))
		}
	})

	t.Run("rejects unknown month names", func(t *testing.T) {
		t.Parallel()

		_, err := dailystoic.ParseDateLabel("Smarch 1")

		require.Error(t, err)
		assert.Equal(t, dailystoic.EINVALID, dailystoic.ErrorCode(err))
	})

	t.Run("rejects trailing junk", func(t *testing.T) {
		t.Parallel()

		_, err := dailystoic.ParseDateLabel("March 3 extra")

		require.Error(t, err)
		assert.Equal(t, dailystoic.EINVALID, dailystoic.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := dailystoic.ParseDateLabel("")

		require.Error(t, err)
		assert.Equal(t, dailystoic.EINVALID, dailystoic.ErrorCode(err))
		assert.Contains(t, dailystoic.ErrorMessage(err), "invalid date")
	})
}

func TestDateLabel_Next(t *testing.T) {
	t.Parallel()

	t.Run("advances within a month", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("March 3")
		require.NoError(t, err)

		assert.Equal(t, "March 4", d.Next().String())
	})

	t.Run("February 28 is followed by February 29", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("February 28")
		require.NoError(t, err)

		assert.Equal(t, "February 29", d.Next().String())
	})

	t.Run("February 29 is followed by March 1", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("February 29")
		require.NoError(t, err)

		assert.Equal(t, "March 1", d.Next().String())
	})

	t.Run("December 31 wraps to January 1", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("December 31")
		require.NoError(t, err)

		assert.Equal(t, "January 1", d.Next().String())
	})

	t.Run("rendering round-trips through parse", func(t *testing.T) {
		t.Parallel()

		d, err := dailystoic.ParseDateLabel("January 1")
		require.NoError(t, err)

		// Walk the whole reference year; every successor must re-parse
		// to itself.
		for i := 0; i < 366; i++ {
			reparsed, err := dailystoic.ParseDateLabel(d.String())
			require.NoError(t, err, d.String())
			assert.Equal(t, d.String(), reparsed.String())
			d = d.Next()
		}
		assert.Equal(t, "January 1", d.String())
	})
}

func TestDateLabel_IsLast(t *testing.T) {
	t.Parallel()

	last, err := dailystoic.ParseDateLabel("December 31")
	require.NoError(t, err)
	assert.True(t, last.IsLast())

	notLast, err := dailystoic.ParseDateLabel("December 30")
	require.NoError(t, err)
	assert.False(t, notLast.IsLast())
}

func TestToday(t *testing.T) {
	t.Parallel()

	d := dailystoic.Today()

	// Whatever the real date is, the label must render and re-parse
	// against the reference year.
	reparsed, err := dailystoic.ParseDateLabel(d.String())
	require.NoError(t, err)
	assert.Equal(t, d.String(), reparsed.String())
}
