package dailystoic

import (
	"strings"
	"time"
)

// referenceYear is the fixed leap year every label is anchored to.
// A leap year keeps February 29 representable no matter what the real
// current year is; labels are only ever compared within this one year.
const referenceYear = 2000

// labelLayout renders a full month name and a non-padded day, matching
// the entry headers in the source document ("March 3", not "Mar 03").
const labelLayout = "January 2"

// DateLabel is a calendar day with no year component, e.g. "March 3".
// It is immutable once constructed.
type DateLabel struct {
	t time.Time
}

// ParseDateLabel parses a "Month Day" label, e.g. "March 3".
// The day is validated against the reference leap year, so "February 29"
// is accepted. Returns EINVALID for anything else out of range.
func ParseDateLabel(s string) (DateLabel, error) {
	t, err := time.Parse("January 2 2006", strings.TrimSpace(s)+" 2000")
	if err != nil {
		return DateLabel{}, Errorf(EINVALID, "invalid date %q: want a full month name and day, e.g. \"March 3\"", s)
	}
	return DateLabel{t: t}, nil
}

// Today returns the label for the current calendar day, re-anchored to
// the reference year.
func Today() DateLabel {
	now := time.Now()
	return DateLabel{t: time.Date(referenceYear, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

// Next returns the label for the calendar day after d, wrapping from
// December 31 back to January 1. The wraparound is never reached through
// the extraction pipeline, which treats the final day of the cycle as
// having no successor (see IsLast), but it keeps Next total.
func (d DateLabel) Next() DateLabel {
	n := d.t.AddDate(0, 0, 1)
	if n.Year() != referenceYear {
		n = time.Date(referenceYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return DateLabel{t: n}
}

// IsLast reports whether d is the final entry of the cycle. The document
// ends the December 31 entry at end of file rather than at another date
// header, so the locator gets no successor boundary for it.
func (d DateLabel) IsLast() bool {
	return d.t.Month() == time.December && d.t.Day() == 31
}

// String renders the canonical label used for prefix comparisons against
// document lines.
func (d DateLabel) String() string {
	return d.t.Format(labelLayout)
}
