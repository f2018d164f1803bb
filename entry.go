package dailystoic

import "strings"

// AttributionMarker is the em dash that opens a quote's credit line and
// separates the quote from the explanation.
const AttributionMarker = "—"

// Entry is one day's content from the source document.
type Entry struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Quote       string `json:"quote"`
	Attribution string `json:"attribution"`
	Explanation string `json:"explanation"`
}

// SegmentEntry splits a located block into its fields. The layout is
// fixed: line 0 is the date header, line 1 the title, then quote lines
// up to the first line starting with the attribution marker, then the
// explanation. Line breaks inside the quote and explanation are scanning
// artifacts with no semantic meaning and are collapsed to single spaces.
//
// A block with fewer than two lines, or with no attribution-marked line,
// is EMALFORMED rather than a partial result.
func SegmentEntry(block string) (*Entry, error) {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 {
		return nil, Errorf(EMALFORMED, "entry has %d line(s), want at least a date header and a title", len(lines))
	}

	pivot := -1
	for i := 2; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], AttributionMarker) {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, Errorf(EMALFORMED, "entry %q has no attribution line", strings.TrimSpace(lines[0]))
	}

	return &Entry{
		Date:        strings.TrimSpace(lines[0]),
		Title:       strings.TrimSpace(lines[1]),
		Quote:       strings.TrimSpace(strings.Join(lines[2:pivot], " ")),
		Attribution: strings.TrimSpace(lines[pivot]),
		Explanation: strings.TrimSpace(strings.Join(lines[pivot+1:], " ")),
	}, nil
}
