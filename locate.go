package dailystoic

import "strings"

// LocateEntry scans doc for the block of lines belonging to date.
//
// Entries carry no structural delimiter other than the next entry
// repeating its own date label at the start of its header line, so the
// block starts at the first line prefixed with date's label and ends
// just before the first later line prefixed with next's label. Prefix
// matching (rather than equality) tolerates trailing punctuation on
// header lines.
//
// A nil next means date is the last entry of the cycle and the block
// runs to the end of the document. A non-nil next that never appears is
// ENOTFOUND: the entry's end boundary is genuinely missing.
func LocateEntry(doc string, date DateLabel, next *DateLabel) (string, error) {
	lines := strings.Split(doc, "\n")
	label := date.String()

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, label) {
			start = i
			break
		}
	}
	if start == -1 {
		return "", Errorf(ENOTFOUND, "no entry for %q in document", label)
	}

	end := len(lines)
	if next != nil {
		nextLabel := next.String()
		end = -1
		for i := start + 1; i < len(lines); i++ {
			if strings.HasPrefix(lines[i], nextLabel) {
				end = i
				break
			}
		}
		if end == -1 {
			return "", Errorf(ENOTFOUND, "entry for %q has no %q end boundary", label, nextLabel)
		}
	}

	return strings.Join(lines[start:end], "\n"), nil
}
