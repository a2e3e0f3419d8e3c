package bundle

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff describes how want differs from got, one prefixed line per
// changed line. It returns an empty string when both are equal.
func LineDiff(got, want string) string {
	if got == want {
		return ""
	}

	dmp := diffmatchpatch.New()
	gotChars, wantChars, lines := dmp.DiffLinesToChars(got, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(gotChars, wantChars, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
