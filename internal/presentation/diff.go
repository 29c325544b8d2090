package presentation

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// FormatConfigDiff writes a line diff of a config change. Removed lines are
// prefixed "- ", added lines "+ " and unchanged lines are left out. Nothing
// is written when before and after are equal.
func (f *Formatter) FormatConfigDiff(path, before, after string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(strings.TrimSuffix(line, "\n"))
			out.WriteString("\n")
		}
	}
	if out.Len() == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(f.writer, "--- %s\n", path); err != nil {
		return err
	}
	_, err := fmt.Fprint(f.writer, out.String())
	return err
}
