package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// itemsPerLine limits how many quoted items are put on a single line.
const itemsPerLine = 12

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Items writes label with number of items followed by quoted items, long
// lists continue on the following lines one level deeper.
func (tw TreeWriter) Items(depth int, label string, items []string) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, "%s[%d]:", label, len(items))
	for i, item := range items {
		if i > 0 && i%itemsPerLine == 0 {
			tw.w.WriteByte('\n')
			tw.indent(depth + 1)
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(strconv.Quote(item))
	}
	tw.w.WriteByte('\n')
}
