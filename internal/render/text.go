// Package render turns simulation results into charts and tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"schedsim/internal/sched"
)

// Title writes a boxed heading.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt writes one cell per segment with a time ruler aligned on the cell borders.
func Gantt(w io.Writer, res *sched.Result) {
	var bar, ruler strings.Builder
	bar.WriteString("|")
	ruler.WriteString("0")
	for _, seg := range res.Gantt.Segments() {
		label := seg.PID.String()
		stop := strconv.Itoa(seg.Stop)
		width := max(len(label)+4, len(stop)+2)

		pad := width - len(label)
		bar.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "|")
		ruler.WriteString(strings.Repeat(" ", width+1-len(stop)) + stop)
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, ruler.String())
	_, _ = fmt.Fprintln(w)
}
