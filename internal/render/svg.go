package render

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"schedsim/internal/sched"
)

const (
	idleColor = "#808080"

	unitWidth  = 28
	rowHeight  = 30
	leftMargin = 70
	topMargin  = 40
)

// Palette spreads one colour per process evenly around the HCL hue wheel,
// so neighbours in id order stay distinguishable. Idle is always grey.
func Palette(ids []sched.PID) map[sched.PID]string {
	out := make(map[sched.PID]string, len(ids)+1)
	for i, id := range ids {
		hue := float64(i) * 360 / float64(len(ids))
		out[id] = colorful.Hcl(hue, 0.55, 0.78).Clamped().Hex()
	}
	out[sched.Idle] = idleColor
	return out
}

// SVG draws the timeline as a horizontal bar chart, one row per process
// plus an Idle row when the CPU ever idled.
func SVG(w io.Writer, res *sched.Result) error {
	rows := res.Sorted()
	ids := make([]sched.PID, len(rows))
	for i, r := range rows {
		ids[i] = r.PID()
	}
	colors := Palette(ids)

	lanes := make(map[sched.PID]int, len(ids)+1)
	for i, id := range ids {
		lanes[id] = i
	}
	if res.Gantt.Units(sched.Idle) > 0 {
		lanes[sched.Idle] = len(ids)
	}

	makespan := len(res.Gantt)
	width := leftMargin + makespan*unitWidth + 20
	height := topMargin + len(lanes)*rowHeight + 40

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif" font-size="12">`+"\n", width, height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="#1E1E1E"/>`+"\n")
	fmt.Fprintf(&b, `<text x="%d" y="24" fill="#4CAF50" font-weight="bold" font-size="16">%s Scheduling</text>`+"\n",
		leftMargin, html.EscapeString(res.Algorithm.Title()))

	laneIDs := make([]sched.PID, 0, len(lanes))
	for id := range lanes {
		laneIDs = append(laneIDs, id)
	}
	sort.Slice(laneIDs, func(i, j int) bool { return lanes[laneIDs[i]] < lanes[laneIDs[j]] })
	for _, id := range laneIDs {
		y := topMargin + lanes[id]*rowHeight + rowHeight/2 + 4
		fmt.Fprintf(&b, `<text x="%d" y="%d" fill="#E0E0E0" text-anchor="end">%s</text>`+"\n",
			leftMargin-8, y, html.EscapeString(id.String()))
	}

	ticks := map[int]struct{}{0: {}}
	for _, seg := range res.Gantt.Segments() {
		x := leftMargin + seg.Start*unitWidth
		y := topMargin + lanes[seg.PID]*rowHeight + 3
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="white" fill-opacity="0.85"/>`+"\n",
			x, y, seg.Len()*unitWidth, rowHeight-6, colors[seg.PID])
		fmt.Fprintf(&b, `<text x="%d" y="%d" fill="black" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
			x+seg.Len()*unitWidth/2, y+rowHeight/2+2, html.EscapeString(seg.PID.String()))
		ticks[seg.Stop] = struct{}{}
	}

	axis := topMargin + len(lanes)*rowHeight + 16
	marks := make([]int, 0, len(ticks))
	for t := range ticks {
		marks = append(marks, t)
	}
	sort.Ints(marks)
	for _, t := range marks {
		fmt.Fprintf(&b, `<text x="%d" y="%d" fill="#E0E0E0" text-anchor="middle">%d</text>`+"\n",
			leftMargin+t*unitWidth, axis, t)
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}
