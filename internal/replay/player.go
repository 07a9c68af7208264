package replay

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"schedsim/internal/sched"
)

// Player streams a finished run in real time, one simulated unit per interval.
type Player struct {
	Interval time.Duration
	Out      io.Writer
}

// Play prints the events of res as their ticks come up. It returns ctx.Err()
// when cancelled before the last tick.
func (p *Player) Play(ctx context.Context, res *sched.Result) error {
	interval := p.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	clock := NewTickClock(1)
	clock.Start(interval)
	defer clock.Stop()

	next := 0
	for tick := 0; tick <= len(res.Gantt); tick++ {
		if tick > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-clock.Ch:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		for next < len(res.Events) && res.Events[next].Tick == tick {
			p.print(res.Events[next])
			next++
		}
	}
	return nil
}

func (p *Player) print(ev sched.Event) {
	// an auxiliary function to center the event kind in the output
	center := func(str string, width int) string {
		spaces := (width - len(str)) / 2
		return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
	}

	_, _ = fmt.Fprintf(p.Out, "Tick: %04d [%s] => %-6s remaining=%d\n",
		ev.Tick, center(ev.Kind.String(), 12), ev.PID, ev.Remaining)
}
