package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"schedsim/internal/sched"
)

// TraceCSV writes the event trace of a run, one record per event.
func TraceCSV(w io.Writer, res *sched.Result) error {
	cw := csv.NewWriter(w)

	// write header
	if err := cw.Write([]string{"tick", "event", "pid", "remaining"}); err != nil {
		return err
	}
	for _, ev := range res.Events {
		rec := []string{
			strconv.Itoa(ev.Tick),
			ev.Kind.String(),
			string(ev.PID),
			strconv.Itoa(ev.Remaining),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
