package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
)

// Table writes the per-process schedule with averages in the footer.
func Table(w io.Writer, res *sched.Result) {
	rows := res.Sorted()
	body := make([][]string, len(rows))
	for i, r := range rows {
		body[i] = []string{
			r.PID().String(),
			fmt.Sprint(r.Priority()),
			fmt.Sprint(r.Burst()),
			fmt.Sprint(r.Arrival()),
			fmt.Sprint(r.Waiting),
			fmt.Sprint(r.Turnaround),
			fmt.Sprint(r.Completion),
			fmt.Sprint(r.Response),
		}
	}
	s := res.Summary()

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit", "Response"})
	table.AppendBulk(body)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", s.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", s.AverageTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", s.Throughput),
		fmt.Sprintf("Average\n%.2f", s.AverageResponse)})
	table.Render()
}

// Comparison writes one summary row per result, in the given order.
func Comparison(w io.Writer, results []*sched.Result) {
	_, _ = fmt.Fprintln(w, "Performance comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg TAT", "Avg Response", "Makespan", "Utilization", "Ctx Switch"})
	for _, res := range results {
		s := res.Summary()
		name := res.Algorithm.String()
		if res.Quantum > 0 {
			name = fmt.Sprintf("%s (q=%d)", name, res.Quantum)
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", s.AverageWaiting),
			fmt.Sprintf("%.2f", s.AverageTurnaround),
			fmt.Sprintf("%.2f", s.AverageResponse),
			fmt.Sprint(s.Makespan),
			fmt.Sprintf("%.0f%%", s.Utilization*100),
			fmt.Sprint(s.ContextSwitches),
		})
	}
	table.Render()
}
