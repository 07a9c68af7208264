package api

import "schedsim/internal/sched"

type SegmentResponse struct {
	PID   string `json:"pid"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

type SummaryResponse struct {
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	TotalTime             int     `json:"total_time"`
	IdleTime              int     `json:"idle_time"`
	CpuUtilization        float64 `json:"cpu_utilization"`
	CpuThroughput         float64 `json:"cpu_throughput"`
	ContextSwitches       int     `json:"context_switches"`
}

type ScheduleResponse struct {
	Algorithm string            `json:"algorithm"`
	Quantum   int               `json:"quantum,omitempty"`
	Gantt     []string          `json:"gantt"`
	Segments  []SegmentResponse `json:"segments"`
	Outcomes  []ProcessResponse `json:"outcomes"`
	Summary   SummaryResponse   `json:"summary"`
}

type AlgorithmResponse struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Preemptive bool   `json:"preemptive"`
}

func newScheduleResponse(res *sched.Result) ScheduleResponse {
	segs := res.Gantt.Segments()
	segments := make([]SegmentResponse, len(segs))
	for i, s := range segs {
		segments[i] = SegmentResponse{PID: s.PID.String(), Start: s.Start, Stop: s.Stop}
	}

	rows := res.Sorted()
	outcomes := make([]ProcessResponse, len(rows))
	for i, r := range rows {
		outcomes[i] = ProcessResponse{
			ProcessId:      string(r.PID()),
			ArrivalTime:    r.Arrival(),
			BurstTime:      r.Burst(),
			Priority:       r.Priority(),
			CompletionTime: r.Completion,
			TurnAroundTime: r.Turnaround,
			WaitingTime:    r.Waiting,
			ResponseTime:   r.Response,
		}
	}

	s := res.Summary()
	return ScheduleResponse{
		Algorithm: res.Algorithm.String(),
		Quantum:   res.Quantum,
		Gantt:     res.Gantt.Strings(),
		Segments:  segments,
		Outcomes:  outcomes,
		Summary: SummaryResponse{
			AverageWaitingTime:    s.AverageWaiting,
			AverageTurnAroundTime: s.AverageTurnaround,
			AverageResponseTime:   s.AverageResponse,
			TotalTime:             s.Makespan,
			IdleTime:              s.IdleUnits,
			CpuUtilization:        s.Utilization,
			CpuThroughput:         s.Throughput,
			ContextSwitches:       s.ContextSwitches,
		},
	}
}
