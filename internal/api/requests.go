package api

import "schedsim/internal/workload"

type ScheduleRequest struct {
	Algorithm string          `json:"algorithm"`
	Quantum   int             `json:"quantum"`
	Processes []workload.Spec `json:"processes"`
}

type CompareRequest struct {
	Quantum   int             `json:"quantum"`
	Processes []workload.Spec `json:"processes"`
}
