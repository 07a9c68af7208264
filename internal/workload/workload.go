// Package workload decodes process lists from CSV and YAML files.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"schedsim/internal/sched"
)

var (
	ErrMalformed = errors.New("malformed workload")
	ErrTooLarge  = errors.New("workload exceeds limits")
)

// Limits bounds what a caller may submit. A zero field is unbounded.
type Limits struct {
	MaxProcesses int
	MaxTime      int // bound on the latest arrival plus the sum of all bursts
}

// Check rejects workloads whose size or simulated horizon is past l. The
// horizon bounds the Gantt length of every algorithm.
func (l Limits) Check(processes []sched.Process) error {
	if l.MaxProcesses > 0 && len(processes) > l.MaxProcesses {
		return fmt.Errorf("%w: %d processes, at most %d allowed", ErrTooLarge, len(processes), l.MaxProcesses)
	}
	if l.MaxTime <= 0 {
		return nil
	}
	var latest, total int
	for _, p := range processes {
		if p.Arrival() > l.MaxTime || p.Burst() > l.MaxTime-total {
			return l.pastHorizon(p)
		}
		total += p.Burst()
		latest = max(latest, p.Arrival())
		if latest > l.MaxTime-total {
			return l.pastHorizon(p)
		}
	}
	return nil
}

func (l Limits) pastHorizon(p sched.Process) error {
	return fmt.Errorf("%w: process %s: schedule would run past time %d", ErrTooLarge, p.PID(), l.MaxTime)
}

// Spec is the serialized form of one process.
type Spec struct {
	ID       string `json:"id" yaml:"id"`
	Arrival  int    `json:"arrival" yaml:"arrival"`
	Burst    int    `json:"burst" yaml:"burst"`
	Priority int    `json:"priority" yaml:"priority"`
}

type file struct {
	Processes []Spec `yaml:"processes"`
}

// Build validates the entries and turns them into processes.
func Build(specs []Spec) ([]sched.Process, error) {
	processes := make([]sched.Process, 0, len(specs))
	for i, s := range specs {
		p, err := sched.NewProcess(sched.PID(strings.TrimSpace(s.ID)), s.Arrival, s.Burst, s.Priority)
		if err != nil {
			return nil, fmt.Errorf("process %d: %w", i+1, err)
		}
		processes = append(processes, p)
	}
	if err := sched.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// Load picks the decoder from the file extension.
func Load(path string) ([]sched.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return ReadCSV(f)
	case ".yml", ".yaml":
		return ReadYAML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrMalformed, ext)
	}
}

// ReadCSV reads rows of "id,burst,arrival[,priority]". Lines starting with # are
// skipped, as is a leading header row whose first column is "id".
func ReadCSV(r io.Reader) ([]sched.Process, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformed, err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	specs := make([]Spec, len(rows))
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("%w: row %d: want 3 or 4 columns, got %d", ErrMalformed, i+1, len(row))
		}
		specs[i].ID = row[0]
		if specs[i].Burst, err = atoi(row[1]); err != nil {
			return nil, fmt.Errorf("%w: row %d: burst: %v", ErrMalformed, i+1, err)
		}
		if specs[i].Arrival, err = atoi(row[2]); err != nil {
			return nil, fmt.Errorf("%w: row %d: arrival: %v", ErrMalformed, i+1, err)
		}
		if len(row) == 4 {
			if specs[i].Priority, err = atoi(row[3]); err != nil {
				return nil, fmt.Errorf("%w: row %d: priority: %v", ErrMalformed, i+1, err)
			}
		}
	}
	return Build(specs)
}

// ReadYAML reads a document of the form
//
//	processes:
//	  - {id: P1, arrival: 0, burst: 5, priority: 1}
func ReadYAML(r io.Reader) ([]sched.Process, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Build(doc.Processes)
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
