package api

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"schedsim/internal/config"
	"schedsim/internal/sched"
	"schedsim/internal/workload"
)

type SchedulerHandler interface {
	Algorithms(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    config.Config
	algorithm sched.Algorithm // used when a request names none
	limits    workload.Limits
}

// NewSchedulerHandlerImpl falls back to FCFS when the configured algorithm is
// not a single discipline, such as "all".
func NewSchedulerHandlerImpl(cfg config.Config) *SchedulerHandlerImpl {
	alg, err := sched.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		log.Printf("default algorithm %q is not servable, using %s", cfg.Algorithm, sched.FCFS)
		alg = sched.FCFS
	}
	return &SchedulerHandlerImpl{
		config:    cfg,
		algorithm: alg,
		limits:    workload.Limits{MaxProcesses: cfg.MaxProcesses, MaxTime: cfg.MaxTime},
	}
}

// NewApp wires the handler under /api/v1.
func NewApp(h SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())

	v1 := app.Group("/api").Group("/v1")
	{
		v1.Get("/algorithms", h.Algorithms)
		v1.Post("/simulate", h.Simulate)
		v1.Post("/compare", h.Compare)
	}
	return app
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	out := make([]AlgorithmResponse, 0, len(sched.Algorithms()))
	for _, alg := range sched.Algorithms() {
		out = append(out, AlgorithmResponse{
			Key:        alg.Key(),
			Name:       alg.String(),
			Title:      alg.Title(),
			Preemptive: alg.Preemptive(),
		})
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	alg := s.algorithm
	if request.Algorithm != "" {
		var err error
		if alg, err = sched.ParseAlgorithm(request.Algorithm); err != nil {
			return failed(ctx, err)
		}
	}
	processes, err := s.build(request.Processes)
	if err != nil {
		return failed(ctx, err)
	}

	res, err := sched.Simulate(processes, alg, s.quantum(request.Quantum))
	if err != nil {
		return failed(ctx, err)
	}
	log.Println("simulated", alg, "over", len(processes), "processes")
	return ctx.JSON(newScheduleResponse(res))
}

// Compare runs every algorithm over the same workload. Runs share nothing, so
// they go in parallel.
func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var request CompareRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	processes, err := s.build(request.Processes)
	if err != nil {
		return failed(ctx, err)
	}

	algorithms := sched.Algorithms()
	results := make([]*sched.Result, len(algorithms))
	errs := make([]error, len(algorithms))
	quantum := s.quantum(request.Quantum)

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, alg := range algorithms {
		go func(i int, alg sched.Algorithm) {
			defer wg.Done()
			results[i], errs[i] = sched.Simulate(processes, alg, quantum)
		}(i, alg)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return failed(ctx, err)
	}
	response := make([]ScheduleResponse, len(results))
	for i, res := range results {
		response[i] = newScheduleResponse(res)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) build(specs []workload.Spec) ([]sched.Process, error) {
	if s.limits.MaxProcesses > 0 && len(specs) > s.limits.MaxProcesses {
		return nil, fmt.Errorf("%w: %d processes, at most %d allowed", workload.ErrTooLarge, len(specs), s.limits.MaxProcesses)
	}
	processes, err := workload.Build(specs)
	if err != nil {
		return nil, err
	}
	if err := s.limits.Check(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

func (s *SchedulerHandlerImpl) quantum(requested int) int {
	if requested == 0 {
		return s.config.Quantum
	}
	return requested
}

func badRequest(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func failed(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, sched.ErrInvalid) || errors.Is(err, workload.ErrTooLarge) {
		return badRequest(ctx, err.Error())
	}
	log.Println("simulation failed:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
