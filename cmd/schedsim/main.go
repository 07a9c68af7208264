package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"schedsim/internal/api"
	"schedsim/internal/config"
	"schedsim/internal/render"
	"schedsim/internal/replay"
	"schedsim/internal/sched"
	"schedsim/internal/workload"
)

func main() {
	var (
		configPath = flag.String("config", "config.yml", "YAML configuration file")
		algoName   = flag.String("algo", "", `algorithm: fcfs, sjf, srtf, priority, rr or "all"`)
		quantum    = flag.Int("quantum", 0, "round-robin quantum (overrides config)")
		svgPath    = flag.String("svg", "", "write an SVG chart of the (last) run to this file")
		tracePath  = flag.String("trace", "", "write the CSV event trace of the (last) run to this file")
		replayRun  = flag.Bool("replay", false, "replay the event trace in real time")
		serve      = flag.Bool("serve", false, "serve the HTTP API instead of running a workload")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <workload.csv|workload.yml>\n       %s -serve [-config file]\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Read the configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if *algoName != "" {
		cfg.Algorithm = *algoName
	}
	if *quantum != 0 {
		cfg.Quantum = *quantum
	}
	if *svgPath != "" {
		cfg.SVG = *svgPath
	}
	if *tracePath != "" {
		cfg.TraceCSV = *tracePath
	}

	if *serve {
		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
		log.Println("listening on", cfg.Listen)
		log.Fatalln(app.Listen(cfg.Listen))
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	processes, err := workload.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	algorithms, err := selectAlgorithms(cfg.Algorithm)
	if err != nil {
		log.Fatal(err)
	}

	results := make([]*sched.Result, 0, len(algorithms))
	for _, alg := range algorithms {
		res, err := sched.Simulate(processes, alg, cfg.Quantum)
		if err != nil {
			log.Fatal(err)
		}
		report(os.Stdout, res)
		results = append(results, res)
	}
	if len(results) > 1 {
		render.Comparison(os.Stdout, results)
	}

	last := results[len(results)-1]
	if cfg.SVG != "" {
		if err := writeFile(cfg.SVG, func(w io.Writer) error { return render.SVG(w, last) }); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.TraceCSV != "" {
		if err := writeFile(cfg.TraceCSV, func(w io.Writer) error { return render.TraceCSV(w, last) }); err != nil {
			log.Fatal(err)
		}
	}

	if *replayRun {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		player := &replay.Player{Interval: time.Duration(cfg.TickMS) * time.Millisecond, Out: os.Stdout}
		if err := player.Play(ctx, last); err != nil {
			log.Println("replay stopped:", err)
		}
	}
}

func selectAlgorithms(name string) ([]sched.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return sched.Algorithms(), nil
	}
	alg, err := sched.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []sched.Algorithm{alg}, nil
}

func report(w io.Writer, res *sched.Result) {
	title := res.Algorithm.Title()
	if res.Quantum > 0 {
		title = fmt.Sprintf("%s, quantum %d", title, res.Quantum)
	}
	render.Title(w, title)
	render.Gantt(w, res)
	render.Table(w, res)
	_, _ = fmt.Fprintln(w)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
