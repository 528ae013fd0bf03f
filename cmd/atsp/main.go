// SPDX-License-Identifier: MIT

// Command atsp solves asymmetric travelling salesman instances exactly with
// Little's branch-and-bound.
//
// Usage:
//
//	atsp [flags] instance...
//
// Each instance is a plain or TSPLIB FULL_MATRIX file (see internal/instance).
// For every instance one line is printed to stdout:
//
//	<name>: cost <c> tour <1-based cities>
//
// Configuration is merged from built-in defaults, the -config YAML file,
// ATSP_* environment variables (ATSP_SOLVER_TIME_LIMIT=30s) and finally the
// flags given on the command line. The process exits with 1 when any
// instance fails or stops on a limit before optimality is proven.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/atsp/internal/config"
	"github.com/katalvlaran/atsp/internal/instance"
	"github.com/katalvlaran/atsp/internal/logger"
	"github.com/katalvlaran/atsp/internal/metrics"
	"github.com/katalvlaran/atsp/little"
	"github.com/katalvlaran/atsp/tsp"
)

// errVerify is returned when the Held–Karp cross-check disagrees.
var errVerify = errors.New("atsp: branch-and-bound and Held-Karp costs differ")

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"start":        "solver.start_vertex",
	"time-limit":   "solver.time_limit",
	"max-nodes":    "solver.max_nodes",
	"verify":       "solver.verify",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-file": "metrics.textfile",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit. It returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("atsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: atsp [flags] instance...")
		fs.PrintDefaults()
	}

	configFile := fs.String("config", "", "YAML configuration file")
	fs.Int("start", 0, "start city (0-based)")
	fs.Duration("time-limit", 0, "time budget per instance, 0 = unlimited")
	fs.Int("max-nodes", 0, "expanded-node budget per instance, 0 = unlimited")
	fs.Bool("verify", false, "cross-check small instances with Held-Karp")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "text or json")
	fs.String("metrics-file", "", "write Prometheus metrics to this textfile")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.(flag.Getter).Get()
		}
	})

	cfg, err := config.NewLoader(
		config.WithConfigFile(*configFile),
		config.WithOverrides(overrides),
	).Load()
	if err != nil {
		fmt.Fprintf(stderr, "atsp: config: %v\n", err)
		return 1
	}

	log, closer, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		fmt.Fprintf(stderr, "atsp: logger: %v\n", err)
		return 1
	}
	defer closer.Close()
	log = log.With("run_id", uuid.NewString())

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	code := 0
	for _, path := range fs.Args() {
		if err = solveFile(ctx, log, m, cfg, path, stdout); err != nil {
			log.Error("instance failed", "path", path, "error", err)
			code = 1
		}
		if ctx.Err() != nil {
			break
		}
	}

	if m != nil && cfg.Metrics.TextFile != "" {
		if err = m.WriteTextfile(cfg.Metrics.TextFile); err != nil {
			log.Error("write metrics", "path", cfg.Metrics.TextFile, "error", err)
			code = 1
		}
	}

	return code
}

// solveFile loads, solves and reports one instance.
func solveFile(ctx context.Context, log *slog.Logger, m *metrics.Metrics, cfg *config.Config, path string, stdout io.Writer) error {
	in, err := instance.Load(path)
	if err != nil {
		return err
	}
	log = log.With("instance", in.Name, "cities", in.Size())
	log.Info("solving")

	opts := tsp.DefaultOptions()
	opts.Ctx = ctx
	opts.StartVertex = cfg.Solver.StartVertex
	opts.TimeLimit = cfg.Solver.TimeLimit
	opts.MaxNodes = cfg.Solver.MaxNodes
	opts.SeedIncumbent = cfg.Solver.Seed
	opts.PolishSeed = cfg.Solver.Polish
	opts.Hooks = progressHooks(log, cfg.Solver.ProgressEvery)
	if m != nil {
		opts.Hooks = m.Hooks(in.Name, opts.Hooks)
	}

	start := time.Now()
	res, err := tsp.SolveATSP(in.Costs, opts)
	took := time.Since(start)
	if m != nil {
		m.ObserveSolve(in.Name, in.Size(), res, err, took)
	}

	log = log.With(
		"root_bound", res.Stats.RootBound,
		"expanded", res.Stats.Expanded,
		"pruned", res.Stats.Pruned,
		"infeasible", res.Stats.Infeasible,
		"leaves", res.Stats.Leaves,
		"max_queue", res.Stats.MaxQueue,
		"took", took,
	)
	if res.Tour != nil {
		note := ""
		if err != nil {
			note = " (not proven optimal)"
		}
		fmt.Fprintf(stdout, "%s: cost %d tour %v%s\n", in.Name, res.Cost, oneBased(res.Tour), note)
	}
	if err != nil {
		log.Warn("search stopped", "status", metrics.Status(err), "best", res.Cost)
		return err
	}
	log.Info("solved", "cost", res.Cost)

	if cfg.Solver.Verify {
		return verify(log, in, cfg.Solver.StartVertex, res.Cost)
	}

	return nil
}

// verify re-solves small instances with Held–Karp and compares costs.
func verify(log *slog.Logger, in *instance.Instance, start int, cost int64) error {
	if in.Size() > tsp.MaxHeldKarp {
		log.Info("verify skipped", "max_cities", tsp.MaxHeldKarp)
		return nil
	}
	ref, err := tsp.HeldKarp(in.Costs, start)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if ref.Cost != cost {
		return fmt.Errorf("%w: %d vs %d", errVerify, cost, ref.Cost)
	}
	log.Info("verified", "cost", ref.Cost)

	return nil
}

// progressHooks logs every incumbent and, when every > 0, a progress line
// each every expansions.
func progressHooks(log *slog.Logger, every int) tsp.Hooks {
	var expanded int

	return tsp.Hooks{
		OnExpand: func(n *little.Node, b little.Branch) {
			expanded++
			if every > 0 && expanded%every == 0 {
				log.Info("progress", "expanded", expanded, "bound", n.LowerBound(), "size", n.Size())
			}
			if log.Enabled(context.Background(), slog.LevelDebug) {
				log.Debug("branch", "edge", b.Edge.String(), "penalty", b.Penalty, "infinite", b.Infinite)
			}
		},
		OnIncumbent: func(cost int64, tour []int) {
			log.Info("incumbent", "cost", cost)
		},
	}
}

// oneBased shifts a 0-based tour to city numbers starting at 1.
func oneBased(tour []int) []int {
	out := make([]int, len(tour))
	for i, v := range tour {
		out[i] = v + 1
	}

	return out
}
