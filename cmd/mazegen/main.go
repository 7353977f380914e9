// Command mazegen generates a maze with randomized Kruskal, verifies it,
// solves it by breadth-first search and prints it as text or PNG.
//
// Settings come from defaults, an optional mazegen.yaml, MAZE_* environment
// variables and finally the command-line flags:
//
//	mazegen -width 30 -height 20 -seed 7
//	mazegen -format png -out maze.png -animate
//	MAZE_METRICS_ENABLED=true mazegen -animate -speed 10
//
// SIGINT or SIGTERM cancels the run; a canceled run exits with status 130.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/logger"
	"github.com/katalvlaran/labyrinth/metrics"
)

// Exit statuses.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitCanceled = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one mazegen invocation and returns its exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "mazegen: %v\n", err)
		return exitUsage
	}

	log, closer, err := logger.New(logger.Config(cfg.Log))
	if err != nil {
		fmt.Fprintf(stderr, "mazegen: %v\n", err)
		return exitFailure
	}
	defer closer.Close()
	log = logger.WithRun(log, uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Animation.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Animation.Timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	collector := metrics.New(reg)
	if cfg.Metrics.Enabled {
		shutdown := serveMetrics(log, reg, cfg.Metrics)
		defer shutdown()
	}

	s := &session{cfg: cfg, log: log, metrics: collector, stdout: stdout}
	if err = s.run(ctx); err != nil {
		if errors.Is(err, core.ErrCanceled) {
			log.Warn("run canceled", "cause", context.Cause(ctx), "error", err)
			return exitCanceled
		}
		log.Error("run failed", "error", err)
		return exitFailure
	}

	return exitOK
}

// loadConfig merges the configuration sources, then applies the flags that
// were set explicitly and validates the result.
func loadConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		width      = fs.Int("width", 0, "maze width in cells")
		height     = fs.Int("height", 0, "maze height in cells")
		seed       = fs.Int64("seed", 0, "generator seed, 0 for a random maze")
		format     = fs.String("format", "", "output format: ascii, png or none")
		out        = fs.String("out", "", "output file, - for stdout")
		animate    = fs.Bool("animate", false, "pace generation and solving")
		speed      = fs.Float64("speed", 0, "animation speed, 0 (slow) to max_speed (fast)")
		noSolve    = fs.Bool("no-solve", false, "skip solving")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var opts []config.LoaderOption
	if *configPath != "" {
		opts = append(opts, config.WithConfigPaths(*configPath))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Grid.Width = *width
		case "height":
			cfg.Grid.Height = *height
		case "seed":
			cfg.Grid.Seed = *seed
		case "format":
			cfg.Render.Format = *format
		case "out":
			cfg.Render.Output = *out
		case "animate":
			cfg.Animation.Enabled = *animate
		case "speed":
			cfg.Animation.Speed = *speed
		case "no-solve":
			cfg.Solve.Enabled = !*noSolve
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// serveMetrics exposes reg until the returned shutdown func is called.
func serveMetrics(log *slog.Logger, reg *prometheus.Registry, cfg config.MetricsConfig) func() {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, metrics.Handler(reg))
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("serving metrics", "addr", cfg.Listen, "path", cfg.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("metrics server shutdown", "error", err)
		}
	}
}
