package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/metrics"
	"github.com/katalvlaran/labyrinth/render"
)

// session is one generate → verify → solve → render pipeline.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Collector
	stdout  io.Writer

	maze    *maze.ObservableMaze
	painter *render.Painter // nil unless rendering PNG
	path    []int
	source  int
	target  int
}

func (s *session) run(ctx context.Context) error {
	m, err := maze.NewObservableMaze(s.cfg.Grid.Width, s.cfg.Grid.Height)
	if err != nil {
		return err
	}
	s.maze = m
	s.metrics.GridVertices.Set(float64(m.NbVertices()))

	if s.cfg.Render.Format == "png" {
		s.painter, err = render.NewPainter(m,
			render.WithCellSide(s.cfg.Render.CellSide),
			render.WithCellColor(render.GeneratorColor(m.Progressions())),
		)
		if err != nil {
			return err
		}
	}

	if err = s.generate(ctx); err != nil {
		return err
	}
	if s.cfg.Solve.Enabled {
		if err = s.solve(ctx); err != nil {
			return err
		}
	}

	return s.render()
}

// display returns the observer that shows progress: the painter, paced by
// an Animation when animation is on. It is nil when nothing is displayed.
func (s *session) display(ctx context.Context) core.GraphObserver {
	var paint core.GraphObserver
	if s.painter != nil {
		paint = s.painter
	}
	if !s.cfg.Animation.Enabled {
		return paint
	}

	delay := maze.GeometricDelay(s.cfg.Animation.Max, s.cfg.Animation.Speed)
	s.log.Debug("animation", "delay", delay)

	return maze.NewAnimation(ctx, paint, maze.ConstantDelay(delay))
}

func (s *session) generate(ctx context.Context) error {
	subs := []maze.Subscription{s.maze.Subscribe(s.metrics.Observer("generate"))}
	if d := s.display(ctx); d != nil {
		subs = append(subs, s.maze.Subscribe(d))
	}
	defer func() {
		for _, id := range subs {
			s.maze.Unsubscribe(id)
		}
	}()

	var opts []kruskal.Option
	if s.cfg.Grid.Seed != 0 {
		opts = append(opts, kruskal.WithSeed(s.cfg.Grid.Seed))
	}

	start := time.Now()
	err := kruskal.NewGenerator(opts...).Generate(ctx, s.maze, maze.StartPoint(s.maze))
	s.metrics.ObserveRun("generate", start, err)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err = dfs.CheckSpanningTree(s.maze); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	s.log.Info("maze generated",
		"width", s.maze.Width(),
		"height", s.maze.Height(),
		"passages", len(s.maze.Edges()),
		"elapsed", time.Since(start),
	)

	return nil
}

func (s *session) solve(ctx context.Context) error {
	s.source, s.target = maze.StartPoint(s.maze), maze.DefaultDestination(s.maze)
	if s.cfg.Solve.Source >= 0 {
		s.source = s.cfg.Solve.Source
	}
	if s.cfg.Solve.Destination >= 0 {
		s.target = s.cfg.Solve.Destination
	}

	observers := core.Observers{s.metrics.Observer("solve")}
	if d := s.display(ctx); d != nil {
		observers = append(observers, d)
	}
	monitor := maze.NewSolverMonitor(s.maze.NbVertices(), observers)
	if s.painter != nil {
		s.painter.SetCellColor(render.SolverCellColor(s.maze.Progressions(), monitor))
	}

	start := time.Now()
	path, err := bfs.NewSolver().Solve(ctx, s.maze, s.source, s.target, monitor)
	s.metrics.ObserveRun("solve", start, err)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	treated := monitor.Total()
	if err = monitor.MarkPath(path); err != nil {
		return fmt.Errorf("mark path: %w", err)
	}
	s.path = path

	s.log.Info("maze solved",
		"source", s.source,
		"destination", s.target,
		"path_length", len(path),
		"treated", treated,
	)

	return nil
}

func (s *session) render() error {
	switch s.cfg.Render.Format {
	case "none":
		return nil
	case "png":
		return s.writeOutput(func(w io.Writer) error {
			s.painter.Repaint()
			img := s.painter.Image()
			if s.cfg.Render.Decorate && s.path != nil {
				decorated, err := render.Decorate(s.painter, s.source, s.target)
				if err != nil {
					return err
				}
				img = decorated
			}
			return render.EncodePNG(w, img)
		})
	default:
		var marks func(int) rune
		if s.path != nil {
			marks = render.PathMarks(s.path, s.source, s.target)
		}
		return s.writeOutput(func(w io.Writer) error {
			_, err := io.WriteString(w, render.ASCII(s.maze, marks))
			return err
		})
	}
}

// writeOutput hands the configured destination to write.
func (s *session) writeOutput(write func(io.Writer) error) error {
	if s.cfg.Render.Output == "-" || s.cfg.Render.Output == "" {
		return write(s.stdout)
	}

	f, err := os.Create(s.cfg.Render.Output)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("render: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	s.log.Info("maze written", "output", s.cfg.Render.Output, "format", s.cfg.Render.Format)

	return nil
}
