package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/rollsim/internal/config"
	"github.com/san-kum/rollsim/internal/export"
	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/metrics"
	"github.com/san-kum/rollsim/internal/render"
	"github.com/san-kum/rollsim/internal/sim"
	"github.com/san-kum/rollsim/internal/storage"
	"github.com/san-kum/rollsim/internal/viz"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, the config file, ROLLSIM_* variables and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Output.DataDir = dataDir
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("max-frames") {
		cfg.MaxFrames = maxFrames
	}
	if flags.Changed("size") {
		cfg.Render.Size = size
	}
	if flags.Changed("delay") {
		cfg.Render.Delay = delay
	}
	if flags.Changed("output") {
		cfg.Render.Output = output
	}
	if flags.Changed("format") {
		cfg.Render.Format = format
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = fps
	}
	if flags.Changed("stats") {
		cfg.Output.StatsCSV = statsCSV
	}
	if flags.Changed("chart") {
		cfg.Output.Chart = chartPNG
	}
	if flags.Changed("report") {
		cfg.Output.Report = reportJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadGrid(cmd *cobra.Command, input string, strict bool) (*grid.Grid, string, error) {
	return config.OpenInput(input, cmd.InOrStdin(), strict)
}

func inputArg(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Input
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, name, err := loadGrid(cmd, inputArg(args, cfg), cfg.Strict)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(out, "grid: %s (%dx%d, %d active)\n", name, g.Width(), g.Height(), g.Count(grid.KindActive))

	s := sim.New(g)
	single, err := s.Run(ctx, sim.Config{Mode: sim.SingleRound, MaxFrames: cfg.MaxFrames})
	if err != nil {
		return fmt.Errorf("single round: %w", err)
	}
	fmt.Fprintf(out, "single round removed: %d\n", single.TotalRemoved)

	if cfg.Mode == sim.SingleRound.String() {
		return nil
	}

	rec := metrics.NewRecorder()
	s.AddObserver(rec)
	if verbose {
		logger := metrics.NewLogger(out)
		logger.ShowGrid = showGrid
		s.AddObserver(logger)
	}

	multi, err := s.Run(ctx, sim.Config{Mode: sim.MultiRound, MaxFrames: cfg.MaxFrames})
	if err != nil {
		return fmt.Errorf("multi round: %w", err)
	}
	summary := rec.Summary()
	fmt.Fprintf(out, "multi round removed: %d\n", multi.TotalRemoved)
	fmt.Fprintf(out, "rounds: %d (frames %d, settled at round %d)\n", multi.Rounds, multi.Frames.Len(), summary.SettleRound)

	if plot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotRemovals(multi.Stats, 60, 10))
		fmt.Fprintln(out)
	}

	var runID, runDir string
	var st *storage.Store
	if save {
		st = storage.New(cfg.Output.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		if runID, err = st.Create(name); err != nil {
			return err
		}
		runDir = st.Dir(runID)
	}

	opts := render.Options{Size: cfg.Render.Size, Delay: cfg.Render.Delay, FPS: cfg.Render.FPS}
	artifacts := make([]string, 0, 2)
	var animation string
	var renderErr error
	if !noRender {
		path := cfg.Render.Output
		switch {
		case runDir != "":
			path = filepath.Join(runDir, storage.AnimationFile(cfg.Render.Format))
		case path == config.DefaultOutput:
			path = storage.AnimationFile(cfg.Render.Format)
		}
		renderErr = writeAnimation(path, multi.Frames, opts, cfg.Render.Format)
		if renderErr == nil {
			animation = path
			artifacts = append(artifacts, path)
			fmt.Fprintf(out, "animation: %s\n", path)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "render failed: %v\n", renderErr)
		}
	}

	if cfg.Output.StatsCSV != "" {
		if err := writeFile(cfg.Output.StatsCSV, func(w io.Writer) error {
			return export.WriteRoundsCSV(w, multi.Stats)
		}); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
		fmt.Fprintf(out, "stats: %s\n", cfg.Output.StatsCSV)
	}

	chartPath := cfg.Output.Chart
	if chartPath == "" && runDir != "" {
		chartPath = filepath.Join(runDir, storage.ChartFile)
	}
	if chartPath != "" {
		if err := writeFile(chartPath, func(w io.Writer) error {
			return export.RemovalChartPNG(w, multi.Stats, export.DefaultChartWidth, export.DefaultChartHeight)
		}); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		artifacts = append(artifacts, chartPath)
		fmt.Fprintf(out, "chart: %s\n", chartPath)
	}

	if cfg.Output.Report != "" {
		report := export.Report{
			Input:       name,
			Width:       g.Width(),
			Height:      g.Height(),
			SingleRound: single.TotalRemoved,
			MultiRound:  multi.TotalRemoved,
			Frames:      multi.Frames.Len(),
			Summary:     summary,
			Artifact:    animation,
		}
		if renderErr != nil {
			report.RenderFailed = renderErr.Error()
		}
		write := func(w io.Writer) error { return export.WriteReportJSON(w, report) }
		if cfg.Output.Report == "-" {
			err = write(out)
		} else {
			err = writeFile(cfg.Output.Report, write)
		}
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if st != nil {
		meta := &storage.RunMetadata{
			ID:          runID,
			Input:       name,
			Width:       g.Width(),
			Height:      g.Height(),
			SingleRound: single.TotalRemoved,
			MultiRound:  multi.TotalRemoved,
			Frames:      multi.Frames.Len(),
			Size:        opts.Size,
			Delay:       opts.Delay,
			Artifacts:   artifacts,
			Summary:     summary,
		}
		if renderErr != nil {
			meta.RenderFailed = renderErr.Error()
		}
		if err := st.Save(meta, multi.Stats); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	return renderErr
}

func writeAnimation(path string, frames render.Source, opts render.Options, format string) error {
	if format == "avi" {
		return render.WriteAVI(path, frames, opts)
	}
	return render.WriteFile(path, frames, opts)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// simulate runs the input once in the given mode, or in the configured mode
// when forced is empty.
func simulate(cmd *cobra.Command, args []string, forced string) (*sim.Result, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	g, _, err := loadGrid(cmd, inputArg(args, cfg), cfg.Strict)
	if err != nil {
		return nil, nil, err
	}
	name := cfg.Mode
	if forced != "" {
		name = forced
	}
	m, err := sim.ParseMode(name)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := sim.New(g).Run(ctx, sim.Config{Mode: m, MaxFrames: cfg.MaxFrames})
	return result, cfg, err
}

func playSimulation(cmd *cobra.Command, args []string) error {
	result, cfg, err := simulate(cmd, args, sim.MultiRound.String())
	if err != nil && !errors.Is(err, sim.ErrFrameLimit) {
		return err
	}
	return viz.RunPlayer(result.Frames, result.Stats, cfg.Render.FPS)
}

func printFrames(cmd *cobra.Command, args []string) error {
	result, _, err := simulate(cmd, args, "")
	if err != nil {
		return err
	}
	if err := export.WriteFramesText(cmd.OutOrStdout(), result.Frames); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed: %d\n", result.TotalRemoved)
	return nil
}
