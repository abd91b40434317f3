package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/san-kum/rollsim/internal/automation"
	"github.com/san-kum/rollsim/internal/config"
	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/storage"
	"github.com/san-kum/rollsim/internal/viz"
	"github.com/spf13/cobra"
)

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.Output.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tINPUT\tTIME\tSIZE\tSINGLE\tMULTI\tROUNDS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%d\n",
			run.ID,
			run.Input,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.SingleRound,
			run.MultiRound,
			run.Summary.Rounds,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runID := args[0]
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rounds, err := st.LoadRounds(runID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "input: %s (%dx%d)\n", meta.Input, meta.Width, meta.Height)
	fmt.Fprintf(out, "single round removed: %d\n", meta.SingleRound)
	fmt.Fprintf(out, "multi round removed: %d\n", meta.MultiRound)
	fmt.Fprintf(out, "rounds: %d, peak %d at round %d, mean %.2f (sd %.2f)\n",
		meta.Summary.Rounds, meta.Summary.PeakRemoved, meta.Summary.PeakRound,
		meta.Summary.MeanRemoved, meta.Summary.StdDevRemoved)
	for _, a := range meta.Artifacts {
		fmt.Fprintf(out, "artifact: %s\n", a)
	}
	if meta.RenderFailed != "" {
		fmt.Fprintf(out, "render error: %s\n", meta.RenderFailed)
	}
	if len(rounds) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotRemovals(rounds, 60, 10))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets (use preset:<name>):")
	for _, name := range config.ListPresets() {
		text, _ := config.GetPreset(name)
		g, err := grid.ParseString(text, grid.ParseOptions{})
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		fmt.Fprintf(out, "  %-8s %dx%d, %d active\n", name, g.Width(), g.Height(), g.Count(grid.KindActive))
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if scenario.Name != "" {
		fmt.Fprintln(cmd.OutOrStdout(), viz.Title.Render(scenario.Name))
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tSINGLE\tMULTI\tROUNDS\tARTIFACT")
	failed := 0
	for _, r := range results {
		artifact := r.Artifact
		if r.RenderErr != nil {
			artifact = "render failed"
			failed++
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", r.Input, r.SingleRound, r.MultiRound, r.Summary.Rounds, artifact)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d renders failed", failed, len(results))
	}
	return nil
}
