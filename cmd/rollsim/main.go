package main

import (
	"os"

	"github.com/san-kum/rollsim/internal/config"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	mode       string
	strict     bool
	maxFrames  int
	size       int
	delay      int
	output     string
	format     string
	fps        int
	statsCSV   string
	chartPNG   string
	reportJSON string
	noRender   bool
	plot       bool
	save       bool
	verbose    bool
	showGrid   bool
)

// main is the entry point for the rollsim CLI; it registers commands and
// flags and exits with status 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rollsim",
		Short:        "grid elimination simulator with decay animation",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject symbols other than '@' and '.'")

	runCmd := &cobra.Command{
		Use:   "run [input]",
		Short: "run single and multi round simulations and render the animation",
		Long: "Input is a file path, '-' for stdin, or preset:<name>.\n" +
			"With --mode single only the single round count is computed and nothing is rendered.",
		Args: cobra.MaximumNArgs(1),
		RunE: runSimulation,
	}
	runCmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "single or multi")
	runCmd.Flags().IntVar(&maxFrames, "max-frames", config.DefaultMaxFrame, "frame log capacity (0 = unbounded)")
	runCmd.Flags().IntVar(&size, "size", config.DefaultSize, "target pixel size of the longer side")
	runCmd.Flags().IntVar(&delay, "delay", config.DefaultDelay, "base delay; interior frames last delay/10 centiseconds")
	runCmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "animation output path; the default name takes its extension from --format")
	runCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "animation format (gif or avi)")
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "avi frame rate")
	runCmd.Flags().StringVar(&statsCSV, "stats", "", "write per-round stats CSV")
	runCmd.Flags().StringVar(&chartPNG, "chart", "", "write removals chart PNG")
	runCmd.Flags().StringVar(&reportJSON, "report", "", "write JSON report ('-' for stdout)")
	runCmd.Flags().BoolVar(&noRender, "no-render", false, "skip the animation")
	runCmd.Flags().BoolVar(&plot, "plot", false, "print an ascii plot of removals per round")
	runCmd.Flags().BoolVar(&save, "save", false, "save the run and its artifacts under the data directory")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every round")
	runCmd.Flags().BoolVar(&showGrid, "show-grid", false, "with --verbose, print the grid after every round")

	playCmd := &cobra.Command{
		Use:   "play [input]",
		Short: "replay the multi round simulation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playSimulation,
	}
	playCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	playCmd.Flags().IntVar(&maxFrames, "max-frames", config.DefaultMaxFrame, "frame log capacity (0 = unbounded)")

	framesCmd := &cobra.Command{
		Use:   "frames [input]",
		Short: "print every frame of the multi round simulation as text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printFrames,
	}
	framesCmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "single or multi")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in grids",
		RunE:  listPresets,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	rootCmd.AddCommand(runCmd, playCmd, framesCmd, listCmd, showCmd, presetsCmd, batchCmd)
	return rootCmd
}
