package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/rollsim/internal/config"
	"github.com/san-kum/rollsim/internal/metrics"
	"github.com/san-kum/rollsim/internal/render"
	"github.com/san-kum/rollsim/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario is a list of inputs to simulate in one batch.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one input. Output is optional; when set the multi-round
// frame log is rendered there.
type ScenarioStep struct {
	Input     string `yaml:"input"`
	Strict    bool   `yaml:"strict"`
	MaxFrames int    `yaml:"max_frames"`
	Size      int    `yaml:"size"`
	Delay     int    `yaml:"delay"`
	Output    string `yaml:"output"`
}

// StepResult holds the outcome of one step. RenderErr is kept separately
// because a failed render leaves the removal counts valid.
type StepResult struct {
	Input       string
	SingleRound uint64
	MultiRound  uint64
	Summary     metrics.Summary
	Artifact    string
	RenderErr   error
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &scenario, nil
}

// RunScenario executes every step in order, logging progress to log. It
// stops at the first step whose input cannot be loaded or simulated.
func RunScenario(ctx context.Context, scenario *Scenario, log io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Fprintf(log, "running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Input)

		res, err := runStep(ctx, step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintf(log, "  single %d, multi %d, rounds %d\n", res.SingleRound, res.MultiRound, res.Summary.Rounds)
		if res.RenderErr != nil {
			fmt.Fprintf(log, "  render failed: %v\n", res.RenderErr)
		}
		results = append(results, res)
	}

	return results, nil
}

func runStep(ctx context.Context, step ScenarioStep) (StepResult, error) {
	g, name, err := config.OpenInput(step.Input, nil, step.Strict)
	if err != nil {
		return StepResult{}, err
	}

	s := sim.New(g)
	single, err := s.Run(ctx, sim.Config{Mode: sim.SingleRound, MaxFrames: step.MaxFrames})
	if err != nil {
		return StepResult{}, err
	}
	rec := metrics.NewRecorder()
	s.AddObserver(rec)
	multi, err := s.Run(ctx, sim.Config{Mode: sim.MultiRound, MaxFrames: step.MaxFrames})
	if err != nil {
		return StepResult{}, err
	}

	res := StepResult{
		Input:       name,
		SingleRound: single.TotalRemoved,
		MultiRound:  multi.TotalRemoved,
		Summary:     rec.Summary(),
	}
	if step.Output != "" {
		opts := render.DefaultOptions()
		if step.Size > 0 {
			opts.Size = step.Size
		}
		if step.Delay > 0 {
			opts.Delay = step.Delay
		}
		if res.RenderErr = render.WriteFile(step.Output, multi.Frames, opts); res.RenderErr == nil {
			res.Artifact = step.Output
		}
	}
	return res, nil
}
