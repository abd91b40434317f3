package metrics

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/sim"
)

func runBlock(t *testing.T, observers ...sim.Observer) *sim.Result {
	t.Helper()
	g, err := grid.ParseString("@@@\n@@@\n@@@\n", grid.ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	s := sim.New(g)
	for _, o := range observers {
		s.AddObserver(o)
	}
	result, err := s.Run(context.Background(), sim.Config{Mode: sim.MultiRound})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	result := runBlock(t, rec)

	if len(rec.Rounds()) != result.Rounds {
		t.Fatalf("expected %d rounds recorded, got %d", result.Rounds, len(rec.Rounds()))
	}

	sum := rec.Summary()
	if sum.TotalRemoved != result.TotalRemoved {
		t.Errorf("expected total %d, got %d", result.TotalRemoved, sum.TotalRemoved)
	}
	if sum.RemovingRounds != 3 {
		t.Errorf("expected 3 removing rounds, got %d", sum.RemovingRounds)
	}
	if sum.PeakRound != 1 || sum.PeakRemoved != 4 {
		t.Errorf("expected peak of 4 in round 1, got %d in round %d", sum.PeakRemoved, sum.PeakRound)
	}
	if sum.SettleRound != 11 {
		t.Errorf("expected settle round 11, got %d", sum.SettleRound)
	}

	rec.Reset()
	if len(rec.Rounds()) != 0 {
		t.Error("expected empty recorder after reset")
	}
}

func TestSummarizeStatistics(t *testing.T) {
	rounds := []sim.RoundStats{
		{Round: 1, Removed: 4, Decaying: 4},
		{Round: 2, Removed: 2, Decaying: 6},
		{Round: 3, Removed: 0, Decaying: 6},
	}
	sum := Summarize(rounds)

	if math.Abs(sum.MeanRemoved-3) > 1e-9 {
		t.Errorf("expected mean 3, got %f", sum.MeanRemoved)
	}
	if math.Abs(sum.StdDevRemoved-math.Sqrt2) > 1e-9 {
		t.Errorf("expected stddev sqrt(2), got %f", sum.StdDevRemoved)
	}
	if sum.SettleRound != 0 {
		t.Errorf("run still decaying should not settle, got %d", sum.SettleRound)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	empty := Summarize(nil)
	if empty.Rounds != 0 || empty.MeanRemoved != 0 || empty.StdDevRemoved != 0 {
		t.Errorf("unexpected summary for no rounds: %+v", empty)
	}

	quiet := Summarize([]sim.RoundStats{{Round: 1}, {Round: 2}})
	if quiet.SettleRound != 1 || quiet.RemovingRounds != 0 {
		t.Errorf("unexpected summary for quiet run: %+v", quiet)
	}

	one := Summarize([]sim.RoundStats{{Round: 1, Removed: 5, Decaying: 5}})
	if one.MeanRemoved != 5 || one.StdDevRemoved != 0 {
		t.Errorf("unexpected summary for single removal round: %+v", one)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	result := runBlock(t, l)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != result.Rounds {
		t.Fatalf("expected %d lines, got %d", result.Rounds, len(lines))
	}
	if lines[0] != "round 1: removed 4 (active 5, decaying 4)" {
		t.Errorf("unexpected first line: %q", lines[0])
	}

	buf.Reset()
	l.ShowGrid = true
	l.OnRound(sim.RoundStats{Round: 1}, grid.New(2, 1))
	if !strings.HasPrefix(buf.String(), "..\n") {
		t.Errorf("expected grid before stats line, got %q", buf.String())
	}
}
