package export

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/metrics"
	"github.com/san-kum/rollsim/internal/sim"
)

func blockResult(t *testing.T) *sim.Result {
	t.Helper()
	g, err := grid.ParseString("@@@\n@@@\n@@@\n", grid.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	result, err := sim.New(g).Run(context.Background(), sim.Config{Mode: sim.MultiRound})
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestRoundsCSV(t *testing.T) {
	g := NewWithT(t)
	result := blockResult(t)

	var buf bytes.Buffer
	g.Expect(WriteRoundsCSV(&buf, result.Stats)).To(Succeed())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	g.Expect(lines[0]).To(Equal("round,removed,active,decaying,stuck"))
	g.Expect(lines[1]).To(Equal("1,4,5,4,0"))
	g.Expect(lines).To(HaveLen(result.Rounds + 1))

	back, err := ReadRoundsCSV(strings.NewReader(buf.String()))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(back).To(Equal(result.Stats))
}

func TestReportJSON(t *testing.T) {
	result := blockResult(t)
	report := Report{
		Input:       "block",
		Width:       3,
		Height:      3,
		SingleRound: 4,
		MultiRound:  result.TotalRemoved,
		Frames:      result.Frames.Len(),
		Summary:     metrics.Summarize(result.Stats),
	}

	var buf bytes.Buffer
	if err := WriteReportJSON(&buf, report); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["multi_round_removed"].(float64) != 9 {
		t.Errorf("unexpected multi_round_removed: %v", decoded["multi_round_removed"])
	}
	if _, ok := decoded["render_error"]; ok {
		t.Error("render_error should be omitted when empty")
	}
}

func TestRemovalChartPNG(t *testing.T) {
	result := blockResult(t)

	var buf bytes.Buffer
	if err := RemovalChartPNG(&buf, result.Stats, 400, 200); err != nil {
		t.Fatalf("chart failed: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 200 {
		t.Errorf("expected 400x200, got %dx%d", cfg.Width, cfg.Height)
	}

	if err := RemovalChartPNG(&buf, nil, 400, 200); err == nil {
		t.Error("expected error for no rounds")
	}
}

func TestWriteFramesText(t *testing.T) {
	g, _ := grid.ParseString("@\n", grid.ParseOptions{})
	result, err := sim.New(g).Run(context.Background(), sim.Config{Mode: sim.SingleRound})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteFramesText(&buf, result.Frames); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "-- frame 0 --\n@\n-- frame 1 --\n1\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
