package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/rollsim/internal/metrics"
)

type Report struct {
	Input        string          `json:"input"`
	Width        int             `json:"width"`
	Height       int             `json:"height"`
	SingleRound  uint64          `json:"single_round_removed"`
	MultiRound   uint64          `json:"multi_round_removed"`
	Frames       int             `json:"frames"`
	Summary      metrics.Summary `json:"summary"`
	Artifact     string          `json:"artifact,omitempty"`
	RenderFailed string          `json:"render_error,omitempty"`
}

func WriteReportJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
