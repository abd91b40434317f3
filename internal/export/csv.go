package export

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/rollsim/internal/sim"
)

// RoundRecord is one row of the per-round CSV.
type RoundRecord struct {
	Round    int `csv:"round"`
	Removed  int `csv:"removed"`
	Active   int `csv:"active"`
	Decaying int `csv:"decaying"`
	Stuck    int `csv:"stuck"`
}

func toRecords(rounds []sim.RoundStats) []*RoundRecord {
	records := make([]*RoundRecord, len(rounds))
	for i, r := range rounds {
		records[i] = &RoundRecord{
			Round:    r.Round,
			Removed:  r.Removed,
			Active:   r.Active,
			Decaying: r.Decaying,
			Stuck:    r.Stuck,
		}
	}
	return records
}

// WriteRoundsCSV writes a header and one row per round.
func WriteRoundsCSV(w io.Writer, rounds []sim.RoundStats) error {
	return gocsv.Marshal(toRecords(rounds), w)
}

// ReadRoundsCSV parses the output of WriteRoundsCSV.
func ReadRoundsCSV(r io.Reader) ([]sim.RoundStats, error) {
	var records []*RoundRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, err
	}
	rounds := make([]sim.RoundStats, len(records))
	for i, rec := range records {
		rounds[i] = sim.RoundStats{
			Round:    rec.Round,
			Removed:  rec.Removed,
			Active:   rec.Active,
			Decaying: rec.Decaying,
			Stuck:    rec.Stuck,
		}
	}
	return rounds, nil
}
