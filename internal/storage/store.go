package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/rollsim/internal/export"
	"github.com/san-kum/rollsim/internal/metrics"
	"github.com/san-kum/rollsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	roundsFile   = "rounds.csv"

	// Artifact names callers write into a run directory.
	AnimationGIF = "animation.gif"
	AnimationAVI = "animation.avi"
	ChartFile    = "removals.png"
)

// AnimationFile returns the run directory name of the animation in the
// given format ("gif" or "avi").
func AnimationFile(format string) string {
	if format == "avi" {
		return AnimationAVI
	}
	return AnimationGIF
}

// Store keeps one directory per run holding its metadata, round stats and
// rendered artifacts.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string          `json:"id"`
	Input        string          `json:"input"`
	Timestamp    time.Time       `json:"timestamp"`
	Width        int             `json:"width"`
	Height       int             `json:"height"`
	SingleRound  uint64          `json:"single_round_removed"`
	MultiRound   uint64          `json:"multi_round_removed"`
	Frames       int             `json:"frames"`
	Size         int             `json:"size"`
	Delay        int             `json:"delay"`
	Artifacts    []string        `json:"artifacts,omitempty"`
	Summary      metrics.Summary `json:"summary"`
	RenderFailed string          `json:"render_error,omitempty"`
}

// Dir returns the directory of a run.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

// Create allocates a new run directory and returns its ID.
func (s *Store) Create(name string) (string, error) {
	base := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runID := base
	for i := 1; ; i++ {
		err := os.Mkdir(s.Dir(runID), 0755)
		if err == nil {
			return runID, nil
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
}

// Save writes metadata and round stats into the run directory.
func (s *Store) Save(meta *RunMetadata, rounds []sim.RoundStats) error {
	runDir := s.Dir(meta.ID)
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, roundsFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	return export.WriteRoundsCSV(csvFile, rounds)
}

// List returns every saved run, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(runID), metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadRounds(runID string) ([]sim.RoundStats, error) {
	f, err := os.Open(filepath.Join(s.Dir(runID), roundsFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.ReadRoundsCSV(f)
}
