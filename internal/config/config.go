package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMode     = "multi"
	DefaultSize     = 800
	DefaultDelay    = 100
	DefaultOutput   = "animation.gif"
	DefaultFormat   = "gif"
	DefaultDataDir  = ".rollsim"
	DefaultFPS      = 10
	DefaultMaxFrame = 0
)

type Config struct {
	Input     string       `yaml:"input" env:"INPUT"`
	Mode      string       `yaml:"mode" env:"MODE"`
	Strict    bool         `yaml:"strict" env:"STRICT"`
	MaxFrames int          `yaml:"max_frames" env:"MAX_FRAMES"`
	Render    RenderConfig `yaml:"render" envPrefix:"RENDER_"`
	Output    OutputConfig `yaml:"output" envPrefix:"OUTPUT_"`
}

type RenderConfig struct {
	Size   int    `yaml:"size" env:"SIZE"`
	Delay  int    `yaml:"delay" env:"DELAY"`
	Output string `yaml:"output" env:"FILE"`
	Format string `yaml:"format" env:"FORMAT"`
	FPS    int    `yaml:"fps" env:"FPS"`
}

type OutputConfig struct {
	DataDir  string `yaml:"data_dir" env:"DATA_DIR"`
	StatsCSV string `yaml:"stats_csv" env:"STATS_CSV"`
	Chart    string `yaml:"chart" env:"CHART"`
	Report   string `yaml:"report" env:"REPORT"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:     "input",
		Mode:      DefaultMode,
		MaxFrames: DefaultMaxFrame,
		Render: RenderConfig{
			Size:   DefaultSize,
			Delay:  DefaultDelay,
			Output: DefaultOutput,
			Format: DefaultFormat,
			FPS:    DefaultFPS,
		},
		Output: OutputConfig{
			DataDir: DefaultDataDir,
		},
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "single", "multi":
	default:
		return fmt.Errorf("mode must be single or multi, got %q", c.Mode)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("max_frames must be non-negative, got %d", c.MaxFrames)
	}
	if c.Render.Size <= 0 {
		return fmt.Errorf("render.size must be positive, got %d", c.Render.Size)
	}
	if c.Render.Delay < 0 {
		return fmt.Errorf("render.delay must be non-negative, got %d", c.Render.Delay)
	}
	switch c.Render.Format {
	case "gif", "avi":
	default:
		return fmt.Errorf("render.format must be gif or avi, got %q", c.Render.Format)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("render.fps must be positive, got %d", c.Render.FPS)
	}
	return nil
}
