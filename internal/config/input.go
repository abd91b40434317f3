package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/san-kum/rollsim/internal/grid"
)

// PresetPrefix marks an input that names a built-in grid.
const PresetPrefix = "preset:"

// OpenInput reads the grid named by input: "preset:<name>", "-" for stdin,
// or a file path. The returned name identifies the input in reports.
func OpenInput(input string, stdin io.Reader, strict bool) (*grid.Grid, string, error) {
	opts := grid.ParseOptions{Strict: strict}
	switch {
	case strings.HasPrefix(input, PresetPrefix):
		name := strings.TrimPrefix(input, PresetPrefix)
		text, ok := GetPreset(name)
		if !ok {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
		}
		g, err := grid.ParseString(text, opts)
		return g, name, err
	case input == "-":
		if stdin == nil {
			return nil, "", fmt.Errorf("no stdin available")
		}
		g, err := grid.Parse(stdin, opts)
		return g, "stdin", err
	default:
		g, err := grid.ParseFile(input, opts)
		if err != nil {
			return nil, "", err
		}
		return g, strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)), nil
	}
}
