package config

import "sort"

// Presets are built-in grids that can stand in for an input file.
var Presets = map[string]string{
	"example": `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`,
	"block": "@@@\n@@@\n@@@\n",
	"single": "@\n",
	"ring": `.@@@@@.
@@@@@@@
@@...@@
@@...@@
@@...@@
@@@@@@@
.@@@@@.
`,
	"solid": `@@@@@@@@
@@@@@@@@
@@@@@@@@
@@@@@@@@
@@@@@@@@
@@@@@@@@
`,
	"empty": "....\n....\n",
}

// GetPreset returns the grid text of a preset and whether it exists.
func GetPreset(name string) (string, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
