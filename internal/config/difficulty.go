package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type Difficulty struct {
	Name      string `yaml:"name"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MineCount int    `yaml:"mine_count"`
}

// Difficulty implements [fmt.Stringer]
func (d Difficulty) String() string {
	return fmt.Sprintf("%s %dx%d(%d)", d.Name, d.Width, d.Height, d.MineCount)
}

var (
	Easy   = Difficulty{Name: "easy", Width: 9, Height: 9, MineCount: 10}
	Medium = Difficulty{Name: "medium", Width: 16, Height: 16, MineCount: 40}
	Hard   = Difficulty{Name: "hard", Width: 30, Height: 16, MineCount: 99}
)

const DefaultDifficulty = "medium"

// Presets maps lowercase difficulty names to their grid parameters.
type Presets map[string]Difficulty

func DefaultPresets() Presets {
	return Presets{
		Easy.Name:   Easy,
		Medium.Name: Medium,
		Hard.Name:   Hard,
	}
}

func (p Presets) Lookup(name string) (Difficulty, error) {
	d, ok := p[strings.ToLower(name)]
	if !ok {
		return Difficulty{}, fmt.Errorf(
			"unknown difficulty %q, must be one of %s",
			name, strings.Join(p.Names(), ", "),
		)
	}
	return d, nil
}

func (p Presets) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

type presetsFile struct {
	Presets []Difficulty `yaml:"presets"`
}

// LoadPresets reads a YAML file of the form
//
//	presets:
//	  - name: tiny
//	    width: 5
//	    height: 5
//	    mine_count: 3
//
// and returns the defaults overridden and extended by its entries.
func LoadPresets(path string) (Presets, error) {
	presets := DefaultPresets()
	if path == "" {
		return presets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read presets file: %w", err)
	}

	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse presets file %s: %w", path, err)
	}

	for _, d := range file.Presets {
		if d.Name == "" {
			return nil, fmt.Errorf("preset without a name in %s", path)
		}
		d.Name = strings.ToLower(d.Name)
		presets[d.Name] = d
	}
	return presets, nil
}

func PresetsFile() string {
	return os.Getenv("MINES_PRESETS_FILE")
}
