package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-flow/internal/engine"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Anchors  []YAMLAnchor      `yaml:"anchors"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLAnchor is one color with its two anchor cells as [row, col] pairs.
type YAMLAnchor struct {
	Color string `yaml:"color"`
	Start []int  `yaml:"start"`
	End   []int  `yaml:"end"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Size.Rows,
		Cols:     yl.Size.Cols,
		Anchors:  make(engine.AnchorLayout, len(yl.Anchors)),
		Metadata: yl.Metadata,
	}

	for i, a := range yl.Anchors {
		start, err := yamlCoord(a.Start)
		if err != nil {
			return Level{}, fmt.Errorf("anchor %d start: %w", i, err)
		}
		end, err := yamlCoord(a.End)
		if err != nil {
			return Level{}, fmt.Errorf("anchor %d end: %w", i, err)
		}
		if err := addAnchorPair(level.Anchors, a.Color, start, end); err != nil {
			return Level{}, fmt.Errorf("anchor %d: %w", i, err)
		}
	}

	return level, nil
}

func yamlCoord(v []int) (engine.Coord, error) {
	if len(v) != 2 {
		return engine.Coord{}, fmt.Errorf("expected [row, col], got %v", v)
	}
	return engine.At(v[0], v[1]), nil
}
