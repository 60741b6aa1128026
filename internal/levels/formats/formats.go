// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-flow/internal/engine"
)

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Anchors  engine.AnchorLayout
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}

// Parse routes to the parser for the file extension.
// stem names levels of formats that carry no IDs of their own.
func Parse(data []byte, ext, stem string) ([]Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		lvl, err := ParseYAML(data)
		if err != nil {
			return nil, err
		}
		if lvl.ID == "" {
			lvl.ID = stem
		}
		return []Level{lvl}, nil
	case ".txt":
		return ParseText(data, stem)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func addAnchorPair(layout engine.AnchorLayout, name string, start, end engine.Coord) error {
	color, ok := engine.ParseColor(name)
	if !ok {
		return fmt.Errorf("unknown color %q", name)
	}
	if _, dup := layout[color]; dup {
		return fmt.Errorf("color %s listed twice, each color needs exactly two anchors", color)
	}
	layout[color] = engine.AnchorPair{Start: start, End: end}
	return nil
}
