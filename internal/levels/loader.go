// Package levels provides level loading and the size-ordered level catalog.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-flow/internal/engine"
	"github.com/vovakirdan/tui-flow/internal/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Anchors  engine.AnchorLayout
	Metadata map[string]string
	FilePath string
}

// ToEngine converts the level to what the engine builds a board from.
func (l Level) ToEngine() engine.Level {
	return engine.Level{
		ID:       l.ID,
		Name:     l.Name,
		Geometry: engine.Geometry{Rows: l.Rows, Cols: l.Cols},
		Anchors:  l.Anchors,
	}
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from one or more file systems.
// Earlier sources win when two levels share an ID.
type Loader struct {
	Sources []fs.FS
	Logger  *log.Logger
}

// NewLoader creates a new level loader over the given sources.
func NewLoader(sources ...fs.FS) *Loader {
	return &Loader{
		Sources: sources,
		Logger:  log.New(io.Discard),
	}
}

// NewDirLoader loads the builtin levels followed by those under dir.
// An empty dir loads only the builtin levels.
func NewDirLoader(dir string) *Loader {
	sources := []fs.FS{Builtin()}
	if dir != "" {
		sources = append(sources, os.DirFS(dir))
	}
	return NewLoader(sources...)
}

// LoadAll recursively scans and loads all level files.
// Invalid files and levels are skipped with a warning.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	for i, src := range l.Sources {
		err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
				return nil
			}

			loaded, err := l.loadFrom(src, p)
			if err != nil {
				l.Logger.Warn("skipping level file", "source", i, "path", p, "err", err)
				return nil
			}
			for _, lvl := range loaded {
				if prev, dup := seen[lvl.ID]; dup {
					l.Logger.Warn("duplicate level id", "id", lvl.ID, "path", p, "kept", prev)
					continue
				}
				seen[lvl.ID] = p
				levels = append(levels, lvl)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking level source %d: %w", i, err)
		}
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads every level of one file from the operating system.
// Levels that cannot form a board are reported as errors.
func LoadFile(filePath string) ([]Level, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filePath, err)
	}
	ext := filepath.Ext(filePath)
	return parseLevels(data, filePath, ext, strings.TrimSuffix(filepath.Base(filePath), ext))
}

func (l *Loader) loadFrom(src fs.FS, p string) ([]Level, error) {
	data, err := fs.ReadFile(src, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}
	ext := path.Ext(p)
	return parseLevels(data, p, ext, strings.TrimSuffix(path.Base(p), ext))
}

func parseLevels(data []byte, filePath, ext, stem string) ([]Level, error) {
	parsed, err := formats.Parse(data, ext, stem)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", filePath, err)
	}

	out := make([]Level, 0, len(parsed))
	for _, p := range parsed {
		lvl := Level{
			ID:       p.ID,
			Name:     p.Name,
			Rows:     p.Rows,
			Cols:     p.Cols,
			Anchors:  p.Anchors,
			Metadata: p.Metadata,
			FilePath: filePath,
		}
		if err := lvl.ToEngine().Validate(); err != nil {
			return nil, fmt.Errorf("level %s in %s: %w", lvl.ID, filePath, err)
		}
		out = append(out, lvl)
	}
	return out, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
