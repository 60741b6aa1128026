package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-flow/internal/engine"
)

// ParseText parses the plain level list format. A file holds any number of
// levels, each introduced by a "Level" (or legacy "Niveau") line:
//
//	Level
//	5,5
//	RED;0,0;4,1
//	GREEN;0,2;3,1
//
// The first line of a block is "rows,cols", every other line is
// "COLOR;row,col;row,col". Blank lines and lines starting with '#' are skipped.
// Levels are named "<stem>-NN" in file order, starting at 01.
func ParseText(data []byte, stem string) ([]Level, error) {
	var (
		out     []Level
		current *Level
		lineNo  int
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if current.Rows == 0 && current.Cols == 0 {
			return fmt.Errorf("level %s: missing size line", current.ID)
		}
		out = append(out, *current)
		current = nil
		return nil
	}

	begin := func() {
		n := len(out) + 1
		current = &Level{
			ID:      fmt.Sprintf("%s-%02d", stem, n),
			Name:    fmt.Sprintf("Level %d", n),
			Anchors: make(engine.AnchorLayout),
		}
	}

	sizeRead := false
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if isLevelHeader(line) {
			if err := flush(); err != nil {
				return nil, err
			}
			begin()
			sizeRead = false
			continue
		}

		// Files without a leading header hold a single level.
		if current == nil {
			begin()
			sizeRead = false
		}

		if !sizeRead {
			rows, cols, err := parsePair(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: size: %w", lineNo, err)
			}
			current.Rows, current.Cols = rows, cols
			sizeRead = true
			continue
		}

		if err := parseAnchorLine(current.Anchors, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading levels: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return out, nil
}

func isLevelHeader(line string) bool {
	switch strings.ToLower(line) {
	case "level", "niveau":
		return true
	default:
		return false
	}
}

func parseAnchorLine(layout engine.AnchorLayout, line string) error {
	fields := strings.Split(line, ";")
	if len(fields) != 3 {
		return fmt.Errorf("expected COLOR;row,col;row,col, got %q", line)
	}
	sr, sc, err := parsePair(fields[1])
	if err != nil {
		return fmt.Errorf("first anchor: %w", err)
	}
	er, ec, err := parsePair(fields[2])
	if err != nil {
		return fmt.Errorf("second anchor: %w", err)
	}
	return addAnchorPair(layout, fields[0], engine.At(sr, sc), engine.At(er, ec))
}

func parsePair(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two comma-separated numbers, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad number %q", parts[0])
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad number %q", parts[1])
	}
	return a, b, nil
}
