package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flow/internal/engine"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
name: Demo
size:
  rows: 2
  cols: 3
anchors:
  - color: red
    start: [0, 0]
    end: [0, 2]
  - color: Bleu
    start: [1, 0]
    end: [1, 2]
metadata:
  author: tests
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "demo" || lvl.Name != "Demo" || lvl.Rows != 2 || lvl.Cols != 3 {
		t.Errorf("unexpected header %+v", lvl)
	}
	if got := lvl.Anchors[engine.ColorBlue]; got.Start != engine.At(1, 0) || got.End != engine.At(1, 2) {
		t.Errorf("unexpected blue anchors %+v", got)
	}
	if lvl.Metadata["author"] != "tests" {
		t.Errorf("metadata lost: %v", lvl.Metadata)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "id: [", "yaml unmarshal"},
		{"unknown color", "anchors:\n  - {color: mauve, start: [0, 0], end: [0, 1]}\n", "unknown color"},
		{"short coord", "anchors:\n  - {color: red, start: [0], end: [0, 1]}\n", "expected [row, col]"},
		{"repeated color", "anchors:\n  - {color: red, start: [0, 0], end: [0, 1]}\n  - {color: red, start: [1, 0], end: [1, 1]}\n", "listed twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	data := []byte(`# two levels
Niveau
3,3
ROUGE;0,0;0,2
BLEU;1,0;2,2

Level
1 , 2
green;0,0;0,1
`)
	lvls, err := ParseText(data, "pack")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[0].ID != "pack-01" || lvls[1].ID != "pack-02" {
		t.Errorf("unexpected ids %s, %s", lvls[0].ID, lvls[1].ID)
	}
	if lvls[0].Rows != 3 || lvls[0].Cols != 3 || len(lvls[0].Anchors) != 2 {
		t.Errorf("unexpected first level %+v", lvls[0])
	}
	if got := lvls[0].Anchors[engine.ColorRed]; got.End != engine.At(0, 2) {
		t.Errorf("unexpected red anchors %+v", got)
	}
	if lvls[1].Rows != 1 || lvls[1].Cols != 2 {
		t.Errorf("unexpected second level size %dx%d", lvls[1].Rows, lvls[1].Cols)
	}
}

func TestParseTextWithoutHeader(t *testing.T) {
	lvls, err := ParseText([]byte("2,2\nRED;0,0;1,1\n"), "single")
	if err != nil {
		t.Fatal(err)
	}
	if len(lvls) != 1 || lvls[0].ID != "single-01" {
		t.Errorf("unexpected levels %+v", lvls)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "# nothing\n", "no levels"},
		{"bad size", "Level\nfive,5\n", "line 2: size"},
		{"bad anchor line", "Level\n2,2\nRED;0,0\n", "line 3: expected COLOR"},
		{"bad coord", "Level\n2,2\nRED;0,0;x,1\n", "second anchor"},
		{"header without size", "Level\nLevel\n2,2\nRED;0,0;0,1\n", "missing size"},
		{"duplicate color", "Level\n2,2\nRED;0,0;0,1\nROUGE;1,0;1,1\n", "listed twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText([]byte(tt.data), "x")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseRoutesByExtension(t *testing.T) {
	if _, err := Parse([]byte("2,2\nRED;0,0;1,1\n"), ".TXT", "x"); err != nil {
		t.Errorf("txt: %v", err)
	}
	lvls, err := Parse([]byte("size: {rows: 1, cols: 2}\nanchors:\n  - {color: red, start: [0,0], end: [0,1]}\n"), ".yml", "stem")
	if err != nil || len(lvls) != 1 || lvls[0].ID != "stem" {
		t.Errorf("yml: %+v %v", lvls, err)
	}
	if _, err := Parse(nil, ".json", "x"); err == nil {
		t.Error("json should be unsupported")
	}
}
