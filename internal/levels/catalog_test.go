package levels_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flow/internal/engine"
	"github.com/vovakirdan/tui-flow/internal/levels"
)

func TestCatalogGroupsBySize(t *testing.T) {
	cat := levels.NewCatalog([]levels.Level{
		{ID: "b", Rows: 5, Cols: 5},
		{ID: "c", Rows: 4, Cols: 4},
		{ID: "a", Rows: 5, Cols: 5},
		{ID: "d", Rows: 5, Cols: 6},
		{ID: "e", Rows: 4, Cols: 4},
	})

	var labels []string
	for _, g := range cat.Groups() {
		var ids []string
		for _, l := range g.Levels {
			ids = append(ids, l.ID)
		}
		labels = append(labels, g.Label()+":"+strings.Join(ids, ","))
	}
	want := "4x4:c,e 5x5:a,b 5x6:d"
	if got := strings.Join(labels, " "); got != want {
		t.Errorf("groups = %s, want %s", got, want)
	}

	if cat.Len() != 5 {
		t.Errorf("expected 5 levels, got %d", cat.Len())
	}
	if next, ok := cat.Next("e"); !ok || next.ID != "a" {
		t.Errorf("Next(e) = %v,%v; want a", next.ID, ok)
	}
	if _, ok := cat.Next("d"); ok {
		t.Error("last level has no successor")
	}
	if _, ok := cat.Get("zzz"); ok {
		t.Error("unknown id should not be found")
	}
	if i, ok := cat.Index("b"); !ok || i != 3 {
		t.Errorf("Index(b) = %d,%v", i, ok)
	}
}

var builtinSolutions = map[string][]struct {
	start engine.Coord
	moves string
}{
	"3x3-01": {{engine.At(0, 0), "RRDD"}, {engine.At(1, 1), "LDR"}},
	"4x4-01": {{engine.At(0, 0), "RRRDDD"}, {engine.At(1, 0), "DDRR"}, {engine.At(1, 1), "RDL"}},
	"4x4-02": {{engine.At(0, 0), "DDD"}, {engine.At(0, 1), "RRD"}, {engine.At(1, 2), "LDDRRUL"}},
	"5x5-01": {{engine.At(0, 0), "DDDDR"}, {engine.At(0, 2), "LDDD"}, {engine.At(1, 2), "DDD"},
		{engine.At(0, 4), "LDDD"}, {engine.At(1, 4), "DDDL"}},
	"5x5-02": {{engine.At(0, 0), "RRDD"}, {engine.At(0, 3), "RDD"}, {engine.At(1, 3), "DDRD"},
		{engine.At(1, 1), "LDDDR"}, {engine.At(2, 1), "DRDR"}},
	"5x6-01": {{engine.At(0, 0), "RRDDD"}, {engine.At(0, 3), "RRDDDD"}, {engine.At(1, 3), "RDD"},
		{engine.At(2, 3), "DDR"}, {engine.At(1, 0), "RDLDD"}, {engine.At(3, 1), "DR"}},
	"6x6-01": {{engine.At(0, 0), "RRRDDR"}, {engine.At(0, 5), "LDRDDDD"}, {engine.At(1, 0), "RRDDR"},
		{engine.At(2, 0), "RDDRD"}, {engine.At(3, 0), "DDR"}, {engine.At(3, 4), "DLDR"}},
	"classic-01": {{engine.At(0, 0), "RDRU"}, {engine.At(1, 0), "DRR"}},
	"classic-02": {{engine.At(0, 0), "DDD"}, {engine.At(0, 1), "RDDRUU"}, {engine.At(1, 1), "DDRR"}},
}

func moveDir(r rune) engine.Direction {
	switch r {
	case 'U':
		return engine.Up
	case 'D':
		return engine.Down
	case 'L':
		return engine.Left
	default:
		return engine.Right
	}
}

func TestBuiltinLevelsAreSolvable(t *testing.T) {
	lvls, err := levels.NewLoader(levels.Builtin()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != len(builtinSolutions) {
		t.Errorf("expected %d builtin levels, got %d", len(builtinSolutions), len(lvls))
	}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			solution, ok := builtinSolutions[lvl.ID]
			if !ok {
				t.Fatalf("no solution recorded for %s", lvl.ID)
			}

			s := engine.NewSession()
			if err := s.ResetForNewLevel(lvl.ToEngine()); err != nil {
				t.Fatal(err)
			}

			won := false
			for _, step := range solution {
				if !s.Select(step.start.Row, step.start.Col) {
					t.Fatalf("no anchor at %v", step.start)
				}
				for _, r := range step.moves {
					won = s.Act(moveDir(r))
				}
			}
			if !won {
				t.Errorf("solution did not win:\n%s", s)
			}
		})
	}
}
