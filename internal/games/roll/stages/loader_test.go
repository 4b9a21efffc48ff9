package stages

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
)

func TestBuiltinStages(t *testing.T) {
	all, err := Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(all) < 5 {
		t.Fatalf("expected at least 5 builtin stages, got %d", len(all))
	}

	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("stages not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}

	cfg := &core.GestureConfig{MoveThreshold: 0.1, SnapThreshold: 0.4}
	for _, s := range all {
		b, err := core.NewBoard(cfg, core.UnitLayout(), nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := b.LoadStage(s); err != nil {
			t.Errorf("stage %s does not load: %v", s.ID, err)
		}
		if b.Solved() {
			t.Errorf("stage %s starts solved", s.ID)
		}
	}
}

func TestLoaderByID(t *testing.T) {
	s, err := Builtin().LoadByID("02")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}
	if s.Name != "Around the Wall" {
		t.Errorf("got name %q", s.Name)
	}

	if _, err := Builtin().LoadByID("nope"); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestDirLoaderSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	write("good.yaml", "size: {w: 2, h: 2}\ntiles:\n  - {x: 0, y: 0, movable: true}\n")
	write("bad.yaml", "size: {w: 4, h: 4}\ntiles:\n  - {x: 4, y: 1}\n")
	write("notes.txt", "not a stage")
	if err := os.MkdirAll(filepath.Join(dir, "pack"), 0o755); err != nil {
		t.Fatal(err)
	}
	write("pack/nested.yml", "id: zz\nsize: {w: 1, h: 1}\n")

	ids, err := NewDirLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "good" || ids[1] != "zz" {
		t.Errorf("ids = %v, want [good zz]", ids)
	}
}

func TestLoadPathInvalidStage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.yaml")
	body := "size: {w: 4, h: 4}\ntiles:\n  - {id: t, x: 4, y: 1, movable: true}\n"
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadPath(p)
	if !errors.Is(err, core.ErrInvalidStage) {
		t.Errorf("LoadPath() error = %v, want ErrInvalidStage", err)
	}
}
