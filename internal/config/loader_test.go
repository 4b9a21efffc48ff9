package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRollConfigValid(t *testing.T) {
	cfg := DefaultRollConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Gesture.MoveThreshold != 0.1 || cfg.Gesture.SnapThreshold != 0.4 {
		t.Errorf("unexpected default thresholds: %+v", cfg.Gesture)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	// Run from a temp dir so ./configs is not picked up.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRoll("")
	if err != nil {
		t.Fatalf("LoadRoll() failed: %v", err)
	}
	if cfg != DefaultRollConfig() {
		t.Errorf("embedded config %+v differs from DefaultRollConfig %+v", cfg, DefaultRollConfig())
	}
}

func TestLoadRollCustomPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "roll.yaml")
	data := "gesture:\n  snap_threshold: 0.25\nstages:\n  start: \"03\"\n"
	if err := os.WriteFile(p, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRoll(p)
	if err != nil {
		t.Fatalf("LoadRoll() failed: %v", err)
	}
	if cfg.Gesture.SnapThreshold != 0.25 {
		t.Errorf("snap threshold = %v, want 0.25", cfg.Gesture.SnapThreshold)
	}
	if cfg.Gesture.MoveThreshold != 0.1 {
		t.Errorf("unset move threshold should keep default, got %v", cfg.Gesture.MoveThreshold)
	}
	if cfg.Stages.Start != "03" {
		t.Errorf("start stage = %q, want 03", cfg.Stages.Start)
	}
}

func TestLoadRollCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRoll(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gesture:\n  snap_threshold: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRoll(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadRollSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, "roll.yaml"), []byte("display:\n  padding: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRoll("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Padding != 3 {
		t.Errorf("local config not used, padding = %d", cfg.Display.Padding)
	}

	user := filepath.Join(home, ".roll", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, "roll.yaml"), []byte("display:\n  padding: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadRoll("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Padding != 5 {
		t.Errorf("user config should win over local, padding = %d", cfg.Display.Padding)
	}

	// An invalid user file falls through to the next location.
	if err := os.WriteFile(filepath.Join(user, "roll.yaml"), []byte("display:\n  tile_width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadRoll("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Padding != 3 {
		t.Errorf("invalid user config should be skipped, padding = %d", cfg.Display.Padding)
	}
}

func TestFeelPresets(t *testing.T) {
	tests := []struct {
		in      string
		want    FeelPreset
		snap    float64
		wantErr bool
	}{
		{"", FeelNormal, 0.4, false},
		{"normal", FeelNormal, 0.4, false},
		{"loose", FeelLoose, 0.3, false},
		{"strict", FeelStrict, 0.5, false},
		{"wobbly", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseFeelPreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFeelPreset(%q) error = %v", tt.in, err)
			}
			if tt.wantErr {
				return
			}
			if p != tt.want {
				t.Errorf("got %q, want %q", p, tt.want)
			}
			cfg := DefaultRollConfig()
			ApplyFeelPreset(&cfg, p)
			if cfg.Gesture.SnapThreshold != tt.snap {
				t.Errorf("snap = %v, want %v", cfg.Gesture.SnapThreshold, tt.snap)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}
