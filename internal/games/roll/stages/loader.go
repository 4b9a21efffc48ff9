// Package stages provides stage loading for Roll.
// This package depends on core but core does not depend on stages.
package stages

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll/stages/formats"
)

//go:embed data/*.yaml
var builtin embed.FS

// Loader loads stages from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader creates a loader for a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Builtin returns a loader for the stage pack compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(fmt.Sprintf("stages: embedded data missing: %v", err))
	}
	return NewLoader(sub)
}

// LoadAll recursively scans and loads all stage files.
// Files that fail to parse or validate are skipped.
// Returns stages sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]core.Stage, error) {
	var stages []core.Stage

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		stage, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		stages = append(stages, stage)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking stages: %w", err)
	}

	sort.Slice(stages, func(i, j int) bool {
		return stages[i].ID < stages[j].ID
	})
	return stages, nil
}

// LoadFile loads and validates a single stage file.
// A stage without an ID takes its file name without extension.
func (l *Loader) LoadFile(p string) (core.Stage, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return core.Stage{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, p)
}

// LoadByID loads a specific stage by ID.
func (l *Loader) LoadByID(id string) (core.Stage, error) {
	stages, err := l.LoadAll()
	if err != nil {
		return core.Stage{}, err
	}
	for _, s := range stages {
		if s.ID == id {
			return s, nil
		}
	}
	return core.Stage{}, fmt.Errorf("stage not found: %s", id)
}

// ListIDs returns all stage IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	stages, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(stages))
	for i, s := range stages {
		ids[i] = s.ID
	}
	return ids, nil
}

// LoadPath loads and validates a stage file from disk.
func LoadPath(p string) (core.Stage, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return core.Stage{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, filepath.Base(p))
}

func parse(data []byte, p string) (core.Stage, error) {
	ext := strings.ToLower(path.Ext(p))
	stage, err := parseByExtension(data, ext)
	if err != nil {
		return core.Stage{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if stage.ID == "" {
		stage.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if stage.Name == "" {
		stage.Name = stage.ID
	}
	if err := stage.Validate(); err != nil {
		return core.Stage{}, fmt.Errorf("validating file %s: %w", p, err)
	}
	return stage, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (core.Stage, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return core.Stage{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
