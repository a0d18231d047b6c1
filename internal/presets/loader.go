// Package presets loads the instruction text and the preset draw inputs
// shown beside the controls.
package presets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/validation"
)

var (
	// ErrPresetNotFound is returned by Get for an unknown name
	ErrPresetNotFound = errors.New("preset not found")

	// ErrDuplicatePreset is returned when two presets share a name
	ErrDuplicatePreset = errors.New("duplicate preset name")
)

// Loader reads and caches the presets file
type Loader struct {
	path       string
	schemaPath string
	validator  validation.SchemaValidator

	cacheMu sync.RWMutex
	catalog Catalog
	byName  map[string]Preset
	loaded  bool
}

// NewLoader creates a loader for the YAML file at path. When schemaPath is
// empty the document is not schema-checked.
func NewLoader(path, schemaPath string, validator validation.SchemaValidator) *Loader {
	if validator == nil {
		validator = validation.NewSchemaValidator()
	}
	return &Loader{
		path:       path,
		schemaPath: schemaPath,
		validator:  validator,
		byName:     make(map[string]Preset),
	}
}

// Load reads the presets file. On error the previously loaded catalog is kept.
func (l *Loader) Load() error {
	catalog, byName, err := l.read()
	if err != nil {
		return err
	}

	l.cacheMu.Lock()
	l.catalog = catalog
	l.byName = byName
	l.loaded = true
	l.cacheMu.Unlock()

	slog.Info(LogMsgPresetsLoaded, "path", l.path, "presets", len(catalog.Presets))
	return nil
}

// Reload re-reads the presets file. It is Load under the name the admin route uses.
func (l *Loader) Reload() error {
	return l.Load()
}

func (l *Loader) read() (Catalog, map[string]Preset, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return Catalog{}, nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	if l.schemaPath != "" {
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Catalog{}, nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if err := l.validator.ValidateValue(doc, l.schemaPath); err != nil {
			return Catalog{}, nil, fmt.Errorf("presets file %s: %w", l.path, err)
		}
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	byName := make(map[string]Preset, len(catalog.Presets))
	for _, p := range catalog.Presets {
		if _, exists := byName[p.Name]; exists {
			return Catalog{}, nil, fmt.Errorf("%w: %s", ErrDuplicatePreset, p.Name)
		}
		if err := raffle.Validate(p.Input()); err != nil {
			return Catalog{}, nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		byName[p.Name] = p
	}

	return catalog, byName, nil
}

func (l *Loader) ensureLoaded() {
	l.cacheMu.RLock()
	loaded := l.loaded
	l.cacheMu.RUnlock()

	// Lazy load if not already loaded
	if !loaded {
		if err := l.Load(); err != nil {
			slog.Warn(LogMsgPresetsLoadFailed, "path", l.path, "error", err)
		}
	}
}

// Get returns a preset by name
func (l *Loader) Get(name string) (Preset, error) {
	l.ensureLoaded()

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	p, ok := l.byName[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return p, nil
}

// All returns the presets in file order
func (l *Loader) All() []Preset {
	l.ensureLoaded()

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()
	return slices.Clone(l.catalog.Presets)
}

// Instructions returns the instruction paragraphs
func (l *Loader) Instructions() []string {
	l.ensureLoaded()

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()
	return slices.Clone(l.catalog.Instructions)
}
