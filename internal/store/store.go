// Package store persists display presets to a JSON file
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/iiroan/resswitch/internal/preset"
)

// DefaultFileName is the preset file name inside the user's home directory.
const DefaultFileName = "resolutions.json"

var (
	// ErrLoad wraps every failure to read or decode the preset file.
	ErrLoad = errors.New("loading presets")
	// ErrSave wraps every failure to encode or write the preset file.
	ErrSave = errors.New("saving presets")
)

// Store reads and writes the preset file at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
}

type record struct {
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
	Freq   *int    `json:"freq"`
	Name   *string `json:"name"`
}

// New creates a store for path. A nil logger discards debug output.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the preset file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preset file. A missing file yields no presets and no error.
func (s *Store) Load() ([]preset.Preset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("preset file not found", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrLoad, s.path, err)
	}

	presets, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrLoad, s.path, err)
	}

	s.logger.Debug("loaded presets", "path", s.path, "count", len(presets))
	return presets, nil
}

// Save overwrites the preset file with the full sequence.
func (s *Store) Save(presets []preset.Preset) error {
	data, err := encode(presets)
	if err != nil {
		return fmt.Errorf("%w: marshaling: %w", ErrSave, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating directory: %w", ErrSave, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrSave, s.path, err)
	}

	s.logger.Debug("saved presets", "path", s.path, "count", len(presets))
	return nil
}

func decode(data []byte) ([]preset.Preset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after preset list")
	}

	presets := make([]preset.Preset, 0, len(records))
	for i, r := range records {
		if r.Width == nil || r.Height == nil || r.Freq == nil || r.Name == nil {
			return nil, fmt.Errorf("entry %d: missing field", i+1)
		}
		p, err := preset.New(*r.Width, *r.Height, *r.Freq)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if *r.Name != p.Name() {
			return nil, fmt.Errorf("entry %d: name %q does not match %q", i+1, *r.Name, p.Name())
		}
		presets = append(presets, p)
	}
	return presets, nil
}

func encode(presets []preset.Preset) ([]byte, error) {
	records := make([]record, len(presets))
	for i, p := range presets {
		width, height, freq, name := p.Width, p.Height, p.RefreshRate, p.Name()
		records[i] = record{Width: &width, Height: &height, Freq: &freq, Name: &name}
	}
	return json.MarshalIndent(records, "", "    ")
}
