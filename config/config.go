// Package config loads generation presets: everything a Session needs to
// reproduce a world from one file: RNG seed, plate parameters, elevation
// tuning, and the world rectangle.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orogenlab/orogen/geom"
)

// ErrInvalidParams indicates a parameter outside its documented range.
var ErrInvalidParams = errors.New("config: invalid parameter")

// World is the generation rectangle in world units.
type World struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Rect converts w to a geom.Rect.
func (w World) Rect() geom.Rect {
	return geom.NewRect(w.MinX, w.MinY, w.MaxX, w.MaxY)
}

// Params is one generation preset. The zero value is not usable; start
// from Default.
type Params struct {
	// Seed drives all randomness of a generation pass.
	Seed int64 `yaml:"seed"`

	// PlateCount is the number of tectonic plates.
	PlateCount int `yaml:"plate_count"`

	// OceanicRatio is the fraction of oceanic plates, in [0,1].
	OceanicRatio float64 `yaml:"oceanic_ratio"`

	// Decay is the blob-mode elevation falloff per hop, in (0,1].
	Decay float64 `yaml:"decay"`

	// Cutoff stops elevation propagation, ≥ 0.
	Cutoff float64 `yaml:"cutoff"`

	// World is the clip rectangle for regions and plate seeding.
	World World `yaml:"world"`
}

// Default returns the preset used when a field is absent from the file.
func Default() Params {
	return Params{
		Seed:         1,
		PlateCount:   12,
		OceanicRatio: 0.7,
		Decay:        0.95,
		Cutoff:       0.01,
		World:        World{MaxX: 100, MaxY: 100},
	}
}

// Load reads a YAML preset from path, overlaying Default. The result is
// validated.
func Load(path string) (Params, error) {
	p := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Validate checks every field against its documented range.
func (p Params) Validate() error {
	if p.PlateCount < 1 {
		return fmt.Errorf("%w: plate_count %d", ErrInvalidParams, p.PlateCount)
	}
	if p.OceanicRatio < 0 || p.OceanicRatio > 1 {
		return fmt.Errorf("%w: oceanic_ratio %v", ErrInvalidParams, p.OceanicRatio)
	}
	if p.Decay <= 0 || p.Decay > 1 {
		return fmt.Errorf("%w: decay %v", ErrInvalidParams, p.Decay)
	}
	if p.Cutoff < 0 {
		return fmt.Errorf("%w: cutoff %v", ErrInvalidParams, p.Cutoff)
	}
	if p.World.MaxX <= p.World.MinX || p.World.MaxY <= p.World.MinY {
		return fmt.Errorf("%w: world rectangle %+v", ErrInvalidParams, p.World)
	}
	return nil
}
