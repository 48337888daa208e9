package numgeom

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Names of the tolerance presets, as used by [TolerancePreset] and in
// configuration files.
const (
	PresetStandard      = "standard"
	PresetHighPrecision = "high_precision"
	PresetLowPrecision  = "low_precision"
)

// TolerancePreset returns the preset with the given name. The empty name
// selects [PresetStandard].
func TolerancePreset(name string) (Tolerance, bool) {
	switch name {
	case "", PresetStandard:
		return StandardTolerance(), true
	case PresetHighPrecision:
		return HighPrecisionTolerance(), true
	case PresetLowPrecision:
		return LowPrecisionTolerance(), true
	default:
		return Tolerance{}, false
	}
}

// Config collects the settings of the solvers in one document. It can be
// loaded from YAML with [LoadConfig]:
//
//	tolerance:
//	  preset: low_precision
//	  scale: 1000
//	  linear: 0.5
//	newton:
//	  max_iterations: 50
//	intersection:
//	  grid_size: 40
//	  screen_factor: 10
//	  workers: -1
type Config struct {
	Tolerance    ToleranceConfig     `yaml:"tolerance"`
	Newton       NewtonConfig        `yaml:"newton"`
	Intersection IntersectionOptions `yaml:"intersection"`
}

// ToleranceConfig selects a preset, optionally scales it, and then overrides
// individual fields. Overrides are applied after scaling.
type ToleranceConfig struct {
	Preset string  `yaml:"preset"`
	Scale  float64 `yaml:"scale"`

	Linear     *float64 `yaml:"linear"`
	Angular    *float64 `yaml:"angular"`
	Parametric *float64 `yaml:"parametric"`
	Curvature  *float64 `yaml:"curvature"`
	Area       *float64 `yaml:"area"`
	Volume     *float64 `yaml:"volume"`
}

type NewtonConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// DefaultConfig returns the configuration that matches the package defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance: ToleranceConfig{Preset: PresetStandard, Scale: 1},
		Newton:    NewtonConfig{MaxIterations: DefaultMaxIterations},
		Intersection: IntersectionOptions{
			GridSize:     DefaultGridSize,
			ScreenFactor: DefaultScreenFactor,
			Step:         DefaultDifferenceStep,
			Workers:      1,
		},
	}
}

// LoadConfig reads a YAML configuration from r. Settings missing from the
// document keep their values from [DefaultConfig]; an empty document yields
// the default configuration.
//
// Unknown keys, unknown presets and out-of-range values are rejected with an
// error wrapping [ErrInvalidConfig].
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg for invalid values. The returned error wraps
// [ErrInvalidConfig].
func (cfg Config) Validate() error {
	if _, err := cfg.Tolerance.Tolerance(); err != nil {
		return err
	}
	invalid := func(key string, v any) error {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, key, v)
	}
	if cfg.Newton.MaxIterations < 0 {
		return invalid("newton.max_iterations", cfg.Newton.MaxIterations)
	}
	o := cfg.Intersection
	switch {
	case o.GridSize < 0:
		return invalid("intersection.grid_size", o.GridSize)
	case o.ScreenFactor < 0:
		return invalid("intersection.screen_factor", o.ScreenFactor)
	case o.Step < 0:
		return invalid("intersection.step", o.Step)
	case o.MaxIterations < 0:
		return invalid("intersection.max_iterations", o.MaxIterations)
	}
	return nil
}

// Tolerance resolves the configured tolerances.
func (tc ToleranceConfig) Tolerance() (Tolerance, error) {
	tol, ok := TolerancePreset(tc.Preset)
	if !ok {
		return Tolerance{}, fmt.Errorf("%w: unknown tolerance preset %q", ErrInvalidConfig, tc.Preset)
	}
	if tc.Scale != 0 {
		if !(tc.Scale > 0) {
			return Tolerance{}, fmt.Errorf("%w: tolerance scale must be positive, got %g", ErrInvalidConfig, tc.Scale)
		}
		tol = tol.Scaled(tc.Scale)
	}
	overrides := [...]struct {
		src *float64
		dst *float64
	}{
		{tc.Linear, &tol.Linear},
		{tc.Angular, &tol.Angular},
		{tc.Parametric, &tol.Parametric},
		{tc.Curvature, &tol.Curvature},
		{tc.Area, &tol.Area},
		{tc.Volume, &tol.Volume},
	}
	for _, o := range overrides {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	if err := tol.Validate(); err != nil {
		return Tolerance{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return tol, nil
}

// NewtonSolver returns a solver configured by cfg.
func (cfg Config) NewtonSolver() (NewtonSolver, error) {
	tol, err := cfg.Tolerance.Tolerance()
	if err != nil {
		return NewtonSolver{}, err
	}
	return NewtonSolver{Tolerance: tol, MaxIterations: cfg.Newton.MaxIterations}, nil
}

// IntersectionOptions returns the options for [FindIntersections]. Unless
// the intersection section sets its own iteration cap, the Newton section's
// applies.
func (cfg Config) IntersectionOptions() *IntersectionOptions {
	o := cfg.Intersection
	if o.MaxIterations == 0 {
		o.MaxIterations = cfg.Newton.MaxIterations
	}
	return &o
}
