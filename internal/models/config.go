package models

import (
	"errors"
	"fmt"
	"math"
)

// SimTime is the default simulated duration of a run
const SimTime = 10000000000.0

// ErrInvalidConfig is returned when a scenario config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// ScenarioConfig names one run: a label, a strategy name and a duration.
// A nil Duration inherits Config.Duration; an explicit 0 is a zero-length run.
type ScenarioConfig struct {
	Name     string   `json:"name" yaml:"name"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Duration *float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Config is the on-disk scenario list
type Config struct {
	// Duration applies to scenarios without their own; nil means SimTime
	Duration  *float64         `json:"duration,omitempty" yaml:"duration,omitempty"`
	Scenarios []ScenarioConfig `json:"scenarios" yaml:"scenarios"`
}

// DurationOf returns a pointer to d, for filling in optional durations
func DurationOf(d float64) *float64 {
	return &d
}

// RunDuration is the scenario duration, or 0 when it was never set
func (sc ScenarioConfig) RunDuration() float64 {
	if sc.Duration == nil {
		return 0
	}
	return *sc.Duration
}

// DefaultDuration is the duration given to scenarios that do not set one
func (c *Config) DefaultDuration() float64 {
	if c.Duration == nil {
		return SimTime
	}
	return *c.Duration
}

// CatalogConfig is the on-disk catalog format
type CatalogConfig struct {
	Growth float64 `json:"growth,omitempty" yaml:"growth,omitempty"`
	Items  []Item  `json:"items" yaml:"items"`
}

// ToCatalog converts a catalog file into a Catalog (growth defaults to 1.15)
func (cc *CatalogConfig) ToCatalog() *Catalog {
	growth := cc.Growth
	if growth == 0 {
		growth = DefaultGrowthFactor
	}
	return NewCatalog(cc.Items, growth)
}

// DefaultConfig returns the four reference runs over SimTime
func DefaultConfig() *Config {
	return &Config{
		Duration: DurationOf(SimTime),
		Scenarios: []ScenarioConfig{
			{Name: "Cursor", Strategy: "cursor"},
			{Name: "Cheap", Strategy: "cheap"},
			{Name: "Expensive", Strategy: "expensive"},
			{Name: "Best", Strategy: "best"},
		},
	}
}

// Resolved returns the scenarios with the config-level duration filled in
func (c *Config) Resolved() []ScenarioConfig {
	out := make([]ScenarioConfig, len(c.Scenarios))
	for i, sc := range c.Scenarios {
		if sc.Duration == nil {
			sc.Duration = DurationOf(c.DefaultDuration())
		} else {
			sc.Duration = DurationOf(*sc.Duration)
		}
		if sc.Name == "" {
			sc.Name = sc.Strategy
		}
		out[i] = sc
	}
	return out
}

// ValidateConfig checks that every scenario names a strategy and has a usable duration
func ValidateConfig(c *Config) error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidConfig)
	}
	for i, sc := range c.Resolved() {
		if sc.Strategy == "" {
			return fmt.Errorf("%w: scenario %d has no strategy", ErrInvalidConfig, i)
		}
		if d := sc.RunDuration(); d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: scenario %q: duration must be finite and non-negative, got %g",
				ErrInvalidConfig, sc.Name, d)
		}
	}
	return nil
}
