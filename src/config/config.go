package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"wraplife/src/simulation"
	"wraplife/src/universe"
)

//ErrInvalidConfig is returned by Validate and Load for the config with unusable values
var ErrInvalidConfig = errors.New("config: invalid configuration")

//Config is the file form of the universe and runner options
type Config struct {
	Width           uint32        `yaml:"width"`
	Height          uint32        `yaml:"height"`
	Storage         string        `yaml:"storage"`
	Seeding         string        `yaml:"seeding"`
	Seed            int64         `yaml:"seed"`
	Interval        time.Duration `yaml:"interval"`
	MaxSteps        int           `yaml:"max_steps"`
	MaxSkippedTicks int           `yaml:"max_skipped_ticks"`
	HistorySize     int           `yaml:"history_size"`
	Stamps          StampList     `yaml:"stamps,omitempty"`
}

//StampList is nil for the default stamps, the empty list places no stamps
type StampList []StampConfig

//IsZero keeps the empty non-nil list in the saved file as "stamps: []"
func (l StampList) IsZero() bool {
	return l == nil
}

//StampConfig places the named library pattern at x, y
type StampConfig struct {
	Pattern string `yaml:"pattern"`
	X       uint32 `yaml:"x"`
	Y       uint32 `yaml:"y"`
}

//Default returns the configuration matching the engines' defaults
//Stamps is nil here, which means the default stamps of the universe
func Default() *Config {
	return &Config{
		Width:           universe.DefWidth,
		Height:          universe.DefHeight,
		Storage:         string(universe.DefStorage),
		Seeding:         string(universe.DefSeeding),
		Interval:        simulation.DefSimulationInterval,
		MaxSteps:        simulation.DefMaxSteps,
		MaxSkippedTicks: simulation.DefMaxSkippedTicks,
		HistorySize:     simulation.DefHistorySize,
	}
}

//Load reads the yaml file at path on top of Default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

//Parse decodes the yaml document on top of Default and validates it
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//Save writes cfg to path as yaml
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

//Validate checks the values which can't be used by the engines
func (c *Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("%w: dimension %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !knownStorage(c.Storage) {
		return fmt.Errorf("%w: storage %q", ErrInvalidConfig, c.Storage)
	}
	if c.Seeding != string(universe.SeedRandom) && c.Seeding != string(universe.SeedDead) {
		return fmt.Errorf("%w: seeding %q", ErrInvalidConfig, c.Seeding)
	}
	if c.Interval < 0 || c.MaxSteps < 0 || c.MaxSkippedTicks < 0 {
		return fmt.Errorf("%w: negative interval or limits", ErrInvalidConfig)
	}
	for _, s := range c.Stamps {
		if _, err := universe.PatternByName(s.Pattern); err != nil {
			return fmt.Errorf("%w: stamp at %d,%d: %v", ErrInvalidConfig, s.X, s.Y, err)
		}
		if s.X >= c.Width || s.Y >= c.Height {
			return fmt.Errorf("%w: stamp %s at %d,%d is outside the %dx%d field", ErrInvalidConfig, s.Pattern, s.X, s.Y, c.Width, c.Height)
		}
	}
	return nil
}

//UniverseOptions converts the config to the universe construction options
func (c *Config) UniverseOptions() *universe.Options {
	o := &universe.Options{
		Width:   c.Width,
		Height:  c.Height,
		Storage: universe.StorageKind(c.Storage),
		Seeding: universe.Seeding(c.Seeding),
		Seed:    c.Seed,
	}
	if c.Stamps != nil {
		o.Stamps = make([]universe.Stamp, 0, len(c.Stamps))
		for _, s := range c.Stamps {
			o.Stamps = append(o.Stamps, universe.Stamp{Pattern: s.Pattern, X: s.X, Y: s.Y})
		}
	}
	return o
}

//RunnerOptions converts the config to the runner options
func (c *Config) RunnerOptions() *simulation.Options {
	return &simulation.Options{
		Interval:        c.Interval,
		MaxSteps:        c.MaxSteps,
		MaxSkippedTicks: c.MaxSkippedTicks,
		HistorySize:     c.HistorySize,
	}
}

func knownStorage(s string) bool {
	for _, k := range universe.StorageKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}
