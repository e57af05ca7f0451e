// Package config loads the settings of the curb tools from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"honnef.co/go/curb"
)

// Config holds the settings of the reducer and the projector. Fields left out
// of the file keep their defaults, which the Get* methods supply.
type Config struct {
	// Reducer settings
	Precision   *int              `yaml:"precision,omitempty"`
	SeedLength  *float64          `yaml:"seed_length,omitempty"`
	DefaultType *curb.SegmentType `yaml:"default_type,omitempty"`

	// Projection settings
	EarthRadius *float64 `yaml:"earth_radius_m,omitempty"`
	Epsilon     *float64 `yaml:"epsilon_m,omitempty"`
}

const maxFileSize = 1 << 20

// Load reads a Config from a YAML file and validates it.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	switch ext := filepath.Ext(cleanPath); ext {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a Config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > 6) {
		return fmt.Errorf("precision must be between 0 and 6, got %d", *c.Precision)
	}
	if c.SeedLength != nil && !(*c.SeedLength > 0) {
		return fmt.Errorf("seed_length must be positive, got %g", *c.SeedLength)
	}
	if c.DefaultType != nil && !c.DefaultType.Valid() {
		return fmt.Errorf("default_type %s is not a segment type", c.DefaultType)
	}
	if c.EarthRadius != nil && !(*c.EarthRadius > 0) {
		return fmt.Errorf("earth_radius_m must be positive, got %g", *c.EarthRadius)
	}
	if c.Epsilon != nil && *c.Epsilon < 0 {
		return fmt.Errorf("epsilon_m must be non-negative, got %g", *c.Epsilon)
	}
	return nil
}

// GetPrecision returns the precision value or the default.
func (c *Config) GetPrecision() int {
	if c.Precision == nil {
		return curb.DefaultPrecision
	}
	return *c.Precision
}

// GetSeedLength returns the seed_length value or the default.
func (c *Config) GetSeedLength() float64 {
	if c.SeedLength == nil {
		return curb.DefaultSeedLength
	}
	return *c.SeedLength
}

// GetDefaultType returns the default_type value or the default.
func (c *Config) GetDefaultType() curb.SegmentType {
	if c.DefaultType == nil {
		return curb.DefaultConfig.DefaultType
	}
	return *c.DefaultType
}

// GetEarthRadius returns the earth_radius_m value or the default.
func (c *Config) GetEarthRadius() float64 {
	if c.EarthRadius == nil {
		return curb.MeanEarthRadius
	}
	return *c.EarthRadius
}

// GetEpsilon returns the epsilon_m value or the default.
func (c *Config) GetEpsilon() float64 {
	if c.Epsilon == nil {
		return curb.DefaultEpsilon
	}
	return *c.Epsilon
}

// Reducer returns the reducer configuration.
func (c *Config) Reducer() curb.Config {
	return curb.Config{
		Precision:   c.GetPrecision(),
		SeedLength:  c.GetSeedLength(),
		DefaultType: c.GetDefaultType(),
	}
}

// Projector returns a projector reporting failures to logger.
func (c *Config) Projector(logger curb.Logger) curb.Projector {
	return curb.Projector{
		Sphere: curb.Sphere{
			Radius:  c.GetEarthRadius(),
			Epsilon: c.GetEpsilon(),
		},
		Logger: logger,
	}
}
