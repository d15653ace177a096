package bench

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// LogConfig controls the optional rotating log file for long runs.
// Sizes are megabytes, age is days.
type LogConfig struct {
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
}

// Config holds the benchmark parameters.
type Config struct {
	Sizes          []int     `toml:"sizes"`
	KeyLength      int       `toml:"key_length"`
	Seed           int64     `toml:"seed"`
	CapacityFactor int       `toml:"capacity_factor"`
	Log            LogConfig `toml:"log"`
}

// DefaultConfig mirrors the classic comparison run: three batch sizes,
// five-letter keys, tables twice the batch size.
func DefaultConfig() Config {
	return Config{
		Sizes:          []int{100, 1000, 10000},
		KeyLength:      5,
		Seed:           1,
		CapacityFactor: 2,
		Log: LogConfig{
			MaxSize:    64,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults, so a partial
// file only overrides what it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every fault in the config, not just the first.
func (c Config) Validate() error {
	var err error
	if len(c.Sizes) == 0 {
		err = multierr.Append(err, fmt.Errorf("sizes: at least one test size is required"))
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			err = multierr.Append(err, fmt.Errorf("sizes: %d is not a positive test size", size))
		}
	}
	if c.KeyLength <= 0 {
		err = multierr.Append(err, fmt.Errorf("key_length: must be positive, got %d", c.KeyLength))
	}
	if c.CapacityFactor < 1 {
		err = multierr.Append(err, fmt.Errorf("capacity_factor: must be at least 1, got %d", c.CapacityFactor))
	}
	return err
}
