package importobserver

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the skip rules applied to observed import bindings.
type Config struct {
	// SkipModules is a list of dotted module prefixes. A binding whose origin
	// module equals a prefix, or lies under it, is not recorded.
	SkipModules []string `toml:"skip_modules"`
	// SkipPatterns is a list of glob patterns matched against the origin
	// module, with "." acting as the path separator (for example "tests.**").
	SkipPatterns []string `toml:"skip_patterns"`
	// SkipPrivate skips origin modules starting with an underscore.
	SkipPrivate bool `toml:"skip_private"`
}

// DefaultConfig returns the rules used when no config file is given.
func DefaultConfig() Config {
	return Config{
		SkipModules: []string{"typing", "functools", "asttokens"},
		SkipPrivate: true,
	}
}

// Validate checks that every skip pattern is well-formed.
func (c *Config) Validate() error {
	for _, pattern := range c.SkipPatterns {
		if !doublestar.ValidatePattern(modulePath(pattern)) {
			return fmt.Errorf("invalid skip pattern %q", pattern)
		}
	}
	return nil
}

// LoadConfig reads a TOML config file. Values in the file replace the
// defaults rather than extending them.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", filename, err)
	}
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshal config %q: %w", filename, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", filename, err)
	}
	return &config, nil
}
