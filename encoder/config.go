package encoder

import (
	"github.com/cbe-go/cbe/internal/compacttime"
	"github.com/cbe-go/cbe/internal/options"
)

// DefaultMaxDepth is used when no WithMaxDepth option is given.
const DefaultMaxDepth = 32

// Config holds Encoder construction options.
type Config struct {
	maxDepth    int
	tzNameLimit int
}

func newConfig() *Config {
	return &Config{
		maxDepth:    DefaultMaxDepth,
		tzNameLimit: compacttime.TimeZoneNameMaxLen,
	}
}

// Option configures an Encoder at construction time.
type Option = options.Option[*Config]

// WithMaxDepth sets the maximum container nesting depth.
func WithMaxDepth(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return StatusInvalidArgument
		}
		c.maxDepth = n
		return nil
	})
}

// WithTimeZoneNameLimit bounds named-timezone strings accepted by
// AddTimeTZ/AddTimestampTZ.
func WithTimeZoneNameLimit(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return StatusInvalidArgument
		}
		c.tzNameLimit = n
		return nil
	})
}
