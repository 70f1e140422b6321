package decoder

import "github.com/cbe-go/cbe/internal/options"

// DefaultMaxDepth matches encoder.DefaultMaxDepth so a Decoder accepts any
// document this package's own Encoder can produce with default options.
const DefaultMaxDepth = 32

// Config holds Decoder construction options.
type Config struct {
	maxDepth int
}

func newConfig() *Config {
	return &Config{maxDepth: DefaultMaxDepth}
}

// Option configures a Decoder at construction time.
type Option = options.Option[*Config]

// WithMaxDepth sets the maximum container nesting depth a document may
// use before decoding fails with StatusMaxContainerDepthExceeded.
func WithMaxDepth(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return StatusInvalidArgument
		}
		c.maxDepth = n

		return nil
	})
}
