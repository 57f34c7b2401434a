package chainhash

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultShrinkThreshold is the load factor below which a table halves.
	DefaultShrinkThreshold = 0.2
	// DefaultGrowThreshold is the load factor above which a table doubles.
	DefaultGrowThreshold = 0.7
	// DefaultMinCapacity is the floor shrinking never goes below.
	DefaultMinCapacity = 1
)

// config holds the tunables a Table is built with.
type config struct {
	hasher      Hasher
	logger      log.FieldLogger
	shrinkAt    float64
	growAt      float64
	minCapacity int
}

// Option configures a Table at construction time.
type Option func(*config)

// WithHasher replaces the default DJB2 hasher.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}

// WithLogger routes resize traces and not-found warnings to l.
func WithLogger(l log.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithThresholds sets the load factor band. The table shrinks below shrink
// and grows above grow.
func WithThresholds(shrink, grow float64) Option {
	return func(c *config) {
		c.shrinkAt = shrink
		c.growAt = grow
	}
}

// WithMinCapacity sets the capacity floor for shrinking.
func WithMinCapacity(n int) Option {
	return func(c *config) {
		c.minCapacity = n
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{
		hasher:      DJB2,
		shrinkAt:    DefaultShrinkThreshold,
		growAt:      DefaultGrowThreshold,
		minCapacity: DefaultMinCapacity,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.hasher == nil {
		c.hasher = DJB2
	}
	if c.logger == nil {
		c.logger = defaultLogger()
	}
	if c.minCapacity < 1 {
		return nil, fmt.Errorf("min capacity %d: %w", c.minCapacity, ErrInvalidCapacity)
	}
	// Doubling at grow must not land below shrink, or a single key could
	// bounce the table between two capacities forever.
	if c.shrinkAt < 0 || c.growAt <= 0 || c.shrinkAt*2 >= c.growAt {
		return nil, fmt.Errorf("shrink %.2f grow %.2f: %w", c.shrinkAt, c.growAt, ErrInvalidThreshold)
	}
	return c, nil
}

func defaultLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(log.InfoLevel)
	return l
}
