package hexai

import "time"

// NodePoolSize is the default soft cap on arena growth per search call.
const NodePoolSize = 200_000

// Config configures a Solver, builder-style, mirroring the teacher's
// Limits/DefaultLimits pattern (pkg/mcts/limits.go).
type Config struct {
	Difficulty   Difficulty
	NodePoolSize int
	Seed         int64
}

// DefaultConfig returns a Config seeded from the wall clock, at Medium
// difficulty, with the standard node pool size.
func DefaultConfig() *Config {
	return &Config{
		Difficulty:   Medium,
		NodePoolSize: NodePoolSize,
		Seed:         time.Now().UnixNano(),
	}
}

// WithDifficulty sets the difficulty preset.
func (c *Config) WithDifficulty(d Difficulty) *Config {
	c.Difficulty = d
	return c
}

// WithNodePoolSize overrides the arena's soft cap.
func (c *Config) WithNodePoolSize(n int) *Config {
	if n > 0 {
		c.NodePoolSize = n
	}
	return c
}

// WithSeed fixes the solver's RNG seed. The RNG is seeded once, when the
// Solver is built, and keeps advancing across GetMove calls.
func (c *Config) WithSeed(seed int64) *Config {
	c.Seed = seed
	return c
}
