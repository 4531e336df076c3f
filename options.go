package tokenid

// DefaultVegoid is the protocol's current vegoid tuning parameter.
// It is a default, not a wire-format constant: override it per pool id
// with WithVegoid if the protocol parameter changes.
const DefaultVegoid = 4

// PoolIDOption configures pool id construction.
type PoolIDOption func(*poolIDConfig)

// poolIDConfig holds configuration for PoolIDFromAddress and
// PoolIDFromKeyHash.
type poolIDConfig struct {
	vegoid uint64
}

// defaultPoolIDConfig returns the default pool id configuration.
func defaultPoolIDConfig() *poolIDConfig {
	return &poolIDConfig{
		vegoid: DefaultVegoid,
	}
}

// WithVegoid overrides the vegoid embedded in the pool id.
// The value is reduced modulo 256 during packing; it never errors.
func WithVegoid(vegoid uint64) PoolIDOption {
	return func(c *poolIDConfig) {
		c.vegoid = vegoid
	}
}
