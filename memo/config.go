package memo

import "github.com/goliatone/go-memo/internal/twoprobe"

// CapacityError is returned when a bounded cache is constructed with a
// capacity that is non-positive or large enough to overflow the slot
// allocation or the occupancy bitmap arithmetic. Nothing has been allocated
// when it is returned.
type CapacityError = twoprobe.CapacityError

// Config carries construction options for a bounded cache.
type Config struct {
	// Capacity fixes the number of slots. The table never grows or shrinks;
	// once both candidate slots for a key are taken, insertion evicts. Must
	// be greater than 0. Prime or otherwise non-power-of-two capacities give
	// the two probes the most independence.
	Capacity int
}

// DefaultConfig returns a Config with a capacity suitable for typical
// memoization workloads.
func DefaultConfig() Config {
	return Config{Capacity: 1021}
}

// Validate checks the configuration values. Size-dependent overflow limits
// are enforced separately at construction, where the concrete key and
// result types are known.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &CapacityError{Field: "Capacity", Message: "must be greater than 0"}
	}

	return nil
}
