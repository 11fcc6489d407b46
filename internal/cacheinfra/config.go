// Package cacheinfra adapts the sturdyc in-memory cache into the shared
// memoization backend exposed as memo.Service. The adapter owns
// configuration translation, compute-function validation, and key-space
// maintenance; memoization policy stays in the memo package.
package cacheinfra

import (
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the settings for the sturdyc-backed service.
type Config struct {
	// Capacity is the maximum number of entries the backend stores before
	// it starts evicting. Must be greater than 0.
	Capacity int

	// NumShards splits the backend into independently locked shards for
	// concurrent access. Must be greater than 0.
	NumShards int

	// TTL is how long a memoized result stays valid. Must be greater
	// than 0; shared results always expire eventually, unlike the
	// in-process caches.
	TTL time.Duration

	// EvictionPercentage is the share of entries (1-100) evicted when the
	// backend hits capacity.
	EvictionPercentage int

	// EarlyRefresh recomputes frequently used results before they expire,
	// preventing stampedes on hot keys. Nil disables it.
	EarlyRefresh *EarlyRefreshConfig

	// EvictionInterval sets how often expired entries are scanned for.
	// Zero keeps the backend's default.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig mirrors sturdyc's early refresh options.
type EarlyRefreshConfig struct {
	// MinAsyncRefreshTime is the earliest point an async refresh can occur.
	MinAsyncRefreshTime time.Duration

	// MaxAsyncRefreshTime is the latest point an async refresh can occur.
	MaxAsyncRefreshTime time.Duration

	// SyncRefreshTime is when a refresh becomes synchronous instead of async.
	SyncRefreshTime time.Duration

	// RetryBaseDelay is the base delay between retries of a failed refresh.
	RetryBaseDelay time.Duration
}

// DefaultConfig returns a Config with defaults suited to memoizing
// moderately expensive computations.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
		EarlyRefresh: &EarlyRefreshConfig{
			MinAsyncRefreshTime: 10 * time.Second,
			MaxAsyncRefreshTime: 20 * time.Second,
			SyncRefreshTime:     30 * time.Second,
			RetryBaseDelay:      100 * time.Millisecond,
		},
	}
}

// Validate checks the configuration values, returning a ConfigError for
// the first invalid field.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if er := c.EarlyRefresh; er != nil {
		if er.MinAsyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.MinAsyncRefreshTime", Message: "must be non-negative"}
		}
		if er.MaxAsyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.MaxAsyncRefreshTime", Message: "must be non-negative"}
		}
		if er.SyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.SyncRefreshTime", Message: "must be non-negative"}
		}
		if er.RetryBaseDelay < 0 {
			return &ConfigError{Field: "EarlyRefresh.RetryBaseDelay", Message: "must be non-negative"}
		}
	}

	return nil
}

// toSturdycOptions maps the optional settings onto sturdyc options. The
// core parameters (capacity, shards, TTL, eviction percentage) are passed
// to the sturdyc constructor directly.
func (c Config) toSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EarlyRefresh != nil {
		options = append(options, sturdyc.WithEarlyRefreshes(
			c.EarlyRefresh.MinAsyncRefreshTime,
			c.EarlyRefresh.MaxAsyncRefreshTime,
			c.EarlyRefresh.SyncRefreshTime,
			c.EarlyRefresh.RetryBaseDelay,
		))
	}

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
