// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// config collects the values configurable through Option when building a
// Store, the generalization of the teacher's configs struct (config.go).
type config struct {
	nodeCapacity  int
	cacheCapacity int
	retainCache   bool
	logger        *logrus.Logger
}

func defaultConfig() *config {
	return &config{
		nodeCapacity: 256,
		logger:       newSilentLogger(),
	}
}

// Option configures a Store created with NewStore.
type Option func(*config)

// WithNodeCapacity preallocates space for the given number of nodes in the
// Store's arena and unique table. The arena grows past this capacity as
// needed; this is purely a sizing hint, the generalization of the teacher's
// Nodesize option.
func WithNodeCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.nodeCapacity = n
		}
	}
}

// WithCacheCapacity hints at the initial size of Apply's memoization cache,
// whether it is a fresh per-call cache or, once WithRetainedCache is set,
// the cache retained across calls.
func WithCacheCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cacheCapacity = n
		}
	}
}

// WithRetainedCache enables Store.RetainCache(true) at construction time,
// promoting Apply's memo table from per-call to per-store.
func WithRetainedCache() Option {
	return func(c *config) {
		c.retainCache = true
	}
}

// WithLogger attaches a logrus.Logger the Store will use for Debug/Trace
// tracing of the unique table, Apply's cache, Build and Reduce. The core
// performs no logging by default (§7); pass a logger to opt in.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
