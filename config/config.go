/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"go.uber.org/zap"

	"dirpx.dev/mdx/apis"
)

const (
	// DefaultReclaimCollected represents the default for ReclaimCollected.
	// When true, scopes of collected Collectable targets are dropped.
	DefaultReclaimCollected = true
	// DefaultMaxDepth represents the default for MaxDepth.
	// Zero leaves inheritance lookups unbounded.
	DefaultMaxDepth = 0
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxDepth is valid.
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		ReclaimCollected: DefaultReclaimCollected,
		MaxDepth:         DefaultMaxDepth,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithReclaimCollected sets the ReclaimCollected option.
func WithReclaimCollected(reclaim bool) Option {
	return func(c *apis.Config) {
		c.ReclaimCollected = reclaim
	}
}

// WithMaxDepth sets the MaxDepth option.
// A negative value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
