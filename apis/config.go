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

package apis

import "go.uber.org/zap"

// Config carries read-only registry knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// ReclaimCollected controls whether the registry drops every scope of a
	// Collectable target once the garbage collector reclaims it.
	ReclaimCollected bool

	// MaxDepth limits how many levels an inheritance lookup walks.
	// Zero means unbounded; the supertype relation is assumed acyclic.
	MaxDepth int

	// Logger receives debug diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Log returns the configured logger or a no-op logger.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
