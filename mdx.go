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

package mdx

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/mdx/annotate"
	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/builder"
	"dirpx.dev/mdx/config"
	"dirpx.dev/mdx/decorate"
	"dirpx.dev/mdx/hierarchy"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig(), hier: defaultHierarchy(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil)
	s.res = s.bld.BuildResolver(s.cfg, s.reg, s.hier)
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("mdx: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("mdx: builder returned nil resolver")
)

var (
	// types is the explicit class hierarchy fed by Extend.
	types = hierarchy.NewTable()
	// props is the descriptor model used by DecorateProperty.
	props = decorate.NewPropertyTable()
	// factory binds decorators to the registry current at application time.
	factory = annotate.NewWithSource(func() apis.Registry { return st.Load().reg })
)

// defaultHierarchy consults explicit registrations before struct embedding.
func defaultHierarchy() apis.Hierarchy {
	return hierarchy.Chain(types, hierarchy.Embedding())
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the registry (unless pinned) and the resolver.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.preg {
		nreg = old.bld.BuildRegistry(cfg, old.reg)
	}
	publish(&state{cfg: cfg, reg: nreg, hier: old.hier, bld: old.bld, preg: old.preg})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets and pins the global registry, then rebuilds the resolver.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: reg, hier: old.hier, bld: old.bld, preg: true})
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops the global registry from being rebuilt.
func PinRegistry() {
	setPin(true)
}

// UnpinRegistry lets the global registry be rebuilt again.
func UnpinRegistry() {
	setPin(false)
}

func setPin(pinned bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.preg = pinned
	st.Store(&next)
}

// Resolver returns the global inheritance-aware resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// Hierarchy returns the global supertype relation.
func Hierarchy() apis.Hierarchy {
	return st.Load().hier
}

// SetHierarchy replaces the global supertype relation and rebuilds the
// resolver. A nil h restores the default hierarchy. Extend keeps writing to
// the default table, which a custom h consults only if it chains Types().
func SetHierarchy(h apis.Hierarchy) {
	if h == nil {
		h = defaultHierarchy()
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: old.reg, hier: h, bld: old.bld, preg: old.preg})
}

// Types returns the explicit class hierarchy table used by default.
func Types() *hierarchy.Table {
	return types
}

// Extend declares parent as the direct supertype of child in the default table.
func Extend(child, parent any) error {
	return types.Extend(child, parent)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds non-pinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	publish(&state{cfg: old.cfg, reg: nreg, hier: old.hier, bld: b, preg: old.preg})
}

// SetAll replaces the global state in one shot.
//
// Nil cfg, h and bld leave the corresponding component unchanged. A nil
// reg builds an empty, unpinned registry without migrating entries; a
// non-nil reg is pinned. This is mainly used by tests to get a clean
// deterministic state.
func SetAll(cfg *apis.Config, reg apis.Registry, h apis.Hierarchy, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	nhier := old.hier
	if h != nil {
		nhier = h
	}
	nreg, npreg := reg, reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, nil)
	}

	publish(&state{cfg: ncfg, reg: nreg, hier: nhier, bld: nbld, preg: npreg})
}

// publish builds the resolver for s and stores s atomically.
// Callers hold buildMu for writing.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	s.res = s.bld.BuildResolver(s.cfg, s.reg, s.hier)
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
	s.cfg.Log().Debug("mdx: snapshot published", zap.Bool("registry_pinned", s.preg))
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots. Global metadata writes hold it for reading so
// a rebuild cannot migrate entries while a write lands on the old registry.
var buildMu sync.RWMutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver over reg and hier.
	res apis.Resolver
	// hier is the global supertype relation.
	hier apis.Hierarchy
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether the registry is pinned.
	preg bool
}
