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

package registry

import (
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/utils/ident"
)

// New constructs a Registry configured by cfg.
// The returned registry is safe for concurrent use.
func New(cfg apis.Config) apis.Registry {
	return &registry{
		cfg:     cfg,
		log:     cfg.Log().Named("registry"),
		objects: make(map[any]*scope),
		props:   make(map[any]map[any]*scope),
		params:  make(map[any]map[int]*scope),
		tracked: make(map[any]struct{}),
	}
}

// registry keeps three independent association tables keyed by normalized
// target identity. Empty scopes are kept after their last delete.
type registry struct {
	// cfg is the configuration the registry was built with.
	cfg apis.Config
	// log receives reclamation diagnostics.
	log *zap.Logger
	// mu guards all tables.
	mu sync.RWMutex
	// objects maps target to its own scope.
	objects map[any]*scope
	// props maps target to property key to scope.
	props map[any]map[any]*scope
	// params maps target to parameter index to scope.
	params map[any]map[int]*scope
	// tracked holds targets with a registered collection hook.
	tracked map[any]struct{}
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// DefineMetadata inserts or overwrites key in target's own scope.
func (r *registry) DefineMetadata(target, key, value any) {
	t, ok := ident.Normalize(target)
	if !ok || !ident.Usable(key) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.objects[t]
	if !ok {
		if !r.track(t) {
			return
		}
		s = newScope()
		r.objects[t] = s
	}
	s.set(key, value)
}

// HasOwnMetadata reports whether target's own scope holds key.
func (r *registry) HasOwnMetadata(target, key any) bool {
	_, ok := r.GetOwnMetadata(target, key)
	return ok
}

// GetOwnMetadata returns the value stored for key in target's own scope.
func (r *registry) GetOwnMetadata(target, key any) (any, bool) {
	t, ok := ident.Normalize(target)
	if !ok || !ident.Usable(key) {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.objects[t]; ok {
		return s.get(key)
	}
	return nil, false
}

// GetOwnMetadataKeys returns target's own keys in insertion order.
func (r *registry) GetOwnMetadataKeys(target any) []any {
	t, ok := ident.Normalize(target)
	if !ok {
		return []any{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.objects[t]; ok {
		return s.snapshot()
	}
	return []any{}
}

// DeleteOwnMetadata removes key from target's own scope.
func (r *registry) DeleteOwnMetadata(target, key any) bool {
	t, ok := ident.Normalize(target)
	if !ok || !ident.Usable(key) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.objects[t]; ok {
		return s.delete(key)
	}
	return false
}

// DefinePropertyMetadata inserts or overwrites key for target's property.
func (r *registry) DefinePropertyMetadata(target, property, key, value any) {
	t, ok := ident.Normalize(target)
	if !ok || !ident.Usable(property) || !ident.Usable(key) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byProp, ok := r.props[t]
	if !ok {
		if !r.track(t) {
			return
		}
		byProp = make(map[any]*scope)
		r.props[t] = byProp
	}
	s, ok := byProp[property]
	if !ok {
		s = newScope()
		byProp[property] = s
	}
	s.set(key, value)
}

// HasOwnPropertyMetadata reports whether target's property scope holds key.
func (r *registry) HasOwnPropertyMetadata(target, property, key any) bool {
	_, ok := r.GetOwnPropertyMetadata(target, property, key)
	return ok
}

// GetOwnPropertyMetadata returns the value stored for key on target's property.
func (r *registry) GetOwnPropertyMetadata(target, property, key any) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.propScope(target, property)
	if s == nil || !ident.Usable(key) {
		return nil, false
	}
	return s.get(key)
}

// GetOwnPropertyMetadataKeys returns the property scope's keys in insertion order.
func (r *registry) GetOwnPropertyMetadataKeys(target, property any) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s := r.propScope(target, property); s != nil {
		return s.snapshot()
	}
	return []any{}
}

// DeleteOwnPropertyMetadata removes key from target's property scope.
func (r *registry) DeleteOwnPropertyMetadata(target, property, key any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.propScope(target, property)
	if s == nil || !ident.Usable(key) {
		return false
	}
	return s.delete(key)
}

// DefineParameterMetadata inserts or overwrites key for target's parameter.
func (r *registry) DefineParameterMetadata(target any, index int, key, value any) {
	t, ok := ident.Normalize(target)
	if !ok || index < 0 || !ident.Usable(key) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byIndex, ok := r.params[t]
	if !ok {
		if !r.track(t) {
			return
		}
		byIndex = make(map[int]*scope)
		r.params[t] = byIndex
	}
	s, ok := byIndex[index]
	if !ok {
		s = newScope()
		byIndex[index] = s
	}
	s.set(key, value)
}

// HasParameterMetadata reports whether target's parameter scope holds key.
func (r *registry) HasParameterMetadata(target any, index int, key any) bool {
	_, ok := r.GetParameterMetadata(target, index, key)
	return ok
}

// GetParameterMetadata returns the value stored for key on target's parameter.
func (r *registry) GetParameterMetadata(target any, index int, key any) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.paramScope(target, index)
	if s == nil || !ident.Usable(key) {
		return nil, false
	}
	return s.get(key)
}

// GetParameterMetadataKeys returns the parameter scope's keys in insertion order.
func (r *registry) GetParameterMetadataKeys(target any, index int) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s := r.paramScope(target, index); s != nil {
		return s.snapshot()
	}
	return []any{}
}

// DeleteParameterMetadata removes key from target's parameter scope.
// Like its siblings it returns false when nothing was removed.
func (r *registry) DeleteParameterMetadata(target any, index int, key any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.paramScope(target, index)
	if s == nil || !ident.Usable(key) {
		return false
	}
	return s.delete(key)
}

// Entries returns a snapshot of every stored entry.
// Function targets are reported by their ident.Func identity.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]apis.Entry, 0, r.countLocked())
	for t, s := range r.objects {
		entries = appendScope(entries, apis.Scope{Kind: apis.KindClass, Target: t}, s)
	}
	for t, byProp := range r.props {
		for p, s := range byProp {
			entries = appendScope(entries, apis.Scope{Kind: apis.KindProperty, Target: t, Property: p}, s)
		}
	}
	for t, byIndex := range r.params {
		for i, s := range byIndex {
			entries = appendScope(entries, apis.Scope{Kind: apis.KindParameter, Target: t, Index: i}, s)
		}
	}
	return entries
}

// Count returns the number of stored entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.countLocked()
}

// Reset clears all tables.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects = make(map[any]*scope)
	r.props = make(map[any]map[any]*scope)
	r.params = make(map[any]map[int]*scope)
	r.tracked = make(map[any]struct{})
}

// propScope returns the property scope or nil. Callers hold mu.
func (r *registry) propScope(target, property any) *scope {
	t, ok := ident.Normalize(target)
	if !ok || !ident.Usable(property) {
		return nil
	}
	return r.props[t][property]
}

// paramScope returns the parameter scope or nil. Callers hold mu.
func (r *registry) paramScope(target any, index int) *scope {
	t, ok := ident.Normalize(target)
	if !ok || index < 0 {
		return nil
	}
	return r.params[t][index]
}

// countLocked sums entries across all tables. Callers hold mu.
func (r *registry) countLocked() int {
	n := 0
	for _, s := range r.objects {
		n += s.len()
	}
	for _, byProp := range r.props {
		for _, s := range byProp {
			n += s.len()
		}
	}
	for _, byIndex := range r.params {
		for _, s := range byIndex {
			n += s.len()
		}
	}
	return n
}

// track registers a collection hook for t once and reports whether t may
// be stored. A Collectable target whose referent is already gone is
// refused, since no hook could ever reclaim it. Callers hold mu for writing.
func (r *registry) track(t any) bool {
	if !r.cfg.ReclaimCollected {
		return true
	}
	if _, ok := r.tracked[t]; ok {
		return true
	}
	c, ok := t.(ident.Collectable)
	if !ok {
		return true
	}
	if !c.OnCollect(func() { r.reclaim(t) }) {
		r.log.Debug("dropped metadata write for collected target")
		return false
	}
	r.tracked[t] = struct{}{}
	return true
}

// reclaim drops every scope of a collected target.
// It runs on the runtime's cleanup goroutine.
func (r *registry) reclaim(t any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	if s, ok := r.objects[t]; ok {
		n += s.len()
		delete(r.objects, t)
	}
	for _, s := range r.props[t] {
		n += s.len()
	}
	delete(r.props, t)
	for _, s := range r.params[t] {
		n += s.len()
	}
	delete(r.params, t)
	delete(r.tracked, t)

	r.log.Debug("reclaimed metadata of collected target", zap.Int("entries", n))
}

func appendScope(entries []apis.Entry, sc apis.Scope, s *scope) []apis.Entry {
	for _, k := range s.keys {
		entries = append(entries, apis.Entry{Scope: sc, Key: k, Value: s.vals[k]})
	}
	return entries
}
