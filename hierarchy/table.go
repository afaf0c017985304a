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

package hierarchy

import (
	"errors"
	"sync"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/utils/ident"
)

var (
	// ErrNilTarget is returned when a child or parent is not a usable identity.
	ErrNilTarget = errors.New("mdx(hierarchy): unusable target provided")
	// ErrSelfExtend is returned when a target is declared as its own supertype.
	ErrSelfExtend = errors.New("mdx(hierarchy): target cannot extend itself")
	// ErrCycle is returned when a registration would close a supertype cycle.
	ErrCycle = errors.New("mdx(hierarchy): registration would create a cycle")
	// ErrConflictingParent indicates an attempt to re-register a child with
	// a different parent.
	ErrConflictingParent = errors.New("mdx(hierarchy): conflicting parent registration")
)

// Edge is a single (child, parent) association in a Table snapshot.
type Edge struct {
	// Child is the subtype.
	Child any
	// Parent is its direct supertype.
	Parent any
}

// NewTable constructs an empty, explicitly registered class hierarchy.
func NewTable() *Table {
	return &Table{parents: make(map[any]any)}
}

// Table is an apis.Hierarchy backed by explicit Extend registrations.
// It rejects cycles, so walks over it always terminate.
type Table struct {
	// mu guards parents.
	mu sync.RWMutex
	// parents maps normalized child to normalized parent.
	parents map[any]any
}

// Ensure Table implements apis.Hierarchy.
var _ apis.Hierarchy = (*Table)(nil)

// Extend declares parent as the direct supertype of child.
// It is idempotent for the same (child, parent) pair.
func (t *Table) Extend(child, parent any) error {
	c, ok := ident.Normalize(child)
	if !ok {
		return ErrNilTarget
	}
	p, ok := ident.Normalize(parent)
	if !ok {
		return ErrNilTarget
	}
	if c == p {
		return ErrSelfExtend
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.parents[c]; ok {
		if old == p {
			return nil // idempotent re-registration
		}
		return ErrConflictingParent
	}

	// Walking up from parent must never reach child.
	for cur, ok := p, true; ok; cur, ok = t.parents[cur] {
		if cur == c {
			return ErrCycle
		}
	}

	t.parents[c] = p
	return nil
}

// Supertype returns the registered parent of target.
func (t *Table) Supertype(target any) (any, bool) {
	c, ok := ident.Normalize(target)
	if !ok {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.parents[c]
	return p, ok
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (t *Table) Entries() []Edge {
	t.mu.RLock()
	defer t.mu.RUnlock()

	edges := make([]Edge, 0, len(t.parents))
	for c, p := range t.parents {
		edges = append(edges, Edge{Child: c, Parent: p})
	}
	return edges
}

// Count returns the number of registered edges.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.parents)
}

// Reset clears all registered edges.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.parents = make(map[any]any)
}
