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

package ident

import (
	"runtime"
	"weak"
)

// Collectable is implemented by targets that can announce their own
// collection. A registry uses it to drop the scopes of dead targets.
type Collectable interface {
	// OnCollect schedules fn to run after the referent is collected.
	// It returns false if the referent is already gone.
	OnCollect(fn func()) bool
}

// Ref is a non-owning identity handle for a heap object. Two Refs made
// from the same pointer compare equal, so a Ref can key a table without
// keeping its referent reachable.
type Ref[T any] struct {
	p weak.Pointer[T]
}

// Ensure Ref implements Collectable.
var _ Collectable = Ref[struct{}]{}

// WeakRef returns a Ref for p. p must point to heap memory.
// A nil p yields the zero Ref, which Normalize rejects.
func WeakRef[T any](p *T) Ref[T] {
	if p == nil {
		return Ref[T]{}
	}
	return Ref[T]{p: weak.Make(p)}
}

// Value returns the referent, or nil once it has been collected.
func (r Ref[T]) Value() *T {
	return r.p.Value()
}

// Alive reports whether the referent is still reachable.
func (r Ref[T]) Alive() bool {
	return r.p.Value() != nil
}

// OnCollect runs fn on the runtime's cleanup goroutine once the referent
// is unreachable.
func (r Ref[T]) OnCollect(fn func()) bool {
	if fn == nil {
		return false
	}
	p := r.p.Value()
	if p == nil {
		return false
	}
	runtime.AddCleanup(p, func(f func()) { f() }, fn)
	return true
}

func (r Ref[T]) isZero() bool {
	return r.p == weak.Pointer[T]{}
}
