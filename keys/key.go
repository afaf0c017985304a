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

package keys

import "dirpx.dev/mdx/apis"

// Key is a typed metadata key. The Key value itself is stored as the
// metadata key, so entries written through it are visible to untyped
// registry calls as well.
type Key[V any] struct {
	sym Symbol
}

// New returns a fresh typed key described by desc.
func New[V any](desc string) Key[V] {
	return Key[V]{sym: NewSymbol(desc)}
}

// String returns the description of the underlying symbol.
func (k Key[V]) String() string { return k.sym.String() }

// Define stores v in target's own scope.
func (k Key[V]) Define(reg apis.Registry, target any, v V) {
	reg.DefineMetadata(target, k, v)
}

// Has reports whether target's own scope holds k.
func (k Key[V]) Has(reg apis.Registry, target any) bool {
	return reg.HasOwnMetadata(target, k)
}

// Get returns the value of k in target's own scope.
// A stored value of another type reports false.
func (k Key[V]) Get(reg apis.Registry, target any) (V, bool) {
	v, ok := reg.GetOwnMetadata(target, k)
	return as[V](v, ok)
}

// Lookup returns the most-derived value of k along target's supertype chain.
func (k Key[V]) Lookup(res apis.Resolver, target any) (V, bool) {
	v, ok := res.GetMetadata(target, k)
	return as[V](v, ok)
}

// Delete removes k from target's own scope.
func (k Key[V]) Delete(reg apis.Registry, target any) bool {
	return reg.DeleteOwnMetadata(target, k)
}

func as[V any](v any, ok bool) (V, bool) {
	var zero V
	if !ok {
		return zero, false
	}
	if v == nil {
		// Only interface-typed keys can hold a nil value.
		return zero, any(zero) == nil
	}
	tv, ok := v.(V)
	return tv, ok
}
