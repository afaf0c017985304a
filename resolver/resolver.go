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

package resolver

import (
	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/hierarchy"
)

// New constructs an apis.Resolver that walks h over reg.
// A nil h means no target has a supertype. The returned resolver is safe
// for concurrent use provided reg and h are.
func New(cfg apis.Config, reg apis.Registry, h apis.Hierarchy) apis.Resolver {
	if h == nil {
		h = hierarchy.None()
	}
	return chain{reg: reg, h: h, maxDepth: cfg.MaxDepth}
}

// chain is an immutable resolver over a registry and a supertype relation.
type chain struct {
	reg      apis.Registry
	h        apis.Hierarchy
	maxDepth int
}

// walk calls visit for target and each supertype, most-derived first,
// until visit returns false or the chain ends.
func (r chain) walk(target any, visit func(level any) bool) {
	for depth, cur, ok := 0, target, true; ok; cur, ok = r.h.Supertype(cur) {
		if r.maxDepth > 0 && depth >= r.maxDepth {
			return
		}
		if !visit(cur) {
			return
		}
		depth++
	}
}

// HasMetadata reports whether any level of the chain holds key.
func (r chain) HasMetadata(target, key any) bool {
	_, ok := r.GetMetadata(target, key)
	return ok
}

// GetMetadata returns the value at the first level that holds key.
func (r chain) GetMetadata(target, key any) (value any, found bool) {
	r.walk(target, func(level any) bool {
		if r.reg.HasOwnMetadata(level, key) {
			value, found = r.reg.GetOwnMetadata(level, key)
			return false
		}
		return true
	})
	return value, found
}

// GetMetadataKeys unions own keys of every level in first-seen order.
func (r chain) GetMetadataKeys(target any) []any {
	var u union
	r.walk(target, func(level any) bool {
		u.add(r.reg.GetOwnMetadataKeys(level))
		return true
	})
	return u.keys()
}

// HasPropertyMetadata reports whether any level holds key for property.
func (r chain) HasPropertyMetadata(target, property, key any) bool {
	_, ok := r.GetPropertyMetadata(target, property, key)
	return ok
}

// GetPropertyMetadata returns the property value at the first level that holds key.
func (r chain) GetPropertyMetadata(target, property, key any) (value any, found bool) {
	r.walk(target, func(level any) bool {
		if r.reg.HasOwnPropertyMetadata(level, property, key) {
			value, found = r.reg.GetOwnPropertyMetadata(level, property, key)
			return false
		}
		return true
	})
	return value, found
}

// GetPropertyMetadataKeys unions own property keys of every level in first-seen order.
func (r chain) GetPropertyMetadataKeys(target, property any) []any {
	var u union
	r.walk(target, func(level any) bool {
		u.add(r.reg.GetOwnPropertyMetadataKeys(level, property))
		return true
	})
	return u.keys()
}

// union accumulates keys once each, preserving first-seen order.
type union struct {
	seen  map[any]struct{}
	order []any
}

func (u *union) add(keys []any) {
	if u.seen == nil {
		u.seen = make(map[any]struct{})
	}
	for _, k := range keys {
		if _, dup := u.seen[k]; dup {
			continue
		}
		u.seen[k] = struct{}{}
		u.order = append(u.order, k)
	}
}

func (u *union) keys() []any {
	if u.order == nil {
		return []any{}
	}
	return u.order
}
