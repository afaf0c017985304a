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

import "dirpx.dev/mdx/apis"

// Chain constructs an apis.Hierarchy that asks the given hierarchies in
// order; the first one that knows a supertype wins. Nil entries are ignored.
func Chain(hs ...apis.Hierarchy) apis.Hierarchy {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Hierarchy, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}
	return chain{hs: out}
}

// None returns an apis.Hierarchy in which no target has a supertype.
func None() apis.Hierarchy {
	return chain{}
}

// chain is an immutable, order-preserving hierarchy over providers.
type chain struct {
	hs []apis.Hierarchy
}

// Supertype returns the first supertype reported by a provider.
func (c chain) Supertype(target any) (any, bool) {
	for _, h := range c.hs {
		if super, ok := h.Supertype(target); ok {
			return super, true
		}
	}
	return nil, false
}
