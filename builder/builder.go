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

package builder

import (
	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/registry"
	"dirpx.dev/mdx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration. If a previous registry is provided, its entries are copied
// into the new registry, scope by scope, in insertion order.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			Apply(nreg, e)
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver over reg and h.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry, h apis.Hierarchy) apis.Resolver {
	return resolver.New(cfg, reg, h)
}

// Apply writes e into reg according to its scope kind.
// Entries with an invalid kind are ignored.
func Apply(reg apis.Registry, e apis.Entry) {
	switch e.Scope.Kind {
	case apis.KindClass:
		reg.DefineMetadata(e.Scope.Target, e.Key, e.Value)
	case apis.KindProperty:
		reg.DefinePropertyMetadata(e.Scope.Target, e.Scope.Property, e.Key, e.Value)
	case apis.KindParameter:
		reg.DefineParameterMetadata(e.Scope.Target, e.Scope.Index, e.Key, e.Value)
	}
}
