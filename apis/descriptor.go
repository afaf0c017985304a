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

import "dirpx.dev/mdx/utils/ident"

// Descriptor describes the attributes of a property.
// A descriptor is either a data descriptor (Value) or an accessor
// descriptor (Get/Set); Writable is meaningful for data descriptors only.
type Descriptor struct {
	Enumerable   bool
	Configurable bool
	Writable     bool
	Value        any
	Get          func() any
	Set          func(v any)
}

// DefaultDescriptor is used when a property has no descriptor yet.
func DefaultDescriptor() Descriptor {
	return Descriptor{Enumerable: true, Configurable: true, Writable: true}
}

// IsAccessor reports whether d carries a getter or a setter.
func (d Descriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

// Equal reports whether d and o have identical attributes.
// Values and accessors are compared by identity, not deeply.
func (d Descriptor) Equal(o Descriptor) bool {
	return d.Enumerable == o.Enumerable &&
		d.Configurable == o.Configurable &&
		d.Writable == o.Writable &&
		ident.Same(d.Value, o.Value) &&
		ident.Same(d.Get, o.Get) &&
		ident.Same(d.Set, o.Set)
}
