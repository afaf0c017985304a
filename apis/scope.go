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

// Kind selects which association table a Scope addresses.
type Kind uint8

const (
	// KindInvalid is the zero Kind. Scopes of this kind address nothing.
	KindInvalid Kind = iota
	// KindClass addresses the object-level table: target → (key → value).
	KindClass
	// KindProperty addresses the property-level table:
	// target → (property → (key → value)).
	KindProperty
	// KindParameter addresses the parameter-level table:
	// target → (index → (key → value)).
	KindParameter
)

// String returns a lowercase name for k.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindProperty:
		return "property"
	case KindParameter:
		return "parameter"
	default:
		return "invalid"
	}
}

// Scope is a target with an optional property key or parameter index.
// Property is meaningful only for KindProperty, Index only for KindParameter.
type Scope struct {
	Kind     Kind
	Target   any
	Property any
	Index    int
}

// Entry is a single metadata association in a Registry snapshot.
type Entry struct {
	// Scope is where the entry is attached.
	Scope Scope
	// Key is the metadata key.
	Key any
	// Value is the stored value.
	Value any
}
