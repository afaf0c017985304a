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

// Registry stores metadata for exact scopes. It never walks a supertype chain.
//
// Reads degrade to "not found", false or an empty slice when the scope was
// never populated, or when the target or key is not usable as an identity.
// Writes with unusable targets or keys are silently ignored.
type Registry interface {
	// DefineMetadata inserts or overwrites key in target's own scope.
	DefineMetadata(target, key, value any)
	// HasOwnMetadata reports whether target's own scope holds key.
	HasOwnMetadata(target, key any) bool
	// GetOwnMetadata returns the value stored for key in target's own scope.
	GetOwnMetadata(target, key any) (value any, ok bool)
	// GetOwnMetadataKeys returns target's own keys in insertion order.
	GetOwnMetadataKeys(target any) []any
	// DeleteOwnMetadata removes key from target's own scope and reports
	// whether something was removed.
	DeleteOwnMetadata(target, key any) bool

	// DefinePropertyMetadata inserts or overwrites key for target's property.
	DefinePropertyMetadata(target, property, key, value any)
	// HasOwnPropertyMetadata reports whether target's property scope holds key.
	HasOwnPropertyMetadata(target, property, key any) bool
	// GetOwnPropertyMetadata returns the value stored for key on target's property.
	GetOwnPropertyMetadata(target, property, key any) (value any, ok bool)
	// GetOwnPropertyMetadataKeys returns the property scope's keys in insertion order.
	GetOwnPropertyMetadataKeys(target, property any) []any
	// DeleteOwnPropertyMetadata removes key from target's property scope.
	DeleteOwnPropertyMetadata(target, property, key any) bool

	// DefineParameterMetadata inserts or overwrites key for target's parameter.
	DefineParameterMetadata(target any, index int, key, value any)
	// HasParameterMetadata reports whether target's parameter scope holds key.
	HasParameterMetadata(target any, index int, key any) bool
	// GetParameterMetadata returns the value stored for key on target's parameter.
	GetParameterMetadata(target any, index int, key any) (value any, ok bool)
	// GetParameterMetadataKeys returns the parameter scope's keys in insertion order.
	GetParameterMetadataKeys(target any, index int) []any
	// DeleteParameterMetadata removes key from target's parameter scope.
	DeleteParameterMetadata(target any, index int, key any) bool

	// Entries returns a snapshot for diagnostics and migration.
	// Entries of one scope keep insertion order; scope order is unspecified.
	Entries() []Entry
	// Count returns the number of stored entries.
	Count() int
	// Reset clears all tables.
	Reset()
}
