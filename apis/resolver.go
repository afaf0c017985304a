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

// Resolver answers inheritance-aware metadata queries.
// The most-derived definition wins; key enumeration unions every level.
type Resolver interface {
	// HasMetadata reports whether target or any of its supertypes holds key.
	HasMetadata(target, key any) bool
	// GetMetadata returns the most-derived value for key.
	GetMetadata(target, key any) (value any, ok bool)
	// GetMetadataKeys returns the de-duplicated union of own keys along the
	// chain, most-derived level first.
	GetMetadataKeys(target any) []any

	// HasPropertyMetadata is HasMetadata for a property scope.
	HasPropertyMetadata(target, property, key any) bool
	// GetPropertyMetadata is GetMetadata for a property scope.
	GetPropertyMetadata(target, property, key any) (value any, ok bool)
	// GetPropertyMetadataKeys is GetMetadataKeys for a property scope.
	GetPropertyMetadataKeys(target, property any) []any
}
