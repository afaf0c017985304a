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

package mdx

import (
	"dirpx.dev/mdx/annotate"
	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/decorate"
)

// DefineMetadata defines key=value in target's own scope of the global registry.
func DefineMetadata(target, key, value any) {
	buildMu.RLock()
	defer buildMu.RUnlock()
	st.Load().reg.DefineMetadata(target, key, value)
}

// HasOwnMetadata reports whether target's own scope holds key.
func HasOwnMetadata(target, key any) bool {
	return st.Load().reg.HasOwnMetadata(target, key)
}

// GetOwnMetadata returns key from target's own scope.
func GetOwnMetadata(target, key any) (any, bool) {
	return st.Load().reg.GetOwnMetadata(target, key)
}

// GetOwnMetadataKeys returns target's own keys in insertion order.
func GetOwnMetadataKeys(target any) []any {
	return st.Load().reg.GetOwnMetadataKeys(target)
}

// DeleteOwnMetadata removes key from target's own scope.
func DeleteOwnMetadata(target, key any) bool {
	buildMu.RLock()
	defer buildMu.RUnlock()
	return st.Load().reg.DeleteOwnMetadata(target, key)
}

// HasMetadata reports whether target or a supertype holds key.
func HasMetadata(target, key any) bool {
	return st.Load().res.HasMetadata(target, key)
}

// GetMetadata returns the most-derived value of key.
func GetMetadata(target, key any) (any, bool) {
	return st.Load().res.GetMetadata(target, key)
}

// GetMetadataKeys returns the keys of target and its supertypes.
func GetMetadataKeys(target any) []any {
	return st.Load().res.GetMetadataKeys(target)
}

// DefinePropertyMetadata defines key=value for target's property.
func DefinePropertyMetadata(target, property, key, value any) {
	buildMu.RLock()
	defer buildMu.RUnlock()
	st.Load().reg.DefinePropertyMetadata(target, property, key, value)
}

// HasOwnPropertyMetadata reports whether target's property scope holds key.
func HasOwnPropertyMetadata(target, property, key any) bool {
	return st.Load().reg.HasOwnPropertyMetadata(target, property, key)
}

// GetOwnPropertyMetadata returns key from target's property scope.
func GetOwnPropertyMetadata(target, property, key any) (any, bool) {
	return st.Load().reg.GetOwnPropertyMetadata(target, property, key)
}

// GetOwnPropertyMetadataKeys returns the property scope's keys.
func GetOwnPropertyMetadataKeys(target, property any) []any {
	return st.Load().reg.GetOwnPropertyMetadataKeys(target, property)
}

// DeleteOwnPropertyMetadata removes key from target's property scope.
func DeleteOwnPropertyMetadata(target, property, key any) bool {
	buildMu.RLock()
	defer buildMu.RUnlock()
	return st.Load().reg.DeleteOwnPropertyMetadata(target, property, key)
}

// HasPropertyMetadata reports whether the property holds key at any level.
func HasPropertyMetadata(target, property, key any) bool {
	return st.Load().res.HasPropertyMetadata(target, property, key)
}

// GetPropertyMetadata returns the most-derived property value of key.
func GetPropertyMetadata(target, property, key any) (any, bool) {
	return st.Load().res.GetPropertyMetadata(target, property, key)
}

// GetPropertyMetadataKeys returns the property keys of target and its supertypes.
func GetPropertyMetadataKeys(target, property any) []any {
	return st.Load().res.GetPropertyMetadataKeys(target, property)
}

// DefineParameterMetadata defines key=value for target's parameter.
func DefineParameterMetadata(target any, index int, key, value any) {
	buildMu.RLock()
	defer buildMu.RUnlock()
	st.Load().reg.DefineParameterMetadata(target, index, key, value)
}

// HasParameterMetadata reports whether target's parameter scope holds key.
func HasParameterMetadata(target any, index int, key any) bool {
	return st.Load().reg.HasParameterMetadata(target, index, key)
}

// GetParameterMetadata returns key from target's parameter scope.
func GetParameterMetadata(target any, index int, key any) (any, bool) {
	return st.Load().reg.GetParameterMetadata(target, index, key)
}

// GetParameterMetadataKeys returns the parameter scope's keys.
func GetParameterMetadataKeys(target any, index int) []any {
	return st.Load().reg.GetParameterMetadataKeys(target, index)
}

// DeleteParameterMetadata removes key from target's parameter scope.
func DeleteParameterMetadata(target any, index int, key any) bool {
	buildMu.RLock()
	defer buildMu.RUnlock()
	return st.Load().reg.DeleteParameterMetadata(target, index, key)
}

// Metadata returns a decorator that defines key=value at its site in the
// registry that is global when the decorator is applied.
func Metadata(key, value any) annotate.Decorator {
	d := factory.Metadata(key, value)
	return func(site annotate.Site) {
		buildMu.RLock()
		defer buildMu.RUnlock()
		d(site)
	}
}

// MetadataFor reads key from the site's own scope in the global registry.
func MetadataFor(key any, site annotate.Site) (any, bool) {
	return factory.MetadataFor(key, site)
}

// Decorate applies class decorators to target in reverse order.
func Decorate(target any, decorators ...apis.ClassDecorator) any {
	return decorate.Decorate(target, decorators...)
}

// DecorateProperty applies property decorators against the global
// descriptor table and returns the final descriptor.
func DecorateProperty(target, property any, decorators ...apis.PropertyDecorator) apis.Descriptor {
	return decorate.DecorateProperty(props, target, property, decorators...)
}

// DecorateParameter applies parameter decorators in reverse order.
func DecorateParameter(target any, index int, decorators ...apis.ParameterDecorator) {
	decorate.DecorateParameter(target, index, decorators...)
}

// Properties returns the global descriptor table used by DecorateProperty.
func Properties() *decorate.PropertyTable {
	return props
}
