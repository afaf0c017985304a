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

// Package annotate builds decorators that attach metadata.
//
// The site kind is chosen by the caller (Class, Property, Parameter)
// rather than inferred from argument shapes. A decorator applied to a
// site that addresses nothing does nothing: no entry, no error.
package annotate

import (
	"dirpx.dev/mdx/apis"
)

// Source yields the registry a decorator writes to at application time.
type Source func() apis.Registry

// Factory builds metadata decorators bound to a registry source.
type Factory struct {
	src Source
}

// New returns a Factory that writes to reg.
func New(reg apis.Registry) Factory {
	return Factory{src: func() apis.Registry { return reg }}
}

// NewWithSource returns a Factory that asks src for the registry each
// time a decorator is applied or a read is performed.
func NewWithSource(src Source) Factory {
	return Factory{src: src}
}

// Decorator attaches a fixed metadata entry to whatever site it is applied at.
type Decorator func(site Site)

// Metadata returns a decorator that defines key=value at its site.
func (f Factory) Metadata(key, value any) Decorator {
	return func(site Site) {
		if !valid(site) {
			return
		}
		reg := f.registry()
		if reg == nil {
			return
		}
		switch site.Kind {
		case apis.KindProperty:
			reg.DefinePropertyMetadata(site.Target, site.Property, key, value)
		case apis.KindParameter:
			reg.DefineParameterMetadata(site.Target, site.Index, key, value)
		case apis.KindClass:
			reg.DefineMetadata(site.Target, key, value)
		}
	}
}

// MetadataFor reads key from the site's own scope.
func (f Factory) MetadataFor(key any, site Site) (any, bool) {
	if !valid(site) {
		return nil, false
	}
	reg := f.registry()
	if reg == nil {
		return nil, false
	}
	switch site.Kind {
	case apis.KindProperty:
		return reg.GetOwnPropertyMetadata(site.Target, site.Property, key)
	case apis.KindParameter:
		return reg.GetParameterMetadata(site.Target, site.Index, key)
	case apis.KindClass:
		return reg.GetOwnMetadata(site.Target, key)
	}
	return nil, false
}

func (f Factory) registry() apis.Registry {
	if f.src == nil {
		return nil
	}
	return f.src()
}

// Class adapts d for decorate.Decorate. It never replaces the target.
func (d Decorator) Class() apis.ClassDecorator {
	return func(target any) (any, bool) {
		d(Class(target))
		return nil, false
	}
}

// Property adapts d for decorate.DecorateProperty. It never changes the descriptor.
func (d Decorator) Property() apis.PropertyDecorator {
	return func(target, property any, desc apis.Descriptor) (apis.Descriptor, bool) {
		d(Property(target, property))
		return desc, false
	}
}

// Parameter adapts d for decorate.DecorateParameter.
func (d Decorator) Parameter() apis.ParameterDecorator {
	return func(target any, index int) {
		d(Parameter(target, index))
	}
}
