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

// Package decorate applies stacked decorators to classes, properties and
// parameters. Decorators run in reverse order: the one listed last, nearest
// to the declaration, runs first.
package decorate

import "dirpx.dev/mdx/apis"

// Decorate folds decorators over target and returns the final target.
// A decorator that returns ok=false leaves the current target in place.
// Nil decorators are skipped.
func Decorate(target any, decorators ...apis.ClassDecorator) any {
	for i := len(decorators) - 1; i >= 0; i-- {
		d := decorators[i]
		if d == nil {
			continue
		}
		if next, ok := d(target); ok {
			target = next
		}
	}
	return target
}

// DecorateProperty folds decorators over the descriptor of target's property
// and returns the final descriptor.
//
// A missing descriptor starts as apis.DefaultDescriptor. The property is
// redefined in model only if the final descriptor differs from the one it
// started with, so untouched properties see no redefinition.
func DecorateProperty(model apis.PropertyModel, target, property any, decorators ...apis.PropertyDecorator) apis.Descriptor {
	orig, ok := model.PropertyDescriptor(target, property)
	if !ok {
		orig = apis.DefaultDescriptor()
	}

	cur := orig
	for i := len(decorators) - 1; i >= 0; i-- {
		d := decorators[i]
		if d == nil {
			continue
		}
		if next, ok := d(target, property, cur); ok {
			cur = next
		}
	}

	if !cur.Equal(orig) {
		model.DefineProperty(target, property, cur)
	}
	return cur
}

// DecorateParameter invokes decorators for target's parameter at index.
// Parameter decorators cannot replace anything.
func DecorateParameter(target any, index int, decorators ...apis.ParameterDecorator) {
	for i := len(decorators) - 1; i >= 0; i-- {
		if d := decorators[i]; d != nil {
			d(target, index)
		}
	}
}
