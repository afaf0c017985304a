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

// ClassDecorator receives the current target and may return a replacement.
// Returning ok=false keeps the current target.
type ClassDecorator func(target any) (replacement any, ok bool)

// PropertyDecorator receives the current descriptor of target's property and
// may return a replacement. Returning ok=false keeps the current descriptor.
type PropertyDecorator func(target, property any, d Descriptor) (replacement Descriptor, ok bool)

// ParameterDecorator is invoked for its side effects only.
type ParameterDecorator func(target any, index int)

// PropertyModel is the host object model that owns property descriptors.
type PropertyModel interface {
	// PropertyDescriptor returns the current descriptor, if any.
	PropertyDescriptor(target, property any) (Descriptor, bool)
	// DefineProperty replaces the descriptor of target's property.
	DefineProperty(target, property any, d Descriptor)
}
