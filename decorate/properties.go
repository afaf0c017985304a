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

package decorate

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/utils/ident"
)

// NewPropertyTable constructs an empty in-memory apis.PropertyModel.
func NewPropertyTable() *PropertyTable {
	return &PropertyTable{descs: make(map[propKey]apis.Descriptor)}
}

// PropertyTable stores property descriptors for targets that have no
// native descriptor model. It counts redefinitions.
type PropertyTable struct {
	mu    sync.RWMutex
	descs map[propKey]apis.Descriptor
	// redefs counts DefineProperty calls.
	redefs atomic.Int64
}

// Ensure PropertyTable implements apis.PropertyModel.
var _ apis.PropertyModel = (*PropertyTable)(nil)

type propKey struct {
	target   any
	property any
}

// PropertyDescriptor returns the stored descriptor of target's property.
func (p *PropertyTable) PropertyDescriptor(target, property any) (apis.Descriptor, bool) {
	k, ok := newPropKey(target, property)
	if !ok {
		return apis.Descriptor{}, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	d, ok := p.descs[k]
	return d, ok
}

// DefineProperty stores d for target's property. Unusable targets or
// properties are ignored and not counted.
func (p *PropertyTable) DefineProperty(target, property any, d apis.Descriptor) {
	k, ok := newPropKey(target, property)
	if !ok {
		return
	}

	p.mu.Lock()
	p.descs[k] = d
	p.mu.Unlock()

	p.redefs.Add(1)
}

// Redefinitions returns how many times DefineProperty stored a descriptor.
func (p *PropertyTable) Redefinitions() int64 {
	return p.redefs.Load()
}

func newPropKey(target, property any) (propKey, bool) {
	t, ok := ident.Normalize(target)
	if !ok || !ident.Usable(property) {
		return propKey{}, false
	}
	return propKey{target: t, property: property}, true
}
