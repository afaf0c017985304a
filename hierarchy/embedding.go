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

package hierarchy

import (
	"reflect"

	"dirpx.dev/mdx/apis"
)

// Embedding returns an apis.Hierarchy derived from Go struct embedding.
//
// Targets must be reflect.Type values:
//   - *T has supertype T;
//   - a struct whose first field is embedded has that field's type as its
//     supertype, with one level of pointer unwrapped (*Base → Base).
//
// Anything else has no supertype.
func Embedding() apis.Hierarchy {
	return embedding{}
}

// embedding walks the type graph; it holds no state.
type embedding struct{}

// Supertype returns the embedded base of a reflect.Type target.
func (embedding) Supertype(target any) (any, bool) {
	t, ok := target.(reflect.Type)
	if !ok || t == nil {
		return nil, false
	}
	switch t.Kind() {
	case reflect.Pointer:
		return t.Elem(), true
	case reflect.Struct:
		if t.NumField() == 0 {
			return nil, false
		}
		f := t.Field(0)
		if !f.Anonymous {
			return nil, false
		}
		base := f.Type
		if base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		return base, true
	}
	return nil, false
}
