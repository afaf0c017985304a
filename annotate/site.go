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

package annotate

import (
	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/utils/ident"
)

// Site is the position a decorator is applied at.
type Site = apis.Scope

// Class returns the site of target itself.
func Class(target any) Site {
	return Site{Kind: apis.KindClass, Target: target}
}

// Property returns the site of target's property.
func Property(target, property any) Site {
	return Site{Kind: apis.KindProperty, Target: target, Property: property}
}

// Parameter returns the site of target's parameter at index.
func Parameter(target any, index int) Site {
	return Site{Kind: apis.KindParameter, Target: target, Index: index}
}

// valid reports whether s addresses a scope a registry can store.
func valid(s Site) bool {
	if _, ok := ident.Normalize(s.Target); !ok {
		return false
	}
	switch s.Kind {
	case apis.KindClass:
		return true
	case apis.KindProperty:
		return ident.Usable(s.Property)
	case apis.KindParameter:
		return s.Index >= 0
	}
	return false
}
