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

package registry

// scope is a key-unique map that remembers insertion order.
// Overwriting keeps a key's position; delete followed by set appends.
type scope struct {
	keys []any
	vals map[any]any
}

func newScope() *scope {
	return &scope{vals: make(map[any]any)}
}

func (s *scope) get(k any) (any, bool) {
	v, ok := s.vals[k]
	return v, ok
}

func (s *scope) set(k, v any) {
	if _, ok := s.vals[k]; !ok {
		s.keys = append(s.keys, k)
	}
	s.vals[k] = v
}

func (s *scope) delete(k any) bool {
	if _, ok := s.vals[k]; !ok {
		return false
	}
	delete(s.vals, k)
	for i, kk := range s.keys {
		if kk == k {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// snapshot returns a copy of the keys in insertion order.
func (s *scope) snapshot() []any {
	out := make([]any, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *scope) len() int {
	return len(s.keys)
}
