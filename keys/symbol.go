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

// Package keys provides metadata keys that cannot collide by accident.
package keys

import "github.com/google/uuid"

// Symbol is a unique marker key. Two symbols are equal only if one is a
// copy of the other, even when their descriptions match.
type Symbol struct {
	id   uuid.UUID
	desc string
}

// NewSymbol returns a fresh Symbol described by desc.
func NewSymbol(desc string) Symbol {
	return Symbol{id: uuid.New(), desc: desc}
}

// Description returns the description the symbol was created with.
func (s Symbol) Description() string { return s.desc }

// ID returns the symbol's identity.
func (s Symbol) ID() uuid.UUID { return s.id }

// String returns "Symbol(desc)".
func (s Symbol) String() string {
	return "Symbol(" + s.desc + ")"
}
