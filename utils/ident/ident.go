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

// Package ident turns caller-supplied targets and keys into values that are
// safe to use as map keys.
package ident

import (
	"fmt"
	"reflect"
	"runtime"
)

// Func is the identity of a function value. Go funcs are not comparable,
// so a function target is keyed by its code pointer and type. Closures
// created from the same literal share an identity.
type Func struct {
	pc  uintptr
	typ reflect.Type
}

// FuncOf returns the identity of fn, or false if fn is not a non-nil func.
func FuncOf(fn any) (Func, bool) {
	if fn == nil {
		return Func{}, false
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Func{}, false
	}
	return Func{pc: v.Pointer(), typ: v.Type()}, true
}

// Type returns the function's type.
func (f Func) Type() reflect.Type { return f.typ }

// String returns the function's symbol name, falling back to its address.
func (f Func) String() string {
	if rf := runtime.FuncForPC(f.pc); rf != nil {
		return rf.Name()
	}
	return fmt.Sprintf("func@%#x", f.pc)
}

// Normalize maps target to the value used as its table key.
//
// Normalization policy:
//   - nil, nil pointers/chans and zero Refs are not usable;
//   - func values are keyed by Func;
//   - any other value is used as-is if it is comparable and equal to itself;
//   - non-comparable values (slices, maps, structs holding them) and values
//     that are not equal to themselves (NaN) are not usable.
func Normalize(target any) (any, bool) {
	if target == nil {
		return nil, false
	}
	if z, ok := target.(zeroer); ok && z.isZero() {
		return nil, false
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Func:
		if v.IsNil() {
			return nil, false
		}
		return Func{pc: v.Pointer(), typ: v.Type()}, true
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return nil, false
		}
		return target, true
	}
	if !v.Comparable() || target != target {
		return nil, false
	}
	return target, true
}

// Usable reports whether key can be used as a metadata or property key.
// A key must be comparable and equal to itself, which rules out NaN.
func Usable(key any) bool {
	if key == nil {
		return false
	}
	return reflect.ValueOf(key).Comparable() && key == key
}

// zeroer is implemented by handles whose zero value identifies nothing.
type zeroer interface {
	isZero() bool
}
