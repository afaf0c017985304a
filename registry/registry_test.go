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

package registry_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/config"
	"dirpx.dev/mdx/registry"
)

type Foo struct{ name string }

func newRegistry() apis.Registry {
	return registry.New(config.DefaultConfig())
}

func TestDefineMetadata_HasGetDelete(t *testing.T) {
	reg := newRegistry()
	foo := reflect.TypeOf(Foo{})

	assert.False(t, reg.HasOwnMetadata(foo, "role"))

	reg.DefineMetadata(foo, "role", "service")
	assert.True(t, reg.HasOwnMetadata(foo, "role"))

	v, ok := reg.GetOwnMetadata(foo, "role")
	require.True(t, ok)
	assert.Equal(t, "service", v)
	assert.Equal(t, []any{"role"}, reg.GetOwnMetadataKeys(foo))

	v, ok = reg.GetOwnMetadata(foo, "missing")
	assert.False(t, ok)
	assert.Nil(t, v)

	had := reg.HasOwnMetadata(foo, "role")
	assert.Equal(t, had, reg.DeleteOwnMetadata(foo, "role"))
	assert.False(t, reg.HasOwnMetadata(foo, "role"))
	assert.False(t, reg.DeleteOwnMetadata(foo, "role"))
}

func TestDefineMetadata_Overwrite(t *testing.T) {
	reg := newRegistry()
	foo := reflect.TypeOf(Foo{})

	reg.DefineMetadata(foo, "k", "v")
	reg.DefineMetadata(foo, "k", "v")
	v, _ := reg.GetOwnMetadata(foo, "k")
	assert.Equal(t, "v", v)

	reg.DefineMetadata(foo, "k", "v2")
	v, _ = reg.GetOwnMetadata(foo, "k")
	assert.Equal(t, "v2", v)
	assert.Len(t, reg.GetOwnMetadataKeys(foo), 1)
	assert.Equal(t, 1, reg.Count())
}

func TestGetOwnMetadataKeys_InsertionOrder(t *testing.T) {
	reg := newRegistry()
	foo := &Foo{}

	reg.DefineMetadata(foo, "a", 1)
	reg.DefineMetadata(foo, "b", 2)
	reg.DefineMetadata(foo, "c", 3)
	// Overwrite keeps position.
	reg.DefineMetadata(foo, "a", 10)
	assert.Equal(t, []any{"a", "b", "c"}, reg.GetOwnMetadataKeys(foo))

	// Delete then define appends.
	require.True(t, reg.DeleteOwnMetadata(foo, "a"))
	reg.DefineMetadata(foo, "a", 11)
	assert.Equal(t, []any{"b", "c", "a"}, reg.GetOwnMetadataKeys(foo))
}

func TestGetOwnMetadataKeys_ReturnsCopy(t *testing.T) {
	reg := newRegistry()
	foo := &Foo{}
	reg.DefineMetadata(foo, "a", 1)

	keys := reg.GetOwnMetadataKeys(foo)
	keys[0] = "mutated"
	assert.Equal(t, []any{"a"}, reg.GetOwnMetadataKeys(foo))
}

func TestUnknownTarget_Defaults(t *testing.T) {
	reg := newRegistry()
	foo := &Foo{}

	assert.False(t, reg.HasOwnMetadata(foo, "k"))
	assert.Empty(t, reg.GetOwnMetadataKeys(foo))
	assert.NotNil(t, reg.GetOwnMetadataKeys(foo))
	assert.False(t, reg.DeleteOwnMetadata(foo, "k"))
	assert.False(t, reg.HasOwnPropertyMetadata(foo, "p", "k"))
	assert.Empty(t, reg.GetOwnPropertyMetadataKeys(foo, "p"))
	assert.False(t, reg.DeleteOwnPropertyMetadata(foo, "p", "k"))
	assert.False(t, reg.HasParameterMetadata(foo, 0, "k"))
	assert.Empty(t, reg.GetParameterMetadataKeys(foo, 0))
	assert.False(t, reg.DeleteParameterMetadata(foo, 0, "k"))
}

func TestUnusableTargetsAndKeys_AreIgnored(t *testing.T) {
	reg := newRegistry()
	var nilFoo *Foo

	reg.DefineMetadata(nil, "k", 1)
	reg.DefineMetadata(nilFoo, "k", 1)
	reg.DefineMetadata([]int{1}, "k", 1)
	reg.DefineMetadata(&Foo{}, []string{"k"}, 1)
	reg.DefineMetadata(&Foo{}, nil, 1)
	reg.DefinePropertyMetadata(&Foo{}, map[string]int{}, "k", 1)
	reg.DefineParameterMetadata(&Foo{}, -1, "k", 1)

	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Entries())
	assert.False(t, reg.HasOwnMetadata(nil, "k"))
	assert.False(t, reg.HasOwnMetadata([]int{1}, "k"))
	assert.False(t, reg.HasParameterMetadata(&Foo{}, -1, "k"))
}

func TestPropertyMetadata(t *testing.T) {
	reg := newRegistry()
	foo := reflect.TypeOf(Foo{})

	reg.DefinePropertyMetadata(foo, "bar", "type", "string")
	assert.True(t, reg.HasOwnPropertyMetadata(foo, "bar", "type"))
	assert.False(t, reg.HasOwnPropertyMetadata(foo, "baz", "type"))
	// Property tables are independent from the object table.
	assert.False(t, reg.HasOwnMetadata(foo, "type"))

	v, ok := reg.GetOwnPropertyMetadata(foo, "bar", "type")
	require.True(t, ok)
	assert.Equal(t, "string", v)

	reg.DefinePropertyMetadata(foo, "bar", "required", true)
	assert.Equal(t, []any{"type", "required"}, reg.GetOwnPropertyMetadataKeys(foo, "bar"))

	assert.True(t, reg.DeleteOwnPropertyMetadata(foo, "bar", "type"))
	assert.False(t, reg.DeleteOwnPropertyMetadata(foo, "bar", "type"))
	assert.Equal(t, []any{"required"}, reg.GetOwnPropertyMetadataKeys(foo, "bar"))
}

func TestParameterMetadata(t *testing.T) {
	reg := newRegistry()
	handler := func(name string, retries int) error { return nil }

	reg.DefineParameterMetadata(handler, 0, "inject", "name")
	reg.DefineParameterMetadata(handler, 1, "inject", "retries")

	v, ok := reg.GetParameterMetadata(handler, 1, "inject")
	require.True(t, ok)
	assert.Equal(t, "retries", v)
	assert.True(t, reg.HasParameterMetadata(handler, 0, "inject"))
	assert.False(t, reg.HasParameterMetadata(handler, 2, "inject"))
	assert.Equal(t, []any{"inject"}, reg.GetParameterMetadataKeys(handler, 0))

	assert.True(t, reg.DeleteParameterMetadata(handler, 0, "inject"))
	assert.False(t, reg.DeleteParameterMetadata(handler, 0, "inject"))
	assert.False(t, reg.HasParameterMetadata(handler, 0, "inject"))
}

func TestEntriesCountReset(t *testing.T) {
	reg := newRegistry()
	foo := reflect.TypeOf(Foo{})
	fn := func() {}

	reg.DefineMetadata(foo, "a", 1)
	reg.DefineMetadata(foo, "b", 2)
	reg.DefinePropertyMetadata(foo, "p", "c", 3)
	reg.DefineParameterMetadata(fn, 0, "d", 4)

	assert.Equal(t, 4, reg.Count())

	kinds := map[apis.Kind]int{}
	for _, e := range reg.Entries() {
		kinds[e.Scope.Kind]++
		if e.Scope.Kind == apis.KindProperty {
			assert.Equal(t, "p", e.Scope.Property)
			assert.Equal(t, "c", e.Key)
			assert.Equal(t, 3, e.Value)
		}
	}
	assert.Equal(t, map[apis.Kind]int{apis.KindClass: 2, apis.KindProperty: 1, apis.KindParameter: 1}, kinds)

	reg.Reset()
	assert.Equal(t, 0, reg.Count())
	assert.False(t, reg.HasOwnMetadata(foo, "a"))
}

func TestEmptyScopesAfterDelete(t *testing.T) {
	reg := newRegistry()
	foo := &Foo{}

	reg.DefineMetadata(foo, "a", 1)
	require.True(t, reg.DeleteOwnMetadata(foo, "a"))

	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.GetOwnMetadataKeys(foo))
}

func TestNaNKey_Ignored(t *testing.T) {
	reg := newRegistry()
	foo := &Foo{}

	reg.DefineMetadata(foo, math.NaN(), 1)
	reg.DefineMetadata(foo, math.NaN(), 2)
	reg.DefinePropertyMetadata(foo, math.NaN(), "k", 1)
	reg.DefineParameterMetadata(foo, 0, math.NaN(), 1)

	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.GetOwnMetadataKeys(foo))
	assert.False(t, reg.HasOwnMetadata(foo, math.NaN()))
}
