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

package resolver_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/config"
	"dirpx.dev/mdx/hierarchy"
	"dirpx.dev/mdx/registry"
	"dirpx.dev/mdx/resolver"
)

type Base struct{ ID string }

type Service struct {
	Base
	Addr string
}

type Handler struct {
	*Service
}

var (
	baseT    = reflect.TypeOf(Base{})
	serviceT = reflect.TypeOf(Service{})
	handlerT = reflect.TypeOf(Handler{})
)

func setup(t *testing.T, opts ...config.Option) (apis.Registry, apis.Resolver) {
	t.Helper()
	cfg := config.NewConfig(opts...)
	reg := registry.New(cfg)
	return reg, resolver.New(cfg, reg, hierarchy.Embedding())
}

func TestGetMetadata_MostDerivedWins(t *testing.T) {
	reg, res := setup(t)

	reg.DefineMetadata(baseT, "k", "a")
	reg.DefineMetadata(serviceT, "k", "b")

	v, ok := res.GetMetadata(serviceT, "k")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	// Two levels down still sees the nearest definition.
	v, ok = res.GetMetadata(handlerT, "k")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	require.True(t, reg.DeleteOwnMetadata(serviceT, "k"))
	v, ok = res.GetMetadata(serviceT, "k")
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestHasMetadata(t *testing.T) {
	reg, res := setup(t)
	reg.DefineMetadata(baseT, "k", nil)

	// A nil value is still a definition.
	assert.True(t, res.HasMetadata(handlerT, "k"))
	assert.False(t, res.HasMetadata(handlerT, "other"))
	assert.False(t, reg.HasOwnMetadata(handlerT, "k"))
}

func TestGetMetadata_NotFound(t *testing.T) {
	_, res := setup(t)

	v, ok := res.GetMetadata(handlerT, "k")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Empty(t, res.GetMetadataKeys(handlerT))
	assert.NotNil(t, res.GetMetadataKeys(handlerT))
}

func TestGetMetadataKeys_UnionFirstSeen(t *testing.T) {
	reg, res := setup(t)

	reg.DefineMetadata(baseT, "k2", 1)
	reg.DefineMetadata(baseT, "shared", 1)
	reg.DefineMetadata(serviceT, "k1", 2)
	reg.DefineMetadata(serviceT, "shared", 2)

	assert.Equal(t, []any{"k1", "shared", "k2"}, res.GetMetadataKeys(serviceT))
	assert.Equal(t, []any{"k1", "shared", "k2"}, res.GetMetadataKeys(handlerT))
	assert.Equal(t, []any{"k2", "shared"}, res.GetMetadataKeys(baseT))
}

func TestPropertyMetadata_Inheritance(t *testing.T) {
	reg, res := setup(t)

	reg.DefinePropertyMetadata(baseT, "ID", "json", "id")
	reg.DefinePropertyMetadata(serviceT, "ID", "json", "service_id")
	reg.DefinePropertyMetadata(serviceT, "ID", "validate", "required")
	reg.DefinePropertyMetadata(baseT, "ID", "index", true)

	v, ok := res.GetPropertyMetadata(handlerT, "ID", "json")
	require.True(t, ok)
	assert.Equal(t, "service_id", v)

	v, ok = res.GetPropertyMetadata(baseT, "ID", "json")
	require.True(t, ok)
	assert.Equal(t, "id", v)

	assert.True(t, res.HasPropertyMetadata(handlerT, "ID", "index"))
	assert.False(t, res.HasPropertyMetadata(handlerT, "Addr", "index"))
	assert.Equal(t, []any{"json", "validate", "index"}, res.GetPropertyMetadataKeys(serviceT, "ID"))
}

func TestMaxDepth_BoundsWalk(t *testing.T) {
	reg, res := setup(t, config.WithMaxDepth(2))
	reg.DefineMetadata(baseT, "k", "a")

	// handler -> service is within bounds, base is the third level.
	assert.False(t, res.HasMetadata(handlerT, "k"))
	assert.True(t, res.HasMetadata(serviceT, "k"))
	assert.Empty(t, res.GetMetadataKeys(handlerT))
}

func TestTableHierarchy(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	tbl := hierarchy.NewTable()
	require.NoError(t, tbl.Extend("B", "A"))
	res := resolver.New(cfg, reg, tbl)

	reg.DefineMetadata("A", "K2", "a")
	reg.DefineMetadata("B", "K1", "b")
	assert.Equal(t, []any{"K1", "K2"}, res.GetMetadataKeys("B"))
}

func TestNilHierarchy_OwnOnly(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	res := resolver.New(cfg, reg, nil)

	reg.DefineMetadata(baseT, "k", 1)
	assert.False(t, res.HasMetadata(serviceT, "k"))
	assert.True(t, res.HasMetadata(baseT, "k"))
}
