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

// Package mdx provides a process-wide metadata registry for annotating
// classes, properties and function parameters.
//
// mdx is the side-table behind a decorator/annotation mechanism: it
// associates arbitrary key/value metadata with annotation targets and
// answers lookups that follow a supertype chain.
//
// # Tables
//
// Three independent tables are kept:
//
//   - object level:    target → (key → value)
//   - property level:  target → (property → (key → value))
//   - parameter level: target → (index → (key → value))
//
// A target is any Go value usable as an identity: a reflect.Type, a
// pointer, a string, a function (keyed by its code pointer), or an
// ident.Ref, a weak handle that does not keep its referent alive. Keys
// are any comparable values; keys.Symbol and keys.Key[V] give keys that
// cannot collide by accident.
//
// Retention is strong unless the target is an ident.Ref. A plain *T,
// string or other value used as a target is held by the registry for the
// registry's lifetime, so its referent is never collected. Pass
// ident.WeakRef(p) to annotate a heap object without keeping it alive;
// its scopes are dropped once it is collected.
//
// Lookups never fail. Unknown scopes, unusable targets and unusable keys
// answer "not found", false or an empty slice; writes with them are
// silently dropped.
//
// # Inheritance
//
// HasMetadata, GetMetadata and GetMetadataKeys (and their property
// counterparts) walk the supertype relation supplied by an
// apis.Hierarchy. The most-derived definition wins; key enumeration
// returns the union of every level, most-derived first. The default
// hierarchy consults the explicit table fed by Extend, then Go struct
// embedding (see hierarchy.Embedding). The relation must be acyclic.
//
// Parameters have no inheritance variants.
//
// # Decorators
//
//	role := mdx.Metadata("role", "service")
//	mdx.Decorate(reflect.TypeOf(Foo{}), role.Class())
//	mdx.DecorateProperty(reflect.TypeOf(Foo{}), "Bar", mdx.Metadata("type", "string").Property())
//
// Decorators run in reverse order: the one listed last runs first.
//
// # Concurrency model
//
// Reads load the current snapshot atomically and never take the build
// lock. Registry and Resolver implementations guard their own tables.
// Writers of the snapshot (SetConfig, SetRegistry, SetHierarchy,
// SetBuilder, SetAll) serialize on a build mutex and publish a new
// snapshot with an atomic pointer swap. The global Define* and Delete*
// helpers and decorators returned by Metadata hold the build lock for
// reading, so a rebuild never loses a write to the registry it replaces.
// Writes made directly on the value returned by Registry() bypass that
// lock and may be lost if they race with a rebuild.
//
// # Pinning
//
// SetRegistry pins the given registry: later SetConfig or SetBuilder
// calls keep it instead of rebuilding. UnpinRegistry lifts the pin.
// Rebuilt registries migrate the entries of the previous one.
package mdx
