// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package registry maps resolved callees of the HAL transformation API to call shape descriptors.
package registry

import "go/types"

// DefaultPackage is the import path of the tracked HAL package.
const DefaultPackage = "github.com/tiger-hal/hal"

// Registry is the read-only table of tracked callees.
//
// A nil *Registry tracks nothing.
type Registry struct {
	descriptors map[*types.Func]Descriptor
}

// New builds the registry for an analysis unit.
//
// It returns nil when the package at path is not reachable from pkg,
// in which case no call site can refer to the tracked API.
func New(pkg *types.Package, path string) *Registry {
	hal := findPackage(pkg, path)
	if hal == nil {
		return nil
	}

	r := &Registry{descriptors: make(map[*types.Func]Descriptor, len(signatures))}

	scope := hal.Scope()
	for _, s := range signatures {
		fn := lookup(scope, s.typeName, s.name)
		if fn == nil {
			continue // not part of this version of the API
		}

		r.descriptors[fn] = s.descriptor
	}

	if len(r.descriptors) == 0 {
		return nil
	}

	return r
}

// Resolve returns the descriptor of a tracked callee.
func (r *Registry) Resolve(fn *types.Func) (Descriptor, bool) {
	if r == nil || fn == nil {
		return Descriptor{}, false
	}

	d, ok := r.descriptors[fn.Origin()]

	return d, ok
}

// Len returns the number of tracked callees.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.descriptors)
}

// findPackage searches the import graph of pkg for path.
func findPackage(pkg *types.Package, path string) *types.Package {
	if pkg == nil {
		return nil
	}

	seen := make(map[*types.Package]struct{})
	queue := []*types.Package{pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.Path() == path {
			return p
		}

		for _, imp := range p.Imports() {
			if _, ok := seen[imp]; ok {
				continue
			}

			seen[imp] = struct{}{}
			queue = append(queue, imp)
		}
	}

	return nil
}

// lookup finds a package level function, or a method of the named interface typeName.
func lookup(scope *types.Scope, typeName, name string) *types.Func {
	if typeName == "" {
		fn, _ := scope.Lookup(name).(*types.Func)

		return fn
	}

	tn, ok := scope.Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil
	}

	iface, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	for i := range iface.NumExplicitMethods() {
		if m := iface.ExplicitMethod(i); m.Name() == name {
			return m
		}
	}

	return nil
}
