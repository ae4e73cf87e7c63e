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

package registry_test

import (
	"go/ast"
	"go/types"
	"testing"

	"golang.org/x/tools/go/types/typeutil"

	. "fillmore-labs.com/halcheck/internal/registry"
	"fillmore-labs.com/halcheck/internal/testsource"
)

func TestNew(t *testing.T) {
	t.Parallel()

	p := testsource.CheckFragment(t, "")

	r := New(p.Types, testsource.HALPath)
	if r == nil {
		t.Fatal("Expected registry")
	}

	// all signatures of the stub are tracked
	if got, want := r.Len(), 10; got != want {
		t.Errorf("Got %d tracked callees, want %d", got, want)
	}
}

func TestNewAbsent(t *testing.T) {
	t.Parallel()

	p := testsource.Check(t, "package test\n")

	if r := New(p.Types, testsource.HALPath); r != nil {
		t.Errorf("Got registry with %d callees, want nil", r.Len())
	}

	if r := New(nil, testsource.HALPath); r != nil {
		t.Errorf("Got registry for nil package, want nil")
	}

	var r *Registry
	if _, ok := r.Resolve(nil); ok || r.Len() != 0 {
		t.Error("Expected nil registry to track nothing")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	const src = `m.LinkAndIgnore("name", nil)
hal.LinkAndIgnore(m, "name", nil)
hal.LinkAndIgnore[Article](m, "name", nil)
hal.LinkAndIgnoreWith(m, hal.LinkArgs[Article]{})
m.Hoist(nil)
m.Ignore()
c.Ignore()
hal.Ignore(m)
hal.IgnoreElements(c)
m.IgnoreNames()
c.IgnoreNames()
m.Link("name", nil)
hal.Link(m, "name", nil)
`

	want := []struct {
		verb  Verb
		shape Shape
	}{
		{LinkAndIgnore, Method},
		{LinkAndIgnore, Function},
		{LinkAndIgnore, Function},
		{LinkAndIgnore, Keyed},
		{Hoist, Method},
		{Ignore, Method},
		{Ignore, Method},
		{Ignore, Function},
		{Ignore, Function},
		{IgnoreNames, Method},
		{IgnoreNames, Method},
	}

	p := testsource.CheckFragment(t, src)
	r := New(p.Types, testsource.HALPath)

	var got []Descriptor

	for _, call := range p.Calls() {
		fn, ok := typeutil.Callee(p.Info, call).(*types.Func)
		if !ok {
			continue // conversions and built-ins
		}

		if d, ok := r.Resolve(fn); ok {
			got = append(got, d)
		} else if !untracked(call) {
			t.Errorf("Can't resolve %s", fn.FullName())
		}
	}

	if len(got) != len(want) {
		t.Fatalf("Resolved %d calls, want %d", len(got), len(want))
	}

	for i, d := range got {
		if d.Verb != want[i].verb || d.Shape != want[i].shape {
			t.Errorf("Call %d resolved to %v/%v, want %v/%v", i, d.Verb, d.Shape, want[i].verb, want[i].shape)
		}
	}
}

func untracked(call *ast.CallExpr) bool {
	fun := ast.Unparen(call.Fun)
	if sel, ok := fun.(*ast.SelectorExpr); ok {
		return sel.Sel.Name == "Link"
	}

	return false
}

func TestLocate(t *testing.T) {
	t.Parallel()

	l := Locator{Index: 1, Key: SelectorKey}

	tests := []struct {
		name     string
		keys     []string
		allKeyed bool
		want     int
		ok       bool
	}{
		{"Positional", []string{"", ""}, false, 1, true},
		{"Keyed", []string{"Selector", "Relation"}, true, 0, true},
		{"KeyedMissing", []string{"Relation"}, true, -1, false},
		{"Mixed", []string{"Relation", ""}, false, 1, true},
		{"TooShort", []string{""}, false, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := l.Locate(tt.keys, tt.allKeyed)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Locate() = %d, %t, want %d, %t", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSelectors(t *testing.T) {
	t.Parallel()

	d := Descriptor{Verb: Ignore, Shape: Function, Selector: Locator{Index: 1}, Variadic: true}

	if got := d.Selectors([]string{"", "", ""}, false); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Selectors() = %v, want [1 2]", got)
	}

	if got := d.Selectors([]string{""}, false); len(got) != 0 {
		t.Errorf("Selectors() = %v, want none", got)
	}
}
