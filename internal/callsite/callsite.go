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

// Package callsite adapts type-checked Go syntax to the rule engine.
package callsite

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/halcheck/internal/registry"
	"fillmore-labs.com/halcheck/internal/rules"
	"fillmore-labs.com/halcheck/internal/selector"
)

// Builder builds call sites of tracked callees.
type Builder struct {
	info     *types.Info
	registry *registry.Registry
}

// New creates a [Builder] for one analysis unit.
func New(info *types.Info, r *registry.Registry) Builder {
	return Builder{info: info, registry: r}
}

// Build resolves a call expression and returns its call site when the callee is tracked
// and the call matches the callee's shape.
func (b Builder) Build(call *ast.CallExpr) (rules.CallSite, registry.Descriptor, bool) {
	fn, ok := typeutil.Callee(b.info, call).(*types.Func)
	if !ok {
		return rules.CallSite{}, registry.Descriptor{}, false
	}

	d, ok := b.registry.Resolve(fn)
	if !ok {
		return rules.CallSite{}, registry.Descriptor{}, false
	}

	name, recv := calledName(call.Fun)
	if name == nil {
		return rules.CallSite{}, registry.Descriptor{}, false
	}

	c := rules.CallSite{
		Invocation: selector.SpanOf(call),
		Name:       selector.SpanOf(name),
		Method:     name.Name,
		ArgsEnd:    call.Rparen + 1,
	}

	switch d.Shape {
	case registry.Method:
		if recv == nil || !b.isMethod(call.Fun) {
			return rules.CallSite{}, registry.Descriptor{}, false
		}

		c.Args = b.arguments(call.Args)

	case registry.Function:
		if len(call.Args) == 0 {
			return rules.CallSite{}, registry.Descriptor{}, false
		}

		recv = call.Args[0]
		c.Args = b.arguments(call.Args)

	case registry.Keyed:
		if len(call.Args) <= d.ArgsIndex {
			return rules.CallSite{}, registry.Descriptor{}, false
		}

		lit, ok := ast.Unparen(call.Args[d.ArgsIndex]).(*ast.CompositeLit)
		if !ok {
			return rules.CallSite{}, registry.Descriptor{}, false // can't see the selector
		}

		recv = call.Args[0]
		c.Args, c.AllKeyed = b.elements(lit)
		c.Args, c.AllKeyed = omitted(lit, c.Args, c.AllKeyed, d.Selector.Key)

	default:
		return rules.CallSite{}, registry.Descriptor{}, false
	}

	c.Receiver = selector.SpanOf(recv)

	if d.ByName {
		c.Members = b.members(recv)
	}

	return c, d, true
}

// calledName returns the identifier of the callee and, for qualified calls, the qualifier.
func calledName(fun ast.Expr) (name *ast.Ident, recv ast.Expr) {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f, nil

	case *ast.SelectorExpr:
		return f.Sel, f.X

	case *ast.IndexExpr:
		return calledName(f.X)

	case *ast.IndexListExpr:
		return calledName(f.X)

	default:
		return nil, nil
	}
}

// isMethod reports whether fun selects a method of a value.
func (b Builder) isMethod(fun ast.Expr) bool {
	sel, ok := ast.Unparen(fun).(*ast.SelectorExpr)
	if !ok {
		return false
	}

	s, ok := b.info.Selections[sel]

	return ok && s.Kind() == types.MethodVal
}

func (b Builder) arguments(args []ast.Expr) []rules.Argument {
	arguments := make([]rules.Argument, len(args))
	for i, arg := range args {
		arguments[i] = rules.Argument{Expr: b.View(arg)}
	}

	return arguments
}

// elements converts the elements of a composite literal, reporting whether all are keyed.
func (b Builder) elements(lit *ast.CompositeLit) ([]rules.Argument, bool) {
	arguments := make([]rules.Argument, len(lit.Elts))
	allKeyed := len(lit.Elts) > 0

	for i, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			allKeyed = false
			arguments[i] = rules.Argument{Expr: b.View(elt)}

			continue
		}

		key, _ := kv.Key.(*ast.Ident)
		if key == nil {
			allKeyed = false
			arguments[i] = rules.Argument{Expr: b.View(kv.Value)}

			continue
		}

		arguments[i] = rules.Argument{Key: key.Name, Expr: b.View(kv.Value)}
	}

	return arguments, allKeyed
}

// omitted adds the zero value of a selector missing from a keyed or empty literal.
//
// The zero value is a nil function, which is blamed at the literal.
func omitted(lit *ast.CompositeLit, args []rules.Argument, allKeyed bool, key string) ([]rules.Argument, bool) {
	if key == "" || !allKeyed && len(args) > 0 {
		return args, allKeyed
	}

	for _, a := range args {
		if a.Key == key {
			return args, allKeyed
		}
	}

	return append(args, rules.Argument{Key: key, Expr: &selector.Unknown{Src: selector.SpanOf(lit)}}), true
}

// members returns the member names of the type transformed by the map recv.
func (b Builder) members(recv ast.Expr) selector.NameSet {
	named, ok := types.Unalias(b.info.TypeOf(recv)).(*types.Named)
	if !ok || named.TypeArgs().Len() == 0 {
		return nil
	}

	return memberNames{typ: named.TypeArgs().At(0)}
}

// memberNames is the set of fields and methods of a type.
type memberNames struct {
	typ types.Type
}

// Has reports whether name is a field or method of the type, including promoted members.
func (m memberNames) Has(name string) bool {
	var pkg *types.Package

	t := types.Unalias(m.typ)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	if n, ok := t.(*types.Named); ok {
		pkg = n.Obj().Pkg()
	}

	obj, _, _ := types.LookupFieldOrMethod(m.typ, true, pkg, name)

	return obj != nil
}
