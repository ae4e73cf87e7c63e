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

package callsite

import (
	"go/ast"
	"go/constant"
	"go/types"

	"fillmore-labs.com/halcheck/internal/selector"
)

// View converts a type-checked expression to its [selector.Expr] view.
func (b Builder) View(e ast.Expr) selector.Expr {
	span := selector.SpanOf(e)

	if tv, ok := b.info.Types[e]; ok && tv.Value != nil && tv.Value.Kind() == constant.String {
		return &selector.StringConst{Src: span, Value: constant.StringVal(tv.Value), Literal: !b.declaredConst(e)}
	}

	switch e := e.(type) {
	case *ast.ParenExpr:
		return b.View(e.X)

	case *ast.FuncLit:
		return b.lambda(e)

	case *ast.CallExpr:
		if tv, ok := b.info.Types[e.Fun]; ok && tv.IsType() && len(e.Args) == 1 && !e.Ellipsis.IsValid() {
			return &selector.Conversion{Src: span, Operand: b.View(e.Args[0])}
		}

		args := make([]selector.Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = b.View(arg)
		}

		return &selector.Call{Src: span, Fun: b.View(e.Fun), Args: args}

	case *ast.SelectorExpr:
		if _, ok := b.info.Selections[e]; ok {
			return &selector.Member{Src: span, Base: b.View(e.X), Name: e.Sel.Name}
		}

		// qualified identifier
		return &selector.Ident{Src: span, Obj: b.info.Uses[e.Sel]}

	case *ast.Ident:
		return &selector.Ident{Src: span, Obj: b.info.ObjectOf(e)}

	default:
		return &selector.Unknown{Src: span}
	}
}

// declaredConst reports whether e names a declared constant, possibly qualified.
func (b Builder) declaredConst(e ast.Expr) bool {
	var id *ast.Ident

	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		id = e.Sel

	default:
		return false
	}

	_, ok := b.info.Uses[id].(*types.Const)

	return ok
}

func (b Builder) lambda(lit *ast.FuncLit) *selector.Lambda {
	l := &selector.Lambda{Src: selector.SpanOf(lit)}

	if params := lit.Type.Params; params != nil {
		for _, field := range params.List {
			if len(field.Names) == 0 {
				l.Params = append(l.Params, nil)

				continue
			}

			for _, name := range field.Names {
				var obj types.Object
				if name.Name != "_" {
					obj = b.info.Defs[name]
				}

				l.Params = append(l.Params, obj)
			}
		}
	}

	if lit.Body == nil || len(lit.Body.List) != 1 {
		return l
	}

	if ret, ok := lit.Body.List[0].(*ast.ReturnStmt); ok && len(ret.Results) == 1 {
		l.Result = b.View(ret.Results[0])
	}

	return l
}
