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

package selector

import (
	"go/token"
	"go/types"
)

// Span is a half-open source interval [Pos, End).
type Span struct {
	Pos, End token.Pos
}

// SpanOf returns the [Span] of a node-like value.
func SpanOf(n interface {
	Pos() token.Pos
	End() token.Pos
},
) Span {
	return Span{Pos: n.Pos(), End: n.End()}
}

// IsValid reports whether the span denotes a source interval.
func (s Span) IsValid() bool {
	return s.Pos.IsValid() && s.End >= s.Pos
}

// Expr is a reduced view of an argument expression.
//
// Only the shapes that matter for selector classification are distinguished,
// everything else is represented as [*Unknown].
type Expr interface {
	Span() Span
	expr()
}

// Lambda is a function literal.
type Lambda struct {
	Src Span
	// Params are the declared parameter objects, nil for unnamed or blank parameters.
	Params []types.Object
	// Result is the returned expression when the body is exactly one single-value return statement.
	Result Expr
}

// Conversion is a value conversion T(Operand).
type Conversion struct {
	Src     Span
	Operand Expr
}

// Member is a field or method selection Base.Name.
type Member struct {
	Src  Span
	Base Expr
	Name string
}

// Ident is a reference to a declared object.
type Ident struct {
	Src Span
	Obj types.Object
}

// Call is a function or method call that is not a conversion.
type Call struct {
	Src  Span
	Fun  Expr
	Args []Expr
}

// StringConst is a constant expression of string kind.
type StringConst struct {
	Src   Span
	Value string
	// Literal is set unless the expression denotes a declared constant.
	Literal bool
}

// Unknown is any other expression.
type Unknown struct {
	Src Span
}

func (e *Lambda) Span() Span      { return e.Src }
func (e *Conversion) Span() Span  { return e.Src }
func (e *Member) Span() Span      { return e.Src }
func (e *Ident) Span() Span       { return e.Src }
func (e *Call) Span() Span        { return e.Src }
func (e *StringConst) Span() Span { return e.Src }
func (e *Unknown) Span() Span     { return e.Src }

func (*Lambda) expr()      {}
func (*Conversion) expr()  {}
func (*Member) expr()      {}
func (*Ident) expr()       {}
func (*Call) expr()        {}
func (*StringConst) expr() {}
func (*Unknown) expr()     {}

// Unwrap strips any number of enclosing conversions.
func Unwrap(e Expr) Expr {
	for {
		c, ok := e.(*Conversion)
		if !ok || c.Operand == nil {
			return e
		}

		e = c.Operand
	}
}
