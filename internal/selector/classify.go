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

import "go/types"

// Kind is the outcome of a selector classification.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// NonSimple is a selector the runtime can not resolve to a member.
	NonSimple Kind = iota // non-simple

	// Simple is a (possibly converted) member access off the function's own parameter.
	Simple // simple
)

// Verdict is the classification of a selector argument.
type Verdict struct {
	Kind Kind
	// Blame is the smallest sub-expression responsible for a [NonSimple] verdict.
	Blame Span
}

// Simple reports whether the verdict accepts the selector.
func (v Verdict) Simple() bool {
	return v.Kind == Simple
}

func simple() Verdict { return Verdict{Kind: Simple} }

func blame(e Expr) Verdict { return Verdict{Kind: NonSimple, Blame: e.Span()} }

// Classify decides whether e is a simple selector.
//
// Everything not positively recognized is [NonSimple].
func Classify(e Expr) Verdict {
	if e == nil {
		return Verdict{Kind: NonSimple}
	}

	lambda, ok := e.(*Lambda)
	if !ok {
		return blame(e)
	}

	param, ok := soleParam(lambda)
	if !ok || lambda.Result == nil {
		return blame(lambda)
	}

	switch body := Unwrap(lambda.Result).(type) {
	case *Member:
		if isParam(body.Base, param) {
			return simple()
		}

	case *Call:
		// f(x.Member): blame the wrapped selector, not the whole function
		for _, arg := range body.Args {
			if isParamMember(arg, param) {
				return blame(arg)
			}
		}
	}

	return blame(lambda)
}

// NameSet is the set of member names declared on a type.
type NameSet interface {
	Has(name string) bool
}

// MatchName accepts declared string constants naming a member in members.
//
// Literals are blamed even when their value names a member.
func MatchName(e Expr, members NameSet) Verdict {
	if e == nil {
		return Verdict{Kind: NonSimple}
	}

	if s, ok := e.(*StringConst); ok && !s.Literal && members != nil && members.Has(s.Value) {
		return simple()
	}

	return blame(e)
}

func soleParam(lambda *Lambda) (types.Object, bool) {
	if len(lambda.Params) != 1 || lambda.Params[0] == nil {
		return nil, false
	}

	return lambda.Params[0], true
}

func isParam(e Expr, param types.Object) bool {
	id, ok := e.(*Ident)

	return ok && id.Obj != nil && id.Obj == param
}

func isParamMember(e Expr, param types.Object) bool {
	m, ok := Unwrap(e).(*Member)

	return ok && isParam(m.Base, param)
}
