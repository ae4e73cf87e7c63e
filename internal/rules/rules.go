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

// Package rules maps selector classifications of tracked calls to diagnostics.
package rules

import (
	"go/token"

	"fillmore-labs.com/halcheck/analyzer/level"
	"fillmore-labs.com/halcheck/internal/registry"
	"fillmore-labs.com/halcheck/internal/selector"
)

// Rule identifies a diagnostic rule.
type Rule uint8

//go:generate go tool stringer -type Rule -linecomment
const (
	// LinkAndIgnore reports non-simple selectors of LinkAndIgnore.
	LinkAndIgnore Rule = iota + 1 // TH1001

	// IgnoreExpression reports non-simple selectors of Ignore.
	IgnoreExpression // TH1002

	// EmptyIgnore reports Ignore calls without arguments.
	EmptyIgnore // TH1003

	// Hoist reports non-simple selectors of Hoist.
	Hoist // TH1004

	// IgnoreNames reports names that are not members of the transformed type.
	IgnoreNames // TH1005
)

// All lists every rule.
var All = [...]Rule{LinkAndIgnore, IgnoreExpression, EmptyIgnore, Hoist, IgnoreNames}

// FadeoutSuffix is appended to the rule id of fadeout diagnostics.
const FadeoutSuffix = "_fadeout"

// Diagnostic is a finding of a rule.
type Diagnostic struct {
	Rule     Rule
	Severity level.Severity
	// Fadeout marks a secondary diagnostic spanning text that can be removed along with the primary fix.
	Fadeout bool
	Span    selector.Span
	// Additional holds locations the fix for this diagnostic operates on.
	Additional []selector.Span
	Message    string
}

// ID returns the rule id, suffixed for fadeout diagnostics.
func (d Diagnostic) ID() string {
	if d.Fadeout {
		return d.Rule.String() + FadeoutSuffix
	}

	return d.Rule.String()
}

// Argument is a call argument, optionally passed by key.
type Argument struct {
	Key  string
	Expr selector.Expr
}

// CallSite is a resolved invocation of a tracked callee.
type CallSite struct {
	// Invocation spans the whole call expression.
	Invocation selector.Span
	// Receiver spans the map the verb is applied to.
	Receiver selector.Span
	// Name spans the method or function name.
	Name selector.Span
	// Method is the method or function name.
	Method string
	// Args are the arguments, for keyed calls the elements of the argument literal.
	Args []Argument
	// AllKeyed is set when every argument is keyed.
	AllKeyed bool
	// ArgsEnd is the position after the closing parenthesis.
	ArgsEnd token.Pos
	// Members are the member names of the transformed type.
	Members selector.NameSet
}

func (c CallSite) keys() []string {
	keys := make([]string, len(c.Args))
	for i, a := range c.Args {
		keys[i] = a.Key
	}

	return keys
}

// selectors returns the selector arguments of the call.
func (c CallSite) selectors(d registry.Descriptor) []selector.Expr {
	indices := d.Selectors(c.keys(), c.AllKeyed)
	if len(indices) == 0 {
		return nil
	}

	exprs := make([]selector.Expr, len(indices))
	for i, idx := range indices {
		exprs[i] = c.Args[idx].Expr
	}

	return exprs
}

// afterReceiver spans from the member access operator to the end of the argument list.
func (c CallSite) afterReceiver() selector.Span {
	return selector.Span{Pos: c.Receiver.End, End: c.ArgsEnd}
}
