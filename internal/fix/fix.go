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

// Package fix computes suggested fixes from the recorded locations of diagnostics.
//
// Fixes never classify again: they only check that the recorded location still
// has the expected shape, and replace a node with one of its own children.
// Fixes of distinct diagnostics therefore never overlap.
package fix

import (
	"errors"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/halcheck/internal/rules"
	"fillmore-labs.com/halcheck/internal/selector"
)

var (
	// ErrFixNotApplicable is returned when the recorded location no longer has the diagnosed shape.
	ErrFixNotApplicable = errors.New("fix not applicable")

	// ErrNotFixable is returned for diagnostics of rules without a fix.
	ErrNotFixable = errors.New("rule has no fix")
)

const (
	andIgnore = "AndIgnore"

	titleLink   = "Link without ignoring"
	titleRemove = "Remove transformation"
)

// Fixable reports whether diagnostics of rule r have a fix.
func Fixable(r rules.Rule) bool {
	switch r {
	case rules.LinkAndIgnore, rules.EmptyIgnore, rules.Hoist:
		return true

	default:
		return false
	}
}

// Title returns the description of the fix for rule r.
func Title(r rules.Rule) string {
	switch r {
	case rules.LinkAndIgnore:
		return titleLink

	case rules.EmptyIgnore, rules.Hoist:
		return titleRemove

	default:
		return ""
	}
}

// Compute returns the edits fixing d in file.
func Compute(d rules.Diagnostic, file *ast.File) ([]analysis.TextEdit, error) {
	if d.Fadeout || !Fixable(d.Rule) {
		return nil, ErrNotFixable
	}

	if len(d.Additional) == 0 || file == nil {
		return nil, ErrFixNotApplicable
	}

	loc := d.Additional[0]

	switch d.Rule {
	case rules.LinkAndIgnore:
		return unignore(file, loc)

	default:
		return removeInvocation(file, loc)
	}
}

// unignore renames LinkAndIgnore to Link, keeping the relation argument.
func unignore(file *ast.File, loc selector.Span) ([]analysis.TextEdit, error) {
	id, ok := nodeAt(file, loc).(*ast.Ident)
	if !ok {
		return nil, ErrFixNotApplicable
	}

	i := strings.LastIndex(id.Name, andIgnore)
	if i < 0 {
		return nil, ErrFixNotApplicable
	}

	name := id.Name[:i] + id.Name[i+len(andIgnore):]

	return []analysis.TextEdit{{Pos: id.Pos(), End: id.End(), NewText: []byte(name)}}, nil
}

// removeInvocation replaces a method call with its receiver.
func removeInvocation(file *ast.File, loc selector.Span) ([]analysis.TextEdit, error) {
	call, ok := nodeAt(file, loc).(*ast.CallExpr)
	if !ok {
		return nil, ErrFixNotApplicable
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, ErrFixNotApplicable
	}

	return []analysis.TextEdit{{Pos: sel.X.End(), End: call.End()}}, nil
}

// nodeAt returns the node spanning exactly loc, or nil.
func nodeAt(file *ast.File, loc selector.Span) ast.Node {
	if !loc.IsValid() || loc.Pos < file.FileStart || loc.End > file.FileEnd {
		return nil
	}

	path, _ := astutil.PathEnclosingInterval(file, loc.Pos, loc.End)
	if len(path) == 0 {
		return nil
	}

	n := path[0]
	if n.Pos() != loc.Pos || n.End() != loc.End {
		return nil
	}

	return n
}
