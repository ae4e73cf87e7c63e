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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/halcheck/internal/astutil"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"//nolint:halcheck", true},
		{"// nolint:halcheck", true},
		{"//nolint:gosec,halcheck // selector checked elsewhere", true},
		{"//nolint:all", true},
		{"//nolint:HalCheck", true},
		{"//nolint:gosec", false},
		{"//nolint", false},
		{"// halcheck", false},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&ast.Comment{Text: tt.comment}); got != tt.want {
				t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.comment, got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by halgen. DO NOT EDIT.

//nolint:halcheck
package test

var a = 1 //nolint:halcheck

var b = 2 // checked
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	c := NewCurrentFile(fset, f)
	if !c.Valid() || c.File() != f {
		t.Fatal("Expected valid file")
	}

	if !c.Generated() {
		t.Error("Expected generated file")
	}

	if !c.NoLint() {
		t.Error("Expected file excluded")
	}

	a := f.Decls[0].(*ast.GenDecl)
	if !c.NoLintComment(a.Pos()) {
		t.Error("Expected nolint comment for a")
	}

	b := f.Decls[1].(*ast.GenDecl)
	if c.NoLintComment(b.Pos()) {
		t.Error("Unexpected nolint comment for b")
	}

	if NewCurrentFile(fset, nil).Valid() {
		t.Error("Expected invalid file")
	}
}
