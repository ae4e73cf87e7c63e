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

// Package testsource provides utilities for parsing and type-checking Go source code in tests.
//
// It is designed to simplify testing of the halcheck analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments that use
// the HAL transformation API.
package testsource

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// HALPath is the import path of the HAL stub package.
const HALPath = "example.com/hal"

// HALSource is a minimal rendition of the HAL transformation API.
const HALSource = `package hal

type TransformationMap[T any] interface {
	Link(relation string, selector func(T) any) TransformationMap[T]
	LinkAndIgnore(relation string, selector func(T) any) TransformationMap[T]
	Hoist(selector func(T) any) TransformationMap[T]
	Ignore(selectors ...func(T) any) TransformationMap[T]
	IgnoreNames(names ...string) TransformationMap[T]
}

type CollectionMap[T, E any] interface {
	Ignore(selectors ...func(T) any) CollectionMap[T, E]
	IgnoreNames(names ...string) CollectionMap[T, E]
}

type LinkArgs[T any] struct {
	Relation string
	Selector func(T) any
}

func Link[T any](m TransformationMap[T], relation string, selector func(T) any) TransformationMap[T] { return m }

func LinkAndIgnore[T any](m TransformationMap[T], relation string, selector func(T) any) TransformationMap[T] { return m }

func LinkWith[T any](m TransformationMap[T], args LinkArgs[T]) TransformationMap[T] { return m }

func LinkAndIgnoreWith[T any](m TransformationMap[T], args LinkArgs[T]) TransformationMap[T] { return m }

func Ignore[T any](m TransformationMap[T], selectors ...func(T) any) TransformationMap[T] { return m }

func IgnoreElements[T, E any](m CollectionMap[T, E], selectors ...func(T) any) CollectionMap[T, E] { return m }
`

// Package is a parsed and type-checked test source file.
type Package struct {
	Fset  *token.FileSet
	File  *ast.File
	Src   []byte
	Types *types.Package
	Info  *types.Info
}

// Check parses and type-checks a complete source file of package test.
// The file may import [HALPath] and the standard library.
func Check(tb testing.TB, src string) Package {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Instances:  make(map[*ast.Ident]types.Instance),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: &halImporter{fset: fset, fallback: importer.Default()}}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return Package{Fset: fset, File: f, Src: []byte(src), Types: pkg, Info: info}
}

// CheckFragment parses and type-checks statements.
//
// The statements are wrapped in a function with the parameters
// m hal.TransformationMap[Article] and c hal.CollectionMap[Article, Author],
// where Article has the fields ID, Title, Author and Tags and the method Slug,
// and Author has the field Name.
func CheckFragment(tb testing.TB, src string) Package {
	tb.Helper()

	const header = `package ` + testpkg + `

import "` + HALPath + `"

type Article struct {
	ID     int
	Title  string
	Author Author
	Tags   []string
}

type Author struct {
	Name string
}

func (a Article) Slug() string { return a.Title }

func _(m hal.TransformationMap[Article], c hal.CollectionMap[Article, Author]) {
	_, _ = m, c

`

	return Check(tb, header+src+"\n}\n")
}

// Calls returns the call expressions of the file in preorder.
func (p Package) Calls() []*ast.CallExpr {
	var calls []*ast.CallExpr

	root := inspector.New([]*ast.File{p.File}).Root()
	for c := range root.Preorder((*ast.CallExpr)(nil)) {
		calls = append(calls, c.Node().(*ast.CallExpr))
	}

	return calls
}

// halImporter type-checks [HALSource] for [HALPath] and delegates everything else.
type halImporter struct {
	fset     *token.FileSet
	fallback types.Importer
	hal      *types.Package
}

func (i *halImporter) Import(path string) (*types.Package, error) {
	if path != HALPath {
		return i.fallback.Import(path)
	}

	if i.hal != nil {
		return i.hal, nil
	}

	f, err := parser.ParseFile(i.fset, "hal.go", HALSource, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("can't parse HAL stub: %w", err)
	}

	conf := types.Config{Importer: i.fallback}

	hal, err := conf.Check(HALPath, i.fset, []*ast.File{f}, nil)
	if err != nil {
		return nil, fmt.Errorf("can't check HAL stub: %w", err)
	}

	i.hal = hal

	return hal, nil
}
