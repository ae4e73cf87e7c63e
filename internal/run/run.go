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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/halcheck/internal/astutil"
	"fillmore-labs.com/halcheck/internal/callsite"
	"fillmore-labs.com/halcheck/internal/config"
	"fillmore-labs.com/halcheck/internal/registry"
	"fillmore-labs.com/halcheck/internal/report"
	"fillmore-labs.com/halcheck/internal/rules"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the halcheck analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("halcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "halcheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	reg := newRegistry(ctx, p, r.Package)
	if reg == nil {
		// The tracked package is not imported, so nothing can call it.
		return nil, nil
	}

	builder := callsite.New(p.TypesInfo, reg)
	fixes := r.Behavior.Enabled(config.SuggestFixes)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		reporter := report.New(p, currentFile, r.Severity, fixes)

		for c := range f.Preorder((*ast.CallExpr)(nil)) {
			call := c.Node().(*ast.CallExpr)

			site, descriptor, ok := builder.Build(call)
			if !ok {
				continue
			}

			reporter.Report(ctx, rules.Evaluate(site, descriptor, r.Enabled))
		}
	}

	return nil, nil
}

func newRegistry(ctx context.Context, p *analysis.Pass, path string) *registry.Registry {
	defer trace.StartRegion(ctx, "Registry").End()

	reg := registry.New(p.Pkg, path)
	trace.Logf(ctx, "registry", "%d tracked callees", reg.Len())

	return reg
}
