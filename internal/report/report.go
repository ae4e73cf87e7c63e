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

// Package report turns rule findings into analysis diagnostics.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/halcheck/analyzer/level"
	"fillmore-labs.com/halcheck/internal/astutil"
	"fillmore-labs.com/halcheck/internal/fix"
	"fillmore-labs.com/halcheck/internal/rules"
)

// Reporter emits diagnostics of a single file.
type Reporter struct {
	pass     *analysis.Pass
	file     astutil.CurrentFile
	severity level.Severity
	fixes    bool
}

// New creates a [Reporter] for file, dropping diagnostics below severity.
//
// Suggested fixes are attached when fixes is set and the file is not generated.
func New(p *analysis.Pass, file astutil.CurrentFile, severity level.Severity, fixes bool) Reporter {
	return Reporter{
		pass:     p,
		file:     file,
		severity: severity,
		fixes:    fixes && !file.Generated(),
	}
}

// Report emits diagnostics.
func (r Reporter) Report(ctx context.Context, diagnostics []rules.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range diagnostics {
		if d.Severity < r.severity || !d.Span.IsValid() {
			continue
		}

		if r.file.NoLintComment(d.Span.Pos) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      d.Span.Pos,
			End:      d.Span.End,
			Category: d.ID(),
			Message:  fmt.Sprintf("%s (%s)", d.Message, d.ID()),
			Related:  related(d),
		}

		if r.fixes && !d.Fadeout && fix.Fixable(d.Rule) {
			edits, err := fix.Compute(d, r.file.File())
			if err == nil {
				diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: fix.Title(d.Rule), TextEdits: edits}}
			} else {
				trace.Logf(ctx, "fix", "%s at %v: %v", d.ID(), r.pass.Fset.Position(d.Span.Pos), err)
			}
		}

		r.pass.Report(diagnostic)
	}
}

// related lists the locations the fix of d operates on.
func related(d rules.Diagnostic) []analysis.RelatedInformation {
	if len(d.Additional) == 0 {
		return nil
	}

	var message string
	switch d.Rule {
	case rules.LinkAndIgnore:
		message = "In this linking statement"

	default:
		message = "In this transformation"
	}

	related := make([]analysis.RelatedInformation, 0, len(d.Additional))
	for _, loc := range d.Additional {
		if !loc.IsValid() {
			continue
		}

		related = append(related, analysis.RelatedInformation{Pos: loc.Pos, End: loc.End, Message: message})
	}

	return related
}
