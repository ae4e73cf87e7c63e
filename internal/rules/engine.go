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

package rules

import (
	"go/token"
	"slices"
	"strings"

	"fillmore-labs.com/halcheck/analyzer/level"
	"fillmore-labs.com/halcheck/internal/registry"
	"fillmore-labs.com/halcheck/internal/selector"
)

// andIgnore is the suffix of LinkAndIgnore that makes the call fail.
const andIgnore = "AndIgnore"

// finding is the location of a rule violation.
type finding struct {
	span       selector.Span
	additional []selector.Span
}

// definition describes how one rule classifies its call sites.
type definition struct {
	rule     Rule
	verbs    []registry.Verb
	severity level.Severity
	message  string
	// check returns the violations of a call site.
	check func(c CallSite, d registry.Descriptor) []finding
	// fadeout optionally returns the span that can be removed together with the fix.
	fadeout func(c CallSite) (selector.Span, bool)
}

var definitions = [...]definition{
	{
		rule:     LinkAndIgnore,
		verbs:    []registry.Verb{registry.LinkAndIgnore},
		severity: level.Error,
		message:  "Selector must be a simple member selector, remove suffix 'AndIgnore' from linking statement",
		check:    checkLinkAndIgnore,
		fadeout:  andIgnoreSuffix,
	},
	{
		rule:     IgnoreExpression,
		verbs:    []registry.Verb{registry.Ignore},
		severity: level.Error,
		message:  "Selector must be a simple member selector, remove invalid selector from ignore transformation",
		check:    checkIgnoreExpression,
	},
	{
		rule:     EmptyIgnore,
		verbs:    []registry.Verb{registry.Ignore, registry.IgnoreNames},
		severity: level.Info,
		message:  "Remove empty ignore transformation",
		check:    checkEmptyIgnore,
	},
	{
		rule:     Hoist,
		verbs:    []registry.Verb{registry.Hoist},
		severity: level.Error,
		message:  "Selector must be a simple member selector, remove meaningless hoist transformation",
		check:    checkHoist,
		fadeout:  receiverSuffix,
	},
	{
		rule:     IgnoreNames,
		verbs:    []registry.Verb{registry.IgnoreNames},
		severity: level.Warning,
		message:  "Name must be a member of the transformed type, ignoring it has no effect",
		check:    checkIgnoreNames,
	},
}

// Severity returns the severity of primary diagnostics of a rule.
func (r Rule) Severity() level.Severity {
	for _, s := range definitions {
		if s.rule == r {
			return s.severity
		}
	}

	return level.Hidden
}

// Evaluate computes the diagnostics of a call site.
//
// enabled may be nil, which enables all rules.
func Evaluate(c CallSite, d registry.Descriptor, enabled func(Rule) bool) []Diagnostic {
	var diagnostics []Diagnostic

	for _, s := range definitions {
		if !slices.Contains(s.verbs, d.Verb) || enabled != nil && !enabled(s.rule) {
			continue
		}

		for _, f := range s.check(c, d) {
			diagnostics = append(diagnostics, Diagnostic{
				Rule:       s.rule,
				Severity:   s.severity,
				Span:       f.span,
				Additional: f.additional,
				Message:    s.message,
			})

			if s.fadeout == nil {
				continue
			}

			if span, ok := s.fadeout(c); ok {
				diagnostics = append(diagnostics, Diagnostic{
					Rule:     s.rule,
					Severity: level.Hidden,
					Fadeout:  true,
					Span:     span,
					Message:  s.message,
				})
			}
		}
	}

	return diagnostics
}

// classifySole classifies the single selector of a call site.
func classifySole(c CallSite, d registry.Descriptor) (selector.Verdict, bool) {
	selectors := c.selectors(d)
	if len(selectors) != 1 {
		return selector.Verdict{}, false
	}

	v := selector.Classify(selectors[0])

	return v, !v.Simple() && v.Blame.IsValid()
}

func checkLinkAndIgnore(c CallSite, d registry.Descriptor) []finding {
	v, fired := classifySole(c, d)
	if !fired || !c.Name.IsValid() {
		return nil
	}

	return []finding{{span: v.Blame, additional: []selector.Span{c.Name}}}
}

func checkIgnoreExpression(c CallSite, d registry.Descriptor) []finding {
	var findings []finding

	for _, e := range c.selectors(d) {
		if v := selector.Classify(e); !v.Simple() && v.Blame.IsValid() {
			findings = append(findings, finding{span: v.Blame})
		}
	}

	return findings
}

func checkEmptyIgnore(c CallSite, d registry.Descriptor) []finding {
	if d.Shape != registry.Method || len(c.Args) != 0 || !c.Receiver.IsValid() {
		return nil
	}

	return []finding{{span: c.afterReceiver(), additional: []selector.Span{c.Invocation}}}
}

func checkHoist(c CallSite, d registry.Descriptor) []finding {
	v, fired := classifySole(c, d)
	if !fired || d.Shape != registry.Method || !c.Receiver.IsValid() {
		return nil
	}

	return []finding{{span: v.Blame, additional: []selector.Span{c.Invocation}}}
}

func checkIgnoreNames(c CallSite, d registry.Descriptor) []finding {
	if !d.ByName {
		return nil
	}

	var findings []finding

	for _, e := range c.selectors(d) {
		if v := selector.MatchName(e, c.Members); !v.Simple() && v.Blame.IsValid() {
			findings = append(findings, finding{span: v.Blame})
		}
	}

	return findings
}

// andIgnoreSuffix spans "AndIgnore" in the called name.
func andIgnoreSuffix(c CallSite) (selector.Span, bool) {
	i := strings.LastIndex(c.Method, andIgnore)
	if i < 0 || int(c.Name.End-c.Name.Pos) != len(c.Method) {
		return selector.Span{}, false
	}

	pos := c.Name.Pos + token.Pos(i)

	return selector.Span{Pos: pos, End: pos + token.Pos(len(andIgnore))}, true
}

// receiverSuffix spans the member access operator through the argument list.
func receiverSuffix(c CallSite) (selector.Span, bool) {
	s := c.afterReceiver()

	return s, s.IsValid()
}
