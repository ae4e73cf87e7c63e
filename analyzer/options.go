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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/halcheck/analyzer/level"
	"fillmore-labs.com/halcheck/internal/config"
	"fillmore-labs.com/halcheck/internal/run"
)

// Option configures specific behavior of a [New] halcheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPackage is an [Option] to configure the import path of the tracked HAL package.
func WithPackage(path string) Option { return packageOption{path: path} }

type packageOption struct{ path string }

func (o packageOption) apply(r *run.Options) {
	r.Package = o.path
}

func (o packageOption) LogAttr() slog.Attr {
	return slog.String("package", o.path)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestFixes(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fix)
}

// WithSeverity is an [Option] to configure the minimum severity of reported diagnostics.
//
// [level.Hidden] reports fadeout diagnostics spanning the code a fix removes.
func WithSeverity(severity level.Severity) Option { return severityOption{severity: severity} }

type severityOption struct{ severity level.Severity }

func (o severityOption) apply(r *run.Options) {
	r.Severity = o.severity
}

func (o severityOption) LogAttr() slog.Attr {
	return slog.String("severity", o.severity.String())
}

// WithLinkAndIgnore is an [Option] to configure whether LinkAndIgnore selectors are checked.
func WithLinkAndIgnore(enabled bool) Option {
	return ruleOption{key: "link-and-ignore", flag: config.LinkAndIgnoreRule, enabled: enabled}
}

// WithIgnoreExpression is an [Option] to configure whether Ignore selectors are checked.
func WithIgnoreExpression(enabled bool) Option {
	return ruleOption{key: "ignore-expression", flag: config.IgnoreExpressionRule, enabled: enabled}
}

// WithEmptyIgnore is an [Option] to configure whether Ignore calls without arguments are reported.
func WithEmptyIgnore(enabled bool) Option {
	return ruleOption{key: "empty-ignore", flag: config.EmptyIgnoreRule, enabled: enabled}
}

// WithHoist is an [Option] to configure whether Hoist selectors are checked.
func WithHoist(enabled bool) Option {
	return ruleOption{key: "hoist", flag: config.HoistRule, enabled: enabled}
}

// WithIgnoreNames is an [Option] to configure whether names passed to IgnoreNames are checked.
func WithIgnoreNames(enabled bool) Option {
	return ruleOption{key: "ignore-names", flag: config.IgnoreNamesRule, enabled: enabled}
}

type ruleOption struct {
	key     string
	flag    config.RuleFlags
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Set(o.flag, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}
