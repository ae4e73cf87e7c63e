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

package gclplugin

import (
	"fmt"

	"fillmore-labs.com/halcheck/analyzer"
	"fillmore-labs.com/halcheck/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Package is the import path of the tracked HAL package.
	Package *string `json:"package,omitzero"`
	// Severity is the minimum severity of reported diagnostics.
	Severity *string `json:"severity,omitzero"`
	// LinkAndIgnore enables checks of LinkAndIgnore selectors.
	LinkAndIgnore *bool `json:"link-and-ignore,omitzero"`
	// IgnoreExpression enables checks of Ignore selectors.
	IgnoreExpression *bool `json:"ignore-expression,omitzero"`
	// EmptyIgnore enables reporting of Ignore without arguments.
	EmptyIgnore *bool `json:"empty-ignore,omitzero"`
	// Hoist enables checks of Hoist selectors.
	Hoist *bool `json:"hoist,omitzero"`
	// IgnoreNames enables checks of names passed to IgnoreNames.
	IgnoreNames *bool `json:"ignore-names,omitzero"`
	// Fix enables suggested fixes.
	Fix *bool `json:"fix,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the halcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]analyzer.Option, error) {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Package, analyzer.WithPackage)

	if s.Severity != nil {
		var severity level.Severity
		if err := severity.UnmarshalText([]byte(*s.Severity)); err != nil {
			return nil, fmt.Errorf("halcheck: invalid severity setting: %w", err)
		}

		opts = append(opts, analyzer.WithSeverity(severity))
	}

	opts = appendOption(opts, s.LinkAndIgnore, analyzer.WithLinkAndIgnore)
	opts = appendOption(opts, s.IgnoreExpression, analyzer.WithIgnoreExpression)
	opts = appendOption(opts, s.EmptyIgnore, analyzer.WithEmptyIgnore)
	opts = appendOption(opts, s.Hoist, analyzer.WithHoist)
	opts = appendOption(opts, s.IgnoreNames, analyzer.WithIgnoreNames)
	opts = appendOption(opts, s.Fix, analyzer.WithSuggestFixes)

	return opts, nil
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
