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

package config

import "fillmore-labs.com/halcheck/internal/rules"

// RuleFlags represents specific rules.
type RuleFlags uint8

const (
	// LinkAndIgnoreRule enables checks of LinkAndIgnore selectors.
	LinkAndIgnoreRule RuleFlags = 1 << iota

	// IgnoreExpressionRule enables checks of Ignore selectors.
	IgnoreExpressionRule

	// EmptyIgnoreRule enables reporting of Ignore calls without arguments.
	EmptyIgnoreRule

	// HoistRule enables checks of Hoist selectors.
	HoistRule

	// IgnoreNamesRule enables checks of names passed to IgnoreNames.
	IgnoreNamesRule

	// AllRules enables all rules.
	AllRules = LinkAndIgnoreRule | IgnoreExpressionRule | EmptyIgnoreRule | HoistRule | IgnoreNamesRule
)

// Rules is a set of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns the rules enabled by default.
func DefaultRules() Rules {
	return NewBitMask(AllRules)
}

// RuleFlag maps a rule to its flag.
func RuleFlag(r rules.Rule) RuleFlags {
	switch r {
	case rules.LinkAndIgnore:
		return LinkAndIgnoreRule

	case rules.IgnoreExpression:
		return IgnoreExpressionRule

	case rules.EmptyIgnore:
		return EmptyIgnoreRule

	case rules.Hoist:
		return HoistRule

	case rules.IgnoreNames:
		return IgnoreNamesRule

	default:
		return 0
	}
}

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestFixes specifies whether to attach suggested fixes to diagnostics.
	SuggestFixes
)

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(SuggestFixes)
}
