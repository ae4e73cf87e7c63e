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
	"fillmore-labs.com/halcheck/analyzer/level"
	"fillmore-labs.com/halcheck/internal/config"
	"fillmore-labs.com/halcheck/internal/registry"
	"fillmore-labs.com/halcheck/internal/rules"
)

// Options represent configuration options for the halcheck analyzer.
type Options struct {
	// Package is the import path of the tracked HAL package.
	Package string

	// Rules represent the rules to be enabled.
	Rules config.Rules

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Severity is the minimum severity of reported diagnostics.
	Severity level.Severity
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Package:  registry.DefaultPackage,
		Rules:    config.DefaultRules(),
		Behavior: config.DefaultBehavior(),
		Severity: level.Info,
	}
}

// Enabled reports whether rule r is enabled.
func (r *Options) Enabled(rule rules.Rule) bool {
	return r.Rules.Enabled(config.RuleFlag(rule))
}
