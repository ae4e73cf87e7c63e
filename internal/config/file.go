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

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/halcheck/analyzer/level"
	"fillmore-labs.com/halcheck/internal/rules"
)

// ErrUnknownRule is returned for rule names in a configuration file that don't denote a rule.
var ErrUnknownRule = errors.New("unknown rule")

// File is the content of a YAML configuration file.
//
//	package: github.com/tiger-hal/hal
//	generated: false
//	severity: info
//	rules:
//	  TH1003: false
//	  ignore-names: true
type File struct {
	// Package is the import path of the tracked HAL package.
	Package string `yaml:"package"`
	// Generated enables diagnostics in generated files.
	Generated *bool `yaml:"generated"`
	// Fix enables suggested fixes.
	Fix *bool `yaml:"fix"`
	// Severity is the minimum severity of reported diagnostics.
	Severity *level.Severity `yaml:"severity"`
	// Rules enables or disables rules by id or name.
	Rules map[string]bool `yaml:"rules"`
}

// Load reads a configuration file.
func Load(name string) (File, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return File{}, fmt.Errorf("can't read config: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", name, err)
	}

	return f, nil
}

// Parse decodes a configuration, rejecting unknown keys and rule names.
func Parse(data []byte) (File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	for name := range f.Rules {
		if _, ok := ParseRule(name); !ok {
			return File{}, fmt.Errorf("%w %q", ErrUnknownRule, name)
		}
	}

	return f, nil
}

// ruleNames are the names usable for rules besides their ids.
var ruleNames = map[string]rules.Rule{
	"link-and-ignore":   rules.LinkAndIgnore,
	"ignore-expression": rules.IgnoreExpression,
	"empty-ignore":      rules.EmptyIgnore,
	"hoist":             rules.Hoist,
	"ignore-names":      rules.IgnoreNames,
}

// ParseRule returns the flag of a rule given by id (TH1001) or name (link-and-ignore).
func ParseRule(name string) (RuleFlags, bool) {
	if r, ok := ruleNames[strings.ToLower(name)]; ok {
		return RuleFlag(r), true
	}

	for _, r := range rules.All {
		if strings.EqualFold(r.String(), name) {
			return RuleFlag(r), true
		}
	}

	return 0, false
}
