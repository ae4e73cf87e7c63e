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
	"fmt"
	"maps"
	"slices"

	"fillmore-labs.com/halcheck/internal/config"
)

// LoadOptions reads a YAML configuration file and returns the [Options] it sets:
//
//	package: github.com/tiger-hal/hal
//	generated: false
//	fix: true
//	severity: warning
//	rules:
//	  TH1003: false
//	  ignore-names: true
//
// Keys that are not present leave the defaults unchanged.
func LoadOptions(name string) (Options, error) {
	f, err := config.Load(name)
	if err != nil {
		return nil, fmt.Errorf("halcheck: %w", err)
	}

	return fileOptions(f), nil
}

func fileOptions(f config.File) Options {
	var opts Options

	if f.Package != "" {
		opts = append(opts, WithPackage(f.Package))
	}

	if f.Generated != nil {
		opts = append(opts, WithGenerated(*f.Generated))
	}

	if f.Fix != nil {
		opts = append(opts, WithSuggestFixes(*f.Fix))
	}

	if f.Severity != nil {
		opts = append(opts, WithSeverity(*f.Severity))
	}

	for _, name := range slices.Sorted(maps.Keys(f.Rules)) {
		flag, ok := config.ParseRule(name)
		if !ok {
			continue // rejected by config.Parse
		}

		opts = append(opts, ruleOption{key: name, flag: flag, enabled: f.Rules[name]})
	}

	return opts
}
