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
	"flag"

	"fillmore-labs.com/halcheck/internal/config"
	"fillmore-labs.com/halcheck/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.StringVar(&r.Package, "package", r.Package, "import path of the tracked HAL package")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.TextVar(&r.Severity, "severity", r.Severity, "minimum severity of reported diagnostics: hidden, info, warning or error")

	flags.Var(newRuleValue(&r.Rules, config.LinkAndIgnoreRule), "link-and-ignore", "check selectors of LinkAndIgnore (TH1001)")
	flags.Var(newRuleValue(&r.Rules, config.IgnoreExpressionRule), "ignore-expression", "check selectors of Ignore (TH1002)")
	flags.Var(newRuleValue(&r.Rules, config.EmptyIgnoreRule), "empty-ignore", "report Ignore without arguments (TH1003)")
	flags.Var(newRuleValue(&r.Rules, config.HoistRule), "hoist", "check selectors of Hoist (TH1004)")
	flags.Var(newRuleValue(&r.Rules, config.IgnoreNamesRule), "ignore-names", "check names passed to IgnoreNames (TH1005)")

	flags.Var(&configValue{options: r}, "config", "read options from a YAML configuration file")
}
