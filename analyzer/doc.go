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

// Package analyzer implements the halcheck static analysis pass.
//
// # Overview
//
// halcheck checks the selector arguments of the HAL fluent transformation
// API. A selector must be a function literal returning a member of its single
// parameter. Other selectors fail at runtime or silently have no effect.
//
// # Example
//
// Before:
//
//	m.LinkAndIgnore("self", func(l Linker) any { return strings.ToLower(l.Link) })
//	m.Hoist(func(l Linker) any { return l.Embedded.Link }).Ignore()
//
// After applying halcheck's suggested fixes:
//
//	m.Link("self", func(l Linker) any { return strings.ToLower(l.Link) })
//	m
//
// # Rules
//
//   - TH1001 (error): non-simple selector passed to LinkAndIgnore
//   - TH1002 (error): non-simple selector passed to Ignore
//   - TH1003 (info): Ignore without arguments
//   - TH1004 (error): non-simple selector passed to Hoist
//   - TH1005 (warning): name passed to IgnoreNames that is not a member
//
// TH1001 and TH1004 additionally report hidden fadeout diagnostics
// (TH1001_fadeout, TH1004_fadeout) spanning the code their fix removes. They
// are shown with -severity=hidden.
package analyzer
