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

// Package selector classifies selector arguments of the HAL transformation API.
//
// A selector is simple when it is a function literal with exactly one parameter
// whose only statement returns a member access off that parameter, optionally
// wrapped in value conversions:
//
//	func(l Linker) any { return l.Link }
//	func(l Linker) any { return any(l.Link) }
//
// Classification works on [Expr], a reduced view of the host's syntax tree, so
// it can be exercised without a parser.
package selector
