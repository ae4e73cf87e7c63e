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

package nofix

import "test/hal"

func transform(m hal.TransformationMap[Article]) hal.TransformationMap[Article] {
	m.LinkAndIgnore("name", func(a Article) any { return a.Author.Name }) // want "TH1001"

	m.Ignore(func(a Article) any { return a.Slug() }) // want "TH1002"

	m.IgnoreNames("Stromboli") // want "TH1005"

	return m.Hoist(func(a Article) any { return a.Author.Name }).Ignore() // want "TH1004" "TH1003"
}
