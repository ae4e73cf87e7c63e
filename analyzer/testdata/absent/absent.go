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

package absent

// Map has methods named like the HAL transformation API.
type Map struct{}

func (m Map) LinkAndIgnore(relation string, selector func(string) any) Map { return m }

func (m Map) Ignore(selectors ...func(string) any) Map { return m }

func (m Map) Hoist(selector func(string) any) Map { return m }

func transform(m Map) Map {
	m.LinkAndIgnore("length", func(s string) any { return len(s) })

	return m.Hoist(func(s string) any { return s[0] }).Ignore()
}
