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

package a

import "test/hal"

func keyed(m hal.TransformationMap[Article]) {
	hal.LinkAndIgnoreWith(m, hal.LinkArgs[Article]{Relation: "author", Selector: func(a Article) any { return a.Author }})

	hal.LinkAndIgnoreWith(m, hal.LinkArgs[Article]{Selector: func(a Article) any { return a.Author.Name }, Relation: "name"}) // want "TH1001"

	hal.LinkAndIgnoreWith(m, hal.LinkArgs[Article]{"name", func(a Article) any { return a.Author.Name }}) // want "TH1001"

	hal.LinkAndIgnoreWith(m, hal.LinkArgs[Article]{Relation: "name"}) // want "TH1001"

	hal.LinkAndIgnoreWith(m, hal.LinkArgs[Article]{}) // want "TH1001"

	hal.LinkWith(m, hal.LinkArgs[Article]{Relation: "name", Selector: func(a Article) any { return a.Author.Name }})

	args := hal.LinkArgs[Article]{Selector: func(a Article) any { return a.Author.Name }}
	hal.LinkAndIgnoreWith(m, args)
}
