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

import (
	"strings"

	"test/hal"
)

func linkAndIgnore(m hal.TransformationMap[Article]) {
	m.LinkAndIgnore("author", func(a Article) any { return a.Author })

	m.LinkAndIgnore("author", func(a Article) any { return any(a.Author) })

	m.Link("name", func(a Article) any { return a.Author.Name })

	m.LinkAndIgnore("name", func(a Article) any { return a.Author.Name }) // want "remove suffix 'AndIgnore' from linking statement \\(TH1001\\)"

	m.LinkAndIgnore("title", func(a Article) any { return strings.ToLower(a.Title) }) // want "TH1001"

	hal.LinkAndIgnore(m, "name", func(a Article) any { return a.Author.Name }) // want "TH1001"

	hal.LinkAndIgnore[Article](m, "name", func(a Article) any { return a.Author.Name }) // want "TH1001"

	hal.LinkAndIgnore(m, "author", func(a Article) any { return a.Author })
}

func chained(m hal.TransformationMap[Article]) hal.TransformationMap[Article] {
	return m.Link("self", func(a Article) any { return a.ID }).LinkAndIgnore("tag", func(a Article) any { return a.Tags[0] }) // want "TH1001"
}

func ignore(m hal.TransformationMap[Article], c hal.CollectionMap[Article, Author], selectors []func(Article) any) {
	m.Ignore(func(a Article) any { return a.Tags })

	m.Ignore(func(a Article) any { return a.Tags }, func(a Article) any { return a.Author.Name }) // want "remove invalid selector from ignore transformation \\(TH1002\\)"

	m.Ignore(func(a Article) any { return a.Slug() }) // want "TH1002"

	m.Ignore(selectors...) // want "TH1002"

	hal.Ignore(m, func(a Article) any { return len(a.Tags) }) // want "TH1002"

	hal.Ignore(m)

	c.Ignore(func(a Article) any { return a.Author.Name }) // want "TH1002"

	c.Ignore(func(a Article) any { return a.Title })

	hal.IgnoreElements(c, func(a Article) any { return a.ID })
}

func emptyIgnore(m hal.TransformationMap[Article]) hal.TransformationMap[Article] {
	return m.Ignore() // want "Remove empty ignore transformation \\(TH1003\\)"
}

func emptyIgnoreNames(c hal.CollectionMap[Article, Author]) hal.CollectionMap[Article, Author] {
	return c.IgnoreNames() // want "TH1003"
}

func hoist(m hal.TransformationMap[Article]) hal.TransformationMap[Article] {
	m.Hoist(func(a Article) any { return a.Author })

	return m.Hoist(func(a Article) any { return a.Author.Name }).Link("self", func(a Article) any { return a.ID }) // want "remove meaningless hoist transformation \\(TH1004\\)"
}

func hoistAndIgnore(m hal.TransformationMap[Article]) hal.TransformationMap[Article] {
	return m.Hoist(func(a Article) any { return a.Author.Name }).Ignore() // want "TH1004" "TH1003"
}

func ignoreNames(m hal.TransformationMap[Article], c hal.CollectionMap[Article, Author], name string) {
	m.IgnoreNames(idField, titleField, slugField)

	m.IgnoreNames("Title") // want "TH1005"

	m.IgnoreNames("Stromboli") // want "Name must be a member of the transformed type, ignoring it has no effect \\(TH1005\\)"

	m.IgnoreNames(idField, "ID", "id") // want "TH1005" "TH1005"

	m.IgnoreNames(name) // want "TH1005"

	c.IgnoreNames(tagsField)

	c.IgnoreNames(nameField) // want "TH1005"
}

func suppressed(m hal.TransformationMap[Article]) {
	m.LinkAndIgnore("name", func(a Article) any { return a.Author.Name }) //nolint:halcheck
}
