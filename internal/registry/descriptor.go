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

package registry

// Verb is a tracked transformation verb.
type Verb uint8

const (
	// LinkAndIgnore links a relation and ignores the selected member.
	LinkAndIgnore Verb = iota + 1

	// Ignore ignores the selected members.
	Ignore

	// IgnoreNames ignores members by name.
	IgnoreNames

	// Hoist hoists the selected member.
	Hoist
)

// Shape is the syntactic form of a call.
type Shape uint8

const (
	// Method is a call on the map, m.Verb(args...).
	Method Shape = iota + 1

	// Function is a package level call with the map as first argument, hal.Verb(m, args...).
	Function

	// Keyed is a package level call with the map and a LinkArgs literal, hal.VerbWith(m, hal.LinkArgs[T]{...}).
	Keyed
)

// SelectorKey is the field of the keyed argument literal that holds the selector.
const SelectorKey = "Selector"

// Locator identifies the selector-bearing argument.
type Locator struct {
	// Index is the position of the selector, or of the first selector when variadic.
	Index int
	// Key, when not empty, names the selector in calls where all arguments are keyed.
	Key string
}

// Descriptor is the static call shape of a tracked callee.
type Descriptor struct {
	Verb  Verb
	Shape Shape
	// Selector locates the selector argument.
	Selector Locator
	// Variadic is set when every argument from Selector.Index onward is a selector.
	Variadic bool
	// ByName is set when selectors are member names instead of functions.
	ByName bool
	// ArgsIndex is the position of the keyed argument literal for [Keyed] calls.
	ArgsIndex int
}

// Locate returns the index of the selector among arguments with the given keys.
//
// When all arguments are keyed the selector is found by key, independent of
// the argument order. Otherwise it is found by position.
func (l Locator) Locate(keys []string, allKeyed bool) (int, bool) {
	if allKeyed && l.Key != "" {
		for i, key := range keys {
			if key == l.Key {
				return i, true
			}
		}

		return -1, false
	}

	if l.Index < 0 || l.Index >= len(keys) {
		return -1, false
	}

	return l.Index, true
}

type signature struct {
	typeName, name string
	descriptor     Descriptor
}

const (
	transformationMap = "TransformationMap"
	collectionMap     = "CollectionMap"
)

// signatures is the tracked API surface.
var signatures = [...]signature{
	{transformationMap, "LinkAndIgnore", Descriptor{Verb: LinkAndIgnore, Shape: Method, Selector: Locator{Index: 1}}},
	{"", "LinkAndIgnore", Descriptor{Verb: LinkAndIgnore, Shape: Function, Selector: Locator{Index: 2}}},
	{"", "LinkAndIgnoreWith", Descriptor{Verb: LinkAndIgnore, Shape: Keyed, Selector: Locator{Index: 1, Key: SelectorKey}, ArgsIndex: 1}},

	{transformationMap, "Hoist", Descriptor{Verb: Hoist, Shape: Method, Selector: Locator{Index: 0}}},

	{transformationMap, "Ignore", Descriptor{Verb: Ignore, Shape: Method, Selector: Locator{Index: 0}, Variadic: true}},
	{collectionMap, "Ignore", Descriptor{Verb: Ignore, Shape: Method, Selector: Locator{Index: 0}, Variadic: true}},
	{"", "Ignore", Descriptor{Verb: Ignore, Shape: Function, Selector: Locator{Index: 1}, Variadic: true}},
	{"", "IgnoreElements", Descriptor{Verb: Ignore, Shape: Function, Selector: Locator{Index: 1}, Variadic: true}},

	{transformationMap, "IgnoreNames", Descriptor{Verb: IgnoreNames, Shape: Method, Selector: Locator{Index: 0}, Variadic: true, ByName: true}},
	{collectionMap, "IgnoreNames", Descriptor{Verb: IgnoreNames, Shape: Method, Selector: Locator{Index: 0}, Variadic: true, ByName: true}},
}

// Selectors returns the positions of all selector arguments among arguments with the given keys.
func (d Descriptor) Selectors(keys []string, allKeyed bool) []int {
	if !d.Variadic {
		i, ok := d.Selector.Locate(keys, allKeyed)
		if !ok {
			return nil
		}

		return []int{i}
	}

	if d.Selector.Index < 0 || d.Selector.Index >= len(keys) {
		return nil
	}

	indices := make([]int, 0, len(keys)-d.Selector.Index)
	for i := d.Selector.Index; i < len(keys); i++ {
		indices = append(indices, i)
	}

	return indices
}
