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

// Package hal is a minimal rendition of the HAL transformation API.
package hal

// TransformationMap describes the transformation of T into a resource.
type TransformationMap[T any] interface {
	Link(relation string, selector func(T) any) TransformationMap[T]
	LinkAndIgnore(relation string, selector func(T) any) TransformationMap[T]
	Hoist(selector func(T) any) TransformationMap[T]
	Ignore(selectors ...func(T) any) TransformationMap[T]
	IgnoreNames(names ...string) TransformationMap[T]
}

// CollectionMap describes the transformation of T into a collection resource of E.
type CollectionMap[T, E any] interface {
	Ignore(selectors ...func(T) any) CollectionMap[T, E]
	IgnoreNames(names ...string) CollectionMap[T, E]
}

// LinkArgs are the arguments of [LinkWith] and [LinkAndIgnoreWith].
type LinkArgs[T any] struct {
	Relation string
	Selector func(T) any
}

func Link[T any](m TransformationMap[T], relation string, selector func(T) any) TransformationMap[T] {
	return m.Link(relation, selector)
}

func LinkAndIgnore[T any](m TransformationMap[T], relation string, selector func(T) any) TransformationMap[T] {
	return m.LinkAndIgnore(relation, selector)
}

func LinkWith[T any](m TransformationMap[T], args LinkArgs[T]) TransformationMap[T] {
	return m.Link(args.Relation, args.Selector)
}

func LinkAndIgnoreWith[T any](m TransformationMap[T], args LinkArgs[T]) TransformationMap[T] {
	return m.LinkAndIgnore(args.Relation, args.Selector)
}

func Ignore[T any](m TransformationMap[T], selectors ...func(T) any) TransformationMap[T] {
	return m.Ignore(selectors...)
}

func IgnoreElements[T, E any](m CollectionMap[T, E], selectors ...func(T) any) CollectionMap[T, E] {
	return m.Ignore(selectors...)
}
