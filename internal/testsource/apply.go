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

package testsource

import (
	"bytes"
	"cmp"
	"errors"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrOverlappingEdits is returned by [Apply] for edits that overlap or leave the source.
var ErrOverlappingEdits = errors.New("overlapping edits")

// Apply applies non-overlapping edits to src, which starts at position base.
func Apply(src []byte, base token.Pos, edits []analysis.TextEdit) ([]byte, error) {
	sorted := slices.SortedFunc(slices.Values(edits), func(a, b analysis.TextEdit) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	var out bytes.Buffer

	last := 0
	for _, e := range sorted {
		start, end := int(e.Pos-base), int(e.End-base)
		if start < last || end < start || end > len(src) {
			return nil, ErrOverlappingEdits
		}

		out.Write(src[last:start]) // ignore error
		out.Write(e.NewText)       // ignore error
		last = end
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}
