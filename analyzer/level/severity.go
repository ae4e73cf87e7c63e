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

// Package level defines diagnostic severity levels.
package level

import (
	"fmt"
	"strings"
)

// Severity specifies how serious a diagnostic is.
type Severity uint8

const (
	// Hidden marks diagnostics that exist only for tools, like removable spans.
	Hidden Severity = iota

	// Info marks harmless but wasteful code.
	Info

	// Warning marks meaningless code.
	Warning

	// Error marks code that fails at runtime.
	Error
)

// String returns the textual representation of the severity.
func (o Severity) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Severity(%d)", o)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Severity) MarshalText() ([]byte, error) {
	switch o {
	case Hidden:
		return []byte("hidden"), nil

	case Info:
		return []byte("info"), nil

	case Warning:
		return []byte("warning"), nil

	case Error:
		return []byte("error"), nil

	default:
		return nil, fmt.Errorf("unknown severity level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "hidden", "all":
		*o = Hidden

	case "", "info":
		*o = Info

	case "warning", "warn":
		*o = Warning

	case "error":
		*o = Error

	default:
		return fmt.Errorf("unknown severity level %q", string(text))
	}

	return nil
}
