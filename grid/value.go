// Copyright 2025 Magnus Pierre
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

// Package grid provides a mutable, in-memory, two-dimensional table of
// heterogeneous cell values, addressable by numeric index or by an
// optional column label.
package grid

import "fmt"

// Value is a container for a single cell.
// It holds the raw value and tracks whether the cell is null. A null cell is
// distinct from a cell holding the empty string or a zero value.
type Value struct {
	// Raw holds the underlying value. Different cells may hold different
	// types; no per-column typing is imposed.
	Raw interface{}

	// IsNull indicates whether this cell holds no value.
	IsNull bool
}

// NewValue creates a new Value from a raw value.
// A nil raw value produces a null Value.
func NewValue(raw interface{}) Value {
	if raw == nil {
		return Value{Raw: nil, IsNull: true}
	}
	return Value{Raw: raw}
}

// Null creates a null Value.
func Null() Value {
	return Value{IsNull: true}
}

// String returns a formatted representation of the value.
// Null values format as the empty string.
func (v Value) String() string {
	if v.IsNull {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}
