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

package grid

import "fmt"

// ColumnRef identifies a column either by position or by label.
// Construct one with Index or Label; the zero value refers to column 0.
type ColumnRef struct {
	index   int
	label   string
	byLabel bool
}

// Index creates a ColumnRef addressing a column by position.
func Index(i int) ColumnRef {
	return ColumnRef{index: i}
}

// Label creates a ColumnRef addressing a column by its label.
// Unlabeled columns never match a label reference.
func Label(name string) ColumnRef {
	return ColumnRef{label: name, byLabel: true}
}

// String returns a printable representation of the reference.
func (r ColumnRef) String() string {
	if r.byLabel {
		return fmt.Sprintf("column %q", r.label)
	}
	return fmt.Sprintf("column %d", r.index)
}
