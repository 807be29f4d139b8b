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

// resolveColumn validates a column reference and returns the column index.
// Resolution has no side effects; every public operation resolves its
// references before touching any state.
func (t *Table) resolveColumn(ref ColumnRef) (int, error) {
	if ref.byLabel {
		if ref.label == "" {
			return 0, fmt.Errorf("%w: empty label", ErrInvalidColumn)
		}
		for i, n := range t.names {
			if n != nil && *n == ref.label {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, ref.label)
	}
	if ref.index < 0 || ref.index >= len(t.names) {
		return 0, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidColumn, ref.index, len(t.names))
	}
	return ref.index, nil
}

// resolveRow validates a row index.
func (t *Table) resolveRow(row int) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: %d outside [0, %d)", ErrInvalidRow, row, len(t.rows))
	}
	return nil
}
