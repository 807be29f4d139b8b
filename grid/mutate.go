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

import (
	"fmt"
	"slices"
)

// AddColumns inserts number new columns as a contiguous block at position at.
// at == -1 appends; otherwise at must lie in [0, ColumnCount), and every
// existing column index at or after it shifts right by number. Each existing
// row gains number null cells at the same position.
//
// names is optional; when non-empty it must hold exactly number entries and
// must not repeat a non-empty label, within the block or against existing
// labels. The empty table is terminal and cannot be grown.
func (t *Table) AddColumns(number int, names []string, at int) error {
	if number <= 0 {
		return fmt.Errorf("%w: number of columns must be positive, got %d", ErrInvalidDimension, number)
	}
	if len(t.rows) == 0 {
		return fmt.Errorf("%w: cannot add columns to an empty table", ErrInvalidDimension)
	}
	if at == -1 {
		at = len(t.names)
	} else if at < 0 || at >= len(t.names) {
		return fmt.Errorf("%w: insert position %d outside [0, %d)", ErrInvalidColumn, at, len(t.names))
	}
	if len(names) > 0 && len(names) != number {
		return fmt.Errorf("%w: got %d names for %d new columns", ErrDimensionMismatch, len(names), number)
	}
	if err := checkDuplicateNames(names); err != nil {
		return err
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		for _, existing := range t.names {
			if existing != nil && *existing == n {
				return fmt.Errorf("%w: %q", ErrDuplicateName, n)
			}
		}
	}

	block := make([]*string, number)
	if len(names) > 0 {
		for i := range names {
			n := names[i]
			block[i] = &n
		}
	}
	t.names = slices.Insert(t.names, at, block...)
	for i := range t.rows {
		t.rows[i] = slices.Insert(t.rows[i], at, nullRow(number)...)
	}
	return nil
}

// RemoveColumn removes one column, splicing its label and its cell out of
// every row so the relative order of the remaining columns is preserved.
// Removing the last column collapses the table to the canonical empty state.
func (t *Table) RemoveColumn(col ColumnRef) error {
	c, err := t.resolveColumn(col)
	if err != nil {
		return err
	}
	t.names = slices.Delete(t.names, c, c+1)
	if len(t.names) == 0 {
		t.rows = nil
		return nil
	}
	for i := range t.rows {
		t.rows[i] = slices.Delete(t.rows[i], c, c+1)
	}
	return nil
}

// AddRows inserts number new full-width rows of null cells at position at.
// at == -1 appends; otherwise at must lie in [0, RowCount), and existing rows
// at or after it shift down by number. The empty table is terminal and cannot
// be grown.
func (t *Table) AddRows(number, at int) error {
	if number <= 0 {
		return fmt.Errorf("%w: number of rows must be positive, got %d", ErrInvalidDimension, number)
	}
	if len(t.names) == 0 {
		return fmt.Errorf("%w: cannot add rows to a table without columns", ErrInvalidDimension)
	}
	if at == -1 {
		at = len(t.rows)
	} else if at < 0 || at >= len(t.rows) {
		return fmt.Errorf("%w: insert position %d outside [0, %d)", ErrInvalidRow, at, len(t.rows))
	}

	fresh := make([][]Value, number)
	for i := range fresh {
		fresh[i] = nullRow(len(t.names))
	}
	t.rows = slices.Insert(t.rows, at, fresh...)
	return nil
}

// RemoveRow removes the row at the given position, preserving the order of
// the remaining rows. Removing the last row collapses the table to the
// canonical empty state, clearing the columns and their labels as well.
func (t *Table) RemoveRow(row int) error {
	if err := t.resolveRow(row); err != nil {
		return err
	}
	t.rows = slices.Delete(t.rows, row, row+1)
	if len(t.rows) == 0 {
		t.names = nil
	}
	return nil
}
