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

// Table is a mutable, dense, row-major grid of heterogeneous cell values.
// Columns may carry an optional label; non-empty labels are unique across the
// table. A Table is either empty (zero rows and zero columns) or fully
// two-dimensional; it never holds rows without columns or the reverse.
//
// Table provides no internal synchronization. It is exclusively owned by its
// caller; concurrent access must be guarded externally.
type Table struct {
	names []*string // one entry per column, nil = unlabeled
	rows  [][]Value // every row kept at len(names)
	meta  Metadata
}

// New creates a table with the given dimensions. All cells start null and all
// columns start unlabeled.
//
// Returns ErrInvalidDimension if either count is negative, or if exactly one
// of them is zero. The all-zero table is always legal.
func New(rows, cols int) (*Table, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: rows=%d, columns=%d", ErrInvalidDimension, rows, cols)
	}
	if (rows > 0) != (cols > 0) {
		return nil, fmt.Errorf("%w: rows=%d with columns=%d", ErrInvalidDimension, rows, cols)
	}
	t := &Table{names: make([]*string, cols)}
	t.rows = make([][]Value, rows)
	for i := range t.rows {
		t.rows[i] = nullRow(cols)
	}
	return t, nil
}

// NewWithColumns creates a table with one column per name. Every name is a
// real label, including the empty string. Non-empty names must be pairwise
// distinct.
//
// Returns ErrInvalidDimension for an illegal rows/columns pairing and
// ErrDuplicateName for repeated non-empty names.
func NewWithColumns(rows int, names []string) (*Table, error) {
	if err := checkDuplicateNames(names); err != nil {
		return nil, err
	}
	t, err := New(rows, len(names))
	if err != nil {
		return nil, err
	}
	for i := range names {
		n := names[i]
		t.names[i] = &n
	}
	return t, nil
}

// RowCount returns the current number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the current number of columns.
func (t *Table) ColumnCount() int {
	return len(t.names)
}

// CellCount returns the total number of cells.
func (t *Table) CellCount() int {
	return len(t.rows) * len(t.names)
}

// Cell returns the value at the specified row and column, or a null Value if
// the cell was never set.
func (t *Table) Cell(row int, col ColumnRef) (Value, error) {
	c, err := t.resolveColumn(col)
	if err != nil {
		return Value{}, err
	}
	if err := t.resolveRow(row); err != nil {
		return Value{}, err
	}
	if c >= len(t.rows[row]) {
		return Null(), nil
	}
	return t.rows[row][c], nil
}

// SetCell stores v at the specified row and column, silently overwriting any
// previous value, and returns the stored value.
func (t *Table) SetCell(row int, col ColumnRef, v Value) (Value, error) {
	c, err := t.resolveColumn(col)
	if err != nil {
		return Value{}, err
	}
	if err := t.resolveRow(row); err != nil {
		return Value{}, err
	}
	t.rows[row][c] = v
	return v, nil
}

// Column returns the values of one column, in row order.
func (t *Table) Column(col ColumnRef) ([]Value, error) {
	c, err := t.resolveColumn(col)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(t.rows))
	for i, r := range t.rows {
		if c < len(r) {
			out[i] = r[c]
		} else {
			out[i] = Null()
		}
	}
	return out, nil
}

// SetColumn overwrites every cell of one column positionally.
// data must be non-empty and hold exactly one value per row.
func (t *Table) SetColumn(col ColumnRef, data []Value) error {
	c, err := t.resolveColumn(col)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: column data", ErrEmptyData)
	}
	if len(data) != len(t.rows) {
		return fmt.Errorf("%w: got %d values for %d rows", ErrDimensionMismatch, len(data), len(t.rows))
	}
	for i := range t.rows {
		t.rows[i][c] = data[i]
	}
	return nil
}

// Row returns all values of one row. The result always has ColumnCount
// entries; if internal storage for the row is shorter, it is right-padded
// with null values.
func (t *Table) Row(row int) ([]Value, error) {
	if err := t.resolveRow(row); err != nil {
		return nil, err
	}
	out := make([]Value, len(t.names))
	copy(out, t.rows[row])
	for i := len(t.rows[row]); i < len(out); i++ {
		out[i] = Null()
	}
	return out, nil
}

// SetRow replaces one row positionally.
// data must be non-empty and hold exactly one value per column.
func (t *Table) SetRow(row int, data []Value) error {
	if err := t.resolveRow(row); err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: row data", ErrEmptyData)
	}
	if len(data) != len(t.names) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrDimensionMismatch, len(data), len(t.names))
	}
	copy(t.rows[row], data)
	return nil
}

// Metadata returns the table's metadata, never nil.
func (t *Table) Metadata() Metadata {
	if t.meta == nil {
		return Metadata{}
	}
	return t.meta
}

// SetMetadata replaces the table's metadata.
func (t *Table) SetMetadata(meta Metadata) {
	t.meta = meta
}

func nullRow(cols int) []Value {
	r := make([]Value, cols)
	for i := range r {
		r[i] = Null()
	}
	return r
}

func checkDuplicateNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue // empty labels may repeat
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}
