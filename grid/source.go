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

// Metadata holds optional metadata about a table or source.
type Metadata map[string]interface{}

// Source provides read-only access to tabular data.
// *Table implements Source; consumers that only read should accept a Source.
// All methods return errors rather than panic.
type Source interface {
	// RowCount returns the total number of rows.
	RowCount() int

	// ColumnCount returns the total number of columns.
	ColumnCount() int

	// ColumnNames returns one label per column, in column order.
	// Unlabeled columns are reported as the empty string.
	ColumnNames() []string

	// ColumnName returns the label of the column at the given index.
	// Returns ErrInvalidColumn if the index is out of range.
	ColumnName(col int) (string, error)

	// Cell returns the value at the specified row and column.
	// Returns ErrInvalidRow or ErrInvalidColumn if either is out of range.
	Cell(row int, col ColumnRef) (Value, error)

	// Row returns all values for the specified row, always full width.
	// Returns ErrInvalidRow if row is out of range.
	Row(row int) ([]Value, error)

	// Metadata returns optional metadata about the source.
	// Returns an empty Metadata map if no metadata is available.
	Metadata() Metadata
}

var _ Source = (*Table)(nil)

// Filter decides whether a row belongs to a derived view of a Source.
type Filter interface {
	// Evaluate reports whether the given row passes the filter.
	// columnNames has one entry per column, empty for unlabeled columns.
	Evaluate(row []Value, columnNames []string) (bool, error)

	// Description returns a human-readable summary of the filter.
	Description() string
}
