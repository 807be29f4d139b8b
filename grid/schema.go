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

// SetColumnName assigns a label to one column. The empty string is a real
// label, distinct from "unlabeled". This single-column form performs no
// uniqueness check against other columns; that is the caller's
// responsibility. Use SetColumnNames for a checked full replacement.
func (t *Table) SetColumnName(col ColumnRef, name string) error {
	c, err := t.resolveColumn(col)
	if err != nil {
		return err
	}
	t.names[c] = &name
	return nil
}

// SetColumnNames replaces all column labels atomically.
// names must hold exactly one entry per column and must not repeat a
// non-empty label. On failure the prior labels are left fully intact.
// Returns the accepted sequence.
func (t *Table) SetColumnNames(names []string) ([]string, error) {
	if len(names) != len(t.names) {
		return nil, fmt.Errorf("%w: got %d names for %d columns", ErrDimensionMismatch, len(names), len(t.names))
	}
	if err := checkDuplicateNames(names); err != nil {
		return nil, err
	}
	for i := range names {
		n := names[i]
		t.names[i] = &n
	}
	return names, nil
}

// ColumnNames returns one label per column, in column order.
// Unlabeled columns are reported as the empty string; observers cannot tell
// an explicitly empty label apart from an unset one.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.names))
	for i, n := range t.names {
		if n != nil {
			out[i] = *n
		}
	}
	return out
}

// ColumnName returns the label of the column at the given index, with the
// same unlabeled-to-empty mapping as ColumnNames.
func (t *Table) ColumnName(col int) (string, error) {
	c, err := t.resolveColumn(Index(col))
	if err != nil {
		return "", err
	}
	if t.names[c] == nil {
		return "", nil
	}
	return *t.names[c], nil
}

// ColumnIndex returns the position of the column carrying the given label,
// using an exact, case-sensitive match. Unlabeled columns never match.
//
// Returns ErrInvalidColumn for an empty name and ErrColumnNotFound when no
// column carries the label.
func (t *Table) ColumnIndex(name string) (int, error) {
	return t.resolveColumn(Label(name))
}
