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

package view

import (
	"github.com/magpierre/gridkit/grid"
)

// Apply materializes the rows of src that pass f into a new table, preserving
// column labels, row order and source metadata. A nil filter passes every
// row. When nothing matches, the result is the canonical empty table.
func Apply(src grid.Source, f grid.Filter) (*grid.Table, error) {
	names := src.ColumnNames()

	var matched [][]grid.Value
	for r := 0; r < src.RowCount(); r++ {
		row, err := src.Row(r)
		if err != nil {
			return nil, err
		}
		if f != nil {
			ok, err := f.Evaluate(row, names)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		matched = append(matched, row)
	}

	if len(matched) == 0 {
		return grid.New(0, 0)
	}

	out, err := grid.NewWithColumns(len(matched), names)
	if err != nil {
		return nil, err
	}
	for i, row := range matched {
		if err := out.SetRow(i, row); err != nil {
			return nil, err
		}
	}
	if meta := src.Metadata(); len(meta) > 0 {
		out.SetMetadata(meta)
	}
	return out, nil
}

// Match returns the indices of the rows of src that pass f, in row order.
func Match(src grid.Source, f grid.Filter) ([]int, error) {
	names := src.ColumnNames()

	indices := make([]int, 0, src.RowCount())
	for r := 0; r < src.RowCount(); r++ {
		row, err := src.Row(r)
		if err != nil {
			return nil, err
		}
		if f != nil {
			ok, err := f.Evaluate(row, names)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		indices = append(indices, r)
	}
	return indices, nil
}
