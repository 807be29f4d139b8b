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

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magpierre/gridkit/grid"
)

func TestNew(t *testing.T) {
	testcases := []struct {
		name    string
		rows    int
		cols    int
		wantErr error
	}{
		{name: "empty table", rows: 0, cols: 0},
		{name: "square table", rows: 3, cols: 3},
		{name: "single cell", rows: 1, cols: 1},
		{name: "negative rows", rows: -1, cols: 2, wantErr: grid.ErrInvalidDimension},
		{name: "negative columns", rows: 2, cols: -1, wantErr: grid.ErrInvalidDimension},
		{name: "rows without columns", rows: 2, cols: 0, wantErr: grid.ErrInvalidDimension},
		{name: "columns without rows", rows: 0, cols: 2, wantErr: grid.ErrInvalidDimension},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := grid.New(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, tbl.RowCount())
			require.Equal(t, tc.cols, tbl.ColumnCount())
			require.Equal(t, tc.rows*tc.cols, tbl.CellCount())

			// All cells start null.
			for r := 0; r < tc.rows; r++ {
				for c := 0; c < tc.cols; c++ {
					v, err := tbl.Cell(r, grid.Index(c))
					require.NoError(t, err)
					require.True(t, v.IsNull)
				}
			}
		})
	}
}

func TestNewWithColumns(t *testing.T) {
	tbl, err := grid.NewWithColumns(2, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, 3, tbl.ColumnCount())
	require.Equal(t, []string{"a", "b", "c"}, tbl.ColumnNames())

	_, err = grid.NewWithColumns(2, []string{"a", "b", "a"})
	require.ErrorIs(t, err, grid.ErrDuplicateName)

	// Repeated empty labels are allowed.
	tbl, err = grid.NewWithColumns(1, []string{"", "x", ""})
	require.NoError(t, err)
	require.Equal(t, []string{"", "x", ""}, tbl.ColumnNames())

	// Names imply the column count, so zero names with rows is illegal.
	_, err = grid.NewWithColumns(2, nil)
	require.ErrorIs(t, err, grid.ErrInvalidDimension)
}

func TestCellRoundTrip(t *testing.T) {
	tbl, err := grid.New(3, 2)
	require.NoError(t, err)

	stored, err := tbl.SetCell(1, grid.Index(0), grid.NewValue(42))
	require.NoError(t, err)
	require.Equal(t, 42, stored.Raw)

	got, err := tbl.Cell(1, grid.Index(0))
	require.NoError(t, err)
	require.Equal(t, 42, got.Raw)
	require.False(t, got.IsNull)

	// Heterogeneous values in neighboring cells.
	_, err = tbl.SetCell(1, grid.Index(1), grid.NewValue("hello"))
	require.NoError(t, err)
	got, err = tbl.Cell(1, grid.Index(1))
	require.NoError(t, err)
	require.Equal(t, "hello", got.Raw)

	// Overwrite is silent, including with a null.
	_, err = tbl.SetCell(1, grid.Index(0), grid.Null())
	require.NoError(t, err)
	got, err = tbl.Cell(1, grid.Index(0))
	require.NoError(t, err)
	require.True(t, got.IsNull)
}

func TestCellIndexValidation(t *testing.T) {
	tbl, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = tbl.Cell(2, grid.Index(0))
	require.ErrorIs(t, err, grid.ErrInvalidRow)
	_, err = tbl.Cell(-1, grid.Index(0))
	require.ErrorIs(t, err, grid.ErrInvalidRow)
	_, err = tbl.Cell(0, grid.Index(2))
	require.ErrorIs(t, err, grid.ErrInvalidColumn)
	_, err = tbl.Cell(0, grid.Label(""))
	require.ErrorIs(t, err, grid.ErrInvalidColumn)
	_, err = tbl.Cell(0, grid.Label("nope"))
	require.ErrorIs(t, err, grid.ErrColumnNotFound)
	_, err = tbl.SetCell(5, grid.Index(0), grid.NewValue(1))
	require.ErrorIs(t, err, grid.ErrInvalidRow)
}

func TestColumnAccess(t *testing.T) {
	tbl, err := grid.NewWithColumns(3, []string{"x", "y"})
	require.NoError(t, err)

	err = tbl.SetColumn(grid.Label("x"), []grid.Value{
		grid.NewValue(1), grid.NewValue(2), grid.NewValue(3),
	})
	require.NoError(t, err)

	col, err := tbl.Column(grid.Label("x"))
	require.NoError(t, err)
	require.Len(t, col, 3)
	require.Equal(t, 2, col[1].Raw)

	// Untouched column reads back as nulls.
	col, err = tbl.Column(grid.Index(1))
	require.NoError(t, err)
	for _, v := range col {
		require.True(t, v.IsNull)
	}

	err = tbl.SetColumn(grid.Label("x"), nil)
	require.ErrorIs(t, err, grid.ErrEmptyData)
	err = tbl.SetColumn(grid.Label("x"), []grid.Value{grid.NewValue(1)})
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)
}

func TestRowAccess(t *testing.T) {
	tbl, err := grid.New(2, 3)
	require.NoError(t, err)

	err = tbl.SetRow(0, []grid.Value{grid.NewValue("a"), grid.Null(), grid.NewValue(3.5)})
	require.NoError(t, err)

	row, err := tbl.Row(0)
	require.NoError(t, err)
	require.Len(t, row, 3)
	require.Equal(t, "a", row[0].Raw)
	require.True(t, row[1].IsNull)
	require.Equal(t, 3.5, row[2].Raw)

	err = tbl.SetRow(0, nil)
	require.ErrorIs(t, err, grid.ErrEmptyData)
	err = tbl.SetRow(0, []grid.Value{grid.NewValue(1)})
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)
	err = tbl.SetRow(9, []grid.Value{grid.NewValue(1), grid.NewValue(2), grid.NewValue(3)})
	require.ErrorIs(t, err, grid.ErrInvalidRow)
}

func TestMetadata(t *testing.T) {
	tbl, err := grid.New(1, 1)
	require.NoError(t, err)

	require.NotNil(t, tbl.Metadata())
	require.Empty(t, tbl.Metadata())

	tbl.SetMetadata(grid.Metadata{"origin": "unit test"})
	require.Equal(t, "unit test", tbl.Metadata()["origin"])
}

func TestValueString(t *testing.T) {
	require.Equal(t, "", grid.Null().String())
	require.Equal(t, "42", grid.NewValue(42).String())
	require.Equal(t, "", grid.NewValue("").String())
	require.True(t, grid.NewValue(nil).IsNull)
}
