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

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magpierre/gridkit/grid"
	"github.com/magpierre/gridkit/transform"
)

func TestCompileAndApplyColumn(t *testing.T) {
	ev, err := transform.NewEvaluator()
	require.NoError(t, err)

	fn, err := ev.Compile(`strings.ToUpper(v.(string))`)
	require.NoError(t, err)

	tbl, err := grid.NewWithColumns(3, []string{"word"})
	require.NoError(t, err)
	require.NoError(t, tbl.SetColumn(grid.Index(0), []grid.Value{
		grid.NewValue("alpha"), grid.Null(), grid.NewValue("beta"),
	}))

	require.NoError(t, transform.ApplyColumn(tbl, grid.Label("word"), fn))

	col, err := tbl.Column(grid.Index(0))
	require.NoError(t, err)
	require.Equal(t, "ALPHA", col[0].Raw)
	require.True(t, col[1].IsNull) // nulls pass through
	require.Equal(t, "BETA", col[2].Raw)
}

func TestApplyCell(t *testing.T) {
	ev, err := transform.NewEvaluator()
	require.NoError(t, err)

	fn, err := ev.Compile(`v.(int) * 2`)
	require.NoError(t, err)

	tbl, err := grid.New(1, 1)
	require.NoError(t, err)
	_, err = tbl.SetCell(0, grid.Index(0), grid.NewValue(21))
	require.NoError(t, err)

	require.NoError(t, transform.ApplyCell(tbl, 0, grid.Index(0), fn))
	v, err := tbl.Cell(0, grid.Index(0))
	require.NoError(t, err)
	require.Equal(t, 42, v.Raw)

	// A null cell is untouched.
	_, err = tbl.SetCell(0, grid.Index(0), grid.Null())
	require.NoError(t, err)
	require.NoError(t, transform.ApplyCell(tbl, 0, grid.Index(0), fn))
	v, err = tbl.Cell(0, grid.Index(0))
	require.NoError(t, err)
	require.True(t, v.IsNull)
}

func TestApplyAll(t *testing.T) {
	ev, err := transform.NewEvaluator()
	require.NoError(t, err)

	fn, err := ev.Compile(`fmt.Sprintf("<%v>", v)`)
	require.NoError(t, err)

	tbl, err := grid.New(2, 2)
	require.NoError(t, err)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			_, err := tbl.SetCell(r, grid.Index(c), grid.NewValue(r*2+c))
			require.NoError(t, err)
		}
	}

	require.NoError(t, transform.ApplyAll(tbl, fn))

	v, err := tbl.Cell(1, grid.Index(1))
	require.NoError(t, err)
	require.Equal(t, "<3>", v.Raw)
}

func TestCompileErrors(t *testing.T) {
	ev, err := transform.NewEvaluator()
	require.NoError(t, err)

	_, err = ev.Compile("")
	require.ErrorIs(t, err, grid.ErrEmptyData)

	_, err = ev.Compile("this is not go")
	require.Error(t, err)
}

func TestFailedAssertionBecomesError(t *testing.T) {
	ev, err := transform.NewEvaluator()
	require.NoError(t, err)

	fn, err := ev.Compile(`strings.ToUpper(v.(string))`)
	require.NoError(t, err)

	tbl, err := grid.New(1, 1)
	require.NoError(t, err)
	_, err = tbl.SetCell(0, grid.Index(0), grid.NewValue(123))
	require.NoError(t, err)

	err = transform.ApplyColumn(tbl, grid.Index(0), fn)
	require.Error(t, err)

	// The failed transform left the cell unchanged.
	v, cellErr := tbl.Cell(0, grid.Index(0))
	require.NoError(t, cellErr)
	require.Equal(t, 123, v.Raw)
}

func TestApplyColumnEmptyTable(t *testing.T) {
	ev, err := transform.NewEvaluator()
	require.NoError(t, err)
	fn, err := ev.Compile(`v`)
	require.NoError(t, err)

	tbl, err := grid.New(0, 0)
	require.NoError(t, err)

	err = transform.ApplyColumn(tbl, grid.Index(0), fn)
	require.ErrorIs(t, err, grid.ErrInvalidColumn)
}
