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

// Package arrow converts between grid tables and Apache Arrow tables.
package arrow

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/magpierre/gridkit/grid"
)

// FromTable copies an Arrow table into a new grid table. Column names come
// from the Arrow schema; Arrow nulls become null cells. The caller keeps
// ownership of tbl and may release it afterwards.
func FromTable(tbl arrow.Table) (*grid.Table, error) {
	rows := int(tbl.NumRows())
	cols := int(tbl.NumCols())
	if rows == 0 || cols == 0 {
		return grid.New(0, 0)
	}

	schema := tbl.Schema()
	names := make([]string, cols)
	for i := 0; i < cols; i++ {
		names[i] = schema.Field(i).Name
	}

	g, err := grid.NewWithColumns(rows, names)
	if err != nil {
		return nil, err
	}

	// Read the whole table as a single record, as the data browser does for
	// exports.
	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()
	if !tr.Next() {
		return g, nil
	}
	rec := tr.Record()

	for c := 0; c < cols; c++ {
		col := rec.Column(c)
		for r := 0; r < rows; r++ {
			v, err := valueAt(col, r)
			if err != nil {
				return nil, err
			}
			if _, err := g.SetCell(r, grid.Index(c), v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// ToTable builds an Arrow table from a grid source. Each column's Arrow type
// is inferred from its first non-null cell; a column whose cells cannot all
// be coerced to that type yields ErrTypeMismatch. All-null columns become
// string columns. The caller owns the returned table and must Release it.
func ToTable(src grid.Source) (arrow.Table, error) {
	rows := src.RowCount()
	cols := src.ColumnCount()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: no data to convert", grid.ErrEmptyData)
	}

	names := src.ColumnNames()
	fields := make([]arrow.Field, cols)
	for c := 0; c < cols; c++ {
		dt, err := inferColumnType(src, c)
		if err != nil {
			return nil, err
		}
		fields[c] = arrow.Field{Name: names[c], Type: dt, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	pool := memory.NewGoAllocator()

	columns := make([]arrow.Column, cols)
	for c := 0; c < cols; c++ {
		builder := array.NewBuilder(pool, fields[c].Type)
		defer builder.Release()

		for r := 0; r < rows; r++ {
			cell, err := src.Cell(r, grid.Index(c))
			if err != nil {
				return nil, err
			}
			if cell.IsNull {
				builder.AppendNull()
				continue
			}
			if err := appendValue(builder, cell.Raw); err != nil {
				return nil, fmt.Errorf("column %q, row %d: %w", names[c], r, err)
			}
		}

		arr := builder.NewArray()
		defer arr.Release()

		chunked := arrow.NewChunked(fields[c].Type, []arrow.Array{arr})
		columns[c] = *arrow.NewColumn(fields[c], chunked)
	}

	return array.NewTable(schema, columns, int64(rows)), nil
}

// inferColumnType picks an Arrow type from the first non-null cell of a
// column.
func inferColumnType(src grid.Source, col int) (arrow.DataType, error) {
	for r := 0; r < src.RowCount(); r++ {
		cell, err := src.Cell(r, grid.Index(col))
		if err != nil {
			return nil, err
		}
		if cell.IsNull {
			continue
		}
		return arrowTypeFor(cell.Raw)
	}
	return arrow.BinaryTypes.String, nil
}

func arrowTypeFor(raw interface{}) (arrow.DataType, error) {
	switch raw.(type) {
	case string:
		return arrow.BinaryTypes.String, nil
	case bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case []byte:
		return arrow.BinaryTypes.Binary, nil
	case int, int8, int16, int32, int64:
		return arrow.PrimitiveTypes.Int64, nil
	case uint, uint8, uint16, uint32, uint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case float32, float64:
		return arrow.PrimitiveTypes.Float64, nil
	}
	return nil, fmt.Errorf("%w: no arrow mapping for %T", grid.ErrTypeMismatch, raw)
}

// appendValue appends a typed cell value to a builder, widening integers and
// floats to the inferred column type.
func appendValue(builder array.Builder, raw interface{}) error {
	switch b := builder.(type) {
	case *array.StringBuilder:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w: expected string, got %T", grid.ErrTypeMismatch, raw)
		}
		b.Append(s)
	case *array.BooleanBuilder:
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("%w: expected bool, got %T", grid.ErrTypeMismatch, raw)
		}
		b.Append(v)
	case *array.BinaryBuilder:
		v, ok := raw.([]byte)
		if !ok {
			return fmt.Errorf("%w: expected []byte, got %T", grid.ErrTypeMismatch, raw)
		}
		b.Append(v)
	case *array.Int64Builder:
		v, err := toInt64(raw)
		if err != nil {
			return err
		}
		b.Append(v)
	case *array.Uint64Builder:
		v, err := toUint64(raw)
		if err != nil {
			return err
		}
		b.Append(v)
	case *array.Float64Builder:
		v, err := toFloat64(raw)
		if err != nil {
			return err
		}
		b.Append(v)
	default:
		return fmt.Errorf("%w: unsupported builder %T", grid.ErrTypeMismatch, builder)
	}
	return nil
}

func toInt64(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, fmt.Errorf("%w: expected integer, got %T", grid.ErrTypeMismatch, raw)
}

func toUint64(raw interface{}) (uint64, error) {
	switch v := raw.(type) {
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	}
	return 0, fmt.Errorf("%w: expected unsigned integer, got %T", grid.ErrTypeMismatch, raw)
}

func toFloat64(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("%w: expected float, got %T", grid.ErrTypeMismatch, raw)
}

// valueAt reads a typed value out of an Arrow array.
func valueAt(col arrow.Array, pos int) (grid.Value, error) {
	if col.IsNull(pos) {
		return grid.Null(), nil
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return grid.NewValue(col.(*array.String).Value(pos)), nil
	case arrow.BINARY:
		v := col.(*array.Binary).Value(pos)
		return grid.NewValue(append([]byte(nil), v...)), nil
	case arrow.BOOL:
		return grid.NewValue(col.(*array.Boolean).Value(pos)), nil
	case arrow.INT8:
		return grid.NewValue(col.(*array.Int8).Value(pos)), nil
	case arrow.INT16:
		return grid.NewValue(col.(*array.Int16).Value(pos)), nil
	case arrow.INT32:
		return grid.NewValue(col.(*array.Int32).Value(pos)), nil
	case arrow.INT64:
		return grid.NewValue(col.(*array.Int64).Value(pos)), nil
	case arrow.UINT8:
		return grid.NewValue(col.(*array.Uint8).Value(pos)), nil
	case arrow.UINT16:
		return grid.NewValue(col.(*array.Uint16).Value(pos)), nil
	case arrow.UINT32:
		return grid.NewValue(col.(*array.Uint32).Value(pos)), nil
	case arrow.UINT64:
		return grid.NewValue(col.(*array.Uint64).Value(pos)), nil
	case arrow.FLOAT16:
		return grid.NewValue(col.(*array.Float16).Value(pos).Float32()), nil
	case arrow.FLOAT32:
		return grid.NewValue(col.(*array.Float32).Value(pos)), nil
	case arrow.FLOAT64:
		return grid.NewValue(col.(*array.Float64).Value(pos)), nil
	case arrow.DATE32:
		return grid.NewValue(col.(*array.Date32).Value(pos)), nil
	case arrow.DATE64:
		return grid.NewValue(col.(*array.Date64).Value(pos)), nil
	case arrow.TIMESTAMP:
		return grid.NewValue(col.(*array.Timestamp).Value(pos)), nil
	}
	return grid.Value{}, fmt.Errorf("%w: unsupported arrow type %s", grid.ErrTypeMismatch, col.DataType())
}
