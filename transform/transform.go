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

// Package transform applies interpreted Go expressions to table cells.
package transform

import (
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/magpierre/gridkit/grid"
)

// CellFunc maps one cell value to another. The input is the raw value of a
// non-null cell; returning nil produces a null cell.
type CellFunc func(v interface{}) interface{}

// Evaluator compiles Go expressions into cell functions using the yaegi
// interpreter. An Evaluator is not safe for concurrent use.
type Evaluator struct {
	itp *interp.Interpreter
}

// NewEvaluator creates an interpreter preloaded with the standard library.
// Expressions may use fmt, strings, strconv and math directly.
func NewEvaluator() (*Evaluator, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("loading stdlib symbols: %w", err)
	}
	if _, err := i.Eval(`import ("fmt"; "strings"; "strconv"; "math")`); err != nil {
		return nil, fmt.Errorf("importing packages: %w", err)
	}
	return &Evaluator{itp: i}, nil
}

// Compile turns a Go expression over the variable v into a CellFunc.
// The expression must evaluate to a single value, for example:
//
//	strings.ToUpper(v.(string))
//	v.(int) * 2
func (e *Evaluator) Compile(expr string) (CellFunc, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: transform expression", grid.ErrEmptyData)
	}

	// yaegi returns an unusable *interface{} when a bare func literal is the
	// evaluated expression; binding it to a name first yields the func value.
	src := fmt.Sprintf("gridkitTransformFn := func(v interface{}) interface{} { return %s }; gridkitTransformFn", expr)
	res, err := e.itp.Eval(src)
	if err != nil {
		return nil, fmt.Errorf("compiling transform %q: %w", expr, err)
	}
	fn, ok := res.Interface().(func(interface{}) interface{})
	if !ok {
		return nil, fmt.Errorf("transform %q is not a value expression", expr)
	}
	return CellFunc(fn), nil
}

// ApplyColumn runs fn over every non-null cell of one column, in place.
// Null cells pass through untouched.
func ApplyColumn(t *grid.Table, col grid.ColumnRef, fn CellFunc) error {
	vals, err := t.Column(col)
	if err != nil {
		return err
	}
	out := make([]grid.Value, len(vals))
	for i, v := range vals {
		if v.IsNull {
			out[i] = v
			continue
		}
		raw, err := call(fn, v.Raw)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = grid.NewValue(raw)
	}
	return t.SetColumn(col, out)
}

// ApplyCell runs fn on a single cell, in place. A null cell is untouched.
func ApplyCell(t *grid.Table, row int, col grid.ColumnRef, fn CellFunc) error {
	v, err := t.Cell(row, col)
	if err != nil {
		return err
	}
	if v.IsNull {
		return nil
	}
	raw, err := call(fn, v.Raw)
	if err != nil {
		return err
	}
	_, err = t.SetCell(row, col, grid.NewValue(raw))
	return err
}

// ApplyAll runs fn over every non-null cell of the table, in place.
func ApplyAll(t *grid.Table, fn CellFunc) error {
	for c := 0; c < t.ColumnCount(); c++ {
		if err := ApplyColumn(t, grid.Index(c), fn); err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
	}
	return nil
}

// call invokes fn, converting panics from the interpreted code (typically
// failed type assertions) into errors.
func call(fn CellFunc, raw interface{}) (out interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform: %v", r)
		}
	}()
	return fn(raw), nil
}
