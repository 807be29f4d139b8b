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

// Package view derives filtered tables from a grid.Source using simple
// query expressions.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/magpierre/gridkit/grid"
)

// CompOp is a comparison operator.
type CompOp int

const (
	OpEqual CompOp = iota
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterEqual
	OpLessEqual
	OpContains
)

// String returns the query-syntax symbol for the operator.
func (op CompOp) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpGreaterEqual:
		return ">="
	case OpLessEqual:
		return "<="
	case OpContains:
		return "~"
	default:
		return fmt.Sprintf("unknown(%d)", int(op))
	}
}

// Comparison matches one column of a row against a literal value.
// An empty Column with OpContains matches the literal anywhere in the row.
// Comparisons are case-insensitive; ordering operators compare numerically
// when both sides parse as numbers, lexicographically otherwise.
type Comparison struct {
	Column string
	Op     CompOp
	Value  string
}

// Evaluate implements the grid.Filter interface.
func (c *Comparison) Evaluate(row []grid.Value, columnNames []string) (bool, error) {
	// No column name: contains-search across the whole row.
	if c.Column == "" && c.Op == OpContains {
		term := strings.ToLower(c.Value)
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell.String()), term) {
				return true, nil
			}
		}
		return false, nil
	}

	idx := -1
	for i, name := range columnNames {
		if strings.EqualFold(name, c.Column) && name != "" {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(row) {
		return false, fmt.Errorf("%w: %q", grid.ErrColumnNotFound, c.Column)
	}

	cell := row[idx].String()
	switch c.Op {
	case OpEqual:
		return strings.EqualFold(cell, c.Value), nil
	case OpNotEqual:
		return !strings.EqualFold(cell, c.Value), nil
	case OpContains:
		return strings.Contains(strings.ToLower(cell), strings.ToLower(c.Value)), nil
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return compareOrdered(cell, c.Value, c.Op), nil
	}
	return false, fmt.Errorf("%w: unknown comparison operator %d", grid.ErrInvalidFilter, c.Op)
}

// Description implements the grid.Filter interface.
func (c *Comparison) Description() string {
	if c.Column == "" && c.Op == OpContains {
		return fmt.Sprintf("any ~ %q", c.Value)
	}
	return fmt.Sprintf("%s %s %q", c.Column, c.Op, c.Value)
}

// compareOrdered compares numerically when both sides parse as floats,
// falling back to case-insensitive lexicographic comparison.
func compareOrdered(cell, compare string, op CompOp) bool {
	a, err1 := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	b, err2 := strconv.ParseFloat(strings.TrimSpace(compare), 64)

	if err1 != nil || err2 != nil {
		cmp := strings.Compare(strings.ToLower(cell), strings.ToLower(compare))
		switch op {
		case OpGreater:
			return cmp > 0
		case OpLess:
			return cmp < 0
		case OpGreaterEqual:
			return cmp >= 0
		case OpLessEqual:
			return cmp <= 0
		}
		return false
	}

	switch op {
	case OpGreater:
		return a > b
	case OpLess:
		return a < b
	case OpGreaterEqual:
		return a >= b
	case OpLessEqual:
		return a <= b
	}
	return false
}
