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
	"fmt"
	"strings"

	"github.com/magpierre/gridkit/grid"
	"github.com/magpierre/gridkit/internal/filter"
)

// ParseQuery parses a search expression into a row filter.
//
// A query is one or more comparisons joined by AND/OR (case-insensitive),
// evaluated left to right:
//
//	name = alice AND age >= 30
//	city ~ york OR city = boston
//
// Supported operators: = != > < >= <= and ~ (contains). Values may be
// quoted. A bare term with no operator matches rows containing it in any
// column. Column names are validated against columnNames; an empty or
// blank query yields a filter that passes every row.
func ParseQuery(query string, columnNames []string) (grid.Filter, error) {
	if strings.TrimSpace(query) == "" {
		return &filter.Composite{Logic: filter.LogicAND}, nil
	}

	parts := splitByLogicOps(query)

	var (
		exprs []grid.Filter
		ops   []filter.LogicOp
	)
	for _, part := range parts {
		if part.isOperator {
			if strings.EqualFold(part.text, "AND") {
				ops = append(ops, filter.LogicAND)
			} else {
				ops = append(ops, filter.LogicOR)
			}
			continue
		}
		expr, err := parseExpression(part.text, columnNames)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	// N expressions need exactly N-1 operators.
	if len(ops) != len(exprs)-1 {
		return nil, fmt.Errorf("%w: mismatched expressions and operators", grid.ErrInvalidFilter)
	}

	// Fold left to right: mixed AND/OR nests into left-associative composites.
	result := exprs[0]
	for i, op := range ops {
		result = &filter.Composite{
			Filters: []grid.Filter{result, exprs[i+1]},
			Logic:   op,
		}
	}
	return result, nil
}

type queryPart struct {
	text       string
	isOperator bool
}

// splitByLogicOps splits a query by AND/OR while preserving the operators.
// Operator words are only recognized at whitespace boundaries.
func splitByLogicOps(query string) []queryPart {
	parts := make([]queryPart, 0)
	current := ""
	i := 0

	flush := func() {
		if strings.TrimSpace(current) != "" {
			parts = append(parts, queryPart{text: strings.TrimSpace(current)})
			current = ""
		}
	}

	for i < len(query) {
		if word, n := matchOperatorWord(query, i); n > 0 {
			flush()
			parts = append(parts, queryPart{text: word, isOperator: true})
			i += n
			continue
		}
		current += string(query[i])
		i++
	}
	flush()

	return parts
}

// matchOperatorWord reports whether AND or OR starts at position i on a word
// boundary, returning the matched word and its length.
func matchOperatorWord(query string, i int) (string, int) {
	for _, word := range []string{"AND", "OR"} {
		n := len(word)
		if i+n > len(query) || !strings.EqualFold(query[i:i+n], word) {
			continue
		}
		if (i == 0 || isSpace(query[i-1])) && (i+n >= len(query) || isSpace(query[i+n])) {
			return word, n
		}
	}
	return "", 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// parseExpression parses a single comparison like "column = value".
func parseExpression(exprStr string, columnNames []string) (*Comparison, error) {
	exprStr = strings.TrimSpace(exprStr)

	// Ordered by symbol length so >= matches before =.
	operators := []struct {
		op     CompOp
		symbol string
	}{
		{OpGreaterEqual, ">="},
		{OpLessEqual, "<="},
		{OpNotEqual, "!="},
		{OpEqual, "="},
		{OpGreater, ">"},
		{OpLess, "<"},
		{OpContains, "~"},
	}

	for _, opInfo := range operators {
		idx := strings.Index(exprStr, opInfo.symbol)
		if idx <= 0 {
			continue
		}
		column := strings.TrimSpace(exprStr[:idx])
		value := strings.TrimSpace(exprStr[idx+len(opInfo.symbol):])
		value = strings.Trim(value, "\"'")

		if !columnKnown(column, columnNames) {
			return nil, fmt.Errorf("%w: unknown column %q", grid.ErrInvalidFilter, column)
		}
		return &Comparison{Column: column, Op: opInfo.op, Value: value}, nil
	}

	// No operator: treat the whole term as a contains-search on all columns.
	return &Comparison{Op: OpContains, Value: exprStr}, nil
}

func columnKnown(column string, columnNames []string) bool {
	for _, name := range columnNames {
		if name != "" && strings.EqualFold(name, column) {
			return true
		}
	}
	return false
}
