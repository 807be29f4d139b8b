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

import "errors"

// Common errors returned by the grid package.
var (
	// ErrInvalidDimension is returned when a row or column count is negative,
	// or when a table would end up with rows but no columns (or the reverse).
	ErrInvalidDimension = errors.New("invalid table dimension")

	// ErrDimensionMismatch is returned when supplied data does not match the
	// required row or column length.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDuplicateName is returned when a set of column names contains a
	// repeated non-empty label.
	ErrDuplicateName = errors.New("duplicate column name")

	// ErrInvalidColumn is returned when a column reference cannot be resolved
	// to a valid index.
	ErrInvalidColumn = errors.New("invalid column reference")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrColumnNotFound is returned when a column label is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrEmptyData is returned when data is empty where it shouldn't be.
	ErrEmptyData = errors.New("data is empty")

	// ErrInvalidFilter is returned when a filter expression is invalid.
	ErrInvalidFilter = errors.New("invalid filter expression")

	// ErrTypeMismatch is returned when a type comparison or conversion is
	// invalid.
	ErrTypeMismatch = errors.New("type mismatch")
)
