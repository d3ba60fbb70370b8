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

package dataset

import "errors"

// Common errors returned by the dataset package.
var (
	// ErrColumnNotFound is returned when a referenced column name is absent.
	ErrColumnNotFound = errors.New("column not found")

	// ErrTypeMismatch is returned when a column exists but is not of the
	// kind an operation requires.
	ErrTypeMismatch = errors.New("column type mismatch")

	// ErrNoDataset is returned when a required dataset is nil.
	ErrNoDataset = errors.New("dataset is nil")

	// ErrEmptyColumns is returned when an operation receives no column names.
	ErrEmptyColumns = errors.New("no columns specified")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrLengthMismatch is returned when column or mask lengths disagree.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")
)
