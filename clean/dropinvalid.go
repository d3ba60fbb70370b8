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

package clean

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/magpierre/cleanframe/dataset"
)

// DropInvalidRows returns a new Dataset without the rows that hold a missing
// value in any of the named columns. Any column kind is allowed. Surviving
// rows keep their original identifiers and relative order; removing every
// row yields a valid zero-row Dataset.
//
// All named columns must exist (dataset.ErrColumnNotFound); the check runs
// before any row is evaluated.
func DropInvalidRows(ds *dataset.Dataset, columns []string) (*dataset.Dataset, error) {
	if err := validateColumns(ds, columns); err != nil {
		return nil, err
	}

	cols := make([]arrow.Array, len(columns))
	for i, name := range columns {
		col, err := ds.ColumnByName(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	keep := make([]bool, ds.RowCount())
	for i := range keep {
		keep[i] = true
		for _, col := range cols {
			if col.IsNull(i) {
				keep[i] = false
				break
			}
		}
	}

	return ds.FilterRows(keep)
}
