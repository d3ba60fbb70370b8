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
	"errors"
	"fmt"

	"github.com/magpierre/cleanframe/dataset"
)

// ErrInvalidFactor is returned when an IQR factor is negative or NaN.
var ErrInvalidFactor = errors.New("invalid IQR factor")

// validateColumns checks the shared preconditions of the column-set
// operations: a non-nil dataset, a non-empty column list, and that every
// named column exists.
func validateColumns(ds *dataset.Dataset, columns []string) error {
	if ds == nil {
		return dataset.ErrNoDataset
	}
	if len(columns) == 0 {
		return dataset.ErrEmptyColumns
	}
	for _, name := range columns {
		if !ds.HasColumn(name) {
			return fmt.Errorf("%w: %q", dataset.ErrColumnNotFound, name)
		}
	}
	return nil
}
