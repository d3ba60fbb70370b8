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
	"fmt"
	"math"
	"sort"

	"github.com/magpierre/cleanframe/dataset"
)

// DefaultIQRFactor is the conventional multiplier for the IQR outlier rule.
const DefaultIQRFactor = 1.5

// RemoveOutliersIQR returns a new Dataset without the rows whose value in
// the named numeric column lies strictly outside
//
//	[Q1 - factor*IQR, Q3 + factor*IQR]
//
// where Q1 and Q3 are the 25th and 75th percentiles of the column's
// non-missing values, computed by linear interpolation between closest
// ranks, and IQR = Q3 - Q1. The bounds are inclusive: values equal to a
// bound are retained, so a zero IQR collapses the bounds to [Q1, Q3]
// without removing the quartile values themselves.
//
// Rows with a missing value in the column are always retained; outlier
// detection is not a missingness check. A column with no non-missing values
// removes nothing. NaN cells are excluded from the quartile computation and
// retained, since NaN never compares strictly outside the bounds.
//
// The column must exist (dataset.ErrColumnNotFound) and be of kind numeric
// (dataset.ErrTypeMismatch); factor must be non-negative and not NaN
// (ErrInvalidFactor).
func RemoveOutliersIQR(ds *dataset.Dataset, column string, factor float64) (*dataset.Dataset, error) {
	if ds == nil {
		return nil, dataset.ErrNoDataset
	}
	if factor < 0 || math.IsNaN(factor) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	if !ds.HasColumn(column) {
		return nil, fmt.Errorf("%w: %q", dataset.ErrColumnNotFound, column)
	}
	kind, err := ds.KindOf(column)
	if err != nil {
		return nil, err
	}
	if kind != dataset.KindNumeric {
		return nil, fmt.Errorf("%w: column %q is %s, want %s",
			dataset.ErrTypeMismatch, column, kind, dataset.KindNumeric)
	}

	col, err := ds.ColumnByName(column)
	if err != nil {
		return nil, err
	}

	vals := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if v, ok := dataset.Float64At(col, i); ok && !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}

	keep := make([]bool, ds.RowCount())
	for i := range keep {
		keep[i] = true
	}

	if len(vals) > 0 {
		sort.Float64s(vals)
		q1 := quantile(vals, 0.25)
		q3 := quantile(vals, 0.75)
		iqr := q3 - q1
		lo := q1 - factor*iqr
		hi := q3 + factor*iqr

		for i := range keep {
			if v, ok := dataset.Float64At(col, i); ok && (v < lo || v > hi) {
				keep[i] = false
			}
		}
	}

	return ds.FilterRows(keep)
}

// quantile computes the q-th quantile (q in [0,1]) of an ascending-sorted
// slice by linear interpolation between closest ranks: the value at
// fractional position q*(n-1).
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
