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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magpierre/cleanframe/dataset"
)

func TestRemoveOutliersIQRRemovesExtremeValues(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("age", []float64{20, 22, 21, 150, 23, 24}, nil).
		AddStrings("name", []string{"a", "b", "c", "d", "e", "f"}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := RemoveOutliersIQR(ds, "age", DefaultIQRFactor)
	require.NoError(t, err)
	defer out.Release()

	// Q1=21.25, Q3=23.75, IQR=2.5, bounds [17.5, 27.5]: only 150 falls out.
	require.Equal(t, []int64{0, 1, 2, 4, 5}, out.RowIDs())
	for row := 0; row < out.RowCount(); row++ {
		v, err := out.Cell(row, "age")
		require.NoError(t, err)
		age := v.Raw.(float64)
		require.GreaterOrEqual(t, age, 17.5)
		require.LessOrEqual(t, age, 27.5)
	}
}

func TestRemoveOutliersIQRWorksOnIntegerColumns(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddInts("age", []int64{20, 22, 21, 150, 23, 24}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := RemoveOutliersIQR(ds, "age", DefaultIQRFactor)
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, []int64{0, 1, 2, 4, 5}, out.RowIDs())
}

func TestRemoveOutliersIQRRetainsMissingValues(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("age", []float64{20, 22, 21, 150, 23, 24, 0},
			[]bool{false, false, false, false, false, false, true}).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := RemoveOutliersIQR(ds, "age", DefaultIQRFactor)
	require.NoError(t, err)
	defer out.Release()

	// The missing cell is not an outlier; only 150 is removed.
	require.Equal(t, []int64{0, 1, 2, 4, 5, 6}, out.RowIDs())
	v, err := out.Cell(5, "age")
	require.NoError(t, err)
	require.True(t, v.IsNull)
}

func TestRemoveOutliersIQRZeroIQR(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("age", []float64{5, 5, 5, 5, 100}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := RemoveOutliersIQR(ds, "age", DefaultIQRFactor)
	require.NoError(t, err)
	defer out.Release()

	// Q1=Q3=5 collapses the bounds to [5, 5]; the fives stay, 100 goes.
	require.Equal(t, []int64{0, 1, 2, 3}, out.RowIDs())
}

func TestRemoveOutliersIQRBoundaryInclusive(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("v", []float64{10, 10, 20, 20}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	// factor 0 shrinks the bounds to [Q1, Q3] = [10, 20]; values equal to a
	// bound are retained.
	out, err := RemoveOutliersIQR(ds, "v", 0)
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 4, out.RowCount())
}

func TestRemoveOutliersIQRFactorZeroRemovesStrictlyOutside(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("age", []float64{20, 22, 21, 150, 23, 24}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := RemoveOutliersIQR(ds, "age", 0)
	require.NoError(t, err)
	defer out.Release()

	// Bounds [21.25, 23.75]: only 22 and 23 survive.
	require.Equal(t, []int64{1, 4}, out.RowIDs())
}

func TestRemoveOutliersIQRAllMissingColumn(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("age", []float64{0, 0, 0}, []bool{true, true, true}).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := RemoveOutliersIQR(ds, "age", DefaultIQRFactor)
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 3, out.RowCount())
}

func TestRemoveOutliersIQRRetainsNaN(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("age", []float64{20, 22, 21, 150, 23, math.NaN()}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := RemoveOutliersIQR(ds, "age", DefaultIQRFactor)
	require.NoError(t, err)
	defer out.Release()

	// NaN never compares strictly outside the bounds and is excluded from
	// the quartiles: [20,21,22,23,150] gives bounds [18, 26].
	require.Equal(t, []int64{0, 1, 2, 4, 5}, out.RowIDs())
}

func TestRemoveOutliersIQRLeavesInputUntouched(t *testing.T) {
	ds := sample(t)
	defer ds.Release()
	before := sample(t)
	defer before.Release()

	out, err := RemoveOutliersIQR(ds, "age", DefaultIQRFactor)
	require.NoError(t, err)
	defer out.Release()

	require.True(t, ds.Equal(before))
}

func TestRemoveOutliersIQRValidation(t *testing.T) {
	ds := sample(t)
	defer ds.Release()

	_, err := RemoveOutliersIQR(nil, "age", DefaultIQRFactor)
	require.ErrorIs(t, err, dataset.ErrNoDataset)

	_, err = RemoveOutliersIQR(ds, "salary", DefaultIQRFactor)
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)

	_, err = RemoveOutliersIQR(ds, "city", DefaultIQRFactor)
	require.ErrorIs(t, err, dataset.ErrTypeMismatch)

	_, err = RemoveOutliersIQR(ds, "age", -1)
	require.ErrorIs(t, err, ErrInvalidFactor)

	_, err = RemoveOutliersIQR(ds, "age", math.NaN())
	require.ErrorIs(t, err, ErrInvalidFactor)
}

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{20, 21, 22, 23, 24, 150}

	require.Equal(t, 21.25, quantile(sorted, 0.25))
	require.Equal(t, 23.75, quantile(sorted, 0.75))
	require.Equal(t, 20.0, quantile(sorted, 0))
	require.Equal(t, 150.0, quantile(sorted, 1))
	require.Equal(t, 7.0, quantile([]float64{7}, 0.5))
	require.True(t, math.IsNaN(quantile(nil, 0.5)))
}
