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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magpierre/cleanframe/dataset"
)

// sample mirrors a small table with missing values, padded text and an
// obvious numeric outlier.
func sample(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewBuilder().
		AddStrings("name", []string{" Alice ", "Bob", "", " Carol  "}, []bool{false, false, true, false}).
		AddFloats("age", []float64{25, 0, 35, 120}, []bool{false, true, false, false}).
		AddStrings("city", []string{"SCL", "LPZ", "SCL", "LPZ"}, nil).
		NewDataset()
	require.NoError(t, err)
	return ds
}

func textAt(t *testing.T, ds *dataset.Dataset, row int, col string) string {
	t.Helper()
	v, err := ds.Cell(row, col)
	require.NoError(t, err)
	require.False(t, v.IsNull)
	return v.Raw.(string)
}

func TestTrimStripsWhitespace(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddStrings("name", []string{"  Alice  ", "Bob", "Carol"}, nil).
		AddFloats("age", []float64{25, 30, 35}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := Trim(ds, []string{"name"})
	require.NoError(t, err)
	defer out.Release()

	want, err := dataset.NewBuilder().
		AddStrings("name", []string{"Alice", "Bob", "Carol"}, nil).
		AddFloats("age", []float64{25, 30, 35}, nil).
		NewDataset()
	require.NoError(t, err)
	defer want.Release()

	require.True(t, out.Equal(want))
}

func TestTrimLeavesInputAndOtherColumnsUntouched(t *testing.T) {
	ds := sample(t)
	defer ds.Release()
	before := sample(t)
	defer before.Release()

	out, err := Trim(ds, []string{"name"})
	require.NoError(t, err)
	defer out.Release()

	// The input dataset still holds the padded values.
	require.True(t, ds.Equal(before))
	require.Equal(t, " Alice ", textAt(t, ds, 0, "name"))

	// Trimmed column has no padding; missing cell stays missing.
	require.Equal(t, "Alice", textAt(t, out, 0, "name"))
	require.Equal(t, "Carol", textAt(t, out, 3, "name"))
	v, err := out.Cell(2, "name")
	require.NoError(t, err)
	require.True(t, v.IsNull)

	// Unnamed columns are shared with the input.
	require.Same(t, ds.ColumnAt(2), out.ColumnAt(2))
	require.Equal(t, "SCL", textAt(t, out, 0, "city"))
}

func TestTrimMultipleColumns(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddStrings("name", []string{"  Ana  ", " Bob", "Carlos  "}, nil).
		AddFloats("age", []float64{25, 30, 35}, nil).
		AddStrings("city", []string{"  Lima", "Santiago  ", "  Bogota  "}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := Trim(ds, []string{"name", "city"})
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, "Ana", textAt(t, out, 0, "name"))
	require.Equal(t, "Lima", textAt(t, out, 0, "city"))
	require.Same(t, ds.ColumnAt(1), out.ColumnAt(1))
}

func TestTrimIsIdempotent(t *testing.T) {
	ds := sample(t)
	defer ds.Release()

	once, err := Trim(ds, []string{"name"})
	require.NoError(t, err)
	defer once.Release()

	twice, err := Trim(once, []string{"name"})
	require.NoError(t, err)
	defer twice.Release()

	require.True(t, once.Equal(twice))
}

func TestTrimValidation(t *testing.T) {
	ds := sample(t)
	defer ds.Release()

	_, err := Trim(nil, []string{"name"})
	require.ErrorIs(t, err, dataset.ErrNoDataset)

	_, err = Trim(ds, nil)
	require.ErrorIs(t, err, dataset.ErrEmptyColumns)

	_, err = Trim(ds, []string{"name", "salary"})
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)

	_, err = Trim(ds, []string{"age"})
	require.ErrorIs(t, err, dataset.ErrTypeMismatch)

	// A type failure on the second column leaves the whole call a no-op.
	before := sample(t)
	defer before.Release()
	_, err = Trim(ds, []string{"name", "age"})
	require.ErrorIs(t, err, dataset.ErrTypeMismatch)
	require.True(t, ds.Equal(before))
}
