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

func TestDropInvalidRowsSingleColumn(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddStrings("name", []string{"Alice", "", "Bob"}, []bool{false, true, false}).
		AddFloats("age", []float64{25, 30, 0}, []bool{false, false, true}).
		AddStrings("city", []string{"SCL", "LPZ", "SCL"}, nil).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := DropInvalidRows(ds, []string{"name"})
	require.NoError(t, err)
	defer out.Release()

	// Row 1 had a missing name; survivors keep identifiers 0 and 2.
	require.Equal(t, []int64{0, 2}, out.RowIDs())
	require.Equal(t, "Alice", textAt(t, out, 0, "name"))
	require.Equal(t, "Bob", textAt(t, out, 1, "name"))

	// The age column still carries its missing cell; only name was checked.
	v, err := out.Cell(1, "age")
	require.NoError(t, err)
	require.True(t, v.IsNull)
}

func TestDropInvalidRowsMultipleColumns(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddStrings("name", []string{"Ana", "", "Carlos", "Bob"}, []bool{false, true, false, false}).
		AddFloats("age", []float64{25, 30, 0, 40}, []bool{false, false, true, false}).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := DropInvalidRows(ds, []string{"name", "age"})
	require.NoError(t, err)
	defer out.Release()

	require.Less(t, out.RowCount(), ds.RowCount())
	require.Equal(t, []int64{0, 3}, out.RowIDs())
	for row := 0; row < out.RowCount(); row++ {
		for _, col := range []string{"name", "age"} {
			v, err := out.Cell(row, col)
			require.NoError(t, err)
			require.False(t, v.IsNull)
		}
	}
}

func TestDropInvalidRowsAllRows(t *testing.T) {
	ds, err := dataset.NewBuilder().
		AddFloats("age", []float64{0, 0}, []bool{true, true}).
		NewDataset()
	require.NoError(t, err)
	defer ds.Release()

	out, err := DropInvalidRows(ds, []string{"age"})
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 0, out.RowCount())
	require.Equal(t, 1, out.ColumnCount())
}

func TestDropInvalidRowsAnyKindAllowed(t *testing.T) {
	// No type restriction: numeric columns are checked for missing cells too.
	ds := sample(t)
	defer ds.Release()

	out, err := DropInvalidRows(ds, []string{"age"})
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, []int64{0, 2, 3}, out.RowIDs())
}

func TestDropInvalidRowsIsIdempotent(t *testing.T) {
	ds := sample(t)
	defer ds.Release()

	once, err := DropInvalidRows(ds, []string{"name", "age"})
	require.NoError(t, err)
	defer once.Release()

	twice, err := DropInvalidRows(once, []string{"name", "age"})
	require.NoError(t, err)
	defer twice.Release()

	require.True(t, once.Equal(twice))
}

func TestDropInvalidRowsValidation(t *testing.T) {
	ds := sample(t)
	defer ds.Release()

	_, err := DropInvalidRows(nil, []string{"name"})
	require.ErrorIs(t, err, dataset.ErrNoDataset)

	_, err = DropInvalidRows(ds, []string{})
	require.ErrorIs(t, err, dataset.ErrEmptyColumns)

	_, err = DropInvalidRows(ds, []string{"name", "height"})
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)

	// A failed call leaves the input untouched.
	before := sample(t)
	defer before.Release()
	require.True(t, ds.Equal(before))
}
