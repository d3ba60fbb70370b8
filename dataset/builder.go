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

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Builder assembles a Dataset column by column from Go slices or prebuilt
// Arrow arrays. The missing mask, when non-nil, marks cells that hold the
// missing marker; the corresponding slice value is ignored. Errors are
// latched and reported by NewDataset, so calls can be chained.
type Builder struct {
	pool   memory.Allocator
	fields []arrow.Field
	cols   []arrow.Array
	err    error
}

// NewBuilder creates an empty dataset builder.
func NewBuilder() *Builder {
	return &Builder{pool: memory.NewGoAllocator()}
}

// AddStrings appends a text column. missing may be nil.
func (b *Builder) AddStrings(name string, values []string, missing []bool) *Builder {
	if !b.checkMask(name, len(values), missing) {
		return b
	}
	sb := array.NewStringBuilder(b.pool)
	defer sb.Release()
	for i, v := range values {
		if missing != nil && missing[i] {
			sb.AppendNull()
			continue
		}
		sb.Append(v)
	}
	b.add(name, arrow.BinaryTypes.String, sb.NewArray())
	return b
}

// AddFloats appends a float64 column. missing may be nil.
func (b *Builder) AddFloats(name string, values []float64, missing []bool) *Builder {
	if !b.checkMask(name, len(values), missing) {
		return b
	}
	fb := array.NewFloat64Builder(b.pool)
	defer fb.Release()
	for i, v := range values {
		if missing != nil && missing[i] {
			fb.AppendNull()
			continue
		}
		fb.Append(v)
	}
	b.add(name, arrow.PrimitiveTypes.Float64, fb.NewArray())
	return b
}

// AddInts appends an int64 column. missing may be nil.
func (b *Builder) AddInts(name string, values []int64, missing []bool) *Builder {
	if !b.checkMask(name, len(values), missing) {
		return b
	}
	ib := array.NewInt64Builder(b.pool)
	defer ib.Release()
	for i, v := range values {
		if missing != nil && missing[i] {
			ib.AppendNull()
			continue
		}
		ib.Append(v)
	}
	b.add(name, arrow.PrimitiveTypes.Int64, ib.NewArray())
	return b
}

// AddColumn appends a prebuilt Arrow array as a column.
// Ownership of the array transfers to the builder.
func (b *Builder) AddColumn(name string, arr arrow.Array) *Builder {
	if b.err != nil {
		arr.Release()
		return b
	}
	b.add(name, arr.DataType(), arr)
	return b
}

// NewDataset validates the accumulated columns and produces the Dataset.
// Row identifiers are assigned from row positions (0..n-1).
func (b *Builder) NewDataset() (*Dataset, error) {
	if b.err != nil {
		b.release()
		return nil, b.err
	}

	rows := 0
	if len(b.cols) > 0 {
		rows = b.cols[0].Len()
	}
	for i, col := range b.cols {
		if col.Len() != rows {
			err := fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrLengthMismatch, b.fields[i].Name, col.Len(), rows)
			b.release()
			return nil, err
		}
	}

	ids := make([]int64, rows)
	for i := range ids {
		ids[i] = int64(i)
	}

	ds, err := newDataset(b.fields, b.cols, ids)
	if err != nil {
		b.release()
		return nil, err
	}
	b.fields, b.cols = nil, nil
	return ds, nil
}

func (b *Builder) add(name string, dt arrow.DataType, arr arrow.Array) {
	b.fields = append(b.fields, arrow.Field{Name: name, Type: dt, Nullable: true})
	b.cols = append(b.cols, arr)
}

func (b *Builder) checkMask(name string, n int, missing []bool) bool {
	if b.err != nil {
		return false
	}
	if missing != nil && len(missing) != n {
		b.err = fmt.Errorf("%w: column %q mask has %d entries, want %d",
			ErrLengthMismatch, name, len(missing), n)
		return false
	}
	return true
}

func (b *Builder) release() {
	for _, col := range b.cols {
		col.Release()
	}
	b.fields, b.cols = nil, nil
}
