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

// Dataset is an ordered sequence of named, equal-length columns backed by
// Arrow arrays. Each row carries a stable identifier assigned at
// construction; identifiers are preserved when rows are removed, so a
// non-contiguous identifier sequence is expected after filtering.
//
// A Dataset is immutable. Operations that appear to modify it return a new
// Dataset and leave the receiver untouched, which makes concurrent reads of
// the same value safe without coordination.
type Dataset struct {
	fields []arrow.Field
	cols   []arrow.Array
	ids    []int64
	byName map[string]int
}

// NewFromRecord creates a Dataset from an Arrow record. Row identifiers are
// assigned from the record's row positions (0..n-1). The record's columns are
// retained; the caller keeps ownership of the record itself.
func NewFromRecord(rec arrow.Record) (*Dataset, error) {
	schema := rec.Schema()
	fields := make([]arrow.Field, schema.NumFields())
	cols := make([]arrow.Array, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		fields[i] = schema.Field(i)
		col := rec.Column(i)
		col.Retain()
		cols[i] = col
	}

	ids := make([]int64, rec.NumRows())
	for i := range ids {
		ids[i] = int64(i)
	}

	ds, err := newDataset(fields, cols, ids)
	if err != nil {
		for _, col := range cols {
			col.Release()
		}
		return nil, err
	}
	return ds, nil
}

// NewFromTable creates a Dataset from an Arrow table. Columns chunked across
// several arrays are concatenated, so the whole table is loaded regardless of
// how it was assembled. Row identifiers are assigned from row positions.
func NewFromTable(tbl arrow.Table) (*Dataset, error) {
	pool := memory.NewGoAllocator()
	schema := tbl.Schema()
	fields := make([]arrow.Field, schema.NumFields())
	cols := make([]arrow.Array, 0, schema.NumFields())

	release := func() {
		for _, col := range cols {
			col.Release()
		}
	}

	for i := 0; i < schema.NumFields(); i++ {
		fields[i] = schema.Field(i)
		chunks := tbl.Column(i).Data().Chunks()
		switch len(chunks) {
		case 0:
			b := array.NewBuilder(pool, fields[i].Type)
			cols = append(cols, b.NewArray())
			b.Release()
		case 1:
			chunks[0].Retain()
			cols = append(cols, chunks[0])
		default:
			merged, err := array.Concatenate(chunks, pool)
			if err != nil {
				release()
				return nil, fmt.Errorf("concatenating column %q: %w", fields[i].Name, err)
			}
			cols = append(cols, merged)
		}
	}

	ids := make([]int64, tbl.NumRows())
	for i := range ids {
		ids[i] = int64(i)
	}

	ds, err := newDataset(fields, cols, ids)
	if err != nil {
		release()
		return nil, err
	}
	return ds, nil
}

// newDataset assembles a Dataset and validates its invariants. It takes
// ownership of the column references passed in.
func newDataset(fields []arrow.Field, cols []arrow.Array, ids []int64) (*Dataset, error) {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, exists := byName[f.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, f.Name)
		}
		byName[f.Name] = i
	}
	for i, col := range cols {
		if col.Len() != len(ids) {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrLengthMismatch, fields[i].Name, col.Len(), len(ids))
		}
	}
	return &Dataset{fields: fields, cols: cols, ids: ids, byName: byName}, nil
}

// RowCount returns the number of rows.
func (d *Dataset) RowCount() int {
	return len(d.ids)
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.cols)
}

// ColumnNames returns the column names in dataset order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// IndexOf returns the position of the named column, or -1 if absent.
func (d *Dataset) IndexOf(name string) int {
	idx, ok := d.byName[name]
	if !ok {
		return -1
	}
	return idx
}

// KindOf returns the kind of the named column.
// Returns ErrColumnNotFound if the column is absent.
func (d *Dataset) KindOf(name string) (ColumnKind, error) {
	idx, ok := d.byName[name]
	if !ok {
		return KindOther, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return kindOf(d.fields[idx].Type), nil
}

// FieldAt returns the Arrow field describing the column at the given index.
func (d *Dataset) FieldAt(i int) arrow.Field {
	return d.fields[i]
}

// ColumnAt returns the Arrow array backing the column at the given index.
// The array must not be released by the caller.
func (d *Dataset) ColumnAt(i int) arrow.Array {
	return d.cols[i]
}

// ColumnByName returns the Arrow array backing the named column.
// Returns ErrColumnNotFound if the column is absent.
func (d *Dataset) ColumnByName(name string) (arrow.Array, error) {
	idx, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return d.cols[idx], nil
}

// RowIDs returns a copy of the stable row identifiers, in row order.
func (d *Dataset) RowIDs() []int64 {
	ids := make([]int64, len(d.ids))
	copy(ids, d.ids)
	return ids
}

// RowID returns the stable identifier of the row at the given position.
// Returns ErrInvalidRow if row is out of range.
func (d *Dataset) RowID(row int) (int64, error) {
	if row < 0 || row >= len(d.ids) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return d.ids[row], nil
}

// Cell returns the value at the given row position in the named column.
// Returns ErrInvalidRow or ErrColumnNotFound on bad coordinates.
func (d *Dataset) Cell(row int, name string) (Value, error) {
	if row < 0 || row >= len(d.ids) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	idx, ok := d.byName[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	col := d.cols[idx]
	kind := kindOf(d.fields[idx].Type)
	if col.IsNull(row) {
		return Value{Kind: kind, IsNull: true}, nil
	}
	return Value{
		Raw:       valueAt(col, row),
		Kind:      kind,
		Formatted: formatAt(col, row),
	}, nil
}

// FilterRows returns a new Dataset containing the rows where keep is true,
// in their original relative order and with their original identifiers.
// Returns ErrLengthMismatch if keep does not cover every row.
func (d *Dataset) FilterRows(keep []bool) (*Dataset, error) {
	if len(keep) != len(d.ids) {
		return nil, fmt.Errorf("%w: mask has %d entries, want %d",
			ErrLengthMismatch, len(keep), len(d.ids))
	}

	ids := make([]int64, 0, len(d.ids))
	for i, k := range keep {
		if k {
			ids = append(ids, d.ids[i])
		}
	}

	pool := memory.NewGoAllocator()
	fields := make([]arrow.Field, len(d.fields))
	copy(fields, d.fields)

	cols := make([]arrow.Array, 0, len(d.cols))
	for _, col := range d.cols {
		arr, err := filterArray(pool, col, keep)
		if err != nil {
			for _, c := range cols {
				c.Release()
			}
			return nil, err
		}
		cols = append(cols, arr)
	}

	return newDataset(fields, cols, ids)
}

// filterArray copies the kept rows of an array by slicing the contiguous runs
// of the mask and concatenating them. Slicing works for every Arrow type, so
// values of columns an operation does not touch survive filtering unchanged.
func filterArray(pool memory.Allocator, col arrow.Array, keep []bool) (arrow.Array, error) {
	var runs []arrow.Array
	start := -1
	for i := 0; i <= len(keep); i++ {
		if i < len(keep) && keep[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, array.NewSlice(col, int64(start), int64(i)))
			start = -1
		}
	}

	if len(runs) == 0 {
		return array.NewSlice(col, 0, 0), nil
	}

	out, err := array.Concatenate(runs, pool)
	for _, run := range runs {
		run.Release()
	}
	if err != nil {
		return nil, fmt.Errorf("filtering column: %w", err)
	}
	return out, nil
}

// ReplaceColumns returns a new Dataset with the given columns replaced by the
// supplied arrays; every other column is shared with the receiver. The new
// arrays must match the dataset's row count. Ownership of the supplied arrays
// transfers to the new Dataset.
func (d *Dataset) ReplaceColumns(repl map[string]arrow.Array) (*Dataset, error) {
	for name, arr := range repl {
		if _, ok := d.byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		if arr.Len() != len(d.ids) {
			return nil, fmt.Errorf("%w: replacement %q has %d rows, want %d",
				ErrLengthMismatch, name, arr.Len(), len(d.ids))
		}
	}

	fields := make([]arrow.Field, len(d.fields))
	cols := make([]arrow.Array, len(d.cols))
	for i, f := range d.fields {
		if arr, ok := repl[f.Name]; ok {
			fields[i] = arrow.Field{Name: f.Name, Type: arr.DataType(), Nullable: true}
			cols[i] = arr
		} else {
			fields[i] = f
			d.cols[i].Retain()
			cols[i] = d.cols[i]
		}
	}

	ids := make([]int64, len(d.ids))
	copy(ids, d.ids)

	return newDataset(fields, cols, ids)
}

// NewRecord assembles the dataset's columns into an Arrow record, for example
// to hand to a Parquet or CSV writer. The caller must release the record.
func (d *Dataset) NewRecord() arrow.Record {
	schema := arrow.NewSchema(d.fields, nil)
	for _, col := range d.cols {
		col.Retain()
	}
	return array.NewRecord(schema, d.cols, int64(len(d.ids)))
}

// Equal reports whether two datasets hold the same columns, row identifiers
// and cell values. Intended primarily for tests.
func (d *Dataset) Equal(other *Dataset) bool {
	if other == nil || len(d.fields) != len(other.fields) || len(d.ids) != len(other.ids) {
		return false
	}
	for i := range d.ids {
		if d.ids[i] != other.ids[i] {
			return false
		}
	}
	for i, f := range d.fields {
		of := other.fields[i]
		if f.Name != of.Name || !arrow.TypeEqual(f.Type, of.Type) {
			return false
		}
		if !array.Equal(d.cols[i], other.cols[i]) {
			return false
		}
	}
	return true
}

// Retain increases the reference count of every backing array.
func (d *Dataset) Retain() {
	for _, col := range d.cols {
		col.Retain()
	}
}

// Release decreases the reference count of every backing array.
func (d *Dataset) Release() {
	for _, col := range d.cols {
		col.Release()
	}
}
