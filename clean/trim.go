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
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/magpierre/cleanframe/dataset"
)

// Trim returns a new Dataset in which every value of the named text columns
// has leading and trailing whitespace removed. Missing cells stay missing;
// columns not named are shared with the input unchanged.
//
// All named columns must exist (dataset.ErrColumnNotFound) and be of kind
// text (dataset.ErrTypeMismatch); both checks run before any column is
// rebuilt, so a failing call leaves no observable effect.
func Trim(ds *dataset.Dataset, columns []string) (*dataset.Dataset, error) {
	if err := validateColumns(ds, columns); err != nil {
		return nil, err
	}
	for _, name := range columns {
		kind, err := ds.KindOf(name)
		if err != nil {
			return nil, err
		}
		if kind != dataset.KindText {
			return nil, fmt.Errorf("%w: column %q is %s, want %s",
				dataset.ErrTypeMismatch, name, kind, dataset.KindText)
		}
	}

	pool := memory.NewGoAllocator()
	repl := make(map[string]arrow.Array, len(columns))
	for _, name := range columns {
		col, err := ds.ColumnByName(name)
		if err != nil {
			releaseAll(repl)
			return nil, err
		}
		repl[name] = trimColumn(pool, col)
	}

	out, err := ds.ReplaceColumns(repl)
	if err != nil {
		releaseAll(repl)
		return nil, err
	}
	return out, nil
}

// trimColumn builds a trimmed copy of a text column, preserving nulls.
func trimColumn(pool memory.Allocator, col arrow.Array) arrow.Array {
	switch c := col.(type) {
	case *array.LargeString:
		b := array.NewLargeStringBuilder(pool)
		defer b.Release()
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				b.AppendNull()
				continue
			}
			b.Append(strings.TrimSpace(c.Value(i)))
		}
		return b.NewArray()
	default:
		c2 := col.(*array.String)
		b := array.NewStringBuilder(pool)
		defer b.Release()
		for i := 0; i < c2.Len(); i++ {
			if c2.IsNull(i) {
				b.AppendNull()
				continue
			}
			b.Append(strings.TrimSpace(c2.Value(i)))
		}
		return b.NewArray()
	}
}

func releaseAll(arrays map[string]arrow.Array) {
	for _, arr := range arrays {
		arr.Release()
	}
}
