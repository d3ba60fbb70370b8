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
)

// valueAt returns the typed value at a position, preserving the Go type.
// The cell must not be null.
func valueAt(col arrow.Array, pos int) interface{} {
	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos)
	case arrow.LARGE_STRING:
		return col.(*array.LargeString).Value(pos)
	case arrow.BINARY:
		return string(col.(*array.Binary).Value(pos))
	case arrow.BOOL:
		return col.(*array.Boolean).Value(pos)
	case arrow.INT8:
		return col.(*array.Int8).Value(pos)
	case arrow.INT16:
		return col.(*array.Int16).Value(pos)
	case arrow.INT32:
		return col.(*array.Int32).Value(pos)
	case arrow.INT64:
		return col.(*array.Int64).Value(pos)
	case arrow.UINT8:
		return col.(*array.Uint8).Value(pos)
	case arrow.UINT16:
		return col.(*array.Uint16).Value(pos)
	case arrow.UINT32:
		return col.(*array.Uint32).Value(pos)
	case arrow.UINT64:
		return col.(*array.Uint64).Value(pos)
	case arrow.FLOAT16:
		return col.(*array.Float16).Value(pos).Float32()
	case arrow.FLOAT32:
		return col.(*array.Float32).Value(pos)
	case arrow.FLOAT64:
		return col.(*array.Float64).Value(pos)
	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime()
	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime()
	case arrow.TIMESTAMP:
		return col.(*array.Timestamp).Value(pos).ToTime(arrow.Nanosecond)
	case arrow.DECIMAL128:
		return col.(*array.Decimal128).Value(pos).BigInt().String()
	default:
		return nil
	}
}

// formatAt converts the value at a position to a display string.
func formatAt(col arrow.Array, pos int) string {
	if col.IsNull(pos) {
		return ""
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos)
	case arrow.LARGE_STRING:
		return col.(*array.LargeString).Value(pos)
	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime().Format("2006-01-02")
	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime().Format("2006-01-02")
	case arrow.TIMESTAMP:
		return col.(*array.Timestamp).Value(pos).ToTime(arrow.Nanosecond).Format("2006-01-02 15:04:05.999999999")
	case arrow.FLOAT16:
		return col.(*array.Float16).Value(pos).String()
	case arrow.DECIMAL128:
		return col.(*array.Decimal128).Value(pos).BigInt().String()
	default:
		return fmt.Sprintf("%v", valueAt(col, pos))
	}
}

// Float64At returns the numeric value at a position as a float64. The second
// return is false when the cell is null or the array is not a numeric type.
func Float64At(col arrow.Array, pos int) (float64, bool) {
	if col.IsNull(pos) {
		return 0, false
	}

	switch col.DataType().ID() {
	case arrow.INT8:
		return float64(col.(*array.Int8).Value(pos)), true
	case arrow.INT16:
		return float64(col.(*array.Int16).Value(pos)), true
	case arrow.INT32:
		return float64(col.(*array.Int32).Value(pos)), true
	case arrow.INT64:
		return float64(col.(*array.Int64).Value(pos)), true
	case arrow.UINT8:
		return float64(col.(*array.Uint8).Value(pos)), true
	case arrow.UINT16:
		return float64(col.(*array.Uint16).Value(pos)), true
	case arrow.UINT32:
		return float64(col.(*array.Uint32).Value(pos)), true
	case arrow.UINT64:
		return float64(col.(*array.Uint64).Value(pos)), true
	case arrow.FLOAT16:
		return float64(col.(*array.Float16).Value(pos).Float32()), true
	case arrow.FLOAT32:
		return float64(col.(*array.Float32).Value(pos)), true
	case arrow.FLOAT64:
		return col.(*array.Float64).Value(pos), true
	default:
		return 0, false
	}
}
