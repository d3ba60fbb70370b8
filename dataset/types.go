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

// Package dataset provides an immutable tabular dataset backed by Apache
// Arrow arrays, with named columns, a closed set of column kinds and stable
// per-row identifiers that survive row removal.
package dataset

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// ColumnKind classifies a column's values. Operations use the kind to decide
// whether they apply to a column; it is derived once from the Arrow data type
// when the dataset is constructed.
type ColumnKind int

const (
	// KindText represents string data.
	KindText ColumnKind = iota
	// KindNumeric represents integer, unsigned or floating-point data.
	KindNumeric
	// KindOther represents any data that is neither text nor numeric.
	KindOther
)

// String returns the string representation of a ColumnKind.
func (k ColumnKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNumeric:
		return "Numeric"
	case KindOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// kindOf maps an Arrow data type to a ColumnKind.
func kindOf(dt arrow.DataType) ColumnKind {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return KindText
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return KindNumeric
	default:
		return KindOther
	}
}

// Value is a typed container for cell values.
// It holds the raw value, the column kind, and a pre-formatted string.
type Value struct {
	// Raw holds the underlying value.
	// The Go type depends on the column's Arrow data type.
	Raw interface{}

	// Kind indicates the column kind of this value.
	Kind ColumnKind

	// IsNull indicates whether this cell holds the missing marker.
	IsNull bool

	// Formatted is a string representation suitable for display.
	Formatted string
}
