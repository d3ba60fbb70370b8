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

// Package jsonio loads a JSON array of objects into a dataset.Dataset and
// writes datasets back out as JSON. Column names are the union of the object
// keys, ordered alphabetically for determinism; an absent key or a JSON null
// becomes the missing marker. A column whose values are all JSON numbers
// becomes numeric, everything else is coerced to text.
package jsonio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cast"

	"github.com/magpierre/cleanframe/dataset"
)

// ErrNoRecords is returned when the input holds no objects.
var ErrNoRecords = errors.New("json input has no records")

// ReadFile loads a JSON file into a Dataset.
func ReadFile(path string) (*dataset.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	var data []map[string]interface{}
	if err := json.Unmarshal(content, &data); err != nil {
		// Try as single object
		var singleObj map[string]interface{}
		if err := json.Unmarshal(content, &singleObj); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		data = []map[string]interface{}{singleObj}
	}

	return FromMaps(data)
}

// Read loads a JSON array of objects from a reader into a Dataset.
func Read(r io.Reader) (*dataset.Dataset, error) {
	var data []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return FromMaps(data)
}

// FromMaps builds a Dataset from decoded row objects.
func FromMaps(data []map[string]interface{}) (*dataset.Dataset, error) {
	if len(data) == 0 {
		return nil, ErrNoRecords
	}

	seen := make(map[string]bool)
	var names []string
	for _, row := range data {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
	}
	sort.Strings(names)

	b := dataset.NewBuilder()
	for _, name := range names {
		missing := make([]bool, len(data))
		numeric := true
		for i, row := range data {
			v, ok := row[name]
			if !ok || v == nil {
				missing[i] = true
				continue
			}
			if _, isNum := v.(float64); !isNum {
				numeric = false
			}
		}

		if numeric {
			vals := make([]float64, len(data))
			for i, row := range data {
				if missing[i] {
					continue
				}
				f, err := cast.ToFloat64E(row[name])
				if err != nil {
					return nil, fmt.Errorf("column %q: %w", name, err)
				}
				vals[i] = f
			}
			b.AddFloats(name, vals, missing)
		} else {
			vals := make([]string, len(data))
			for i, row := range data {
				if missing[i] {
					continue
				}
				s, err := cast.ToStringE(row[name])
				if err != nil {
					return nil, fmt.Errorf("column %q: %w", name, err)
				}
				vals[i] = s
			}
			b.AddStrings(name, vals, missing)
		}
	}

	return b.NewDataset()
}

// WriteFile writes a Dataset to a JSON file as an indented array of objects.
func WriteFile(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer f.Close()

	return Write(f, ds)
}

// Write writes a Dataset as an indented JSON array of objects, preserving
// value types. Missing cells are written as null.
func Write(w io.Writer, ds *dataset.Dataset) error {
	if ds == nil {
		return dataset.ErrNoDataset
	}

	names := ds.ColumnNames()
	records := make([]map[string]interface{}, 0, ds.RowCount())
	for row := 0; row < ds.RowCount(); row++ {
		record := make(map[string]interface{}, len(names))
		for _, name := range names {
			v, err := ds.Cell(row, name)
			if err != nil {
				return err
			}
			if v.IsNull {
				record[name] = nil
			} else {
				record[name] = v.Raw
			}
		}
		records = append(records, record)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
