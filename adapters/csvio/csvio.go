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

// Package csvio loads delimited text files into a dataset.Dataset and writes
// datasets back out. Column kinds are inferred per column: a column whose
// non-empty cells all parse as numbers becomes numeric, everything else
// stays text. Empty cells become the missing marker.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/magpierre/cleanframe/dataset"
)

// ErrEmptyInput is returned when the input holds no rows at all.
var ErrEmptyInput = errors.New("csv input is empty")

// Config controls how delimited input is parsed.
type Config struct {
	// Delimiter is the field separator. Zero means detect it from the
	// first line of the file (comma, semicolon, tab or pipe).
	Delimiter rune

	// HasHeaders indicates the first row carries column names. When false,
	// columns are named col0, col1, ...
	HasHeaders bool

	// TrimSpace strips surrounding whitespace from every cell while
	// parsing, before type inference.
	TrimSpace bool
}

// DefaultConfig returns the default CSV configuration.
func DefaultConfig() Config {
	return Config{Delimiter: ',', HasHeaders: true}
}

// ReadFile loads a delimited file into a Dataset. A zero Delimiter in the
// config is replaced by the detected one.
func ReadFile(path string, config Config) (*dataset.Dataset, error) {
	if config.Delimiter == 0 {
		sep, err := DetectDelimiter(path)
		if err != nil {
			return nil, err
		}
		config.Delimiter = sep
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Read(f, config)
}

// Read parses delimited input into a Dataset.
func Read(r io.Reader, config Config) (*dataset.Dataset, error) {
	if config.Delimiter == 0 {
		config.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = config.Delimiter
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	var names []string
	if config.HasHeaders {
		names = records[0]
		records = records[1:]
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("col%d", i)
		}
	}

	if config.TrimSpace {
		for _, row := range records {
			for i, cell := range row {
				row[i] = strings.TrimSpace(cell)
			}
		}
	}

	b := dataset.NewBuilder()
	for col, name := range names {
		cells := make([]string, len(records))
		missing := make([]bool, len(records))
		numeric := true
		for row := range records {
			cells[row] = records[row][col]
			if cells[row] == "" {
				missing[row] = true
				continue
			}
			if _, err := strconv.ParseFloat(cells[row], 64); err != nil {
				numeric = false
			}
		}

		if numeric {
			vals := make([]float64, len(cells))
			for i, cell := range cells {
				if missing[i] {
					continue
				}
				vals[i], _ = strconv.ParseFloat(cell, 64)
			}
			b.AddFloats(name, vals, missing)
		} else {
			b.AddStrings(name, cells, missing)
		}
	}

	return b.NewDataset()
}

// DetectDelimiter guesses the field separator from the first line of a file
// by counting occurrences of the common candidates. Defaults to comma.
func DetectDelimiter(path string) (rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return ',', fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ',', nil
	}
	firstLine := scanner.Text()
	if firstLine == "" {
		return ',', nil
	}

	separators := map[rune]int{
		',':  strings.Count(firstLine, ","),
		';':  strings.Count(firstLine, ";"),
		'\t': strings.Count(firstLine, "\t"),
		'|':  strings.Count(firstLine, "|"),
	}

	maxCount := 0
	detected := ','
	for sep, count := range separators {
		if count > maxCount {
			maxCount = count
			detected = sep
		}
	}
	return detected, nil
}

// WriteFile writes a Dataset to a comma-separated file with a header row.
func WriteFile(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	return Write(f, ds)
}

// Write writes a Dataset as comma-separated text with a header row.
// Missing cells are written as empty fields.
func Write(w io.Writer, ds *dataset.Dataset) error {
	if ds == nil {
		return dataset.ErrNoDataset
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	names := ds.ColumnNames()
	for row := 0; row < ds.RowCount(); row++ {
		record := make([]string, len(names))
		for i, name := range names {
			v, err := ds.Cell(row, name)
			if err != nil {
				return err
			}
			record[i] = v.Formatted
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
