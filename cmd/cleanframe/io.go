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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	delta_sharing "github.com/magpierre/go_delta_sharing_client"

	"github.com/magpierre/cleanframe/adapters/csvio"
	"github.com/magpierre/cleanframe/adapters/deltashare"
	"github.com/magpierre/cleanframe/adapters/jsonio"
	"github.com/magpierre/cleanframe/adapters/parquetio"
	"github.com/magpierre/cleanframe/dataset"
)

// FileType represents the type of data file.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeCSV
	FileTypeParquet
	FileTypeJSON
	FileTypeDeltaSharingProfile
)

// DetectFileType determines the type of file based on extension and content.
func DetectFileType(filePath string, content []byte) FileType {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".csv", ".tsv":
		return FileTypeCSV
	case ".parquet":
		return FileTypeParquet
	case ".json", ".share", ".txt":
		if deltashare.IsProfile(content) {
			return FileTypeDeltaSharingProfile
		}
		return FileTypeJSON
	default:
		return FileTypeUnknown
	}
}

type loadOptions struct {
	input  string
	share  string
	schema string
	table  string
}

func loadDataset(ctx context.Context, opts loadOptions) (*dataset.Dataset, error) {
	fileType := DetectFileType(opts.input, nil)
	if fileType == FileTypeJSON {
		// JSON-looking files may be Delta Sharing profiles; re-detect with
		// the content in hand.
		content, err := os.ReadFile(opts.input)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		if DetectFileType(opts.input, content) == FileTypeDeltaSharingProfile {
			return loadFromShare(ctx, string(content), opts)
		}
	}

	switch fileType {
	case FileTypeCSV:
		config := csvio.DefaultConfig()
		config.Delimiter = 0 // detect
		return csvio.ReadFile(opts.input, config)
	case FileTypeParquet:
		return parquetio.ReadFile(ctx, opts.input)
	case FileTypeJSON:
		return jsonio.ReadFile(opts.input)
	default:
		return nil, fmt.Errorf("unsupported file type: %q", filepath.Ext(opts.input))
	}
}

// loadFromShare fetches the first data file of the named shared table.
func loadFromShare(ctx context.Context, profile string, opts loadOptions) (*dataset.Dataset, error) {
	if opts.share == "" || opts.schema == "" || opts.table == "" {
		return nil, fmt.Errorf("delta sharing input requires --share, --schema and --table")
	}

	table := delta_sharing.Table{
		Share:  opts.share,
		Schema: opts.schema,
		Name:   opts.table,
	}

	fileIDs, err := deltashare.ListFileIDs(ctx, profile, table)
	if err != nil {
		return nil, err
	}
	if len(fileIDs) == 0 {
		return nil, fmt.Errorf("shared table %s.%s.%s has no data files", opts.share, opts.schema, opts.table)
	}
	if len(fileIDs) > 1 {
		slog.Warn("shared table has multiple data files, loading the first",
			"table", opts.table, "files", len(fileIDs))
	}

	return deltashare.LoadFile(ctx, profile, table, fileIDs[0])
}

func saveDataset(ds *dataset.Dataset, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return csvio.WriteFile(ds, path)
	case ".parquet":
		return parquetio.WriteFile(ds, path)
	case ".json":
		return jsonio.WriteFile(ds, path)
	default:
		return fmt.Errorf("unsupported output type: %q", ext)
	}
}
