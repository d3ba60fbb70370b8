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
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/magpierre/cleanframe/clean"
)

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "cleanframe",
		Short: "Sanitize tabular data files (CSV, Parquet, JSON, Delta Sharing)",
	}
	rootCommand.SilenceUsage = true
	rootCommand.AddCommand(newTrimCommand())
	rootCommand.AddCommand(newDropInvalidCommand())
	rootCommand.AddCommand(newRemoveOutliersCommand())
	rootCommand.AddCommand(newInfoCommand())
	return rootCommand
}

func newTrimCommand() *cobra.Command {
	var opts loadOptions
	var output string
	var columns []string

	cmd := &cobra.Command{
		Use:   "trim",
		Short: "Strip leading/trailing whitespace from text columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ds.Release()

			out, err := clean.Trim(ds, columns)
			if err != nil {
				return err
			}
			defer out.Release()

			slog.Info("trimmed columns", "columns", columns, "rows", out.RowCount())
			return saveDataset(out, output)
		},
	}
	addLoadFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (format by extension)")
	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "text columns to trim")
	mustMarkRequired(cmd, "columns", "output")
	return cmd
}

func newDropInvalidCommand() *cobra.Command {
	var opts loadOptions
	var output string
	var columns []string

	cmd := &cobra.Command{
		Use:   "drop-invalid",
		Short: "Drop rows with missing values in the given columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ds.Release()

			out, err := clean.DropInvalidRows(ds, columns)
			if err != nil {
				return err
			}
			defer out.Release()

			slog.Info("dropped invalid rows",
				"columns", columns,
				"rows_before", ds.RowCount(),
				"rows_after", out.RowCount())
			return saveDataset(out, output)
		},
	}
	addLoadFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (format by extension)")
	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "columns to check for missing values")
	mustMarkRequired(cmd, "columns", "output")
	return cmd
}

func newRemoveOutliersCommand() *cobra.Command {
	var opts loadOptions
	var output string
	var column string
	var factor float64

	cmd := &cobra.Command{
		Use:   "remove-outliers",
		Short: "Drop rows whose numeric value falls outside the IQR bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ds.Release()

			out, err := clean.RemoveOutliersIQR(ds, column, factor)
			if err != nil {
				return err
			}
			defer out.Release()

			slog.Info("removed outliers",
				"column", column,
				"factor", factor,
				"rows_before", ds.RowCount(),
				"rows_after", out.RowCount())
			return saveDataset(out, output)
		},
	}
	addLoadFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (format by extension)")
	cmd.Flags().StringVarP(&column, "column", "c", "", "numeric column to check")
	cmd.Flags().Float64VarP(&factor, "factor", "f", clean.DefaultIQRFactor, "IQR multiplier")
	mustMarkRequired(cmd, "column", "output")
	return cmd
}

func newInfoCommand() *cobra.Command {
	var opts loadOptions

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the columns, kinds and row count of a data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ds.Release()

			fmt.Fprintf(cmd.OutOrStdout(), "rows: %d\n", ds.RowCount())
			for _, name := range ds.ColumnNames() {
				kind, err := ds.KindOf(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\n", name, kind)
			}
			return nil
		},
	}
	addLoadFlags(cmd, &opts)
	return cmd
}

func addLoadFlags(cmd *cobra.Command, opts *loadOptions) {
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (CSV, Parquet, JSON or Delta Sharing profile)")
	cmd.Flags().StringVar(&opts.share, "share", "", "Delta Sharing share name (profile input only)")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Delta Sharing schema name (profile input only)")
	cmd.Flags().StringVar(&opts.table, "table", "", "Delta Sharing table name (profile input only)")
	mustMarkRequired(cmd, "input")
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
