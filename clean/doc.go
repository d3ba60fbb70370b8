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

// Package clean provides pure sanitation operations over a dataset.Dataset:
//
//   - Trim: strip leading/trailing whitespace from text columns.
//   - DropInvalidRows: remove rows with missing values in given columns.
//   - RemoveOutliersIQR: remove rows whose numeric value falls strictly
//     outside the interquartile-range bounds.
//
// Every operation validates all of its inputs before touching a single row,
// returns a new Dataset and never mutates the one it was given. Validation
// failures wrap the dataset package sentinels (dataset.ErrColumnNotFound,
// dataset.ErrTypeMismatch, ...) and are matchable with errors.Is.
//
// Surviving rows always keep their original identifiers and relative order,
// so results compose: clean(clean(ds)) is well defined and Trim and
// DropInvalidRows are idempotent.
package clean
