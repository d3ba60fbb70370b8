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

// Package deltashare loads tables from a Delta Sharing endpoint into a
// dataset.Dataset, using a share profile (endpoint + bearer token).
package deltashare

import (
	"context"
	"encoding/json"
	"fmt"

	delta_sharing "github.com/magpierre/go_delta_sharing_client"

	"github.com/magpierre/cleanframe/dataset"
)

// IsProfile checks whether content looks like a Delta Sharing profile:
// a JSON object with shareCredentialsVersion, endpoint and bearerToken.
func IsProfile(content []byte) bool {
	var profile map[string]interface{}
	if err := json.Unmarshal(content, &profile); err != nil {
		return false
	}

	_, hasVersion := profile["shareCredentialsVersion"]
	_, hasEndpoint := profile["endpoint"]
	_, hasBearerToken := profile["bearerToken"]

	return hasVersion && hasEndpoint && hasBearerToken
}

// ListFileIDs returns the identifiers of the data files backing a shared
// table, in server order.
func ListFileIDs(ctx context.Context, profile string, table delta_sharing.Table) ([]string, error) {
	client, err := delta_sharing.NewSharingClientV2FromString(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create Delta Sharing client: %w", err)
	}

	resp, err := client.ListFilesInTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list files in table: %w", err)
	}

	ids := make([]string, len(resp.AddFiles))
	for i, f := range resp.AddFiles {
		ids[i] = f.Id
	}
	return ids, nil
}

// LoadFile loads a single data file of a shared table into a Dataset.
func LoadFile(ctx context.Context, profile string, table delta_sharing.Table, fileID string) (*dataset.Dataset, error) {
	client, err := delta_sharing.NewSharingClientV2FromString(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create Delta Sharing client: %w", err)
	}

	arrowTable, err := delta_sharing.LoadArrowTable(ctx, client, table, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrow table: %w", err)
	}
	defer arrowTable.Release()

	return dataset.NewFromTable(arrowTable)
}
