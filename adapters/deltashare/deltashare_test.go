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

package deltashare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsProfile(t *testing.T) {
	profile := `{
		"shareCredentialsVersion": 1,
		"endpoint": "https://sharing.example.com/delta-sharing/",
		"bearerToken": "token"
	}`
	require.True(t, IsProfile([]byte(profile)))

	require.False(t, IsProfile([]byte(`{"endpoint": "x"}`)))
	require.False(t, IsProfile([]byte(`[1, 2, 3]`)))
	require.False(t, IsProfile([]byte(`not json`)))
}
