// Copyright 2025 walteh LLC
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

package rename_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mediarc/pkg/rename"
)

// 🧪 testContext builds a context carrying a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestStagingLoadMissingFile(t *testing.T) {
	ctx := testContext(t)
	staging := rename.NewStagingAt(filepath.Join(t.TempDir(), "staged.json"))

	intents, err := staging.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, intents)
}

func TestStagingAppendPreservesOrder(t *testing.T) {
	ctx := testContext(t)
	staging := rename.NewStagingAt(filepath.Join(t.TempDir(), "staged.json"))

	want := []rename.Intent{
		{OriginalPath: "/v/a.mp4", NewPath: "/v/a [1080p].mp4"},
		{OriginalPath: "/v/b.mp4", NewPath: "/v/b [720p].mp4"},
		{OriginalPath: "/v/c.mp4", NewPath: "/v/c [480p].mp4"},
	}
	for _, intent := range want {
		require.NoError(t, staging.Append(ctx, intent))
	}

	got, err := staging.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStagingFileIsPrettyPrintedJSON(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "staged.json")
	staging := rename.NewStagingAt(path)

	require.NoError(t, staging.Append(ctx, rename.Intent{
		OriginalPath: "/v/a.mp4",
		NewPath:      "/v/b.mp4",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"original_path\": \"/v/a.mp4\"")
	assert.True(t, strings.HasSuffix(string(data), "\n"), "file ends with newline")
}

func TestStagingClear(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "staged.json")
	staging := rename.NewStagingAt(path)

	// Clearing an absent store is a no-op.
	require.NoError(t, staging.Clear(ctx))

	require.NoError(t, staging.Append(ctx, rename.Intent{OriginalPath: "/v/a.mp4", NewPath: "/v/b.mp4"}))
	require.NoError(t, staging.Clear(ctx))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "staging file removed")

	intents, err := staging.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, intents)
}

func TestStagingLoadCorruptFile(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "staged.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	staging := rename.NewStagingAt(path)
	_, err := staging.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing staging file")
}
