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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mediarc/pkg/rename"
)

func TestJournalCreatesHiddenDirectory(t *testing.T) {
	dir := t.TempDir()

	journal, err := rename.NewJournal(dir)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, ".mediarc"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, ".mediarc", "undo.json"), journal.Path())
}

func TestJournalLoadMissing(t *testing.T) {
	ctx := testContext(t)
	journal, err := rename.NewJournal(t.TempDir())
	require.NoError(t, err)

	batch, err := journal.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, batch)
}

func TestJournalSaveLoadRoundtrip(t *testing.T) {
	ctx := testContext(t)
	journal, err := rename.NewJournal(t.TempDir())
	require.NoError(t, err)

	want := rename.UndoBatch{Operations: []rename.Intent{
		{OriginalPath: "/v/a.mp4", NewPath: "/v/a2.mp4"},
		{OriginalPath: "/v/b.mp4", NewPath: "/v/b2.mp4"},
	}}
	require.NoError(t, journal.Save(ctx, want))

	got, err := journal.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Operations, got.Operations)

	// The persisted form is the documented {"operations": [...]} shape.
	data, err := os.ReadFile(journal.Path())
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "operations")
}

func TestJournalTakeConsumes(t *testing.T) {
	ctx := testContext(t)
	journal, err := rename.NewJournal(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, journal.Save(ctx, rename.UndoBatch{Operations: []rename.Intent{
		{OriginalPath: "/v/a.mp4", NewPath: "/v/a2.mp4"},
	}}))

	first, err := journal.Take(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Len(t, first.Operations, 1)

	// The journal is gone: a second take finds nothing.
	second, err := journal.Take(ctx)
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestJournalClearMissingIsNoop(t *testing.T) {
	ctx := testContext(t)
	journal, err := rename.NewJournal(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, journal.Clear(ctx))
}
