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

package status_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mediarc/pkg/rename"
	"github.com/walteh/mediarc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🧪 stubChecker fakes ffprobe availability
type stubChecker struct {
	err error
}

func (s *stubChecker) Check(ctx context.Context) error {
	return s.err
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func newTestRenamer(t *testing.T) *rename.Renamer {
	t.Helper()

	staging := rename.NewStagingAt(filepath.Join(t.TempDir(), "staged.json"))
	journal, err := rename.NewJournal(t.TempDir())
	require.NoError(t, err)
	return rename.New(staging, journal)
}

func TestBuildCleanEnvironment(t *testing.T) {
	ctx := testContext(t)
	r := newTestRenamer(t)

	report := status.Build(ctx, "1.2.3", &stubChecker{}, r)

	assert.Equal(t, "1.2.3", report.Version)
	assert.Equal(t, runtime.GOOS, report.Platform)
	assert.Equal(t, "ok", report.Ffprobe)
	assert.Equal(t, 0, report.StagedRenames)
	assert.False(t, report.UndoAvailable)

	ts, err := time.Parse(time.RFC3339, report.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestBuildMissingFfprobe(t *testing.T) {
	ctx := testContext(t)
	r := newTestRenamer(t)

	report := status.Build(ctx, "1.2.3", &stubChecker{err: errors.New("not installed")}, r)
	assert.Equal(t, "not_found", report.Ffprobe)
}

func TestBuildCountsStagedAndUndo(t *testing.T) {
	ctx := testContext(t)
	r := newTestRenamer(t)

	require.NoError(t, r.Staging().Append(ctx, rename.Intent{OriginalPath: "/v/a.mp4", NewPath: "/v/a2.mp4"}))
	require.NoError(t, r.Staging().Append(ctx, rename.Intent{OriginalPath: "/v/b.mp4", NewPath: "/v/b2.mp4"}))
	require.NoError(t, r.Journal().Save(ctx, rename.UndoBatch{Operations: []rename.Intent{
		{OriginalPath: "/v/c.mp4", NewPath: "/v/c2.mp4"},
	}}))

	report := status.Build(ctx, "1.2.3", &stubChecker{}, r)
	assert.Equal(t, 2, report.StagedRenames)
	assert.True(t, report.UndoAvailable)
}

func TestBuildEmptyJournalMeansNoUndo(t *testing.T) {
	ctx := testContext(t)
	r := newTestRenamer(t)

	require.NoError(t, r.Journal().Save(ctx, rename.UndoBatch{Operations: []rename.Intent{}}))

	report := status.Build(ctx, "1.2.3", &stubChecker{}, r)
	assert.False(t, report.UndoAvailable)
}

func TestRenderJSON(t *testing.T) {
	out, err := status.RenderJSON(map[string]int{"count": 3})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(out, "\n"), "single trailing newline")
	assert.False(t, strings.HasSuffix(out, "\n\n"), "single trailing newline")
	assert.NotContains(t, out, "\r\n")

	var decoded map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded["count"])
}

func TestRenderJSONIndents(t *testing.T) {
	out, err := status.RenderJSON(status.Report{Version: "1.2.3", Ffprobe: "ok"})
	require.NoError(t, err)

	assert.Contains(t, out, "  \"version\": \"1.2.3\"")
	assert.Contains(t, out, "\"staged_renames\": 0")
}

func TestFormatRenameRow(t *testing.T) {
	valid := status.FormatRenameRow("/v/old name.mp4", "/v/new name.mp4", true, "")
	assert.Contains(t, valid, "✓")
	assert.Contains(t, valid, "old name.mp4")
	assert.Contains(t, valid, "->")
	assert.Contains(t, valid, "new name.mp4")

	invalid := status.FormatRenameRow("/v/a.mp4", "/v/b.mp4", false, "target path already exists")
	assert.Contains(t, invalid, "✗")
	assert.Contains(t, invalid, "(target path already exists)")
}
