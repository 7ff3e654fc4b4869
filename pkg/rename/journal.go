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

package rename

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	journalDirname  = ".mediarc"
	journalFilename = "undo.json"
)

// 📒 UndoBatch is the persisted form of the most recently committed
// batch: already-executed renames replayed NewPath -> OriginalPath.
type UndoBatch struct {
	Operations []Intent `json:"operations"`
}

// 📒 Journal persists at most one UndoBatch under a workspace-relative
// hidden directory. Absence of the file means "no undo available".
type Journal struct {
	path string
}

// 🏭 NewJournal creates a journal under dir/.mediarc, creating the
// hidden directory on demand.
func NewJournal(dir string) (*Journal, error) {
	journalDir := filepath.Join(dir, journalDirname)
	if err := os.MkdirAll(journalDir, 0755); err != nil {
		return nil, errors.Errorf("creating journal directory: %w", err)
	}
	return &Journal{path: filepath.Join(journalDir, journalFilename)}, nil
}

// Path returns the backing file location.
func (j *Journal) Path() string { return j.path }

// 💾 Save overwrites the journal with batch. Called only after a fully
// successful commit, so a failed commit never clobbers older undo data.
func (j *Journal) Save(ctx context.Context, batch UndoBatch) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return errors.Errorf("encoding undo batch: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(j.path, data, 0644); err != nil {
		return errors.Errorf("writing undo journal: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", j.path).Int("count", len(batch.Operations)).Msg("saved undo journal")
	return nil
}

// 📥 Load reads the journal without consuming it. Returns nil when no
// undo batch exists.
func (j *Journal) Load(ctx context.Context) (*UndoBatch, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Errorf("reading undo journal: %w", err)
	}

	var batch UndoBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, errors.Errorf("parsing undo journal: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", j.path).Int("count", len(batch.Operations)).Msg("loaded undo journal")
	return &batch, nil
}

// 🎟️ Take loads the journal and deletes it in the same step. The
// delete-before-replay guarantees at most one undo attempt per
// committed batch, even if the replay then fails partway.
func (j *Journal) Take(ctx context.Context) (*UndoBatch, error) {
	batch, err := j.Load(ctx)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}
	if err := j.Clear(ctx); err != nil {
		return nil, err
	}
	return batch, nil
}

// 🗑️ Clear deletes the journal file. Absent file is a no-op.
func (j *Journal) Clear(ctx context.Context) error {
	if err := os.Remove(j.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Errorf("removing undo journal: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", j.path).Msg("cleared undo journal")
	return nil
}
