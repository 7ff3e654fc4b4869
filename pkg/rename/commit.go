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
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/mediarc/pkg/media"
)

// 🔧 Renamer ties the staging store and undo journal to the commit and
// undo engines. All filesystem renames are issued sequentially; later
// entries in a batch may depend on earlier ones having completed.
type Renamer struct {
	staging *Staging
	journal *Journal
}

// 🏭 New creates a Renamer over the given staging store and journal.
func New(staging *Staging, journal *Journal) *Renamer {
	return &Renamer{staging: staging, journal: journal}
}

// Staging exposes the underlying staging store.
func (r *Renamer) Staging() *Staging { return r.staging }

// Journal exposes the underlying undo journal.
func (r *Renamer) Journal() *Journal { return r.journal }

// ➕ Stage validates rec against tpl and appends the resulting intent
// to the staging store. Unlike MakePreview, a template error here is
// returned to the caller: nothing invalid may enter the batch.
func (r *Renamer) Stage(ctx context.Context, rec *media.Record, tpl string) (Intent, error) {
	newPath, err := candidatePath(rec, tpl)
	if err != nil {
		return Intent{}, err
	}

	intent := Intent{OriginalPath: rec.Path, NewPath: newPath}
	if err := r.staging.Append(ctx, intent); err != nil {
		return Intent{}, err
	}

	zerolog.Ctx(ctx).Info().
		Str("from", intent.OriginalPath).
		Str("to", intent.NewPath).
		Msg("staged rename")
	return intent, nil
}

// 🚀 Commit applies the staged batch to the filesystem in staging
// order and persists the executed batch to the undo journal.
//
// The first rename failure stops the batch: earlier renames stay
// applied, the staging store is left as-is and no journal is written,
// so the previous undo batch (if any) keeps its availability. On full
// success the staging store is cleared before the journal is saved; a
// clear failure is logged and does not unwind the renames.
func (r *Renamer) Commit(ctx context.Context) ([]Intent, error) {
	logger := zerolog.Ctx(ctx)

	staged, err := r.staging.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(staged) == 0 {
		return nil, ErrNoStagedRenames
	}

	committed := make([]Intent, 0, len(staged))
	for _, intent := range staged {
		logger.Info().Str("from", intent.OriginalPath).Str("to", intent.NewPath).Msg("renaming")
		if err := os.Rename(intent.OriginalPath, intent.NewPath); err != nil {
			logger.Error().Err(err).
				Str("from", intent.OriginalPath).
				Str("to", intent.NewPath).
				Msg("rename failed, stopping batch")
			return nil, &RenameFailedError{From: intent.OriginalPath, To: intent.NewPath, Err: err}
		}
		committed = append(committed, intent)
	}

	if err := r.staging.Clear(ctx); err != nil {
		logger.Warn().Err(err).Msg("clearing staging store after commit")
	}

	if err := r.journal.Save(ctx, UndoBatch{Operations: committed}); err != nil {
		return committed, err
	}

	logger.Info().Int("count", len(committed)).Msg("committed rename batch")
	return committed, nil
}

// ↩️ Undo consumes the journal and reverses the last committed batch,
// returning the intents in the order they were restored.
//
// The journal is taken, not merely read, before replay begins: even a
// replay that fails partway cannot be retried automatically. Replay
// runs in reverse commit order because later renames may have depended
// on earlier ones freeing up a path.
func (r *Renamer) Undo(ctx context.Context) ([]Intent, error) {
	logger := zerolog.Ctx(ctx)

	batch, err := r.journal.Take(ctx)
	if err != nil {
		return nil, err
	}
	if batch == nil || len(batch.Operations) == 0 {
		return nil, ErrNoUndoData
	}

	ops := batch.Operations
	restored := make([]Intent, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		logger.Info().Str("from", op.NewPath).Str("to", op.OriginalPath).Msg("undoing rename")
		if err := os.Rename(op.NewPath, op.OriginalPath); err != nil {
			logger.Error().Err(err).
				Str("from", op.NewPath).
				Str("to", op.OriginalPath).
				Msg("undo rename failed, stopping batch")
			return restored, &RenameFailedError{From: op.NewPath, To: op.OriginalPath, Err: err}
		}
		restored = append(restored, op)
	}

	logger.Info().Int("count", len(restored)).Msg("undid rename batch")
	return restored, nil
}
