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

// stagingFilename lives in the OS temp directory so a staged batch
// survives across process runs of the tool.
const stagingFilename = "mediarc_staged_renames.json"

// 📋 Staging persists the pending rename batch as a single JSON file.
// Absence of the file means "no staged batch". Append is
// load-modify-save; there is no cross-process synchronization.
type Staging struct {
	path string
}

// 🏭 NewStaging creates a staging store at the well-known temp path.
func NewStaging() *Staging {
	return &Staging{path: filepath.Join(os.TempDir(), stagingFilename)}
}

// NewStagingAt creates a staging store backed by an explicit file path.
func NewStagingAt(path string) *Staging {
	return &Staging{path: path}
}

// Path returns the backing file location.
func (s *Staging) Path() string { return s.path }

// 📥 Load reads the staged batch in staging order. A missing file is
// an empty batch, never an error.
func (s *Staging) Load(ctx context.Context) ([]Intent, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Errorf("reading staging file: %w", err)
	}

	var intents []Intent
	if err := json.Unmarshal(data, &intents); err != nil {
		return nil, errors.Errorf("parsing staging file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", s.path).Int("count", len(intents)).Msg("loaded staged renames")
	return intents, nil
}

// 💾 Save writes the whole batch back, pretty-printed with a trailing
// newline so the file diffs cleanly.
func (s *Staging) Save(ctx context.Context, intents []Intent) error {
	data, err := json.MarshalIndent(intents, "", "  ")
	if err != nil {
		return errors.Errorf("encoding staged renames: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Errorf("writing staging file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", s.path).Int("count", len(intents)).Msg("saved staged renames")
	return nil
}

// ➕ Append stages one more intent at the end of the batch.
func (s *Staging) Append(ctx context.Context, intent Intent) error {
	intents, err := s.Load(ctx)
	if err != nil {
		return err
	}
	intents = append(intents, intent)
	return s.Save(ctx, intents)
}

// 🗑️ Clear deletes the staging file. Deleting an absent file is a
// no-op, not an error.
func (s *Staging) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Errorf("removing staging file: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", s.path).Msg("cleared staged renames")
	return nil
}
