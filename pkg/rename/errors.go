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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNoStagedRenames is returned by Commit when the staging store
	// holds no intents. Precondition failure, not an I/O error.
	ErrNoStagedRenames = errors.New("no staged renames to commit")

	// ErrNoUndoData is returned by Undo when there is no batch to
	// reverse, including after the journal was already consumed once.
	ErrNoUndoData = errors.New("no previous rename batch to undo")
)

// ❌ RenameFailedError reports the first filesystem failure inside a
// commit or undo batch. Earlier entries in the batch stayed applied.
type RenameFailedError struct {
	From string
	To   string
	Err  error
}

func (e *RenameFailedError) Error() string {
	return fmt.Sprintf("rename failed for %q to %q: %v", e.From, e.To, e.Err)
}

func (e *RenameFailedError) Unwrap() error { return e.Err }

// IsRenameFailed checks whether err is a RenameFailedError.
func IsRenameFailed(err error) bool {
	var e *RenameFailedError
	return errors.As(err, &e)
}
