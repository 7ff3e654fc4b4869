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

// Package rename implements the staged-then-committed rename workflow.
//
// Rename intents accumulate in an on-disk staging store, are applied to
// the filesystem by Commit in staging order, and the executed batch is
// persisted to an undo journal so the most recent commit can be
// reversed exactly once.
//
// Commit is deliberately not atomic across the batch: it stops at the
// first filesystem failure and leaves earlier renames applied, the
// staging store untouched and no journal written. Rolling back partial
// progress automatically would itself need renames that can fail, so
// recovery from a mid-batch failure is left to the operator. Undo has
// the same first-failure-stops behavior, and because the journal is
// taken (read and deleted) before replay begins, a batch can be
// attempted at most once.
//
// The package assumes a single invoking process. The staging file and
// journal are shared ambient state with no locking; two processes
// racing on them is out of scope.
package rename
