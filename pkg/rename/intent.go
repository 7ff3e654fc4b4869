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

// 🎯 Intent is a single planned rename. Inside a staged batch it is
// unexecuted; inside an undo batch it records a rename that already
// happened and is replayed NewPath -> OriginalPath.
//
// Batches are ordered and order is significant: renaming A->B then
// B->C only works in that order, so staging, commit and the journal
// all preserve insertion order.
type Intent struct {
	OriginalPath string `json:"original_path"`
	NewPath      string `json:"new_path"`
}
