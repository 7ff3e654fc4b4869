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
	"os"
	"path/filepath"

	"github.com/walteh/mediarc/pkg/media"
	"github.com/walteh/mediarc/pkg/template"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Preview is the result of validating a rename without mutating
// anything. Template failures and target collisions are reported in
// IsValid/Message instead of as errors, so a preview never fails for
// a bad template.
type Preview struct {
	OriginalPath string
	NewPath      string
	IsValid      bool
	Message      string
}

// candidatePath renders the template and joins the result to the
// record's parent directory, reattaching the original extension.
func candidatePath(rec *media.Record, tpl string) (string, error) {
	stem, err := template.Render(rec, tpl)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(filepath.Dir(rec.Path), stem+"."+rec.Extension), nil
}

// 📝 MakePreview computes the rename rec would undergo with tpl.
//
// A template error marks the preview invalid with NewPath left equal
// to OriginalPath. A rendered target that already exists on disk marks
// it invalid with a collision message. Neither case touches the
// filesystem or the staging store.
func MakePreview(rec *media.Record, tpl string) Preview {
	newPath, err := candidatePath(rec, tpl)
	if err != nil {
		return Preview{
			OriginalPath: rec.Path,
			NewPath:      rec.Path,
			IsValid:      false,
			Message:      err.Error(),
		}
	}

	if _, err := os.Lstat(newPath); err == nil {
		return Preview{
			OriginalPath: rec.Path,
			NewPath:      newPath,
			IsValid:      false,
			Message:      "target path already exists",
		}
	}

	return Preview{
		OriginalPath: rec.Path,
		NewPath:      newPath,
		IsValid:      true,
	}
}
