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

// Package template renders filename templates against media records.
// Rendering is pure: no I/O, no logging, deterministic output.
package template

import (
	"fmt"
	"strings"

	"github.com/walteh/mediarc/pkg/media"
	"gitlab.com/tozd/go/errors"
)

// 🚫 reservedChars are the path-breaking characters rejected in any
// rendered name (the Windows superset, so names stay portable).
const reservedChars = `<>:"/\|?*`

// ❌ InvalidTemplateError reports a rendered name containing reserved
// characters. It carries the offending string for display.
type InvalidTemplateError struct {
	Rendered string
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("generated filename contains invalid characters: %s", e.Rendered)
}

// IsInvalidTemplate checks whether err is an InvalidTemplateError.
func IsInvalidTemplate(err error) bool {
	var e *InvalidTemplateError
	return errors.As(err, &e)
}

// 📝 Render expands the recognized placeholders in tpl against rec.
//
// {filename} and {extension} always resolve. {resolution}, {duration_s}
// and {codec} resolve only when the backing metadata is present; a
// placeholder whose data is absent stays verbatim in the output rather
// than failing, so callers can see what was missing.
func Render(rec *media.Record, tpl string) (string, error) {
	name := tpl

	name = strings.ReplaceAll(name, "{filename}", rec.Stem)
	name = strings.ReplaceAll(name, "{extension}", rec.Extension)

	if meta := rec.Metadata; meta != nil {
		if res, ok := rec.Resolution(); ok {
			name = strings.ReplaceAll(name, "{resolution}", res)
		}
		if meta.DurationSeconds != nil {
			name = strings.ReplaceAll(name, "{duration_s}", fmt.Sprintf("%.0f", *meta.DurationSeconds))
		}
		if meta.CodecName != nil {
			name = strings.ReplaceAll(name, "{codec}", *meta.CodecName)
		}
	}

	if strings.ContainsAny(name, reservedChars) {
		return "", &InvalidTemplateError{Rendered: name}
	}

	return name, nil
}
