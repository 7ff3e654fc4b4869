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

package status

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	rowIndent = 4  // spaces to indent rename rows
	nameWidth = 35 // Base width for filenames
)

// 🎯 FormatRenameRow formats one staged or previewed rename for
// display. Invalid rows get a red cross and the validation message.
func FormatRenameRow(from, to string, valid bool, message string) string {
	var prefix string
	switch {
	case !valid:
		prefix = color.RedString("✗")
	default:
		prefix = color.GreenString("✓")
	}

	fromPart := fmt.Sprintf("%-*s", nameWidth, filepath.Base(from))
	toPart := filepath.Base(to)

	row := fmt.Sprintf("%s%s %s -> %s",
		strings.Repeat(" ", rowIndent),
		prefix,
		fromPart,
		toPart,
	)

	if message != "" {
		row += " " + color.HiBlackString("("+message+")")
	}
	return row
}
