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
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about rename changes,
// mirrored to zerolog for debugging.
type UserLogger struct {
	log zerolog.Logger
}

// 🎨 ChangeType represents what happened to a file
type ChangeType int

const (
	ChangeStaged ChangeType = iota
	ChangeRenamed
	ChangeUndone
	ChangeSkipped
	ChangeError
)

// 🖼️ Change represents one rename-related event to report
type Change struct {
	Type        ChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{log: *zerolog.Ctx(ctx)}
}

// 📝 LogChange logs a rename change with appropriate prefix printer
func (u *UserLogger) LogChange(change Change) {
	relPath := filepath.Base(change.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case ChangeStaged:
		prefix = "📋"
		action = "Staged"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case ChangeRenamed:
		prefix = "✨"
		action = "Renamed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case ChangeUndone:
		prefix = "↩️"
		action = "Restored"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case ChangeSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case ChangeError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 📊 LogBatch logs a batch-level event (commit, undo, clear)
func (u *UserLogger) LogBatch(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs a preview validation result
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
