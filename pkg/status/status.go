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

// Package status reports the tool's environment and renders the
// machine-readable JSON output shared by the status and scan commands.
package status

import (
	"context"
	"encoding/json"
	"runtime"
	"strings"
	"time"

	"github.com/walteh/mediarc/pkg/rename"
	"gitlab.com/tozd/go/errors"
)

// FfprobeChecker is the part of the prober the status report needs.
type FfprobeChecker interface {
	Check(ctx context.Context) error
}

// 📊 Report is the status command's payload.
type Report struct {
	Version       string `json:"version"`
	Platform      string `json:"platform"`
	Ffprobe       string `json:"ffprobe"` // "ok" or "not_found"
	StagedRenames int    `json:"staged_renames"`
	UndoAvailable bool   `json:"undo_available"`
	Timestamp     string `json:"timestamp"`
}

// 🏗️ Build assembles a Report from the live environment. Probe or
// store failures degrade the relevant field instead of failing the
// report; status must work in a broken environment.
func Build(ctx context.Context, version string, checker FfprobeChecker, r *rename.Renamer) Report {
	report := Report{
		Version:   version,
		Platform:  runtime.GOOS,
		Ffprobe:   "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := checker.Check(ctx); err != nil {
		report.Ffprobe = "not_found"
	}

	if staged, err := r.Staging().Load(ctx); err == nil {
		report.StagedRenames = len(staged)
	}

	if batch, err := r.Journal().Load(ctx); err == nil && batch != nil && len(batch.Operations) > 0 {
		report.UndoAvailable = true
	}

	return report
}

// 📝 RenderJSON pretty-prints v with LF-only line endings and a single
// trailing newline, matching the staging and journal file discipline.
func RenderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Errorf("encoding JSON output: %w", err)
	}

	out := strings.ReplaceAll(string(data), "\r\n", "\n")
	out = strings.TrimSpace(out)
	return out + "\n", nil
}
