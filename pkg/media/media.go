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

package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// 🎬 Kind classifies a media file by its container extension
type Kind int

const (
	KindVideo Kind = iota
	KindAudio
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	default:
		return "video"
	}
}

// 📄 Record describes a single media file on disk. It is built fresh
// per scan or rename call and never persisted.
type Record struct {
	Path      string    // Absolute path to the file
	Stem      string    // Filename without extension, e.g. "my_movie"
	Extension string    // Extension without dot, e.g. "mp4"
	Kind      Kind      // Container classification
	Metadata  *Metadata // Best-effort probe result, nil when unavailable
}

// 🎞️ Metadata holds the fields extracted from a probe run. Every field
// is optional: probes are best-effort and partial output is normal.
type Metadata struct {
	DurationSeconds *float64         `json:"duration_seconds,omitempty"`
	Width           *int             `json:"width,omitempty"`
	Height          *int             `json:"height,omitempty"`
	CodecName       *string          `json:"codec_name,omitempty"`
	SubtitleStreams []SubtitleStream `json:"subtitle_streams"`
}

// 💬 SubtitleStream describes one embedded subtitle stream
type SubtitleStream struct {
	Index    int     `json:"index"`
	Language *string `json:"language,omitempty"`
	Title    *string `json:"title,omitempty"`
	Codec    string  `json:"codec"`
}

// 🔌 Provider extracts metadata for a media file. Implementations may
// shell out to external tools; callers treat any error as "no metadata".
type Provider interface {
	Probe(ctx context.Context, path string) (*Metadata, error)
}

var audioExtensions = map[string]bool{
	"mp3":  true,
	"flac": true,
	"m4a":  true,
	"ogg":  true,
	"wav":  true,
}

// 🏭 NewRecord builds a Record from a path, deriving stem, extension
// and kind. Metadata starts nil and is attached by the scanner.
func NewRecord(path string) *Record {
	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	kind := KindVideo
	if audioExtensions[strings.ToLower(ext)] {
		kind = KindAudio
	}

	return &Record{
		Path:      path,
		Stem:      stem,
		Extension: ext,
		Kind:      kind,
	}
}

// FullFilename returns the file name including its extension.
func (r *Record) FullFilename() string {
	if r.Extension == "" {
		return r.Stem
	}
	return r.Stem + "." + r.Extension
}

// Resolution returns "WxH" and true when both dimensions are known.
func (r *Record) Resolution() (string, bool) {
	if r.Metadata == nil || r.Metadata.Width == nil || r.Metadata.Height == nil {
		return "", false
	}
	return fmt.Sprintf("%dx%d", *r.Metadata.Width, *r.Metadata.Height), true
}
