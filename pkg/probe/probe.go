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

// Package probe implements media.Provider on top of an ffprobe
// subprocess. One JSON call per file covers format and streams.
package probe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/mediarc/pkg/media"
	"gitlab.com/tozd/go/errors"
)

// ErrFfprobeNotFound is returned when the ffprobe binary is not on
// PATH. The status command maps it to a "not_found" report entry.
var ErrFfprobeNotFound = errors.New("ffprobe not found, ensure it is installed and in your PATH")

// 🔬 Prober shells out to ffprobe. The binary name is overridable so
// tests and unusual installs can point elsewhere.
type Prober struct {
	binary string
}

// 🏭 New creates a Prober using the ffprobe binary from PATH.
func New() *Prober {
	return &Prober{binary: "ffprobe"}
}

// NewWithBinary creates a Prober using an explicit ffprobe path.
func NewWithBinary(binary string) *Prober {
	if binary == "" {
		binary = "ffprobe"
	}
	return &Prober{binary: binary}
}

// ✅ Check verifies the ffprobe binary is runnable.
func (p *Prober) Check(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.binary, "-version")
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrFfprobeNotFound
		}
		return errors.Errorf("running %s -version: %w", p.binary, err)
	}
	return nil
}

// 🔍 Probe runs a single ffprobe JSON call against path and returns
// the parsed metadata.
func (p *Prober) Probe(ctx context.Context, path string) (*media.Metadata, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("probing media file")

	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrFfprobeNotFound
		}
		return nil, errors.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseOutput(out)
}

// ParseOutput converts raw ffprobe JSON output into Metadata.
// Exported for testing without a real ffprobe binary.
func ParseOutput(data []byte) (*media.Metadata, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Errorf("parsing ffprobe JSON: %w", err)
	}
	return buildMetadata(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	Index     int               `json:"index"`
	CodecName string            `json:"codec_name"`
	CodecType string            `json:"codec_type"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Tags      map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

func buildMetadata(raw *ffprobeOutput) *media.Metadata {
	meta := &media.Metadata{
		SubtitleStreams: []media.SubtitleStream{},
	}

	if d := strings.TrimSpace(raw.Format.Duration); d != "" {
		if f, err := strconv.ParseFloat(d, 64); err == nil {
			meta.DurationSeconds = &f
		}
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			// First video stream wins for resolution and codec.
			if meta.Width == nil && s.Width > 0 && s.Height > 0 {
				w, h := s.Width, s.Height
				meta.Width = &w
				meta.Height = &h
			}
			if meta.CodecName == nil && s.CodecName != "" {
				codec := s.CodecName
				meta.CodecName = &codec
			}
		case "subtitle":
			meta.SubtitleStreams = append(meta.SubtitleStreams, convertSubtitle(s))
		}
	}

	return meta
}

func convertSubtitle(s *ffprobeStream) media.SubtitleStream {
	sub := media.SubtitleStream{
		Index: s.Index,
		Codec: s.CodecName,
	}
	if sub.Codec == "" {
		sub.Codec = "unknown"
	}
	if lang, ok := s.Tags["language"]; ok {
		sub.Language = &lang
	}
	if title, ok := s.Tags["title"]; ok {
		sub.Title = &title
	}
	return sub
}
