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

package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mediarc/pkg/media"
	"github.com/walteh/mediarc/pkg/template"
)

func recordWithMetadata(t *testing.T) *media.Record {
	t.Helper()

	width, height := 1920, 1080
	duration := 5400.7
	codec := "h264"

	rec := media.NewRecord("/videos/clip.mp4")
	rec.Metadata = &media.Metadata{
		Width:           &width,
		Height:          &height,
		DurationSeconds: &duration,
		CodecName:       &codec,
	}
	return rec
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		record   func(t *testing.T) *media.Record
		template string
		want     string
	}{
		{
			name:     "filename_and_extension",
			record:   recordWithMetadata,
			template: "{filename}.{extension}.bak",
			want:     "clip.mp4.bak",
		},
		{
			name:     "resolution",
			record:   recordWithMetadata,
			template: "{filename} [{resolution}]",
			want:     "clip [1920x1080]",
		},
		{
			name:     "duration_rounds_to_whole_seconds",
			record:   recordWithMetadata,
			template: "{filename} {duration_s}s",
			want:     "clip 5401s",
		},
		{
			name:     "codec",
			record:   recordWithMetadata,
			template: "{filename} ({codec})",
			want:     "clip (h264)",
		},
		{
			name: "missing_metadata_leaves_placeholders_verbatim",
			record: func(t *testing.T) *media.Record {
				return media.NewRecord("/videos/clip.mp4")
			},
			template: "{filename} [{resolution}]",
			want:     "clip [{resolution}]",
		},
		{
			name: "partial_resolution_is_not_resolvable",
			record: func(t *testing.T) *media.Record {
				width := 1920
				rec := media.NewRecord("/videos/clip.mp4")
				rec.Metadata = &media.Metadata{Width: &width}
				return rec
			},
			template: "{resolution}",
			want:     "{resolution}",
		},
		{
			name:     "unknown_placeholder_passes_through",
			record:   recordWithMetadata,
			template: "{filename} {bitrate}",
			want:     "clip {bitrate}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.record(t)

			got, err := template.Render(rec, tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Rendering is deterministic on the same inputs.
			again, err := template.Render(rec, tt.template)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestRenderRejectsReservedCharacters(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{name: "slash", template: "{filename}/extra"},
		{name: "colon", template: "{filename}: the sequel"},
		{name: "question_mark", template: "{filename}?"},
		{name: "backslash", template: `{filename}\`},
		{name: "asterisk", template: "*{filename}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recordWithMetadata(t)

			_, err := template.Render(rec, tt.template)
			require.Error(t, err)
			assert.True(t, template.IsInvalidTemplate(err))
			assert.Contains(t, err.Error(), "invalid characters")
		})
	}
}

func TestRenderReservedCharacterFromMetadata(t *testing.T) {
	// Reserved characters are rejected wherever they come from, even
	// when substituted in from probed metadata.
	codec := "h264/high"
	rec := media.NewRecord("/videos/clip.mp4")
	rec.Metadata = &media.Metadata{CodecName: &codec}

	_, err := template.Render(rec, "{filename} ({codec})")
	require.Error(t, err)
	assert.True(t, template.IsInvalidTemplate(err))
}
