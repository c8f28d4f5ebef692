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

package manifest

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/reqcntl/pkg/log"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     []StoreCode
	}{
		{
			name:     "mixed_manifest",
			manifest: "Store 12 Primary\nStore 7 Secondary\nskip this\n  Store 99 PRIMARY",
			want:     []StoreCode{"00012D100", "00007D101", "00099D100"},
		},
		{
			name:     "empty_manifest",
			manifest: "",
			want:     []StoreCode{},
		},
		{
			name:     "too_few_tokens",
			manifest: "Store 12\nStore\n",
			want:     []StoreCode{},
		},
		{
			name:     "unknown_classification_falls_back_to_secondary",
			manifest: "Store 5 Primry\nStore 6 backup",
			want:     []StoreCode{"00005D101", "00006D101"},
		},
		{
			name:     "duplicates_and_order_preserved",
			manifest: "Store 3 Primary\nStore 1 Primary\nStore 3 Primary",
			want:     []StoreCode{"00003D100", "00001D100", "00003D100"},
		},
		{
			name:     "trailing_tokens_ignored",
			manifest: "\tStore   42   secondary  closed on sundays\r\n",
			want:     []StoreCode{"00042D101"},
		},
		{
			name:     "long_store_number_not_truncated",
			manifest: "Store 123456 Primary",
			want:     []StoreCode{"123456D100"},
		},
		{
			name:     "prefix_is_literal_and_case_sensitive",
			manifest: "store 1 Primary\nStores 2 Primary\n# Store 3 Primary",
			want:     []StoreCode{"00002D100"},
		},
		{
			name:     "oversized_line_between_store_lines",
			manifest: "Store 12 Primary\n# " + strings.Repeat("x", 70*1024) + "\nStore 7 Secondary\n",
			want:     []StoreCode{"00012D100", "00007D101"},
		},
		{
			name:     "oversized_store_line",
			manifest: "Store 3 Primary " + strings.Repeat("y", 128*1024) + "\nStore 4 Primary",
			want:     []StoreCode{"00003D100", "00004D100"},
		},
		{
			name:     "carriage_return_line_endings",
			manifest: "Store 1 Primary\rStore 2 Secondary\r",
			want:     []StoreCode{"00001D100", "00002D101"},
		},
		{
			name:     "mixed_line_endings",
			manifest: "Store 1 Primary\r\nStore 2 Secondary\rStore 3 Primary\n\rStore 4 Primary",
			want:     []StoreCode{"00001D100", "00002D101", "00003D100", "00004D100"},
		},
		{
			name:     "blank_lines_ignored",
			manifest: "\n\n   \nStore 8 Primary\n\n",
			want:     []StoreCode{"00008D100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := log.NewRecorder()
			got := Parse(testContext(t), strings.NewReader(tt.manifest), rec)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, rec.Messages(), "non-matching lines should not produce diagnostics")
		})
	}
}

func TestParseUnreadable(t *testing.T) {
	t.Run("read_error", func(t *testing.T) {
		rec := log.NewRecorder()
		got := Parse(testContext(t), io.MultiReader(strings.NewReader("Store 1 Primary\n"), failingReader{}), rec)
		assert.Empty(t, got, "read error should yield no codes")
		require.Len(t, rec.Messages(), 1, "read error should yield one diagnostic")
		assert.True(t, strings.HasPrefix(rec.Messages()[0], "Error reading input file: "))
	})

	t.Run("nil_reader", func(t *testing.T) {
		rec := log.NewRecorder()
		got := Parse(testContext(t), nil, rec)
		assert.Empty(t, got)
		assert.Len(t, rec.Messages(), 1)
	})

	t.Run("missing_file", func(t *testing.T) {
		rec := log.NewRecorder()
		got := ParseFile(testContext(t), filepath.Join(t.TempDir(), "nope.txt"), rec)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		require.Len(t, rec.Messages(), 1)
		assert.Contains(t, rec.Messages()[0], "opening manifest")
	})
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stores.txt")
	require.NoError(t, os.WriteFile(path, []byte("Header line\n  Store 12 Primary\nStore 7 Secondary\n"), 0644))

	rec := log.NewRecorder()
	got := ParseFile(testContext(t), path, rec)
	assert.Equal(t, []StoreCode{"00012D100", "00007D101"}, got)
	assert.Empty(t, rec.Messages())
}

func TestReadCodes(t *testing.T) {
	rec := log.NewRecorder()
	got := ReadCodes(testContext(t), strings.NewReader("00007D101\n\n  00012D100 \nnot-a-code\n00099D102\n"), rec)

	assert.Equal(t, []StoreCode{"00007D101", "00012D100"}, got)
	assert.Equal(t, []string{
		"Skipping malformed store code: not-a-code",
		"Skipping malformed store code: 00099D102",
	}, rec.Messages())
}

func TestReadCodesLineEndings(t *testing.T) {
	rec := log.NewRecorder()
	got := ReadCodes(testContext(t), strings.NewReader("00007D101\r\n00012D100\r00013D101"), rec)

	assert.Equal(t, []StoreCode{"00007D101", "00012D100", "00013D101"}, got)
	assert.Empty(t, rec.Messages())
}

func TestReadCodesFileMissing(t *testing.T) {
	rec := log.NewRecorder()
	got := ReadCodesFile(testContext(t), filepath.Join(t.TempDir(), "failed_stores.txt"), rec)
	assert.Empty(t, got)
	require.Len(t, rec.Messages(), 1)
	assert.Contains(t, rec.Messages()[0], "opening ledger")
}
