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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "renamed", Renamed.String())
	assert.Equal(t, "source missing", SourceMissing.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "pending", Pending.String())

	assert.False(t, Renamed.InLedger())
	assert.True(t, SourceMissing.InLedger())
	assert.True(t, Failed.InLedger())
	assert.False(t, Pending.InLedger())
}

func TestLedger(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		codes    []string
		want     string
	}{
		{
			name:  "fresh_file",
			codes: []string{"00007D101", "00099D100"},
			want:  "00007D101\n00099D100\n",
		},
		{
			name:     "overwrites_previous_run",
			previous: "00001D100\n00002D100\n00003D100\n",
			codes:    []string{"00007D101"},
			want:     "00007D101\n",
		},
		{
			name:     "empty_list_truncates",
			previous: "00001D100\n",
			codes:    nil,
			want:     "",
		},
		{
			name:  "duplicates_kept",
			codes: []string{"00007D101", "00007D101"},
			want:  "00007D101\n00007D101\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			path := filepath.Join(t.TempDir(), DefaultLedgerPath)
			if tt.previous != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.previous), 0644))
			}

			ledger := NewLedger(path)
			require.NoError(t, ledger.Write(ctx, tt.codes))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))

			_, err = os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err), "temp file should be gone")
		})
	}
}

func TestLedgerWriteFailure(t *testing.T) {
	ledger := NewLedger(filepath.Join(t.TempDir(), "missing-dir", DefaultLedgerPath))
	err := ledger.Write(context.Background(), []string{"00007D101"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing ledger")
}

func TestNewLedgerDefault(t *testing.T) {
	assert.Equal(t, DefaultLedgerPath, NewLedger("").Path())
}

func TestFormatOutcomeLine(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t, "    ✓ 00012D100    renamed         ", FormatOutcomeLine("00012D100", Renamed, nil))
	assert.Equal(t, "    ? 00007D101    source missing  ", FormatOutcomeLine("00007D101", SourceMissing, nil))
	assert.Equal(t, "    ✗ 00099D100    failed          access denied", FormatOutcomeLine("00099D100", Failed, errors.New("access denied")))
}

func TestReporter(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()
	pterm.DisableColor()
	defer pterm.EnableColor()

	buf := &bytes.Buffer{}
	r := NewReporter(buf)
	r.Line("00012D100", Renamed, nil)
	r.Summary(1, 1, 0, "failed_stores.txt", nil)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "    ✓ 00012D100"), "first line should be the store line")
	assert.Contains(t, out, "2 store(s) processed")
	assert.Contains(t, out, "1 renamed")
	assert.Contains(t, out, "1 missing source file")
	assert.NotContains(t, out, "0 failed")
	assert.Contains(t, out, "retry list written to failed_stores.txt")
}

func TestReporterLedgerError(t *testing.T) {
	buf := &bytes.Buffer{}
	NewReporter(buf).Summary(0, 0, 1, "failed_stores.txt", assert.AnError)
	assert.Contains(t, buf.String(), "could not write failed_stores.txt")
	assert.NotContains(t, buf.String(), "retry list written")
}
