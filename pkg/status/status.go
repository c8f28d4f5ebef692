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
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultLedgerPath is where failed store codes are written
const DefaultLedgerPath = "failed_stores.txt"

// 📊 Outcome is the terminal state of a single store code
type Outcome int

const (
	Pending       Outcome = iota
	Renamed               // pending file renamed to its active name
	SourceMissing         // pending file not present on the share
	Failed                // existence check or rename raised an error
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case Renamed:
		return "renamed"
	case SourceMissing:
		return "source missing"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// InLedger reports whether a code with this outcome belongs in the failure ledger
func (o Outcome) InLedger() bool {
	return o == SourceMissing || o == Failed
}

// 📒 Ledger persists the failed store codes of a run
type Ledger struct {
	path string
}

// 🏭 NewLedger creates a ledger writing to path
func NewLedger(path string) *Ledger {
	if path == "" {
		path = DefaultLedgerPath
	}
	return &Ledger{path: filepath.Clean(path)}
}

// Path returns the ledger file path
func (l *Ledger) Path() string {
	return l.path
}

// 📝 Write replaces the ledger with codes, one per line. An empty list still
// truncates the file.
func (l *Ledger) Write(ctx context.Context, codes []string) error {
	var b strings.Builder
	for _, code := range codes {
		b.WriteString(code)
		b.WriteString("\n")
	}

	if err := writeFileAtomic(l.path, []byte(b.String())); err != nil {
		return errors.Errorf("writing ledger: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", l.path).Int("codes", len(codes)).Msg("ledger written")
	return nil
}

func writeFileAtomic(path string, content []byte) error {
	tempPath := path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
