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

// Package share addresses the per-store administrative data share and performs
// the file system calls the renamer needs against it.
package share

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// Placeholder is substituted with the store code in a root template
	Placeholder = "{store}"

	DefaultRoot   = `\\{store}\c$\Chainlnk\data`
	DefaultSource = "REQCNTL.NEW"
	DefaultTarget = "REQCNTL.dat"
)

// 💾 FS is the file system capability the renamer consumes.
// Calls are synchronous and have no timeout of their own.
type FS interface {
	Exists(ctx context.Context, path string) (bool, error)
	Rename(ctx context.Context, from, to string) error
}

// 📍 Locator builds the paths for a store's data directory
type Locator struct {
	Root   string // template containing Placeholder
	Source string // pending file name
	Target string // active file name
}

// 🏭 NewLocator returns a locator with defaults for any empty field
func NewLocator(root, source, target string) Locator {
	if root == "" {
		root = DefaultRoot
	}
	if source == "" {
		source = DefaultSource
	}
	if target == "" {
		target = DefaultTarget
	}
	return Locator{Root: root, Source: source, Target: target}
}

// Dir returns the data directory for code
func (l Locator) Dir(code string) string {
	return strings.ReplaceAll(l.Root, Placeholder, code)
}

// SourcePath returns the pending file path for code
func (l Locator) SourcePath(code string) string {
	return l.Join(l.Dir(code), l.Source)
}

// TargetPath returns the active file path for code
func (l Locator) TargetPath(code string) string {
	return l.Join(l.Dir(code), l.Target)
}

// Join appends name to dir. Roots written with backslashes (UNC shares) keep
// backslash separators on every platform.
func (l Locator) Join(dir, name string) string {
	if strings.Contains(l.Root, `\`) && !strings.Contains(l.Root, "/") {
		return strings.TrimRight(dir, `\`) + `\` + name
	}
	return filepath.Join(dir, name)
}

// 🔧 OSFS implements FS with the os package
type OSFS struct{}

func (OSFS) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (OSFS) Rename(ctx context.Context, from, to string) error {
	zerolog.Ctx(ctx).Debug().Str("from", from).Str("to", to).Msg("renaming")
	if err := os.Rename(from, to); err != nil {
		return errors.Errorf("renaming file: %w", err)
	}
	return nil
}
