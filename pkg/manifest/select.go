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
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrNoManifest        = errors.Base("no manifest file found")
	ErrAmbiguousManifest = errors.Base("more than one manifest file found")
)

// 🔍 SelectOptions controls how a manifest is picked from a directory
type SelectOptions struct {
	Pattern string   // doublestar pattern relative to the directory, e.g. "*.txt"
	Exclude []string // patterns that never count as a manifest
}

// 🎯 Select returns the single file in dir matching opts.Pattern that is not
// excluded. It fails when there are zero or several candidates.
func Select(ctx context.Context, dir string, opts SelectOptions) (string, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*.txt"
	}
	if !doublestar.ValidatePattern(pattern) {
		return "", errors.Errorf("invalid manifest pattern %q", pattern)
	}
	for _, ex := range opts.Exclude {
		if !doublestar.ValidatePattern(ex) {
			return "", errors.Errorf("invalid exclude pattern %q", ex)
		}
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", errors.Errorf("globbing %s in %s: %w", pattern, dir, err)
	}

	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		if excluded(m, opts.Exclude) {
			zerolog.Ctx(ctx).Debug().Str("file", m).Msg("excluding manifest candidate")
			continue
		}
		candidates = append(candidates, m)
	}

	switch len(candidates) {
	case 0:
		return "", errors.Errorf("%w: pattern %q in %s", ErrNoManifest, pattern, dir)
	case 1:
		return filepath.Join(dir, filepath.FromSlash(candidates[0])), nil
	default:
		return "", errors.Errorf("%w: %s", ErrAmbiguousManifest, strings.Join(candidates, ", "))
	}
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		// a bare file name also excludes that name in nested directories
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, path.Base(name)); ok {
			return true
		}
	}
	return false
}
