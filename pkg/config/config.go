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

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/reqcntl/pkg/share"
	"github.com/walteh/reqcntl/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultConfigFile      = ".reqcntl.yaml"
	DefaultManifestPattern = "*.txt"
)

// 📄 ManifestArgs controls how the manifest is selected
type ManifestArgs struct {
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"` // doublestar pattern relative to the working directory
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"` // patterns that never count as a manifest
}

// 🗄️ ShareArgs describes the per-store data share
type ShareArgs struct {
	Root   string `json:"root,omitempty" yaml:"root,omitempty"`     // template containing {store}
	Source string `json:"source,omitempty" yaml:"source,omitempty"` // pending file name
	Target string `json:"target,omitempty" yaml:"target,omitempty"` // active file name
}

// 📚 Config represents the complete configuration
type Config struct {
	Manifest ManifestArgs `json:"manifest" yaml:"manifest"`
	Share    ShareArgs    `json:"share" yaml:"share"`
	Ledger   string       `json:"ledger,omitempty" yaml:"ledger,omitempty"`

	location string
}

// Default returns a validated configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate fills defaults and checks the configuration
func (cfg *Config) Validate() error {
	// Set defaults
	if cfg.Manifest.Pattern == "" {
		cfg.Manifest.Pattern = DefaultManifestPattern
	}
	if cfg.Share.Root == "" {
		cfg.Share.Root = share.DefaultRoot
	}
	if cfg.Share.Source == "" {
		cfg.Share.Source = share.DefaultSource
	}
	if cfg.Share.Target == "" {
		cfg.Share.Target = share.DefaultTarget
	}
	if cfg.Ledger == "" {
		cfg.Ledger = status.DefaultLedgerPath
	}

	// Check values
	if !doublestar.ValidatePattern(cfg.Manifest.Pattern) {
		return errors.Errorf("manifest.pattern %q is not a valid pattern", cfg.Manifest.Pattern)
	}
	for _, ex := range cfg.Manifest.Exclude {
		if !doublestar.ValidatePattern(ex) {
			return errors.Errorf("manifest.exclude %q is not a valid pattern", ex)
		}
	}
	if !strings.Contains(cfg.Share.Root, share.Placeholder) {
		return errors.Errorf("share.root must contain %s", share.Placeholder)
	}
	if cfg.Share.Source == cfg.Share.Target {
		return errors.Errorf("share.source and share.target must differ")
	}

	return nil
}

// Locator builds the share locator described by the config
func (cfg *Config) Locator() share.Locator {
	return share.NewLocator(cfg.Share.Root, cfg.Share.Source, cfg.Share.Target)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s/{%s => %s} (ledger %s)",
		cfg.Manifest.Pattern, cfg.Share.Root, cfg.Share.Source, cfg.Share.Target, cfg.Ledger)
}

// LogValues adds the config to a zerolog event
func (cfg *Config) LogValues(ctx context.Context) {
	zerolog.Ctx(ctx).Debug().
		Str("location", cfg.location).
		Str("manifest_pattern", cfg.Manifest.Pattern).
		Strs("manifest_exclude", cfg.Manifest.Exclude).
		Str("share_root", cfg.Share.Root).
		Str("share_source", cfg.Share.Source).
		Str("share_target", cfg.Share.Target).
		Str("ledger", cfg.Ledger).
		Msg("configuration")
}
