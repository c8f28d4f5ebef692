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

package operation

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/reqcntl/pkg/log"
	"github.com/walteh/reqcntl/pkg/manifest"
)

// 📥 Input supplies the store codes for a batch
type Input interface {
	Codes(ctx context.Context, sink log.Sink) []manifest.StoreCode
}

// ManifestFile reads codes from a manifest on disk
type ManifestFile string

func (m ManifestFile) Codes(ctx context.Context, sink log.Sink) []manifest.StoreCode {
	return manifest.ParseFile(ctx, string(m), sink)
}

// LedgerFile reads codes from the ledger of an earlier run
type LedgerFile string

func (l LedgerFile) Codes(ctx context.Context, sink log.Sink) []manifest.StoreCode {
	return manifest.ReadCodesFile(ctx, string(l), sink)
}

// ManifestReader reads codes from an already open manifest stream
type ManifestReader struct {
	R io.Reader
}

func (m ManifestReader) Codes(ctx context.Context, sink log.Sink) []manifest.StoreCode {
	return manifest.Parse(ctx, m.R, sink)
}

// 🏃 Runner wires an input to a renamer
type Runner struct {
	logger  *zerolog.Logger
	renamer *Renamer
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, renamer *Renamer) *Runner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Runner{
		logger:  logger,
		renamer: renamer,
	}
}

// 🏃 Run reads the input and renames every code it yields. An unreadable or
// empty input still produces an (empty) ledger.
func (r *Runner) Run(ctx context.Context, in Input) *Result {
	codes := in.Codes(ctx, r.renamer.opts.Sink)
	r.logger.Info().Int("stores", len(codes)).Msg("store codes loaded")

	result := r.renamer.Run(ctx, codes)

	r.logger.Info().
		Int("renamed", len(result.Renamed())).
		Int("missing", len(result.Missing())).
		Int("failed", len(result.Failed())).
		Msg("rename batch complete")
	return result
}
