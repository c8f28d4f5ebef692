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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/reqcntl/pkg/log"
	"github.com/walteh/reqcntl/pkg/manifest"
	"github.com/walteh/reqcntl/pkg/share"
	"github.com/walteh/reqcntl/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the renamer
type Options struct {
	// FS performs the existence checks and renames
	FS share.FS
	// Locator builds the per-store paths
	Locator share.Locator
	// Ledger receives the codes that were not renamed
	Ledger *status.Ledger
	// Sink receives one diagnostic per store and one for the ledger
	Sink log.Sink
	// Formatter renders outcomes and progress for the debug log, optional
	Formatter status.OutcomeFormatter
	// Observer is called after each store is resolved, optional
	Observer func(StoreOutcome)
}

// 🏭 New creates a new renamer with the given options
func New(opts Options) (*Renamer, error) {
	if opts.FS == nil {
		return nil, errors.Errorf("file system is required")
	}
	if opts.Ledger == nil {
		return nil, errors.Errorf("ledger is required")
	}
	if opts.Sink == nil {
		return nil, errors.Errorf("diagnostic sink is required")
	}
	if opts.Formatter == nil {
		opts.Formatter = status.NewDefaultFormatter()
	}
	opts.Locator = share.NewLocator(opts.Locator.Root, opts.Locator.Source, opts.Locator.Target)
	return &Renamer{opts: opts}, nil
}

// 🎮 Renamer renames the pending request file on each store's share
type Renamer struct {
	opts Options
}

// 🏃 Run processes codes in order and writes the ledger. It never fails; every
// fault is turned into an outcome or a diagnostic.
func (r *Renamer) Run(ctx context.Context, codes []manifest.StoreCode) *Result {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("codes", len(codes)).Msg("starting rename batch")

	result := &Result{Outcomes: make([]StoreOutcome, 0, len(codes))}
	for i, code := range codes {
		so := r.renameOne(ctx, code)
		result.Outcomes = append(result.Outcomes, so)

		if r.opts.Observer != nil {
			r.opts.Observer(so)
		}
		logger.Debug().Str("progress", r.opts.Formatter.FormatProgress(i+1, len(codes))).
			Msg(r.opts.Formatter.FormatOutcome(code.String(), so.Outcome, so.Err))
	}

	r.writeLedger(ctx, result)
	return result
}

// renameOne resolves a single code: Pending -> {SourceMissing, Renamed, Failed}
func (r *Renamer) renameOne(ctx context.Context, code manifest.StoreCode) StoreOutcome {
	source := r.opts.Locator.SourcePath(code.String())
	target := r.opts.Locator.TargetPath(code.String())

	exists, err := r.opts.FS.Exists(ctx, source)
	if err != nil {
		return r.fail(code, err)
	}
	if !exists {
		r.opts.Sink.Log(fmt.Sprintf("%s not found for %s", r.opts.Locator.Source, code))
		return StoreOutcome{Code: code, Outcome: status.SourceMissing}
	}

	if err := r.opts.FS.Rename(ctx, source, target); err != nil {
		return r.fail(code, err)
	}

	r.opts.Sink.Log(fmt.Sprintf("Renamed for %s", code))
	return StoreOutcome{Code: code, Outcome: status.Renamed}
}

func (r *Renamer) fail(code manifest.StoreCode, err error) StoreOutcome {
	r.opts.Sink.Log(fmt.Sprintf("Error for %s: %s", code, err))
	return StoreOutcome{Code: code, Outcome: status.Failed, Err: err}
}

func (r *Renamer) writeLedger(ctx context.Context, result *Result) {
	ledger := result.Ledger()
	codes := make([]string, 0, len(ledger))
	for _, code := range ledger {
		codes = append(codes, code.String())
	}

	if err := r.opts.Ledger.Write(ctx, codes); err != nil {
		result.LedgerErr = err
		r.opts.Sink.Log(fmt.Sprintf("Error writing %s: %s", r.opts.Ledger.Path(), err))
		return
	}
	r.opts.Sink.Log(fmt.Sprintf("Failed store codes written to %s", r.opts.Ledger.Path()))
}
