package commands

import (
	"context"
	"path/filepath"

	"github.com/walteh/reqcntl/cmd/reqcntl/opts"
	"github.com/walteh/reqcntl/pkg/manifest"
	"github.com/walteh/reqcntl/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// inputFlags are shared by commands that read store codes
type inputFlags struct {
	manifest   string
	fromLedger string
}

// resolveInput picks the code source: a previous ledger, an explicit manifest,
// or the single manifest found in the working directory. ledgerPath is the
// ledger this run writes and never counts as a manifest.
func resolveInput(ctx context.Context, o *opts.RootOpts, f inputFlags, ledgerPath string) (operation.Input, string, error) {
	if f.fromLedger != "" && f.manifest != "" {
		return nil, "", errors.Errorf("--manifest and --from-ledger are mutually exclusive")
	}
	if f.fromLedger != "" {
		p := o.Resolve(f.fromLedger)
		return operation.LedgerFile(p), p, nil
	}
	if f.manifest != "" {
		p := o.Resolve(f.manifest)
		return operation.ManifestFile(p), p, nil
	}

	exclude := append([]string{}, o.Config.Manifest.Exclude...)
	exclude = append(exclude, filepath.Base(ledgerPath))

	p, err := manifest.Select(ctx, o.Dir, manifest.SelectOptions{
		Pattern: o.Config.Manifest.Pattern,
		Exclude: exclude,
	})
	if err != nil {
		return nil, "", errors.Errorf("selecting manifest: %w", err)
	}
	return operation.ManifestFile(p), p, nil
}
