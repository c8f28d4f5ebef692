package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/reqcntl/cmd/reqcntl/opts"
	"github.com/walteh/reqcntl/pkg/log"
	"github.com/walteh/reqcntl/pkg/operation"
	"github.com/walteh/reqcntl/pkg/share"
	"github.com/walteh/reqcntl/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRenameCmd creates the rename command
func NewRenameCmd(o *opts.RootOpts) *cobra.Command {
	var (
		in     inputFlags
		ledger string
		root   string
		table  bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename REQCNTL.NEW to REQCNTL.dat on every listed store",
		Long: `Rename activates the pending request file on each store in the manifest.
It will:
1. Read store codes from the manifest (or a previous ledger)
2. Rename REQCNTL.NEW to REQCNTL.dat on each store's data share
3. Write the stores that were missing the file or failed to the ledger

Partial failures do not change the exit status; check the ledger.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)

			locator := o.Config.Locator()
			if root != "" {
				locator = share.NewLocator(root, locator.Source, locator.Target)
			}

			ledgerPath := o.Config.Ledger
			if ledger != "" {
				ledgerPath = ledger
			}
			led := status.NewLedger(o.Resolve(ledgerPath))

			input, source, err := resolveInput(ctx, o, in, ledgerPath)
			if err != nil {
				return err
			}
			logger.Debug().Str("input", source).Msg("using input")

			reporter := status.NewReporter(o.Stderr)
			renamerOpts := operation.Options{
				FS:      share.OSFS{},
				Locator: locator,
				Ledger:  led,
				Sink:    log.FromContext(ctx),
			}
			if table {
				renamerOpts.Observer = func(so operation.StoreOutcome) {
					reporter.Line(so.Code.String(), so.Outcome, so.Err)
				}
			}

			renamer, err := operation.New(renamerOpts)
			if err != nil {
				return errors.Errorf("creating renamer: %w", err)
			}

			result := operation.NewRunner(logger, renamer).Run(ctx, input)

			reporter.Summary(len(result.Renamed()), len(result.Missing()), len(result.Failed()), led.Path(), result.LedgerErr)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.manifest, "manifest", "m", "", "manifest file (default: the single match of manifest.pattern)")
	cmd.Flags().StringVar(&in.fromLedger, "from-ledger", "", "read store codes from a previous failure ledger")
	cmd.Flags().StringVarP(&ledger, "ledger", "l", "", "failure ledger path (overrides config)")
	cmd.Flags().StringVar(&root, "root", "", "share root template containing {store} (overrides config)")
	cmd.Flags().BoolVar(&table, "table", false, "print a per-store outcome table")

	return cmd
}
