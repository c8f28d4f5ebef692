package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/reqcntl/cmd/reqcntl/opts"
	"github.com/walteh/reqcntl/pkg/log"
)

// NewParseCmd creates the parse command
func NewParseCmd(o *opts.RootOpts) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the store codes a manifest resolves to",
		Long: `Parse reads the manifest exactly like rename does and prints one store
code per line without touching any share.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			input, _, err := resolveInput(ctx, o, in, o.Config.Ledger)
			if err != nil {
				return err
			}

			for _, code := range input.Codes(ctx, log.FromContext(ctx)) {
				fmt.Fprintln(o.Stdout, code)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.manifest, "manifest", "m", "", "manifest file (default: the single match of manifest.pattern)")
	cmd.Flags().StringVar(&in.fromLedger, "from-ledger", "", "read store codes from a previous failure ledger")

	return cmd
}
