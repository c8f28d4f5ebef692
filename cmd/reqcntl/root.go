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

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/reqcntl/cmd/reqcntl/commands"
	"github.com/walteh/reqcntl/cmd/reqcntl/opts"
	"github.com/walteh/reqcntl/pkg/config"
	"github.com/walteh/reqcntl/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configFile string
	dir        string
	debug      bool
}

// newRootCmd builds the command tree writing to stdout and stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	o := &opts.RootOpts{Stdout: stdout, Stderr: stderr}

	cmd := &cobra.Command{
		Use:   "reqcntl",
		Short: "Activate pending REQCNTL files across store shares",
		Long: `reqcntl reads a store manifest, derives each store's code and renames
REQCNTL.NEW to REQCNTL.dat on the store's data share. Stores that could not be
processed are written to a ledger for follow-up.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd, stderr, flags.debug)
			return newRootOpts(cmd, o, flags, ctx)
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewRenameCmd(o),
		commands.NewParseCmd(o),
		newVersionCmd(stdout),
	)

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// newRootOpts fills o with the loaded config and puts the diagnostic sink on the command context
func newRootOpts(cmd *cobra.Command, o *opts.RootOpts, flags *rootFlags, ctx context.Context) error {
	dir, err := filepath.Abs(flags.dir)
	if err != nil {
		return errors.Errorf("resolving working directory: %w", err)
	}
	o.Dir = dir

	var cfg *config.Config
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadConfig(ctx, o.Resolve(flags.configFile))
	} else {
		cfg, err = config.LoadOrDefault(ctx, o.Resolve(flags.configFile))
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	cfg.LogValues(ctx)
	o.Config = cfg

	sink := log.New(o.Stdout, *zerolog.Ctx(ctx))
	cmd.SetContext(log.NewContext(ctx, sink))
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultConfigFile, "config file path")
	cmd.PersistentFlags().StringVar(&flags.dir, "dir", ".", "working directory for manifests and the ledger")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// newVersionCmd prints build information
func newVersionCmd(out io.Writer) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// config is not needed to print the version
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprint(out, FormatVersion())
				return nil
			}
			s, err := VersionJSON()
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
