package opts

import (
	"io"
	"path/filepath"

	"github.com/walteh/reqcntl/pkg/config"
)

// RootOpts contains shared options used by all commands. It is filled in by
// the root command before any subcommand runs.
type RootOpts struct {
	Config *config.Config
	Dir    string // working directory for manifest selection and relative paths
	Stdout io.Writer
	Stderr io.Writer
}

// Resolve returns p unchanged when absolute, else joined to Dir
func (o *RootOpts) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Dir, p)
}
