// Package runner executes a child command inside a working-directory guard.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"

	withdir "github.com/huwper/with-dir"
)

type Options struct {
	Dir           string // target directory; ignored when Temp is set
	Temp          bool   // run in a fresh temporary directory
	Create        bool   // create Dir before entering it
	CreateParents bool   // with Create, also make missing parents
}

// Run executes the command inside a directory guard and returns its exit
// code. The previous working directory is restored before Run returns; if
// that restoration fails, the guard panics with an unrecoverable invariant
// error (see withdir.Dir.Close).
func Run(ctx context.Context, opts Options, name string, args ...string) (int, error) {
	d, err := open(opts)
	if err != nil {
		return 0, err
	}
	defer d.Close()

	slog.Debug("Running command.", "dir", d.Path(), "command", name, "args", args)
	c := exec.CommandContext(ctx, name, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}

func open(opts Options) (*withdir.Dir, error) {
	switch {
	case opts.Temp:
		return withdir.Temp()
	case opts.Create && opts.CreateParents:
		return withdir.CreateAll(opts.Dir)
	case opts.Create:
		return withdir.Create(opts.Dir)
	default:
		return withdir.Enter(opts.Dir)
	}
}
