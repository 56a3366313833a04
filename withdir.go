// Package withdir provides scoped changes of the process working directory.
//
// A guard returned by Enter changes the working directory and restores the
// previous one when closed. Guards serialize against each other: while one
// goroutine holds a live guard, Enter on any other goroutine blocks until
// the first goroutine has closed all of its guards. The goroutine holding a
// guard may enter further directories without blocking; such nested guards
// must be closed in reverse order of creation, on the goroutine that created
// them.
//
// Nothing stops other code from calling os.Chdir directly, which bypasses
// the serialization entirely.
package withdir

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/huwper/with-dir/internal/dirlock"
	"github.com/huwper/with-dir/internal/invariant"
)

// Dir is a live working-directory guard. It must be closed exactly once, by
// the goroutine that created it.
type Dir struct {
	path     string // directory entered, absolute
	previous string // working directory to restore
	temp     bool   // remove path at teardown
	done     bool
}

// Enter changes the process working directory to path and returns a guard
// that restores the previous working directory when closed. It blocks while
// a guard created by another goroutine is live. On failure the working
// directory is left unchanged and the lock is not held.
func Enter(path string) (*Dir, error) {
	return enter(func() (string, error) {
		return path, nil
	})
}

// Temp creates a new temporary directory and enters it. Closing the guard
// removes the directory again after restoring the previous working
// directory.
func Temp() (*Dir, error) {
	var tmp string
	d, err := enter(func() (string, error) {
		var err error
		tmp, err = os.MkdirTemp("", "withdir-")
		return tmp, err
	})
	if err != nil {
		if tmp != "" {
			os.Remove(tmp)
		}
		return nil, err
	}
	d.temp = true
	return d, nil
}

// Create makes the directory at path and enters it. The directory persists
// after the guard is closed. The parent of path must already exist; use
// CreateAll otherwise.
func Create(path string) (*Dir, error) {
	return enter(func() (string, error) {
		if err := os.Mkdir(path, 0o775); err != nil {
			return "", err
		}
		return path, nil
	})
}

// CreateAll is Create, additionally making any missing parent directories.
func CreateAll(path string) (*Dir, error) {
	return enter(func() (string, error) {
		if err := os.MkdirAll(path, 0o775); err != nil {
			return "", err
		}
		return path, nil
	})
}

// enter acquires the directory lock, snapshots the current directory,
// resolves the target via pick and changes into it. pick runs under the
// lock so that relative paths and directory creation see a stable working
// directory. Every failure path releases the lock unit taken here and
// leaves the working directory untouched.
func enter(pick func() (string, error)) (*Dir, error) {
	dirlock.Lock()
	previous, err := os.Getwd()
	if err != nil {
		dirlock.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrCwdUnreadable, err)
	}
	path, err := pick()
	if err != nil {
		dirlock.Unlock()
		return nil, err
	}
	if err := os.Chdir(path); err != nil {
		dirlock.Unlock()
		return nil, wrapChdirError(err)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(previous, path)
	}
	return &Dir{path: filepath.Clean(path), previous: previous}, nil
}

// Path returns the absolute path of the directory this guard entered.
func (d *Dir) Path() string {
	return d.path
}

// Close restores the working directory that was current when the guard was
// created and releases the guard's hold on the directory lock. Closing an
// already-closed guard is a no-op.
//
// Close panics if the previous working directory can no longer be entered:
// the process would otherwise continue with an unknown working directory.
// The lock is released before the panic so that other goroutines are not
// deadlocked. Use Leave to handle restore failure as an ordinary error.
func (d *Dir) Close() error {
	err := d.teardown()
	invariant.Check(err, "restoring working directory")
	return nil
}

// Leave is Close, but reports failure to restore the previous working
// directory as ErrRestoreFailed instead of panicking. The lock is released
// even then; the process working directory is no longer trustworthy, though.
func (d *Dir) Leave() error {
	if err := d.teardown(); err != nil {
		return fmt.Errorf("%w: %w", ErrRestoreFailed, err)
	}
	return nil
}

func (d *Dir) teardown() error {
	if d.done {
		return nil
	}
	d.done = true
	err := os.Chdir(d.previous)
	if err == nil && d.temp {
		if rmErr := os.RemoveAll(d.path); rmErr != nil {
			slog.Warn("Error removing temporary directory.", "path", d.path, "error", rmErr)
		}
	}
	dirlock.Unlock()
	return err
}
