package withdir

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Errors reported by this package. Each wraps the underlying OS error, so
// errors.Is matches both these sentinels and values such as fs.ErrNotExist.
var (
	// ErrNotFound reports that the target directory does not exist.
	ErrNotFound = errors.New("target directory does not exist")
	// ErrNotADirectory reports that the target path is not a directory.
	ErrNotADirectory = errors.New("target path is not a directory")
	// ErrPermissionDenied reports that entering the target was denied.
	ErrPermissionDenied = errors.New("permission denied entering target directory")
	// ErrCwdUnreadable reports that the current working directory could not
	// be determined before the change.
	ErrCwdUnreadable = errors.New("current working directory is unreadable")
	// ErrRestoreFailed reports that Leave could not restore the previous
	// working directory.
	ErrRestoreFailed = errors.New("previous working directory could not be restored")
)

// wrapChdirError maps a chdir failure onto the package error taxonomy.
func wrapChdirError(err error) error {
	switch {
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: %w", ErrNotADirectory, err)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
