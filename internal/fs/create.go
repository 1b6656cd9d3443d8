package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
)

// WriteNewFile creates path and writes data to it, but only if nothing exists
// at path yet. If something does, the returned error matches fs.ErrExist and
// the existing entry is left untouched.
//
// A failed write or close removes the partially written file, so callers
// never observe truncated placeholder content.
// The caller must ensure the parent directory exists.
func WriteNewFile(fsys FS, path string, data []byte, perm os.FileMode) error {
	w, err := fsys.CreateExclusive(path, perm)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		var merr error
		merr = multierror.Append(merr, err)
		if cerr := w.Close(); cerr != nil {
			merr = multierror.Append(merr, cerr)
		}
		return discard(fsys, path, merr)
	}

	if err := w.Close(); err != nil {
		return discard(fsys, path, err)
	}

	return nil
}

// IsExist reports whether err indicates that a path is already taken.
func IsExist(err error) bool {
	return errors.Is(err, iofs.ErrExist)
}

// discard removes a partially written file and returns cause, extended with
// the removal failure if there was one.
func discard(fsys FS, path string, cause error) error {
	if err := fsys.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return multierror.Append(cause, err)
	}
	return cause
}
