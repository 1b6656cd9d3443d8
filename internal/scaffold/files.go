package scaffold

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NielsdaWheelz/kioskgen/internal/errors"
	"github.com/NielsdaWheelz/kioskgen/internal/fs"
)

// FilesResult holds the result of file creation.
type FilesResult struct {
	Created []string // relative paths of files that were created
	Skipped []string // relative paths that already existed
}

// EnsureFiles creates every file under root that does not exist yet, filled
// with its Placeholder content. Anything already at a path, whatever its
// content or type, is skipped and never modified.
//
// Parent directories are not created; a missing parent is a failure. The
// first failure stops the pass.
func EnsureFiles(fsys fs.FS, root string, paths []string) (FilesResult, error) {
	result := FilesResult{}

	for _, rel := range paths {
		absPath := filepath.Join(root, filepath.FromSlash(rel))
		logger := slog.With(slog.String("path", rel))
		details := map[string]string{"path": rel}

		_, err := fsys.Lstat(absPath)
		if err == nil {
			logger.Debug("file exists, skipping")
			result.Skipped = append(result.Skipped, rel)
			continue
		}
		if !os.IsNotExist(err) {
			return result, errors.WrapWithDetails(errors.EStatFailed,
				"failed to check "+rel, err, details)
		}

		err = fs.WriteNewFile(fsys, absPath, Placeholder(rel), filePerm)
		if fs.IsExist(err) {
			// Created by someone else between Lstat and create.
			logger.Debug("file appeared concurrently, skipping")
			result.Skipped = append(result.Skipped, rel)
			continue
		}
		if err != nil {
			return result, errors.WrapWithDetails(errors.EWriteFailed,
				"failed to create file "+rel, err, details)
		}

		logger.Debug("created file")
		result.Created = append(result.Created, rel)
	}

	return result, nil
}
