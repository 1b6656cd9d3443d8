package scaffold

import (
	"log/slog"
	"path/filepath"

	"github.com/NielsdaWheelz/kioskgen/internal/errors"
	"github.com/NielsdaWheelz/kioskgen/internal/fs"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FoldersResult holds the result of folder creation.
type FoldersResult struct {
	Created []string // relative paths that did not exist before
	Existed []string // relative paths that were already directories
}

// EnsureFolders creates every folder under root, including missing parents.
// Folders that already exist are left alone. The first failure stops the
// pass; folders created before it remain.
func EnsureFolders(fsys fs.FS, root string, paths []string) (FoldersResult, error) {
	result := FoldersResult{}

	for _, rel := range paths {
		absPath := filepath.Join(root, filepath.FromSlash(rel))
		logger := slog.With(slog.String("path", rel))

		info, err := fsys.Stat(absPath)
		existed := err == nil && info.IsDir()

		if err := fsys.MkdirAll(absPath, dirPerm); err != nil {
			return result, errors.WrapWithDetails(errors.EMkdirFailed,
				"failed to create folder "+rel, err,
				map[string]string{"path": rel})
		}

		if existed {
			logger.Debug("folder exists")
			result.Existed = append(result.Existed, rel)
			continue
		}

		logger.Debug("created folder")
		result.Created = append(result.Created, rel)
	}

	return result, nil
}
