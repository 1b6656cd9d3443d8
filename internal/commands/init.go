// Package commands implements kioskgen CLI commands.
package commands

import (
	"log/slog"

	"github.com/NielsdaWheelz/kioskgen/internal/fs"
	"github.com/NielsdaWheelz/kioskgen/internal/layout"
	"github.com/NielsdaWheelz/kioskgen/internal/scaffold"
)

// Reporter receives the progress of an Init run.
type Reporter interface {
	FoldersStarted()
	FilesStarted()
	Done()
}

// InitResult holds the result of the init command.
type InitResult struct {
	Root    string
	Folders scaffold.FoldersResult
	Files   scaffold.FilesResult
}

// Init materializes l under root: folders first, then files. Existing files
// are never touched. There is no rollback; a failed run can simply be
// repeated.
func Init(fsys fs.FS, root string, l layout.Layout, rep Reporter) (InitResult, error) {
	result := InitResult{Root: root}
	logger := slog.With(slog.String("root", root))

	rep.FoldersStarted()
	folders, err := scaffold.EnsureFolders(fsys, root, l.Folders)
	result.Folders = folders
	if err != nil {
		return result, err
	}
	logger.Info("folders ensured",
		slog.Int("created", len(folders.Created)),
		slog.Int("existed", len(folders.Existed)),
	)

	rep.FilesStarted()
	files, err := scaffold.EnsureFiles(fsys, root, l.Files)
	result.Files = files
	if err != nil {
		return result, err
	}
	logger.Info("files ensured",
		slog.Int("created", len(files.Created)),
		slog.Int("skipped", len(files.Skipped)),
	)

	rep.Done()

	return result, nil
}
