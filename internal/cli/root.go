// Package cli builds the kioskgen command line.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/kioskgen/internal/commands"
	"github.com/NielsdaWheelz/kioskgen/internal/errors"
	"github.com/NielsdaWheelz/kioskgen/internal/fs"
	"github.com/NielsdaWheelz/kioskgen/internal/layout"
	"github.com/NielsdaWheelz/kioskgen/internal/log"
	"github.com/NielsdaWheelz/kioskgen/internal/render"
	"github.com/NielsdaWheelz/kioskgen/internal/version"
)

const (
	cmdName   = "kioskgen"
	shortDesc = "Scaffold the Flutter kiosk project structure."
	longDesc  = `Scaffold the Flutter kiosk project structure.

Run from the project root. Creates the asset and lib/ folders and a stub file
for every module. Existing files are never overwritten, so it is safe to run
again at any time.`
)

// Deps holds what the root command needs from the outside world.
type Deps struct {
	FS    fs.FS
	Getwd func() (string, error)
}

// NewRootCmd returns the kioskgen root command.
func NewRootCmd(deps Deps) *cobra.Command {
	var logLevel, logFormat string

	cmd := &cobra.Command{
		Use:           cmdName,
		Short:         shortDesc,
		Long:          longDesc,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, "invalid flags", err)
	})

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return errors.Wrap(errors.EUsage, "invalid logging flags", err)
		}

		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, _ []string) error {
		root, err := deps.Getwd()
		if err != nil {
			return errors.Wrap(errors.ENoWorkdir, "failed to get working directory", err)
		}

		out := cc.OutOrStdout()
		progress := render.NewProgress(out, isTerminal(out))

		result, err := commands.Init(deps.FS, root, layout.Default(), progress)
		if err != nil {
			slog.Info("scaffold failed", errors.LogAttrs(err)...)
			return err
		}

		slog.Debug("scaffold complete",
			slog.Any("folders_created", result.Folders.Created),
			slog.Any("files_created", result.Files.Created),
			slog.Any("files_skipped", result.Files.Skipped),
		)

		return nil
	}

	return cmd
}

// usageArgs tags positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cc *cobra.Command, args []string) error {
		if err := validate(cc, args); err != nil {
			return errors.Wrap(errors.EUsage, "invalid arguments", err)
		}
		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
