// Command kioskgen scaffolds the Flutter kiosk project structure in the
// current directory.
package main

import (
	"os"

	"github.com/NielsdaWheelz/kioskgen/internal/cli"
	"github.com/NielsdaWheelz/kioskgen/internal/errors"
	"github.com/NielsdaWheelz/kioskgen/internal/fs"
)

func main() {
	cmd := cli.NewRootCmd(cli.Deps{
		FS:    fs.NewRealFS(),
		Getwd: os.Getwd,
	})

	if err := cmd.Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
