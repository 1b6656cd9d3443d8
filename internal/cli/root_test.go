package cli_test

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/kioskgen/internal/cli"
	"github.com/NielsdaWheelz/kioskgen/internal/errors"
	"github.com/NielsdaWheelz/kioskgen/internal/fs"
	"github.com/NielsdaWheelz/kioskgen/internal/layout"
	"github.com/NielsdaWheelz/kioskgen/internal/render"
)

func execute(t *testing.T, deps cli.Deps, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func depsFor(root string) cli.Deps {
	return cli.Deps{
		FS:    fs.NewRealFS(),
		Getwd: func() (string, error) { return root, nil },
	}
}

func TestRootCmd_Scaffolds(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := execute(t, depsFor(root))
	require.NoError(t, err)

	want := render.FoldersStartedMsg + "\n" +
		render.FilesStartedMsg + "\n" +
		"\n" +
		render.DoneMsg + "\n"
	assert.Equal(t, want, stdout)

	for _, file := range layout.Files() {
		assert.FileExists(t, filepath.Join(root, filepath.FromSlash(file)))
	}
}

func TestRootCmd_DebugLogging(t *testing.T) {
	root := t.TempDir()

	_, stderr, err := execute(t, depsFor(root), "--log_level", "debug", "--log_format", "logfmt")
	require.NoError(t, err)

	assert.Contains(t, stderr, "created file")
	assert.Contains(t, stderr, "path=lib/main.dart")
}

func TestRootCmd_QuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, depsFor(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	root := t.TempDir()

	_, _, err := execute(t, depsFor(root), "lib")
	require.Error(t, err)
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
	assert.Equal(t, 2, errors.ExitCode(err))

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	_, _, err := execute(t, depsFor(t.TempDir()), "--force")
	require.Error(t, err)
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, depsFor(t.TempDir()), "--log_level", "loud")
	require.Error(t, err)
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
}

func TestRootCmd_GetwdFailure(t *testing.T) {
	deps := cli.Deps{
		FS:    fs.NewRealFS(),
		Getwd: func() (string, error) { return "", stderrors.New("getwd: no such file or directory") },
	}

	_, _, err := execute(t, deps)
	require.Error(t, err)
	assert.Equal(t, errors.ENoWorkdir, errors.GetCode(err))
	assert.Equal(t, 1, errors.ExitCode(err))
}

func TestRootCmd_IOFailureIsFatal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets"), []byte("not a dir"), 0o644))

	stdout, _, err := execute(t, depsFor(root))
	require.Error(t, err)
	assert.Equal(t, errors.EMkdirFailed, errors.GetCode(err))
	assert.Equal(t, 1, errors.ExitCode(err))
	assert.NotContains(t, stdout, render.DoneMsg)
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := execute(t, depsFor(t.TempDir()), "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kioskgen")
}

func TestRootCmd_FailureLogsPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets"), []byte("not a dir"), 0o644))

	_, stderr, err := execute(t, depsFor(root), "--log_level", "info", "--log_format", "logfmt")
	require.Error(t, err)

	assert.Contains(t, stderr, `msg="scaffold failed"`)
	assert.Contains(t, stderr, "code=E_MKDIR_FAILED")
	assert.Contains(t, stderr, "path=assets/i18n")
}

func TestRootCmd_UsageErrorPrintsCauseOnce(t *testing.T) {
	_, _, err := execute(t, depsFor(t.TempDir()), "extra")
	require.Error(t, err)

	var buf bytes.Buffer
	errors.Print(&buf, err)

	out := buf.String()
	assert.Contains(t, out, "error_code: E_USAGE\ninvalid arguments\n")
	assert.Equal(t, 1, strings.Count(out, `unknown command "extra"`))
}
