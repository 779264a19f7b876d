package bootstrap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandLine(t *testing.T) {
	assert.Equal(t,
		`"/tmp/a.exe" --setup "/tmp/b.nupkg" --silent`,
		CommandLine("/tmp/a.exe", "/tmp/b.nupkg", "--silent"))

	// forwarded arguments are appended verbatim
	assert.Equal(t,
		`"C:\Temp\a.exe" --setup "C:\Temp\b.nupkg" --x "quoted arg" 'single'`,
		CommandLine(`C:\Temp\a.exe`, `C:\Temp\b.nupkg`, `--x "quoted arg" 'single'`))

	assert.Equal(t, `"a" --setup "b" `, CommandLine("a", "b", ""))
}

func TestExecLauncher_missingInstaller(t *testing.T) {
	dir := t.TempDir()

	err := ExecLauncher{}.Launch(filepath.Join(dir, "missing.exe"), filepath.Join(dir, "p.nupkg"), "")
	assert.Equal(t, KindLaunchFailed, KindOf(err))
	assert.Contains(t, err.Error(), "Unable to start the installer")
}
