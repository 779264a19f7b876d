package bootstrap

import (
	"errors"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// SetupFlag tells the installer to install from the package that follows it.
const SetupFlag = "--setup"

// Launcher hands off to the extracted installer.
type Launcher interface {
	// Launch runs the installer with the package and the forwarded arguments and waits for it to exit.
	Launch(installerPath, packagePath, args string) error
}

// CommandLine builds the installer invocation:
//
//	"<installerPath>" --setup "<packagePath>" <args>
//
// args is appended verbatim.
func CommandLine(installerPath, packagePath, args string) string {
	return `"` + installerPath + `" ` + SetupFlag + ` "` + packagePath + `" ` + args
}

// ExecLauncher starts the installer as a child process that inherits the standard streams.
type ExecLauncher struct{}

// Launch implements Launcher. The child's exit status is logged but not returned.
func (ExecLauncher) Launch(installerPath, packagePath, args string) error {
	line := CommandLine(installerPath, packagePath, args)

	cmd, err := newCommand(installerPath, line)
	if err != nil {
		return newError(KindLaunchFailed, err, "Unable to start the installer")
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infof("starting installer: %s", line)
	if err := cmd.Start(); err != nil {
		return newError(KindLaunchFailed, err, "Unable to start the installer")
	}
	log.Infof("installer started with PID %d", cmd.Process.Pid)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Infof("installer exited with code %d", exitErr.ExitCode())
		} else {
			log.Warnf("failed waiting for installer: %v", err)
		}
		return nil
	}
	log.Infof("installer finished")
	return nil
}
