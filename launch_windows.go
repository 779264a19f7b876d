package bootstrap

import (
	"os/exec"
	"syscall"
)

// newCommand passes the command line to CreateProcess untouched.
func newCommand(installerPath, line string) (*exec.Cmd, error) {
	cmd := exec.Command(installerPath)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: line}
	return cmd, nil
}
