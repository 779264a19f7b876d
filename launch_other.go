//go:build !windows

package bootstrap

import (
	"errors"
	"os/exec"

	"github.com/anmitsu/go-shlex"
)

// newCommand splits the command line with POSIX shell rules. No expansion takes place.
func newCommand(_, line string) (*exec.Cmd, error) {
	argv, err := shlex.Split(line, true)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, errors.New("empty command line")
	}
	return exec.Command(argv[0], argv[1:]...), nil
}
