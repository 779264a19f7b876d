//go:build !windows

package bootstrap

import (
	"os"
	"strings"
)

// ForwardedArgs reassembles the arguments of this process into a single command line string.
// Arguments are quoted only where POSIX word splitting would otherwise change them.
func ForwardedArgs() string {
	return joinArgs(os.Args[1:])
}

func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quoteArg(a)
	}
	return strings.Join(quoted, " ")
}

func quoteArg(a string) string {
	if a != "" && !strings.ContainsAny(a, " \t\n\"'\\#") {
		return a
	}
	return "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
}
