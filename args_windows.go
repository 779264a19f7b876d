package bootstrap

import (
	"strings"

	"golang.org/x/sys/windows"
)

// ForwardedArgs returns the raw command line of this process without the program name.
func ForwardedArgs() string {
	return stripProgramName(windows.UTF16PtrToString(windows.GetCommandLine()))
}

// stripProgramName removes argv[0] the way CommandLineToArgvW parses it:
// quoted up to the next quote, otherwise up to the first space or tab.
func stripProgramName(line string) string {
	var rest string
	if strings.HasPrefix(line, `"`) {
		end := strings.IndexByte(line[1:], '"')
		if end < 0 {
			return ""
		}
		rest = line[end+2:]
	} else {
		end := strings.IndexAny(line, " \t")
		if end < 0 {
			return ""
		}
		rest = line[end:]
	}
	return strings.TrimLeft(rest, " \t")
}
