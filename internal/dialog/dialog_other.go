//go:build !windows

package dialog

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// output receives messages on platforms without a native message box.
var output io.Writer = os.Stderr

// ShowError prints msg to the terminal.
func ShowError(msg string) {
	log.Error(msg)
	if _, err := fmt.Fprintf(output, "%s: %s\n", Caption, msg); err != nil {
		log.Warnf("failed to show message: %v", err)
	}
}
