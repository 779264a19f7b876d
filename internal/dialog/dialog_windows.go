package dialog

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// ShowError displays msg in a modal error message box and blocks until it is dismissed.
func ShowError(msg string) {
	log.Error(msg)

	text, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		log.Warnf("failed to encode message: %v", err)
		return
	}
	caption, err := windows.UTF16PtrFromString(Caption)
	if err != nil {
		log.Warnf("failed to encode caption: %v", err)
		return
	}
	if _, err := windows.MessageBox(0, text, caption, windows.MB_OK|windows.MB_ICONERROR); err != nil {
		log.Warnf("failed to show message box: %v", err)
	}
}
