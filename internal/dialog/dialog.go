// Package dialog presents blocking messages to the user.
package dialog

// Caption is the title of message boxes.
var Caption = "Setup"
