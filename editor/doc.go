// Package editor is the modal editing session: a Bubble Tea model that owns
// the document buffer, the file browser, the command line and the clipboard,
// and routes every key event through one dispatch table keyed on the active
// Mode.
//
// The package is responsible for mode transitions, command-line parsing,
// line-wise selection and paste, viewport following, and deriving the Frame
// handed to the terminal.
package editor
