package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to an interactive terminal.
// Spinners and other animated output fall back to plain sequential writes
// when this returns false (piped output, CI logs, redirected files).
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
