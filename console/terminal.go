package console

import (
	"os"

	"golang.org/x/term"
)

// RunningOnTerminal reports whether stdout is a terminal; color markup
// and the progress bar are suppressed when it is not.
func RunningOnTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
