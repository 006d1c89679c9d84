package main

import (
	"os"

	"github.com/dsi/stunpack/cmd"
)

// Version variable, filled in at link time.
var Version string

func main() {
	if Version != "" {
		cmd.Version = Version
	}

	os.Exit(cmd.Run(cmd.RootCommand(), os.Args[1:], true))
}
