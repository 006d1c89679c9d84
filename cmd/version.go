package cmd

import (
	"fmt"

	"github.com/smira/commander"
	"github.com/smira/flag"
)

// Version is filled in at link time.
var Version = "unknown"

func stunpackVersion(cmd *commander.Command, args []string) error {
	fmt.Printf("stunpack version: %s\n", Version)
	return nil
}

func makeCmdVersion() *commander.Command {
	return &commander.Command{
		Run:       stunpackVersion,
		UsageLine: "version",
		Short:     "display version",
		Long: `
Shows stunpack's version.

ex:
  $ stunpack version
`,
		Flag: *flag.NewFlagSet("stunpack-version", flag.ExitOnError),
	}
}
