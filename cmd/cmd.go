package cmd

import (
	"os"

	"github.com/smira/commander"
	"github.com/smira/flag"
)

// RootCommand creates the root command in the command tree.
func RootCommand() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0],
		Short:     "decoder for Distinctive Software RLE/VLE data containers",
		Long: `
stunpack decompresses data files produced by the MS-DOS game
Stunts/4D Sports Driving (Distinctive Software Inc., 1990). The
container format chains RLE and VLE (canonical Huffman) passes; this
tool reimplements the legacy decoder bit-for-bit.`,
		Flag: *flag.NewFlagSet("stunpack", flag.ExitOnError),
		Subcommands: []*commander.Command{
			makeCmdDecompress(),
			makeCmdInspect(),
			makeCmdBatch(),
			makeCmdVersion(),
		},
	}

	cmd.Flag.String("log-level", "info", "logging verbosity: debug, info, warn, error")
	cmd.Flag.String("log-format", "default", "log output format: default or json")
	cmd.Flag.String("config", "", "location of configuration file (default locations are /etc/stunpack.conf, ~/.stunpack.conf)")

	return cmd
}
