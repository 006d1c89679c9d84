package cmd

import (
	"fmt"

	"github.com/smira/commander"
	"github.com/smira/flag"

	"github.com/dsi/stunpack/stunpack"
	"github.com/dsi/stunpack/utils"
)

func stunpackInspect(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	source := args[0]
	if !context.Config().HasRecognizedExtension(source) {
		context.Progress().Printf("warning: %s does not have a recognized stunpack extension\n", source)
	}

	input, err := utils.LoadCompressedFile(source)
	if err != nil {
		context.Progress().Fail("could not read %s: %s", source, err)
		return err
	}

	info, err := stunpack.Inspect(input)
	if info != nil {
		fmt.Printf("declared passes: %d\n", info.PassCount)
		for _, p := range info.Passes {
			algo := "unknown"
			switch p.Algorithm {
			case 0x01:
				algo = "RLE"
			case 0x02:
				algo = "VLE"
			}
			fmt.Printf("pass at offset %d: algorithm=%s (0x%02x) sub_file_size=%d\n", p.HeaderOffset, algo, p.Algorithm, p.SubFileSize)
		}
		if info.PassCount > 1 {
			fmt.Println("(later pass headers live inside intermediate buffers and require a full decode)")
		}
	}
	if err != nil {
		context.Progress().Fail("malformed container %s: %s", source, err)
		return err
	}

	context.Progress().Status("inspected %s: %d declared pass(es)", source, info.PassCount)
	return nil
}

func makeCmdInspect() *commander.Command {
	return &commander.Command{
		Run:       stunpackInspect,
		UsageLine: "inspect <source>",
		Short:     "print a container's pass chain without decoding it",
		Long: `
Parses only the container and per-pass headers of a stunpack
container and prints the declared pass count and the first pass's
algorithm tag and declared sub_file_size, without running either
decoder. Headers of later passes live inside intermediate buffers and
are not reported.

ex:
  $ stunpack inspect car.p3s
`,
		Flag: *flag.NewFlagSet("stunpack-inspect", flag.ExitOnError),
	}
}
