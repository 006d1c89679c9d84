package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/smira/commander"
	"github.com/smira/flag"

	"github.com/dsi/stunpack/archive"
	"github.com/dsi/stunpack/stunpack"
	"github.com/dsi/stunpack/utils"
)

func stunpackDecompress(cmd *commander.Command, args []string) error {
	if len(args) != 2 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	source, target := args[0], args[1]
	if strings.EqualFold(source, target) {
		context.Progress().Fail("source and target resolve to the same path: %s", source)
		return fmt.Errorf("source and target must differ: %s", source)
	}

	if !context.Config().HasRecognizedExtension(source) {
		context.Progress().Printf("warning: %s does not have a recognized stunpack extension\n", source)
	}

	input, err := utils.LoadCompressedFile(source)
	if err != nil {
		context.Progress().Fail("could not read %s: %s", source, err)
		return err
	}

	start := time.Now()
	output, err := stunpack.Decompress(input)
	if err != nil {
		context.Progress().Fail("could not decompress %s: %s", source, err)
		return err
	}
	log.Info().
		Str("source", source).
		Str("target", target).
		Int("compressed", len(input)).
		Int("decompressed", len(output)).
		Dur("elapsed", time.Since(start)).
		Msg("decompressed")
	context.Progress().Status("decompressed %s (%s)", source, utils.HumanBytes(int64(len(output))))

	if err := utils.SaveDecompressedFile(target, output); err != nil {
		context.Progress().Fail("could not write %s: %s", target, err)
		return err
	}
	context.Progress().Status("wrote %s", target)

	if kind := utils.Sniff(output); kind != utils.UnknownContentType {
		context.Progress().Printf("detected content type: %s\n", kind)
	}

	archiveFormat := archive.Format(cmd.Flag.Lookup("archive").Value.String())
	if archiveFormat == "" {
		archiveFormat = archive.Format(context.Config().DefaultArchiveFormat)
	}
	if archivePath, err := archive.Write(archiveFormat, output, target); err != nil {
		context.Progress().Fail("could not write auxiliary archive: %s", err)
		return err
	} else if archivePath != "" {
		context.Progress().Status("wrote auxiliary archive %s", archivePath)
	}

	return nil
}

func makeCmdDecompress() *commander.Command {
	cmd := &commander.Command{
		Run:       stunpackDecompress,
		UsageLine: "decompress <source> <target>",
		Short:     "decompress a stunpack container",
		Long: `
Decompresses a Stunts/4D Driving RLE/VLE container.

ex:
  $ stunpack decompress car.p3s car.p3s.raw
`,
		Flag: *flag.NewFlagSet("stunpack-decompress", flag.ExitOnError),
	}
	cmd.Flag.String("archive", "", "write an auxiliary compressed copy of decoded output: none, gzip, xz or lzma (default from config)")
	return cmd
}
