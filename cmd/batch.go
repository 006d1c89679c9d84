package cmd

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog/log"
	"github.com/smira/commander"
	"github.com/smira/flag"

	"github.com/dsi/stunpack/archive"
	"github.com/dsi/stunpack/stunpack"
	"github.com/dsi/stunpack/utils"
)

// manifestJob is one source -> target pair parsed out of a batch
// manifest line.
type manifestJob struct {
	source, target string
}

// parseManifest reads one "source target" pair per line from r,
// shell-word-splitting each line so paths containing spaces can be
// quoted the way a shell would. Blank lines and lines starting with
// '#' are skipped.
func parseManifest(r *bufio.Scanner) ([]manifestJob, error) {
	var jobs []manifestJob
	lineNo := 0
	for r.Scan() {
		lineNo++
		line := strings.TrimSpace(r.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("manifest line %d: %s", lineNo, err)
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("manifest line %d: expected \"source target\", got %d field(s)", lineNo, len(fields))
		}

		jobs = append(jobs, manifestJob{source: fields[0], target: fields[1]})
	}
	return jobs, r.Err()
}

func decompressOne(job manifestJob, archiveFormat archive.Format) error {
	if !context.Config().HasRecognizedExtension(job.source) {
		context.Progress().Printf("warning: %s does not have a recognized stunpack extension\n", job.source)
	}

	input, err := utils.LoadCompressedFile(job.source)
	if err != nil {
		context.Progress().Fail("could not read %s: %s", job.source, err)
		return err
	}

	output, err := stunpack.Decompress(input)
	if err != nil {
		context.Progress().Fail("could not decompress %s: %s", job.source, err)
		return err
	}

	if err := utils.SaveDecompressedFile(job.target, output); err != nil {
		context.Progress().Fail("could not write %s: %s", job.target, err)
		return err
	}
	log.Debug().
		Str("source", job.source).
		Str("target", job.target).
		Int("decompressed", len(output)).
		Msg("decompressed")
	context.Progress().Status("decompressed %s -> %s", job.source, job.target)

	if _, err := archive.Write(archiveFormat, output, job.target); err != nil {
		context.Progress().Fail("could not write auxiliary archive for %s: %s", job.target, err)
		return err
	}

	return nil
}

// runBatch runs jobs through a pool of workers goroutines
// (runtime.GOMAXPROCS(0) when workers <= 0, never more than len(jobs)),
// each worker independently
// calling utils.LoadCompressedFile, stunpack.Decompress,
// utils.SaveDecompressedFile and, optionally, archive.Write.
func runBatch(jobs []manifestJob, workers int, archiveFormat archive.Format) (failed int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 0 {
		return 0
	}

	context.Progress().InitBar(int64(len(jobs)), false)
	defer context.Progress().ShutdownBar()

	queue := make(chan manifestJob, workers)
	var failedCount atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				if err := decompressOne(job, archiveFormat); err != nil {
					failedCount.Add(1)
				}
				context.Progress().AddBar(1)
			}
		}()
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	return int(failedCount.Load())
}

func stunpackBatch(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	f, err := os.Open(args[0])
	if err != nil {
		context.Progress().Fail("could not open manifest %s: %s", args[0], err)
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	jobs, err := parseManifest(bufio.NewScanner(f))
	if err != nil {
		context.Progress().Fail("could not parse manifest %s: %s", args[0], err)
		return err
	}

	workers, err := strconv.Atoi(cmd.Flag.Lookup("jobs").Value.String())
	if err != nil || workers <= 0 {
		workers = context.Config().DefaultJobs
	}
	archiveFormat := archive.Format(cmd.Flag.Lookup("archive").Value.String())
	if archiveFormat == "" {
		archiveFormat = archive.Format(context.Config().DefaultArchiveFormat)
	}

	failed := runBatch(jobs, workers, archiveFormat)
	context.Progress().Status("batch complete: %d succeeded, %d failed", len(jobs)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to decompress", failed, len(jobs))
	}
	return nil
}

func makeCmdBatch() *commander.Command {
	cmd := &commander.Command{
		Run:       stunpackBatch,
		UsageLine: "batch <manifest>",
		Short:     "decompress every source/target pair listed in a manifest",
		Long: `
Reads a manifest file of "source target" pairs, one per line
(shell-word-split so paths with spaces can be quoted), and
decompresses each pair using a bounded worker pool.

ex:
  $ stunpack batch manifest.txt
`,
		Flag: *flag.NewFlagSet("stunpack-batch", flag.ExitOnError),
	}
	cmd.Flag.String("jobs", "0", "worker pool size (0 = config defaultJobs, or runtime.GOMAXPROCS(0) when that is 0)")
	cmd.Flag.String("archive", "", "write an auxiliary compressed copy of decoded output: none, gzip, xz or lzma (default from config)")
	return cmd
}
