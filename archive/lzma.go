package archive

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// WriteLZMA writes data to targetPath+".lzma" by piping it through the
// external xz binary's legacy lzma format, the same external-process
// approach WriteXZ uses. github.com/kjk/lzma exposes a decoder only;
// round-trip tests in this package read the result back with it.
func WriteLZMA(data []byte, targetPath string) (string, error) {
	if _, err := exec.LookPath("xz"); err != nil {
		return "", errors.Wrap(err, "xz binary not found in PATH")
	}

	path := targetPath + ".lzma"

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = out.Close()
	}()

	cmd := exec.Command("xz", "--format=lzma", "--compress", "--stdout")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = out

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "xz --format=lzma: %s", stderr.String())
	}

	return path, nil
}
