package archive

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// WriteXZ writes data to targetPath+".xz" by piping it through the
// external xz binary, the same "shell out, no liblzma dependency"
// technique github.com/smira/go-xz's Reader uses for decompression;
// go-xz itself exposes no encoder, so writing has to drive the external
// tool directly. Round-trip tests in this package read the result back
// with go-xz's own Reader.
func WriteXZ(data []byte, targetPath string) (string, error) {
	if _, err := exec.LookPath("xz"); err != nil {
		return "", errors.Wrap(err, "xz binary not found in PATH")
	}

	path := targetPath + ".xz"

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = out.Close()
	}()

	cmd := exec.Command("xz", "--compress", "--stdout")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = out

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "xz: %s", stderr.String())
	}

	return path, nil
}
