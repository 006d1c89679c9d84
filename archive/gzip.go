package archive

import (
	"os"

	"github.com/klauspost/pgzip"
)

// WriteGzip writes data to targetPath+".gz" using a parallel gzip
// writer.
func WriteGzip(data []byte, targetPath string) (string, error) {
	path := targetPath + ".gz"

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	w := pgzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return path, nil
}
