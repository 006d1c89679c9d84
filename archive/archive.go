// Package archive writes optional auxiliary compressed copies of an
// already-decoded output buffer. It is unrelated to the legacy RLE/VLE
// container format; these writers never feed their output back into the
// stunpack decoder.
package archive

import "fmt"

// Format names one of the supported auxiliary archive encodings.
type Format string

const (
	// None disables auxiliary archiving.
	None Format = "none"
	// Gzip writes a .gz copy using github.com/klauspost/pgzip.
	Gzip Format = "gzip"
	// XZ writes a .xz copy by shelling out to the xz binary.
	XZ Format = "xz"
	// LZMA writes a .lzma copy by shelling out to the xz binary's
	// legacy lzma format.
	LZMA Format = "lzma"
)

// Write dispatches to the writer for format, writing data alongside
// targetPath (targetPath itself is not touched; the archive gets its
// own suffixed path). It returns the path written.
func Write(format Format, data []byte, targetPath string) (string, error) {
	switch format {
	case None, "":
		return "", nil
	case Gzip:
		return WriteGzip(data, targetPath)
	case XZ:
		return WriteXZ(data, targetPath)
	case LZMA:
		return WriteLZMA(data, targetPath)
	default:
		return "", fmt.Errorf("unknown archive format %q", format)
	}
}
