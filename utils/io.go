package utils

import (
	"fmt"
	"os"
)

// MaxCompressedFileSize is the largest input a container's 24-bit length
// fields can address (2^24 - 1 bytes).
const MaxCompressedFileSize = 0xFFFFFF

// LoadCompressedFile reads path fully into memory, rejecting anything
// larger than MaxCompressedFileSize before it is ever handed to the
// decoder.
func LoadCompressedFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.Size() > MaxCompressedFileSize {
		return nil, fmt.Errorf("%s is %d bytes, exceeds the %d byte compressed file limit", path, info.Size(), MaxCompressedFileSize)
	}

	return os.ReadFile(path)
}

// SaveDecompressedFile writes data to path, creating or truncating it.
func SaveDecompressedFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
