package utils

import (
	"github.com/h2non/filetype"
)

// UnknownContentType is returned by Sniff when no matcher recognizes the
// buffer's leading bytes.
const UnknownContentType = "unknown"

// Sniff runs best-effort content-type detection on a decoded output
// buffer. It is purely informational: Stunts/4D Driving asset files
// decode to a mix of raw tables, images and 3D models, and knowing
// which is which is a convenience the original decompressor has no
// equivalent of. Sniff never fails the surrounding operation; on no
// match it returns UnknownContentType.
func Sniff(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return UnknownContentType
	}
	return kind.Extension
}
