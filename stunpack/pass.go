package stunpack

// MaxInputSize is the largest compressed container the format can
// address: sub_file_size and related length fields are 24-bit.
const MaxInputSize = 0xFFFFFF

const (
	algorithmRLE = 0x01
	algorithmVLE = 0x02
)

// PassInfo describes one decoded pass, returned by Inspect for the
// header-only inspection surface.
type PassInfo struct {
	Algorithm    byte
	SubFileSize  int
	HeaderOffset int
}

// ContainerInfo is Inspect's view of a container: the declared pass
// count and the per-pass headers that are locatable without decoding.
type ContainerInfo struct {
	PassCount int
	Passes    []PassInfo
}

// Decompress runs the full pass chain over input and returns the final
// decompressed buffer. Every container and pass-level invariant in the
// format is enforced; any violation aborts the whole operation and
// returns an error wrapping a *Error (see AsError) that describes the
// first failure.
func Decompress(input []byte) ([]byte, error) {
	if len(input) > MaxInputSize {
		return nil, newErrorf(InputTooLarge, 0, "input is %d bytes, exceeds %d byte limit", len(input), MaxInputSize)
	}

	cur := NewCursor(input)
	passCount, err := readPassCount(cur)
	if err != nil {
		return nil, err
	}

	var result []byte
	for p := 0; p < passCount; p++ {
		tag, subFileSize, err := readPassHeader(cur)
		if err != nil {
			return nil, err
		}

		out, err := NewOutput(subFileSize)
		if err != nil {
			return nil, err
		}

		switch tag {
		case algorithmRLE:
			err = rleDecompress(cur, out)
		case algorithmVLE:
			err = vleDecompress(cur, out)
		default:
			err = newErrorf(BadAlgorithmTag, cur.Pos()-4, "unknown algorithm tag 0x%02x", tag)
		}
		if err != nil {
			return nil, err
		}

		result = out.Bytes()
		if p < passCount-1 {
			cur = NewCursor(result)
		}
	}

	return result, nil
}

// readPassCount returns the number of chained passes. In the multi-pass
// form (bit 7 set) it consumes the header byte and its 3 reserved bytes;
// otherwise it consumes nothing, since that byte is the sole pass's
// algorithm tag.
func readPassCount(cur *Cursor) (int, error) {
	b0, err := cur.PeekByte()
	if err != nil {
		return 0, err
	}

	if b0&0x80 != 0 {
		if _, err := cur.ReadByte(); err != nil {
			return 0, err
		}
		if err := cur.Skip(3); err != nil {
			return 0, err
		}
		count := int(b0 & 0x7F)
		if count == 0 {
			return 0, newError(Truncated, 0, "container declares zero passes")
		}
		return count, nil
	}

	return 1, nil
}

// readPassHeader consumes one per-pass header: a 1-byte algorithm tag
// followed by a 3-byte little-endian sub_file_size.
func readPassHeader(cur *Cursor) (byte, int, error) {
	tag, err := cur.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	subFileSize, err := cur.ReadUint24LE()
	if err != nil {
		return 0, 0, err
	}
	return tag, subFileSize, nil
}

// Inspect parses only the container and per-pass headers of input,
// without running either decoder, and reports the pass chain's shape.
// It is used by the inspect command to describe a container cheaply.
// For multi-pass containers only the first pass's header is reported:
// later headers live inside the not-yet-decoded intermediate buffers.
func Inspect(input []byte) (*ContainerInfo, error) {
	if len(input) > MaxInputSize {
		return nil, newErrorf(InputTooLarge, 0, "input is %d bytes, exceeds %d byte limit", len(input), MaxInputSize)
	}

	cur := NewCursor(input)
	passCount, err := readPassCount(cur)
	if err != nil {
		return nil, err
	}

	info := &ContainerInfo{PassCount: passCount}

	headerOffset := cur.Pos()
	tag, subFileSize, err := readPassHeader(cur)
	if err != nil {
		return nil, err
	}
	info.Passes = append(info.Passes, PassInfo{Algorithm: tag, SubFileSize: subFileSize, HeaderOffset: headerOffset})

	if tag != algorithmRLE && tag != algorithmVLE {
		return info, newErrorf(BadAlgorithmTag, headerOffset, "unknown algorithm tag 0x%02x", tag)
	}

	return info, nil
}
