package stunpack

// maxRLEEscapeCodes is the largest escape_length low-7-bit value the
// format permits.
const maxRLEEscapeCodes = 10

// rleState holds the escape lookup table and bracket byte shared by the
// single-byte-run and sequence-run phases of one RLE pass.
type rleState struct {
	escapeLookup [256]int
	escapeCodes  []byte
	bracket      byte
	hasSequence  bool
}

// rleDecompress runs one RLE pass: it parses the escape table, optionally
// runs the sequence-run pre-pass into an intermediate buffer, and finally
// runs the single-byte-run phase into output.
func rleDecompress(in *Cursor, out *Output) error {
	if err := in.Skip(4); err != nil {
		return err
	}

	escLenByte, err := in.ReadByte()
	if err != nil {
		return err
	}

	st := rleState{hasSequence: escLenByte&0x80 == 0}
	count := int(escLenByte & 0x7F)
	if count > maxRLEEscapeCodes {
		return newErrorf(BadRLEEscapeTable, in.Pos(), "escape count %d exceeds maximum of %d", count, maxRLEEscapeCodes)
	}

	codes, err := in.ReadN(count)
	if err != nil {
		return err
	}
	st.escapeCodes = codes
	for i, e := range codes {
		st.escapeLookup[e] = i + 1
	}

	if st.hasSequence {
		if count < 2 {
			return newErrorf(BadRLEEscapeTable, in.Pos(), "sequence-run phase enabled with only %d escape code(s)", count)
		}
		st.bracket = codes[1]

		intermediate, err := NewOutput(out.Len())
		if err != nil {
			return err
		}
		if err := sequenceRunDecode(in, intermediate, st.bracket); err != nil {
			return err
		}

		seqIn := NewCursor(intermediate.Bytes())
		return singleByteRunDecode(seqIn, out, &st)
	}

	return singleByteRunDecode(in, out, &st)
}

// singleByteRunDecode implements the core RLE phase: a literal byte, or a
// run whose length/value encoding depends on the escape table index.
func singleByteRunDecode(in *Cursor, out *Output, st *rleState) error {
	for !out.Full() {
		b, err := in.ReadByte()
		if err != nil {
			return newError(UnderflowOutput, in.Pos(), "input exhausted before output filled")
		}

		// A nonzero lookup entry dispatches on the run form; zero means
		// the byte is a literal.
		k := st.escapeLookup[b]
		switch k {
		case 0:
			if err := out.WriteByte(b); err != nil {
				return err
			}
		case 1:
			length, err := in.ReadByte()
			if err != nil {
				return err
			}
			value, err := in.ReadByte()
			if err != nil {
				return err
			}
			if err := out.WriteRun(value, int(length)); err != nil {
				return err
			}
		case 3:
			length, err := in.ReadUint16LE()
			if err != nil {
				return err
			}
			value, err := in.ReadByte()
			if err != nil {
				return err
			}
			if err := out.WriteRun(value, length); err != nil {
				return err
			}
		default:
			value, err := in.ReadByte()
			if err != nil {
				return err
			}
			if err := out.WriteRun(value, k-1); err != nil {
				return err
			}
		}
	}
	return nil
}

// sequenceRunDecode implements the bracket-delimited repeated-sequence
// pre-pass, writing into an intermediate buffer that single-byte-run
// decoding then consumes as its input.
func sequenceRunDecode(in *Cursor, out *Output, bracket byte) error {
	for in.Remaining() > 0 {
		b, err := in.ReadByte()
		if err != nil {
			return err
		}

		if b != bracket {
			if err := out.WriteByte(b); err != nil {
				return err
			}
			continue
		}

		seqStart := in.Pos()
		for {
			nb, err := in.ReadByte()
			if err != nil {
				return newError(Truncated, in.Pos(), "sequence run missing closing bracket")
			}
			if nb == bracket {
				break
			}
			if err := out.WriteByte(nb); err != nil {
				return err
			}
		}

		rep, err := in.ReadByte()
		if err != nil {
			return err
		}

		seqLen := in.Pos() - seqStart - 2
		seq := out.Bytes()[out.Pos()-seqLen : out.Pos()]
		for i := 0; i < int(rep)-1; i++ {
			if err := out.WriteBytes(seq); err != nil {
				return err
			}
		}
	}
	return nil
}
