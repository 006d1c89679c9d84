package stunpack

// maxVLEWidths is the largest widths_lengths low-7-bit value the format
// permits (deep escape widths up to 15 bits).
const maxVLEWidths = 15

// directLookupWidths is how many of the leading code widths participate
// in the direct 8-bit lookup table; widths beyond this are resolved only
// through the escape loop.
const directLookupWidths = 8

// vleEscapeWidth is the sentinel stored in widths[] meaning "this 8-bit
// prefix is not a complete code; enter the bit-by-bit escape loop".
const vleEscapeWidth = 0x40

// vleEscapeTableLen is the size of the escape base/limit tables. The
// escape loop indexes them up to 15 before its runaway check fires, so
// the tables are one entry longer than the deepest declarable width;
// entries past numWidths stay zero and can never match.
const vleEscapeTableLen = 16

// vleTables holds the canonical code tables reconstructed from one VLE
// pass header.
type vleTables struct {
	escapeBase  [vleEscapeTableLen]int
	escapeLimit [vleEscapeTableLen]int
	numWidths   int
	alphabet    []byte
	symbols     [256]byte
	widths      [256]int
}

// vleDecompress runs one VLE pass: it reconstructs the canonical code
// tables from the header, then runs the bit-stream decoder into output.
func vleDecompress(in *Cursor, out *Output) error {
	widthsLengths, err := in.ReadByte()
	if err != nil {
		return err
	}
	if widthsLengths&0x80 == 0 || int(widthsLengths&0x7F) > maxVLEWidths {
		return newErrorf(BadVLEHeader, in.Pos(), "invalid widths_lengths byte 0x%02x", widthsLengths)
	}

	var tbl vleTables
	tbl.numWidths = int(widthsLengths & 0x7F)
	widthsOffset := in.Pos()

	counts, err := in.ReadN(tbl.numWidths)
	if err != nil {
		return err
	}

	alphabetLength := 0
	widthSum := 0
	for i := 0; i < tbl.numWidths; i++ {
		widthSum *= 2
		tbl.escapeBase[i] = alphabetLength - widthSum
		c := int(counts[i])
		widthSum += c
		alphabetLength += c
		tbl.escapeLimit[i] = widthSum
	}
	if alphabetLength > 256 {
		return newErrorf(BadVLEHeader, in.Pos(), "alphabet length %d exceeds 256", alphabetLength)
	}

	alphabet, err := in.ReadN(alphabetLength)
	if err != nil {
		return err
	}
	tbl.alphabet = alphabet

	codesOffset := in.Pos()
	in.Seek(widthsOffset)

	if err := tbl.buildDirectLookup(counts); err != nil {
		return err
	}

	in.Seek(codesOffset)
	return vleBitstreamDecode(in, out, &tbl)
}

// buildDirectLookup fills symbols[]/widths[] for the first
// directLookupWidths code widths, and marks everything else as needing
// the escape loop.
func (tbl *vleTables) buildDirectLookup(counts []byte) error {
	d := tbl.numWidths
	if d > directLookupWidths {
		d = directLookupWidths
	}

	alphaIdx := 0
	symbolsPerWidth := 128
	placed := 0
	for w := 1; w <= d; w++ {
		c := int(counts[w-1])
		for i := 0; i < c; i++ {
			if alphaIdx >= len(tbl.alphabet) {
				return newErrorf(BadVLEHeader, 0, "alphabet exhausted while building width-%d lookup", w)
			}
			if placed+symbolsPerWidth > 256 {
				return newErrorf(BadVLEHeader, 0, "width distribution overfills the direct lookup table at width %d", w)
			}
			sym := tbl.alphabet[alphaIdx]
			alphaIdx++
			for j := 0; j < symbolsPerWidth; j++ {
				tbl.symbols[placed] = sym
				tbl.widths[placed] = w
				placed++
			}
		}
		symbolsPerWidth >>= 1
	}

	for i := placed; i < 256; i++ {
		tbl.widths[i] = vleEscapeWidth
	}
	return nil
}

// vleBitstreamDecode implements the 16-bit shift-window decoder with its
// escape loop for codes wider than directLookupWidths bits.
func vleBitstreamDecode(in *Cursor, out *Output, tbl *vleTables) error {
	b01, err := in.ReadN(2)
	if err != nil {
		return err
	}
	word := int(b01[0])<<8 | int(b01[1])
	bitsLeft := 8

	for !out.Full() {
		prefix := (word >> 8) & 0xFF
		w := tbl.widths[prefix]

		if w != vleEscapeWidth {
			if err := out.WriteByte(tbl.symbols[prefix]); err != nil {
				return err
			}

			if bitsLeft < w {
				word = (word << bitsLeft) & 0xFFFF
				w -= bitsLeft
				bitsLeft = 8
				nb, err := in.ReadByte()
				if err != nil {
					if !out.Full() {
						return newError(UnderflowOutput, in.Pos(), "input exhausted mid code")
					}
					nb = 0
				}
				word |= int(nb)
			}
			word = (word << w) & 0xFFFF
			bitsLeft -= w
			continue
		}

		currentSymbol := word & 0xFF
		word = (word >> 8) & 0xFFFF
		escIndex := 7

		for {
			if bitsLeft == 0 {
				nb, err := in.ReadByte()
				if err != nil {
					return newError(Truncated, in.Pos(), "input exhausted in VLE escape loop")
				}
				currentSymbol = int(nb)
				bitsLeft = 8
			}

			word = ((word << 1) | ((currentSymbol >> 7) & 1)) & 0xFFFF
			currentSymbol = (currentSymbol << 1) & 0xFF
			bitsLeft--
			escIndex++

			if escIndex >= 16 {
				return newError(BadVLECode, in.Pos(), "VLE escape index reached 16 without resolving a code")
			}

			if word < tbl.escapeLimit[escIndex] {
				idx := (word + tbl.escapeBase[escIndex]) & 0xFFFF
				if idx > 255 || idx >= len(tbl.alphabet) {
					return newErrorf(BadVLECode, in.Pos(), "decoded alphabet index %d out of range", idx)
				}
				if err := out.WriteByte(tbl.alphabet[idx]); err != nil {
					return err
				}
				break
			}
		}

		// Reload the window and consume the 8-bitsLeft bits the escape
		// loop already pulled out of it; bitsLeft ends where it started.
		nb, err := in.ReadByte()
		if err != nil {
			if !out.Full() {
				return newError(UnderflowOutput, in.Pos(), "input exhausted after VLE escape loop")
			}
			nb = 0
		}
		word = ((currentSymbol << bitsLeft) | int(nb)) & 0xFFFF
		w = 8 - bitsLeft
		bitsLeft = 8
		word = (word << w) & 0xFFFF
		bitsLeft -= w
	}

	return nil
}
