package stunpack

// Cursor is a read-only view over a compressed input buffer with a
// byte-aligned read position. It never mutates the underlying data and
// never advances past the buffer's end.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data for sequential reading starting at position 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the total number of bytes in the underlying buffer.
func (cur *Cursor) Len() int {
	return len(cur.data)
}

// Pos returns the current read position.
func (cur *Cursor) Pos() int {
	return cur.pos
}

// Remaining returns the number of unread bytes.
func (cur *Cursor) Remaining() int {
	return len(cur.data) - cur.pos
}

// Seek resets the read position to an arbitrary offset, used when a pass
// rewinds to re-read a header region it already consumed.
func (cur *Cursor) Seek(pos int) {
	cur.pos = pos
}

// ReadByte consumes and returns the next byte.
func (cur *Cursor) ReadByte() (byte, error) {
	if cur.pos >= len(cur.data) {
		return 0, newError(Truncated, cur.pos, "read past end of input")
	}
	b := cur.data[cur.pos]
	cur.pos++
	return b, nil
}

// PeekByte returns the next byte without advancing the read position.
func (cur *Cursor) PeekByte() (byte, error) {
	if cur.pos >= len(cur.data) {
		return 0, newError(Truncated, cur.pos, "read past end of input")
	}
	return cur.data[cur.pos], nil
}

// ReadN consumes and returns the next n bytes as a slice into the
// underlying buffer. The caller must not mutate the result.
func (cur *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 || cur.pos+n > len(cur.data) {
		return nil, newError(Truncated, cur.pos, "read past end of input")
	}
	b := cur.data[cur.pos : cur.pos+n]
	cur.pos += n
	return b, nil
}

// Skip advances the read position by n bytes without returning them,
// used for reserved/unused header fields.
func (cur *Cursor) Skip(n int) error {
	if n < 0 || cur.pos+n > len(cur.data) {
		return newError(Truncated, cur.pos, "skip past end of input")
	}
	cur.pos += n
	return nil
}

// ReadUint16LE reads two little-endian bytes as an unsigned 16-bit value.
func (cur *Cursor) ReadUint16LE() (int, error) {
	b, err := cur.ReadN(2)
	if err != nil {
		return 0, err
	}
	return int(b[0]) | int(b[1])<<8, nil
}

// ReadUint24LE reads three little-endian bytes as an unsigned 24-bit
// value, the width used by sub_file_size fields.
func (cur *Cursor) ReadUint24LE() (int, error) {
	b, err := cur.ReadN(3)
	if err != nil {
		return 0, err
	}
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16, nil
}
