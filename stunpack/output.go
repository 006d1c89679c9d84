package stunpack

// Output is an owned, pre-sized write buffer. Its target length is known
// before the first write; writes are strictly sequential and never occur
// during a read of the same pass's data.
type Output struct {
	data []byte
	pos  int
}

// NewOutput allocates an output buffer of exactly target bytes.
func NewOutput(target int) (*Output, error) {
	if target < 0 {
		return nil, newError(AllocationFailed, 0, "negative output size")
	}
	data := make([]byte, target)
	if target > 0 && data == nil {
		return nil, newError(AllocationFailed, 0, "could not allocate output buffer")
	}
	return &Output{data: data}, nil
}

// Len returns the target length of the buffer.
func (o *Output) Len() int {
	return len(o.data)
}

// Pos returns the current write cursor.
func (o *Output) Pos() int {
	return o.pos
}

// Full reports whether the write cursor has reached the target length.
func (o *Output) Full() bool {
	return o.pos >= len(o.data)
}

// Bytes returns the filled portion of the buffer, up to the write cursor.
func (o *Output) Bytes() []byte {
	return o.data[:o.pos]
}

// WriteByte appends a single byte, failing if that would write past the
// declared target length.
func (o *Output) WriteByte(b byte) error {
	if o.pos >= len(o.data) {
		return newError(OverflowOutput, o.pos, "write past declared output length")
	}
	o.data[o.pos] = b
	o.pos++
	return nil
}

// WriteRun appends n copies of b, failing if that would overflow the
// target length. n == 0 is a valid no-op.
func (o *Output) WriteRun(b byte, n int) error {
	if n < 0 || o.pos+n > len(o.data) {
		return newError(OverflowOutput, o.pos, "run write past declared output length")
	}
	for i := 0; i < n; i++ {
		o.data[o.pos+i] = b
	}
	o.pos += n
	return nil
}

// WriteBytes appends a slice of bytes verbatim, failing on overflow.
func (o *Output) WriteBytes(b []byte) error {
	if o.pos+len(b) > len(o.data) {
		return newError(OverflowOutput, o.pos, "write past declared output length")
	}
	copy(o.data[o.pos:], b)
	o.pos += len(b)
	return nil
}
