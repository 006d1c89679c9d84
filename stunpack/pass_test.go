package stunpack

import (
	. "gopkg.in/check.v1"
)

type PassSuite struct{}

var _ = Suite(&PassSuite{})

func (s *PassSuite) TestSinglePassNoSkipForm(c *C) {
	// S1, reconstructed as a complete single-pass container: tag byte's
	// high bit is clear, so pass_count=1 and the tag byte itself is not
	// preceded by a skip.
	input := []byte{
		0x01, 0x03, 0x00, 0x00, // tag=RLE, sub_file_size=3
		0x00, 0x00, 0x00, 0x00, // reserved
		0x80,             // escape_length: no escapes, no sequence-run
		0x00, 0x00, 0x00, // three literal zero bytes
	}

	out, err := Decompress(input)
	c.Assert(err, IsNil)
	c.Check(out, DeepEquals, []byte{0x00, 0x00, 0x00})
}

func (s *PassSuite) TestMultiPassHeaderForm(c *C) {
	// Container header with bit 7 set selects the multi-pass form even
	// when pass_count happens to be 1.
	input := []byte{
		0x81, 0xAA, 0xBB, 0xCC, // container header: pass_count=1, reserved
		0x01, 0x02, 0x00, 0x00, // tag=RLE, sub_file_size=2
		0x00, 0x00, 0x00, 0x00,
		0x80,
		0x11, 0x22,
	}

	out, err := Decompress(input)
	c.Assert(err, IsNil)
	c.Check(out, DeepEquals, []byte{0x11, 0x22})
}

func (s *PassSuite) TestVLEPass(c *C) {
	input := []byte{
		0x02, 0x04, 0x00, 0x00, // tag=VLE, sub_file_size=4
		0x81,       // widths_lengths
		0x02,       // width-1 count
		0x41, 0x42, // alphabet A, B
		0x40, 0x00, // bitstream
	}

	out, err := Decompress(input)
	c.Assert(err, IsNil)
	c.Check(out, DeepEquals, []byte{'A', 'B', 'A', 'A'})
}

func (s *PassSuite) TestPassChaining(c *C) {
	// S5: two chained passes; pass 1 (RLE) expands to 16 bytes that are
	// themselves a valid VLE container producing 32 output bytes.
	vleContainer := []byte{
		0x02, 0x20, 0x00, 0x00, // tag=VLE, sub_file_size=32
		0x81,
		0x02,
		0x41, 0x42,
		0x40, 0x00,
	}
	c.Assert(len(vleContainer), Equals, 10)

	const intermediateSize = 16
	pad := intermediateSize - len(vleContainer)

	input := []byte{0x82, 0x00, 0x00, 0x00} // container header: pass_count=2
	input = append(input,
		0x01,
		intermediateSize, 0x00, 0x00, // RLE pass: sub_file_size=16
		0x00, 0x00, 0x00, 0x00,
		0x80, // no escapes, literal pass-through
	)
	input = append(input, vleContainer...)
	for i := 0; i < pad; i++ {
		input = append(input, 0x00)
	}

	out, err := Decompress(input)
	c.Assert(err, IsNil)
	c.Check(len(out), Equals, 32)
	c.Check(out[:4], DeepEquals, []byte{'A', 'B', 'A', 'A'})
}

func (s *PassSuite) TestUnknownAlgorithmTag(c *C) {
	input := []byte{0x03, 0x01, 0x00, 0x00, 0x00}
	_, err := Decompress(input)
	c.Assert(err, NotNil)
	se, ok := AsError(err)
	c.Assert(ok, Equals, true)
	c.Check(se.Kind, Equals, BadAlgorithmTag)
}

func (s *PassSuite) TestInputTooLarge(c *C) {
	input := make([]byte, MaxInputSize+1)
	_, err := Decompress(input)
	c.Assert(err, NotNil)
	se, ok := AsError(err)
	c.Assert(ok, Equals, true)
	c.Check(se.Kind, Equals, InputTooLarge)
}

func (s *PassSuite) TestUnderflowRejectedWithNoPartialOutput(c *C) {
	// S6: declared size far exceeds available literal bytes.
	input := []byte{
		0x01, 0xE8, 0x03, 0x00, // tag=RLE, sub_file_size=1000
		0x00, 0x00, 0x00, 0x00,
		0x80,
		0x01, 0x02, 0x03,
	}

	out, err := Decompress(input)
	c.Assert(err, NotNil)
	c.Check(out, IsNil)
	se, ok := AsError(err)
	c.Assert(ok, Equals, true)
	c.Check(se.Kind, Equals, UnderflowOutput)
}

func (s *PassSuite) TestInspectReportsFirstPassHeader(c *C) {
	input := []byte{
		0x01, 0x03, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x80,
		0x00, 0x00, 0x00,
	}

	info, err := Inspect(input)
	c.Assert(err, IsNil)
	c.Check(info.PassCount, Equals, 1)
	c.Assert(info.Passes, HasLen, 1)
	c.Check(info.Passes[0].Algorithm, Equals, byte(0x01))
	c.Check(info.Passes[0].SubFileSize, Equals, 3)
}

func (s *PassSuite) TestInspectMultiPassReportsDeclaredCount(c *C) {
	input := []byte{
		0x82, 0x00, 0x00, 0x00, // container header: pass_count=2
		0x01, 0x10, 0x00, 0x00, // first pass header
	}

	info, err := Inspect(input)
	c.Assert(err, IsNil)
	c.Check(info.PassCount, Equals, 2)
	c.Assert(info.Passes, HasLen, 1)
	c.Check(info.Passes[0].HeaderOffset, Equals, 4)
}

func (s *PassSuite) TestZeroPassContainerRejected(c *C) {
	input := []byte{0x80, 0x00, 0x00, 0x00}
	_, err := Decompress(input)
	c.Assert(err, NotNil)
	se, ok := AsError(err)
	c.Assert(ok, Equals, true)
	c.Check(se.Kind, Equals, Truncated)
}

func (s *PassSuite) TestInspectRejectsBadTag(c *C) {
	input := []byte{0x09, 0x01, 0x00, 0x00}
	_, err := Inspect(input)
	c.Assert(err, NotNil)
	se, ok := AsError(err)
	c.Assert(ok, Equals, true)
	c.Check(se.Kind, Equals, BadAlgorithmTag)
}
