package stunpack

import (
	. "gopkg.in/check.v1"
)

type OutputSuite struct{}

var _ = Suite(&OutputSuite{})

func (s *OutputSuite) TestWriteByteAndFull(c *C) {
	out, err := NewOutput(2)
	c.Assert(err, IsNil)
	c.Check(out.Full(), Equals, false)

	c.Assert(out.WriteByte(0x01), IsNil)
	c.Assert(out.WriteByte(0x02), IsNil)
	c.Check(out.Full(), Equals, true)
	c.Check(out.Bytes(), DeepEquals, []byte{0x01, 0x02})

	err = out.WriteByte(0x03)
	c.Assert(err, NotNil)
	se, ok := AsError(err)
	c.Assert(ok, Equals, true)
	c.Check(se.Kind, Equals, OverflowOutput)
}

func (s *OutputSuite) TestWriteRun(c *C) {
	out, err := NewOutput(5)
	c.Assert(err, IsNil)

	c.Assert(out.WriteRun(0x42, 5), IsNil)
	c.Check(out.Bytes(), DeepEquals, []byte{0x42, 0x42, 0x42, 0x42, 0x42})
	c.Check(out.Full(), Equals, true)
}

func (s *OutputSuite) TestWriteRunZeroLength(c *C) {
	out, err := NewOutput(3)
	c.Assert(err, IsNil)

	c.Assert(out.WriteRun(0xFF, 0), IsNil)
	c.Check(out.Pos(), Equals, 0)
}

func (s *OutputSuite) TestWriteRunOverflow(c *C) {
	out, err := NewOutput(3)
	c.Assert(err, IsNil)

	err = out.WriteRun(0x01, 4)
	c.Assert(err, NotNil)
	se, ok := AsError(err)
	c.Assert(ok, Equals, true)
	c.Check(se.Kind, Equals, OverflowOutput)
}

func (s *OutputSuite) TestZeroLengthOutput(c *C) {
	out, err := NewOutput(0)
	c.Assert(err, IsNil)
	c.Check(out.Full(), Equals, true)
}
