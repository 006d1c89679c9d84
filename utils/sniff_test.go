package utils

import (
	. "gopkg.in/check.v1"
)

type SniffSuite struct{}

var _ = Suite(&SniffSuite{})

func (s *SniffSuite) TestSniffRecognizesPNG(c *C) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	c.Check(Sniff(png), Equals, "png")
}

func (s *SniffSuite) TestSniffRecognizesGIF(c *C) {
	gif := []byte("GIF89a\x00\x00\x00\x00")
	c.Check(Sniff(gif), Equals, "gif")
}

func (s *SniffSuite) TestSniffUnknownForRawTableBytes(c *C) {
	raw := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	c.Check(Sniff(raw), Equals, UnknownContentType)
}
