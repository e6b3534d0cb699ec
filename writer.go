// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apng

import (
	"fmt"
	"io"
)

// ColorType is the type of color of the image, per the PNG spec.
type ColorType uint8

const sizeOfColorType = 1

const (
	ColorType_Grayscale      = ColorType(0)
	ColorType_TrueColor      = ColorType(2)
	ColorType_Paletted       = ColorType(3)
	ColorType_GrayscaleAlpha = ColorType(4)
	ColorType_TrueColorAlpha = ColorType(6)
)

func (c ColorType) String() string {
	switch c {
	case ColorType_Grayscale:
		return "grayscale"
	case ColorType_TrueColor:
		return "truecolor"
	case ColorType_Paletted:
		return "paletted"
	case ColorType_GrayscaleAlpha:
		return "grayscale+alpha"
	case ColorType_TrueColorAlpha:
		return "truecolor+alpha"
	}
	return fmt.Sprintf("ColorType(%d)", uint8(c))
}

// BitDepth is the bit depth of the image, as per the PNG spec.
type BitDepth uint8

const sizeOfBitDepth = 1

const (
	BitDepth_1  = BitDepth(1)
	BitDepth_2  = BitDepth(2)
	BitDepth_4  = BitDepth(4)
	BitDepth_8  = BitDepth(8)
	BitDepth_16 = BitDepth(16)
)

// CompressionMethod is the compression method, as per the PNG spec.
type CompressionMethod uint8

const sizeOfCompressionMethod = 1

// FilterMethod is the filter method, as per the PNG spec.
type FilterMethod uint8

const sizeOfFilterMethod = 1

// InterlaceMethod is the interlace method, as per the PNG spec.
type InterlaceMethod uint8

const sizeOfInterlaceMethod = 1

const sizeOfIHDR = sizeOfUint32*2 + sizeOfBitDepth + sizeOfColorType + sizeOfCompressionMethod + sizeOfFilterMethod + sizeOfInterlaceMethod

// Chunk_IHDR is the image header chunk, as per the PNG spec.
type Chunk_IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          BitDepth
	ColorType         ColorType
	CompressionMethod CompressionMethod
	FilterMethod      FilterMethod
	InterlaceMethod   InterlaceMethod
}

// ParseChunk_IHDR decodes an IHDR payload.  Only the dimensions are
// required; the single-byte fields are read when present.
func ParseChunk_IHDR(b []byte) (*Chunk_IHDR, error) {
	w, err := readUint32(b, 0)
	if err != nil {
		return nil, FormatError("IHDR too short for width")
	}
	h, err := readUint32(b, 4)
	if err != nil {
		return nil, FormatError("IHDR too short for height")
	}
	c := &Chunk_IHDR{Width: w, Height: h}
	if len(b) >= sizeOfIHDR {
		c.BitDepth = BitDepth(b[8])
		c.ColorType = ColorType(b[9])
		c.CompressionMethod = CompressionMethod(b[10])
		c.FilterMethod = FilterMethod(b[11])
		c.InterlaceMethod = InterlaceMethod(b[12])
	}
	return c, nil
}

// Chunk returns the IHDR chunk.
func (c *Chunk_IHDR) Chunk() Chunk {
	buf := make([]byte, sizeOfIHDR)
	writeUint32(buf[0:4], c.Width)
	writeUint32(buf[4:8], c.Height)
	buf[8] = byte(c.BitDepth)
	buf[9] = byte(c.ColorType)
	buf[10] = byte(c.CompressionMethod)
	buf[11] = byte(c.FilterMethod)
	buf[12] = byte(c.InterlaceMethod)
	return Chunk{Type: "IHDR", Data: buf}
}

// WriteTo encodes the IHDR chunk to the io.Writer.  This supports the
// io.WriterTo interface.
func (c *Chunk_IHDR) WriteTo(w io.Writer) (int64, error) {
	return c.Chunk().WriteTo(w)
}

// Chunk_IEND is the ending chunk, as per the PNG spec.  Write this after all other chunks.
type Chunk_IEND struct{}

// WriteTo encodes the ending chunk to the io.Writer.  This supports the
// io.WriterTo interface.
func (c *Chunk_IEND) WriteTo(w io.Writer) (int64, error) {
	return writeChunkTo("IEND", nil, w)
}

// Chunk_acTL is the animation control chunk, as per the APNG spec.  Write this
// before any image data.
type Chunk_acTL struct {
	NumFrames uint32 // Number of frames
	NumPlays  uint32 // Number of times to loop this APNG. 0 indicates infinite looping.
}

const sizeOfacTL = sizeOfUint32 * 2

// ParseChunk_acTL decodes an acTL payload.
func ParseChunk_acTL(b []byte) (*Chunk_acTL, error) {
	if len(b) != sizeOfacTL {
		return nil, FormatError(fmt.Sprintf("acTL has %d bytes, want %d", len(b), sizeOfacTL))
	}
	c := &Chunk_acTL{}
	c.NumFrames, _ = readUint32(b, 0)
	c.NumPlays, _ = readUint32(b, 4)
	return c, nil
}

// Chunk returns the animation control chunk.
func (c *Chunk_acTL) Chunk() Chunk {
	buf := make([]byte, sizeOfacTL)
	writeUint32(buf[0:4], c.NumFrames)
	writeUint32(buf[4:8], c.NumPlays)
	return Chunk{Type: "acTL", Data: buf}
}

// WriteTo encodes the animation control chunk to the io.Writer.  This supports
// the io.WriterTo interface.
func (c *Chunk_acTL) WriteTo(w io.Writer) (int64, error) {
	return c.Chunk().WriteTo(w)
}

// DisposeOp is the dispose operator, as per the APNG spec.
type DisposeOp uint8

const sizeOfDisposeOp = 1

const (
	DisposeOp_None       = DisposeOp(0)
	DisposeOp_Background = DisposeOp(1)
	DisposeOp_Previous   = DisposeOp(2)
)

// BlendOp is the blend operator, as per the APNG spec.
type BlendOp uint8

const sizeOfBlendOp = 1

const (
	BlendOp_Source = BlendOp(0)
	BlendOp_Over   = BlendOp(1)
)

// DelayDen_Milliseconds makes DelayNum a count of milliseconds.
const DelayDen_Milliseconds = 1000

// Chunk_fcTL is the frame control chunk, as per the APNG spec.
type Chunk_fcTL struct {
	SequenceNumber uint32    // Sequence number of the animation chunk, starting from 0
	Width          uint32    // Width of the following frame
	Height         uint32    // Height of the following frame
	XOffset        uint32    // X position at which to render the following frame
	YOffset        uint32    // Y position at which to render the following frame
	DelayNum       uint16    // Frame delay fraction numerator
	DelayDen       uint16    // Frame delay fraction denominator
	DisposeOp      DisposeOp // Type of frame area disposal to be done after rendering this frame
	BlendOp        BlendOp   // Type of frame area rendering for this frame
}

const sizeOffcTL = sizeOfUint32*5 + sizeOfUint16*2 + sizeOfDisposeOp + sizeOfBlendOp

// ParseChunk_fcTL decodes an fcTL payload.
func ParseChunk_fcTL(b []byte) (*Chunk_fcTL, error) {
	if len(b) != sizeOffcTL {
		return nil, FormatError(fmt.Sprintf("fcTL has %d bytes, want %d", len(b), sizeOffcTL))
	}
	c := &Chunk_fcTL{}
	c.SequenceNumber, _ = readUint32(b, 0)
	c.Width, _ = readUint32(b, 4)
	c.Height, _ = readUint32(b, 8)
	c.XOffset, _ = readUint32(b, 12)
	c.YOffset, _ = readUint32(b, 16)
	c.DelayNum, _ = readUint16(b, 20)
	c.DelayDen, _ = readUint16(b, 22)
	c.DisposeOp = DisposeOp(b[24])
	c.BlendOp = BlendOp(b[25])
	return c, nil
}

// Chunk returns the frame control chunk.
func (c *Chunk_fcTL) Chunk() Chunk {
	buf := make([]byte, sizeOffcTL)
	writeUint32(buf[0:4], c.SequenceNumber)
	writeUint32(buf[4:8], c.Width)
	writeUint32(buf[8:12], c.Height)
	writeUint32(buf[12:16], c.XOffset)
	writeUint32(buf[16:20], c.YOffset)
	writeUint16(buf[20:22], c.DelayNum)
	writeUint16(buf[22:24], c.DelayDen)
	buf[24] = byte(c.DisposeOp)
	buf[25] = byte(c.BlendOp)
	return Chunk{Type: "fcTL", Data: buf}
}

// WriteTo encodes the frame control chunk to the io.Writer.  This supports the
// io.WriterTo interface.
func (c *Chunk_fcTL) WriteTo(w io.Writer) (int64, error) {
	return c.Chunk().WriteTo(w)
}

// SequenceNumbers is used to track sequence numbers across all frames and
// chunks; use this with Chunk_fcTL and Chunk_fdAT.
type SequenceNumbers uint32

func NewSequenceNumbers() *SequenceNumbers {
	return new(SequenceNumbers)
}

// Next returns the current sequence number and advances the counter.
func (s *SequenceNumbers) Next() uint32 {
	tmp := uint32(*s)
	*s++
	return tmp
}

// Chunk_IDAT is one image data chunk, as per the PNG spec.
type Chunk_IDAT []byte

// WriteTo encodes the image data chunk to the io.Writer.  This supports the
// io.WriterTo interface.
func (c Chunk_IDAT) WriteTo(w io.Writer) (int64, error) {
	return writeChunkTo("IDAT", c, w)
}

// Chunk_fdAT is the frame data chunk, as per the APNG spec.
type Chunk_fdAT struct {
	SequenceNumber uint32
	Chunk_IDAT     Chunk_IDAT
}

// ParseChunk_fdAT decodes an fdAT payload.  The returned Chunk_IDAT aliases b.
func ParseChunk_fdAT(b []byte) (*Chunk_fdAT, error) {
	seq, err := readUint32(b, 0)
	if err != nil {
		return nil, FormatError("fdAT too short for sequence number")
	}
	return &Chunk_fdAT{SequenceNumber: seq, Chunk_IDAT: Chunk_IDAT(b[sizeOfUint32:])}, nil
}

// Chunk returns the frame data chunk.  It fails with an EncodingError when the
// sequence number pushes the payload past the length limit.
func (c *Chunk_fdAT) Chunk() (Chunk, error) {
	if err := checkLength("fdAT", sizeOfUint32+len(c.Chunk_IDAT)); err != nil {
		return Chunk{}, err
	}
	buf := make([]byte, sizeOfUint32+len(c.Chunk_IDAT))
	writeUint32(buf[0:4], c.SequenceNumber)
	copy(buf[4:], c.Chunk_IDAT)
	return Chunk{Type: "fdAT", Data: buf}, nil
}

// WriteTo encodes the frame data chunk to the io.Writer.  This supports the
// io.WriterTo interface.
func (c *Chunk_fdAT) WriteTo(w io.Writer) (int64, error) {
	chunk, err := c.Chunk()
	if err != nil {
		return 0, err
	}
	return chunk.WriteTo(w)
}
