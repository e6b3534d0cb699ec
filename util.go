// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apng

import "math"

const PngHeader = "\x89PNG\r\n\x1a\n"

// MaxChunkLength is the largest payload a chunk length field can describe.
const MaxChunkLength = math.MaxUint32

const (
	sizeOfUint16 = 2
	sizeOfUint32 = 4

	// length + type before the payload, crc after it.
	sizeOfChunkHeader = sizeOfUint32 * 2
	sizeOfChunkFooter = sizeOfUint32
)

// Big-endian.
func writeUint16(b []uint8, u uint16) {
	b[0] = uint8(u >> 8)
	b[1] = uint8(u >> 0)
}

// Big-endian.
func writeUint32(b []uint8, u uint32) {
	b[0] = uint8(u >> 24)
	b[1] = uint8(u >> 16)
	b[2] = uint8(u >> 8)
	b[3] = uint8(u >> 0)
}

// readUint16 reads a big-endian uint16 at off, failing instead of panicking
// when the buffer is too short.
func readUint16(b []byte, off int) (uint16, error) {
	if off < 0 || len(b)-off < sizeOfUint16 {
		return 0, FormatError("short read of uint16")
	}
	return uint16(b[off])<<8 | uint16(b[off+1]), nil
}

// readUint32 reads a big-endian uint32 at off.
func readUint32(b []byte, off int) (uint32, error) {
	if off < 0 || len(b)-off < sizeOfUint32 {
		return 0, FormatError("short read of uint32")
	}
	return uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3]), nil
}

// checkLength reports whether n bytes fit in a chunk length field.
func checkLength(name string, n int) error {
	if n < 0 || uint64(n) > MaxChunkLength {
		return EncodingError(name + " chunk is too large")
	}
	return nil
}
