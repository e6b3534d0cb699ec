package apng

import (
	"bytes"
	"fmt"
	"io"
)

// Chunk is one length-prefixed, checksummed PNG record.  Data returned by
// ParseChunks aliases the parsed buffer and must not be modified.
type Chunk struct {
	Type string
	Data []byte
}

// WriteTo frames the chunk and writes it to the io.Writer.  This supports the
// io.WriterTo interface.
func (c Chunk) WriteTo(w io.Writer) (int64, error) {
	return writeChunkTo(c.Type, c.Data, w)
}

// BuildChunk returns the wire form of a chunk: length, type, payload and the
// CRC-32 of type and payload.
func BuildChunk(name string, data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, sizeOfChunkHeader+len(data)+sizeOfChunkFooter))
	if _, err := writeChunkTo(name, data, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeChunkTo(name string, b []byte, w io.Writer) (int64, error) {
	if len(name) != 4 {
		return 0, EncodingError(fmt.Sprintf("chunk type %q is not 4 bytes", name))
	}
	if err := checkLength(name, len(b)); err != nil {
		return 0, err
	}

	header := [sizeOfChunkHeader]byte{}
	footer := [sizeOfChunkFooter]byte{}

	writeUint32(header[:4], uint32(len(b)))
	copy(header[4:8], name)
	writeUint32(footer[:4], Checksum(header[4:8], b))

	hl, err := w.Write(header[:8])
	if err != nil {
		return int64(hl), err
	}
	bl, err := w.Write(b)
	if err != nil {
		return int64(hl + bl), err
	}
	fl, err := w.Write(footer[:4])
	return int64(hl + bl + fl), err
}

// ParseChunks splits a PNG file into its chunks, in file order.  b must start
// with PngHeader.  Parsing stops after the IEND chunk or at the end of b,
// whichever comes first.  Any stored CRC that does not match the recomputed
// one is reported as a FormatError.
func ParseChunks(b []byte) ([]Chunk, error) {
	if len(b) < len(PngHeader) || string(b[:len(PngHeader)]) != PngHeader {
		return nil, FormatError("not a PNG file")
	}

	var chunks []Chunk
	off := len(PngHeader)
	for off < len(b) {
		c, n, err := parseChunk(b, off)
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, c)
		off += n
		if c.Type == "IEND" {
			break
		}
	}
	return chunks, nil
}

// parseChunk reads the chunk starting at off and returns it along with the
// number of bytes consumed.
func parseChunk(b []byte, off int) (Chunk, int, error) {
	if len(b)-off < sizeOfChunkHeader {
		return Chunk{}, 0, FormatError(fmt.Sprintf("truncated chunk header at offset %d", off))
	}
	length, _ := readUint32(b, off)
	name := b[off+4 : off+8]

	// Compare in uint64 so a huge length cannot wrap.
	total := uint64(sizeOfChunkHeader) + uint64(length) + uint64(sizeOfChunkFooter)
	if total > uint64(len(b)-off) {
		return Chunk{}, 0, FormatError(fmt.Sprintf("%s chunk at offset %d declares %d bytes past end of data", name, off, length))
	}

	start := off + sizeOfChunkHeader
	end := start + int(length)
	data := b[start:end:end]
	stored, _ := readUint32(b, end)
	if got := Checksum(name, data); got != stored {
		return Chunk{}, 0, FormatError(fmt.Sprintf("%s chunk at offset %d has checksum %08x, want %08x", name, off, stored, got))
	}
	return Chunk{Type: string(name), Data: data}, int(total), nil
}
