package apng

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Animation summarizes the chunk layout of a PNG or APNG file.
type Animation struct {
	Header             *Chunk_IHDR
	Control            *Chunk_acTL // nil for a plain PNG
	Frames             []Frame
	DefaultImageChunks int      // number of IDAT chunks
	SequenceNumbers    []uint32 // fcTL and fdAT sequence numbers in file order
	Text               map[string]string
	Chunks             []string // chunk types in file order
}

// Frame is one fcTL chunk and the image data that follows it.
type Frame struct {
	Control    *Chunk_fcTL
	DataChunks int
	DataBytes  int
}

// Inspect parses b and describes its animation structure.  It does not look
// at pixel data.
func Inspect(b []byte) (*Animation, error) {
	chunks, err := ParseChunks(b)
	if err != nil {
		return nil, err
	}
	ihdr, err := findIHDR(chunks)
	if err != nil {
		return nil, err
	}

	a := &Animation{Header: ihdr, Text: map[string]string{}}
	var cur *Frame
	for _, c := range chunks {
		a.Chunks = append(a.Chunks, c.Type)
		switch c.Type {
		case "acTL":
			if a.Control != nil {
				return nil, FormatError("duplicate acTL chunk")
			}
			if a.Control, err = ParseChunk_acTL(c.Data); err != nil {
				return nil, err
			}
		case "fcTL":
			fctl, err := ParseChunk_fcTL(c.Data)
			if err != nil {
				return nil, err
			}
			a.SequenceNumbers = append(a.SequenceNumbers, fctl.SequenceNumber)
			a.Frames = append(a.Frames, Frame{Control: fctl})
			cur = &a.Frames[len(a.Frames)-1]
		case "IDAT":
			a.DefaultImageChunks++
			if cur != nil {
				cur.DataChunks++
				cur.DataBytes += len(c.Data)
			}
		case "fdAT":
			fdat, err := ParseChunk_fdAT(c.Data)
			if err != nil {
				return nil, err
			}
			if cur == nil {
				return nil, FormatError("fdAT chunk before any fcTL")
			}
			a.SequenceNumbers = append(a.SequenceNumbers, fdat.SequenceNumber)
			cur.DataChunks++
			cur.DataBytes += len(fdat.Chunk_IDAT)
		case "tEXt":
			k, v, err := decodeText(c.Data)
			if err != nil {
				return nil, err
			}
			a.Text[k] = v
		}
	}
	return a, nil
}

// CheckSequence reports whether the sequence numbers run 0, 1, 2, ... with
// no gaps or repeats.
func (a *Animation) CheckSequence() error {
	for i, n := range a.SequenceNumbers {
		if n != uint32(i) {
			return FormatError(fmt.Sprintf("sequence number %d at position %d", n, i))
		}
	}
	return nil
}

// tEXt payloads are keyword, NUL, text, both in ISO-8859-1.
func decodeText(b []byte) (string, string, error) {
	i := bytes.IndexByte(b, 0)
	if i < 1 {
		return "", "", FormatError("tEXt chunk without keyword")
	}
	dec := charmap.ISO8859_1.NewDecoder()
	k, err := dec.Bytes(b[:i])
	if err != nil {
		return "", "", err
	}
	v, err := dec.Bytes(b[i+1:])
	if err != nil {
		return "", "", err
	}
	return string(k), string(v), nil
}
