package apng

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Assemble merges PNG files into one APNG in which images[i] is frame i.
// images[0] is the key frame: its IHDR and every other chunk ahead of its
// image data are copied to the output, and its IDAT chunks become the
// default image.  The remaining frames contribute only their image data,
// rewrapped as fdAT chunks.  Every frame is shown for delayMs milliseconds
// and the animation loops forever.
//
// The inputs are not modified.  The output only depends on the inputs, so
// equal inputs always give byte-identical results.
func Assemble(images [][]byte, delayMs uint16) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := AssembleTo(buf, images, delayMs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AssembleTo is like Assemble but writes the APNG to w, returning the number
// of bytes written.  All frames are parsed before anything is written, so
// malformed input never produces partial output.
func AssembleTo(w io.Writer, images [][]byte, delayMs uint16) (int64, error) {
	if len(images) == 0 {
		return 0, ErrEmptyInput
	}
	if uint64(len(images)) > math.MaxUint32 {
		return 0, EncodingError(fmt.Sprintf("%d frames do not fit in acTL", len(images)))
	}

	var ihdr *Chunk_IHDR
	frames := make([][]Chunk, len(images))
	for i, b := range images {
		chunks, err := ParseChunks(b)
		if err != nil {
			return 0, fmt.Errorf("frame %d: %w", i, err)
		}
		if i == 0 {
			if ihdr, err = findIHDR(chunks); err != nil {
				return 0, err
			}
		} else {
			checkGeometry(i, chunks, ihdr)
		}
		if !hasIDAT(chunks) {
			return 0, fmt.Errorf("frame %d: %w", i, FormatError("no IDAT chunk"))
		}
		frames[i] = chunks
	}

	a := &assembler{w: w}
	a.writeString(PngHeader)
	for _, c := range frames[0] {
		if c.Type == "IDAT" {
			break
		}
		if isAnimationChunk(c.Type) {
			continue
		}
		a.write(c)
	}
	a.write(&Chunk_acTL{NumFrames: uint32(len(images))})

	for i, chunks := range frames {
		a.write(&Chunk_fcTL{
			SequenceNumber: a.seq.Next(),
			Width:          ihdr.Width,
			Height:         ihdr.Height,
			DelayNum:       delayMs,
			DelayDen:       DelayDen_Milliseconds,
			DisposeOp:      DisposeOp_None,
			BlendOp:        BlendOp_Source,
		})
		n := 0
		for _, c := range chunks {
			if c.Type != "IDAT" {
				continue
			}
			n++
			if i == 0 {
				a.write(Chunk_IDAT(c.Data))
			} else {
				a.write(&Chunk_fdAT{SequenceNumber: a.seq.Next(), Chunk_IDAT: c.Data})
			}
		}
		slog.Debug("apng: frame assembled", "frame", i, "data_chunks", n)
	}
	a.write(&Chunk_IEND{})

	if a.err != nil {
		return a.n, a.err
	}
	slog.Debug("apng: animation assembled",
		"frames", len(images),
		"width", ihdr.Width,
		"height", ihdr.Height,
		"sequence_numbers", uint32(a.seq),
		"bytes", a.n,
	)
	return a.n, nil
}

// assembler accumulates the first write error and the byte count so the
// emission sequence in AssembleTo reads straight through.
type assembler struct {
	w   io.Writer
	n   int64
	err error
	seq SequenceNumbers
}

func (a *assembler) write(c io.WriterTo) {
	if a.err != nil {
		return
	}
	n, err := c.WriteTo(a.w)
	a.n += n
	a.err = err
}

func (a *assembler) writeString(s string) {
	if a.err != nil {
		return
	}
	n, err := io.WriteString(a.w, s)
	a.n += int64(n)
	a.err = err
}

func hasIDAT(chunks []Chunk) bool {
	for _, c := range chunks {
		if c.Type == "IDAT" {
			return true
		}
	}
	return false
}

func findIHDR(chunks []Chunk) (*Chunk_IHDR, error) {
	for _, c := range chunks {
		if c.Type != "IHDR" {
			continue
		}
		ihdr, err := ParseChunk_IHDR(c.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingHeader, err)
		}
		return ihdr, nil
	}
	return nil, ErrMissingHeader
}

// isAnimationChunk reports whether a key-frame chunk belongs to an existing
// animation.  Those are replaced, not copied.
func isAnimationChunk(typ string) bool {
	switch typ {
	case "acTL", "fcTL", "fdAT":
		return true
	}
	return false
}

// checkGeometry logs frames whose own IHDR disagrees with the key frame.
// They are still assembled with the key frame's header.
func checkGeometry(i int, chunks []Chunk, key *Chunk_IHDR) {
	ihdr, err := findIHDR(chunks)
	if err != nil {
		return
	}
	if diff := headerDiff(key, ihdr); len(diff) > 0 {
		slog.Warn("apng: frame header differs from key frame",
			"frame", i,
			"fields", diff,
			"width", ihdr.Width,
			"height", ihdr.Height,
			"bit_depth", ihdr.BitDepth,
			"color_type", ihdr.ColorType,
			"interlace", ihdr.InterlaceMethod,
		)
	}
}

// headerDiff names the IHDR fields that make frame data incompatible with
// the key frame.
func headerDiff(key, ihdr *Chunk_IHDR) []string {
	var diff []string
	if ihdr.Width != key.Width {
		diff = append(diff, "width")
	}
	if ihdr.Height != key.Height {
		diff = append(diff, "height")
	}
	if ihdr.BitDepth != key.BitDepth {
		diff = append(diff, "bit_depth")
	}
	if ihdr.ColorType != key.ColorType {
		diff = append(diff, "color_type")
	}
	if ihdr.InterlaceMethod != key.InterlaceMethod {
		diff = append(diff, "interlace")
	}
	return diff
}
