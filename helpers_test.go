package apng

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

// encodeGray returns a real PNG of a w x h gray image filled with y.
func encodeGray(t testing.TB, w, h int, y uint8) []byte {
	t.Helper()
	m := image.NewGray(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = y
	}
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, m); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// buildPNG frames the given chunks behind the PNG signature.
func buildPNG(t *testing.T, chunks ...Chunk) []byte {
	t.Helper()
	buf := bytes.NewBufferString(PngHeader)
	for _, c := range chunks {
		if _, err := c.WriteTo(buf); err != nil {
			t.Fatalf("write %s: %v", c.Type, err)
		}
	}
	return buf.Bytes()
}

func ihdrChunk(w, h uint32) Chunk {
	return (&Chunk_IHDR{
		Width:     w,
		Height:    h,
		BitDepth:  BitDepth_8,
		ColorType: ColorType_Grayscale,
	}).Chunk()
}

var iendChunk = Chunk{Type: "IEND"}

// splitPNG is a 2x2 image whose image data is split over several IDATs.  The
// data is not a valid zlib stream; only the chunk layout matters here.
func splitPNG(t *testing.T, idats ...string) []byte {
	t.Helper()
	chunks := []Chunk{ihdrChunk(2, 2)}
	for _, d := range idats {
		chunks = append(chunks, Chunk{Type: "IDAT", Data: []byte(d)})
	}
	return buildPNG(t, append(chunks, iendChunk)...)
}

func chunkTypes(chunks []Chunk) []string {
	var types []string
	for _, c := range chunks {
		types = append(types, c.Type)
	}
	return types
}
