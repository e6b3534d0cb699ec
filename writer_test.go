package apng

import (
	"bytes"
	"errors"
	"testing"
)

func TestChunk_fcTL(t *testing.T) {
	in := &Chunk_fcTL{
		SequenceNumber: 7,
		Width:          640,
		Height:         480,
		XOffset:        1,
		YOffset:        2,
		DelayNum:       100,
		DelayDen:       DelayDen_Milliseconds,
		DisposeOp:      DisposeOp_Background,
		BlendOp:        BlendOp_Over,
	}
	c := in.Chunk()
	if c.Type != "fcTL" || len(c.Data) != 26 {
		t.Fatalf("chunk = %s with %d bytes", c.Type, len(c.Data))
	}
	want := []byte{
		0, 0, 0, 7,
		0, 0, 2, 128,
		0, 0, 1, 224,
		0, 0, 0, 1,
		0, 0, 0, 2,
		0, 100,
		3, 232,
		1,
		1,
	}
	if !bytes.Equal(c.Data, want) {
		t.Errorf("payload = % x, want % x", c.Data, want)
	}
	out, err := ParseChunk_fcTL(c.Data)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("decoded %+v, want %+v", out, in)
	}
	if _, err := ParseChunk_fcTL(c.Data[:25]); err == nil {
		t.Error("short fcTL accepted")
	}
}

func TestChunk_acTL(t *testing.T) {
	c := (&Chunk_acTL{NumFrames: 3}).Chunk()
	if want := []byte{0, 0, 0, 3, 0, 0, 0, 0}; c.Type != "acTL" || !bytes.Equal(c.Data, want) {
		t.Errorf("acTL = %s % x", c.Type, c.Data)
	}
	if _, err := ParseChunk_acTL(c.Data[:7]); err == nil {
		t.Error("short acTL accepted")
	}
}

func TestChunk_fdAT(t *testing.T) {
	in := &Chunk_fdAT{SequenceNumber: 0x01020304, Chunk_IDAT: Chunk_IDAT("zlib")}
	c, err := in.Chunk()
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte("\x01\x02\x03\x04zlib"); c.Type != "fdAT" || !bytes.Equal(c.Data, want) {
		t.Errorf("fdAT = %s % x", c.Type, c.Data)
	}
	out, err := ParseChunk_fdAT(c.Data)
	if err != nil {
		t.Fatal(err)
	}
	if out.SequenceNumber != in.SequenceNumber || string(out.Chunk_IDAT) != "zlib" {
		t.Errorf("decoded %+v", out)
	}
	var fe FormatError
	if _, err := ParseChunk_fdAT([]byte{1, 2}); !errors.As(err, &fe) {
		t.Errorf("short fdAT: got %v, want FormatError", err)
	}
}

func TestParseChunk_IHDRShort(t *testing.T) {
	if _, err := ParseChunk_IHDR([]byte{0, 0, 0, 1, 0, 0}); err == nil {
		t.Error("short IHDR accepted")
	}
	ihdr, err := ParseChunk_IHDR([]byte{0, 0, 0, 1, 0, 0, 0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if ihdr.Width != 1 || ihdr.Height != 2 {
		t.Errorf("IHDR = %+v", ihdr)
	}
}

func TestSequenceNumbers(t *testing.T) {
	seq := NewSequenceNumbers()
	for want := uint32(0); want < 5; want++ {
		if got := seq.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestWriteToFraming(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	n, err := Chunk_IDAT("abc").WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) || n != 15 {
		t.Errorf("WriteTo = %d, buffer has %d", n, buf.Len())
	}
	want, _ := BuildChunk("IDAT", []byte("abc"))
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteTo = % x, BuildChunk = % x", buf.Bytes(), want)
	}
}
