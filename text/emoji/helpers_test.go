package emoji

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// tableWriter assembles big-endian font table bytes for tests.
type tableWriter struct {
	buf bytes.Buffer
}

func (w *tableWriter) u8(v uint8)   { w.buf.WriteByte(v) }
func (w *tableWriter) u16(v uint16) { _ = binary.Write(&w.buf, binary.BigEndian, v) }
func (w *tableWriter) u32(v uint32) { _ = binary.Write(&w.buf, binary.BigEndian, v) }
func (w *tableWriter) i16(v int16)  { _ = binary.Write(&w.buf, binary.BigEndian, v) }
func (w *tableWriter) raw(b []byte) { w.buf.Write(b) }
func (w *tableWriter) zeros(n int)  { w.buf.Write(make([]byte, n)) }
func (w *tableWriter) len() int     { return w.buf.Len() }
func (w *tableWriter) bytes() []byte {
	return w.buf.Bytes()
}

// testPNG encodes a solid w x h PNG.
func testPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}
