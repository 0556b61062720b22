package gamebryo

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"math"
)

// fixtureBuilder assembles a little-endian byte stream shaped like a
// savegame file for use in end-to-end tests, without pulling in a
// second parser implementation to cross-check against.
type fixtureBuilder struct {
	buf             bytes.Buffer
	hasFieldMarkers bool
}

func (b *fixtureBuilder) withMarkers() *fixtureBuilder {
	b.hasFieldMarkers = true
	return b
}

func (b *fixtureBuilder) marker() *fixtureBuilder {
	if b.hasFieldMarkers {
		b.buf.WriteByte('|')
	}
	return b
}

func (b *fixtureBuilder) raw(p []byte) *fixtureBuilder {
	b.buf.Write(p)
	return b
}

func (b *fixtureBuilder) u8(v uint8) *fixtureBuilder {
	b.buf.WriteByte(v)
	b.marker()
	return b
}

func (b *fixtureBuilder) u16(v uint16) *fixtureBuilder {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf.Write(tmp[:])
	b.marker()
	return b
}

func (b *fixtureBuilder) u32(v uint32) *fixtureBuilder {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
	b.marker()
	return b
}

func (b *fixtureBuilder) u64(v uint64) *fixtureBuilder {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf.Write(tmp[:])
	b.marker()
	return b
}

func (b *fixtureBuilder) f32(v float32) *fixtureBuilder {
	return b.u32(math.Float32bits(v))
}

// wstring writes a u16-length-prefixed string with no terminator. A
// zero-length string carries no field marker, matching readString.
func (b *fixtureBuilder) wstring(s string) *fixtureBuilder {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], uint16(len(s)))
	b.buf.Write(tmp[:])
	b.buf.WriteString(s)
	if len(s) > 0 {
		b.marker()
	}
	return b
}

// bzstring writes a u8-length-prefixed, NUL-terminated string.
func (b *fixtureBuilder) bzstring(s string) *fixtureBuilder {
	b.buf.WriteByte(uint8(len(s) + 1))
	b.buf.WriteString(s)
	b.buf.WriteByte(0)
	b.marker()
	return b
}

func (b *fixtureBuilder) bytes() []byte { return b.buf.Bytes() }

func zlibCompress(p []byte) []byte {
	var out bytes.Buffer
	w := zlib.NewWriter(&out)
	w.Write(p)
	w.Close()
	return out.Bytes()
}
