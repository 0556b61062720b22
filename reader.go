package gamebryo

import (
	"encoding/binary"
	"math"
)

// frameReader is a stateful cursor over the active byte source. It
// provides typed little-endian reads, the two savegame string
// conventions, and the optional per-field '|' terminator used by
// Fallout 3 / New Vegas. Flags are plain owned state set before each
// format's parse begins and may change mid-parse (FO3 flips
// hasFieldMarkers on after its disambiguation step).
type frameReader struct {
	src             byteSource
	hasFieldMarkers bool
	bzString        bool
	enc             codePage
}

func newFrameReader(src byteSource, enc codePage) *frameReader {
	return &frameReader{src: src, enc: enc}
}

func (r *frameReader) tell() int64 { return r.src.tell() }

// header seeks to the start of the stream, reads len(magic) bytes and
// reports whether they match.
func (r *frameReader) header(magic string) (bool, error) {
	if err := r.src.seek(0, whenceStart); err != nil {
		return false, err
	}
	buf := make([]byte, len(magic))
	if err := r.src.read(buf); err != nil {
		return false, nil // too short to match; not an error, just no match
	}
	return string(buf) == magic, nil
}

// skipBytes advances the cursor by n bytes, translating a short seek
// into the spec's truncation error.
func (r *frameReader) skipBytes(n int) error {
	offset := r.src.tell()
	if err := r.src.seek(int64(n), whenceCurrent); err != nil {
		return truncatedSkip(offset, n)
	}
	return nil
}

func (r *frameReader) consumeFieldMarker() error {
	if !r.hasFieldMarkers {
		return nil
	}
	offset := r.src.tell()
	var b [1]byte
	if err := r.src.read(b[:]); err != nil {
		return truncated(offset, 1)
	}
	if b[0] != '|' {
		return dataInvalid(offset, "missing field marker")
	}
	return nil
}

func (r *frameReader) readRaw(buf []byte) error {
	offset := r.src.tell()
	if err := r.src.read(buf); err != nil {
		r.src.clear()
		r.src.seek(0, whenceEnd)
		return truncated(offset, len(buf))
	}
	return nil
}

func (r *frameReader) readU8() (uint8, error) {
	var b [1]byte
	if err := r.readRaw(b[:]); err != nil {
		return 0, err
	}
	if err := r.consumeFieldMarker(); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *frameReader) readU16() (uint16, error) {
	var b [2]byte
	if err := r.readRaw(b[:]); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(b[:])
	if err := r.consumeFieldMarker(); err != nil {
		return 0, err
	}
	return v, nil
}

func (r *frameReader) readU32() (uint32, error) {
	var b [4]byte
	if err := r.readRaw(b[:]); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(b[:])
	if err := r.consumeFieldMarker(); err != nil {
		return 0, err
	}
	return v, nil
}

func (r *frameReader) readI32() (int32, error) {
	v, err := r.readU32()
	return int32(v), err
}

func (r *frameReader) readU64() (uint64, error) {
	var b [8]byte
	if err := r.readRaw(b[:]); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(b[:])
	if err := r.consumeFieldMarker(); err != nil {
		return 0, err
	}
	return v, nil
}

func (r *frameReader) readF32() (float32, error) {
	v, err := r.readU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// readWinSystemTime reads the 16-byte WINSYSTEMTIME record as eight
// little-endian u16 fields. It never consumes an individual field
// marker per-field; the original treats the struct as one opaque blob
// for the purposes of read<T>, and this module preserves that by
// reading the whole 16 bytes as a single raw block.
func (r *frameReader) readWinSystemTime() (winSystemTime, error) {
	var buf [16]byte
	if err := r.readRaw(buf[:]); err != nil {
		return winSystemTime{}, err
	}
	if err := r.consumeFieldMarker(); err != nil {
		return winSystemTime{}, err
	}
	u := func(i int) uint16 { return binary.LittleEndian.Uint16(buf[i*2 : i*2+2]) }
	return winSystemTime{
		Year:         u(0),
		Month:        u(1),
		DayOfWeek:    u(2),
		Day:          u(3),
		Hour:         u(4),
		Minute:       u(5),
		Second:       u(6),
		Milliseconds: u(7),
	}, nil
}

// readString implements spec.md §4.4.1: bzstring (u8 length, trailing
// NUL dropped) when r.bzString, otherwise wstring (u16 length, no
// terminator). Zero-length strings skip both the payload and the
// field marker.
func (r *frameReader) readString() (string, error) {
	var length int
	if r.bzString {
		l, err := r.rawLenU8()
		if err != nil {
			return "", err
		}
		length = int(l)
	} else {
		l, err := r.rawLenU16()
		if err != nil {
			return "", err
		}
		length = int(l)
	}

	if length == 0 {
		return "", nil
	}

	buf := make([]byte, length)
	if err := r.readRaw(buf); err != nil {
		return "", err
	}
	if r.bzString {
		buf = buf[:len(buf)-1] // drop trailing NUL
	}
	if err := r.consumeFieldMarker(); err != nil {
		return "", err
	}
	return decodeString(buf, r.enc)
}

// readBString reads a bzstring-shaped field (u8 length, payload,
// trailing NUL dropped), used for Oblivion plugin names. Oblivion sets
// bz_string for its entire parse, so plugin names follow the same
// NUL-stripping convention as readString's bzstring path.
func (r *frameReader) readBString(maxLen int) (string, error) {
	length, err := r.rawLenU8()
	if err != nil {
		return "", err
	}
	if int(length) > maxLen {
		return "", dataInvalid(r.src.tell(), "plugin name too long: %d", length)
	}
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if err := r.readRaw(buf); err != nil {
		return "", err
	}
	buf = buf[:len(buf)-1] // drop trailing NUL
	if err := r.consumeFieldMarker(); err != nil {
		return "", err
	}
	return string(buf), nil
}

// readWString reads a u16-length-prefixed plugin name (no NUL, no
// bzstring framing), bounded the same way as readBString.
func (r *frameReader) readWString(maxLen int) (string, error) {
	length, err := r.rawLenU16()
	if err != nil {
		return "", err
	}
	if int(length) > maxLen {
		return "", dataInvalid(r.src.tell(), "plugin name too long: %d", length)
	}
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if err := r.readRaw(buf); err != nil {
		return "", err
	}
	if err := r.consumeFieldMarker(); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (r *frameReader) rawLenU8() (uint8, error) {
	var b [1]byte
	if err := r.readRaw(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *frameReader) rawLenU16() (uint16, error) {
	var b [2]byte
	if err := r.readRaw(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// setCompression installs a decompression adapter over the reader's
// active source, per spec.md §4.2 / §4.6.2. Unknown formats leave the
// source unchanged.
func (r *frameReader) setCompression(format uint16, compressedLen, uncompressedLen uint32) error {
	next, err := newDecompressedSource(r.src, format, compressedLen, uncompressedLen)
	if err != nil {
		return err
	}
	r.src = next
	return nil
}

// winSystemTime mirrors the 16-byte WINSYSTEMTIME record: eight
// little-endian u16 fields.
type winSystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}
