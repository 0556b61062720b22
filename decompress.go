package gamebryo

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pierrec/lz4"
)

const (
	compressionNone = 0
	compressionZlib = 1
	compressionLZ4  = 2
)

// newDecompressedSource consumes compressedLen bytes from inner at the
// current position, decompresses them into a buffer of exactly
// uncompressedLen bytes, and returns a fresh memorySource over that
// buffer. inner is not read further once this returns: the composed
// source fully replaces it, mirroring the C++ original's
// setCompression, which drops its previous decoder in favor of the new
// one.
//
// Unknown formats are a no-op: inner is returned unchanged and
// subsequent reads observe the still-compressed tail, which will
// eventually fail as a truncation or data-invalid error further down
// the parse. This matches the documented behavior of the original
// implementation.
func newDecompressedSource(inner byteSource, format uint16, compressedLen, uncompressedLen uint32) (byteSource, error) {
	switch format {
	case compressionZlib:
		return decompressZlib(inner, compressedLen, uncompressedLen)
	case compressionLZ4:
		return decompressLZ4(inner, compressedLen, uncompressedLen)
	default:
		return inner, nil
	}
}

func decompressZlib(inner byteSource, compressedLen, uncompressedLen uint32) (byteSource, error) {
	offset := inner.tell()
	compressed := make([]byte, compressedLen)
	if err := inner.read(compressed); err != nil {
		return nil, truncated(offset, int(compressedLen))
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, dataInvalid(offset, "zlib init failed: %v", err)
	}
	defer zr.Close()

	out := make([]byte, uncompressedLen)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, dataInvalid(offset, "zlib decompress failed: %v", err)
	}
	return newMemorySource(out), nil
}

func decompressLZ4(inner byteSource, compressedLen, uncompressedLen uint32) (byteSource, error) {
	offset := inner.tell()
	compressed := make([]byte, compressedLen)
	if err := inner.read(compressed); err != nil {
		return nil, truncated(offset, int(compressedLen))
	}

	out := make([]byte, uncompressedLen)
	n, err := lz4.UncompressBlock(compressed, out)
	if err != nil {
		return nil, dataInvalid(offset, "lz4 decompress failed: %v", err)
	}
	return newMemorySource(out[:n]), nil
}
