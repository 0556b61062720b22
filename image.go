package gamebryo

// dimensions is the width/height of an embedded screenshot.
type dimensions struct {
	Width  uint32
	Height uint32
}

const maxImageDimension = 2000

// readImageDims reads a width/height pair immediately preceding the
// pixel data, then defers to readImage.
func (r *frameReader) readImageDims(alpha bool) (dimensions, []byte, error) {
	width, err := r.readU32()
	if err != nil {
		return dimensions{}, nil, err
	}
	height, err := r.readU32()
	if err != nil {
		return dimensions{}, nil, err
	}
	return r.readImage(width, height, alpha)
}

// readImage reads width*height raw pixels at bpp = 4 (alpha) or 3
// (rgb), expanding rgb to rgba with an opaque alpha byte. Dimensions
// are validated against the spec's 2000x2000 hard cap before any
// allocation is attempted.
func (r *frameReader) readImage(width, height uint32, alpha bool) (dimensions, []byte, error) {
	if width >= maxImageDimension || height >= maxImageDimension {
		return dimensions{}, nil, dataInvalid(r.src.tell(), "invalid image dimensions %dx%d", width, height)
	}

	bpp := 3
	if alpha {
		bpp = 4
	}

	n := int(width) * int(height) * bpp
	raw, err := allocScreenshot(n)
	if err != nil {
		return dimensions{}, nil, err
	}

	if err := r.readRaw(raw); err != nil {
		return dimensions{}, nil, err
	}

	dim := dimensions{Width: width, Height: height}
	if alpha {
		return dim, raw, nil
	}

	rgba := make([]byte, int(width)*int(height)*4)
	for i, o := 0, 0; i < len(raw); i, o = i+3, o+4 {
		copy(rgba[o:o+3], raw[i:i+3])
		rgba[o+3] = 0xFF
	}
	return dim, rgba, nil
}

// allocScreenshot allocates n bytes, converting an out-of-memory
// panic recovery into the decoder error spec.md §7.5 requires instead
// of letting the process crash.
func allocScreenshot(n int) (buf []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			buf = nil
			err = decodeErr("failed to allocate screenshot buffer", nil)
		}
	}()
	return make([]byte, n), nil
}
