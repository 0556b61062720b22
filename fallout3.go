package gamebryo

// parseFallout3 implements spec.md §4.6.3, including the New Vegas
// disambiguation: both games share header, version and delimiter, but
// New Vegas has an extra field here that Fallout 3 lacks. The probe
// reads bytes until it finds the '|' field-marker byte; if that took
// exactly 5 bytes (4 content bytes + the marker), the stream is
// rewound because that 4-byte field belongs to this FO3-shaped read
// and must be consumed again as real content.
func parseFallout3(r *frameReader, sum *Summary, quick bool) error {
	if _, err := r.readU32(); err != nil { // header size
		return err
	}
	if _, err := r.readU32(); err != nil { // file version, always 0x30
		return err
	}
	if _, err := r.readU8(); err != nil { // delimiter
		return err
	}

	pos := r.tell()
	fieldSize := 0
	for {
		b, err := r.rawLenU8()
		if err != nil {
			return err
		}
		fieldSize++
		if b == '|' {
			break
		}
	}
	if fieldSize == 5 {
		if err := r.src.seek(pos, whenceStart); err != nil {
			return err
		}
	}

	r.hasFieldMarkers = true

	width, err := r.readU32()
	if err != nil {
		return err
	}
	height, err := r.readU32()
	if err != nil {
		return err
	}

	saveNumber, err := r.readU32()
	if err != nil {
		return err
	}
	sum.SaveNumber = saveNumber

	name, err := r.readString()
	if err != nil {
		return err
	}
	sum.CharacterName = name

	if _, err := r.readString(); err != nil { // unknown, discarded
		return err
	}

	level, err := r.readI32()
	if err != nil {
		return err
	}
	sum.CharacterLevel = uint16(level)

	location, err := r.readString()
	if err != nil {
		return err
	}
	sum.Location = location

	playTime, err := r.readString()
	if err != nil {
		return err
	}
	sum.PlayTime = playTime

	if quick {
		return nil
	}

	dim, pixels, err := r.readImage(width, height, false)
	if err != nil {
		return err
	}
	sum.ScreenshotSize = Dimensions(dim)
	sum.Screenshot = pixels

	if err := r.skipBytes(5); err != nil { // unknown byte, plugin data size
		return err
	}

	count, err := r.readU8()
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		plugin, err := r.readWString(maxPluginNameLen)
		if err != nil {
			return err
		}
		sum.Plugins = append(sum.Plugins, plugin)
	}

	return nil
}
