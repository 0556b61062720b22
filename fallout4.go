package gamebryo

const formVersionLightPluginsFO4 = 0x44

// parseFallout4 implements spec.md §4.6.4. Fallout 4 never sets bz
// string mode or field markers; its screenshot dimensions are read
// from inside the image subsection rather than supplied separately.
func parseFallout4(r *frameReader, sum *Summary, quick bool) error {
	r.bzString = false
	r.hasFieldMarkers = false

	if _, err := r.readU32(); err != nil { // header size
		return err
	}
	if _, err := r.readU32(); err != nil { // header version
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

	temp, err := r.readU32()
	if err != nil {
		return err
	}
	sum.CharacterLevel = uint16(temp)

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

	if _, err := r.readString(); err != nil { // race, discarded
		return err
	}

	if _, err := r.readU16(); err != nil { // gender
		return err
	}
	if _, err := r.readF32(); err != nil { // experience gathered
		return err
	}
	if _, err := r.readF32(); err != nil { // experience required
		return err
	}

	ftime, err := r.readU64()
	if err != nil {
		return err
	}
	sum.CreationTime = windowsTickToEpoch(ftime)

	if quick {
		return nil
	}

	dim, pixels, err := r.readImageDims(true)
	if err != nil {
		return err
	}
	sum.ScreenshotSize = Dimensions(dim)
	sum.Screenshot = pixels

	formVersion, err := r.readU8()
	if err != nil {
		return err
	}
	if _, err := r.readString(); err != nil { // game version, discarded
		return err
	}
	if _, err := r.readU32(); err != nil { // plugin info size
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

	if formVersion >= formVersionLightPluginsFO4 {
		lightCount, err := r.readU16()
		if err != nil {
			return err
		}
		for i := 0; i < int(lightCount); i++ {
			plugin, err := r.readWString(maxPluginNameLen)
			if err != nil {
				return err
			}
			sum.Plugins = append(sum.Plugins, plugin)
		}
	}

	return nil
}
