package gamebryo

const formVersionLightPlugins = 0x4E

// parseSkyrim implements spec.md §4.6.2, covering both the original
// Skyrim format (version < 0x0C) and Skyrim Special Edition
// (version >= 0x0C, which embeds a compressed tail).
func parseSkyrim(r *frameReader, sum *Summary, quick bool) error {
	r.bzString = false
	r.hasFieldMarkers = false

	if _, err := r.readU32(); err != nil { // header size
		return err
	}
	version, err := r.readU32()
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

	if version < 0x0C {
		dim, pixels, err := r.readImageDims(false)
		if err != nil {
			return err
		}
		sum.ScreenshotSize = Dimensions(dim)
		sum.Screenshot = pixels
	} else {
		width, err := r.readU32()
		if err != nil {
			return err
		}
		height, err := r.readU32()
		if err != nil {
			return err
		}
		compressionFormat, err := r.readU16()
		if err != nil {
			return err
		}

		dim, pixels, err := r.readImage(width, height, true)
		if err != nil {
			return err
		}
		sum.ScreenshotSize = Dimensions(dim)
		sum.Screenshot = pixels

		uncompressed, err := r.readU32()
		if err != nil {
			return err
		}
		compressed, err := r.readU32()
		if err != nil {
			return err
		}

		if err := r.setCompression(compressionFormat, compressed, uncompressed); err != nil {
			return err
		}
	}

	return skyrimReadPlugins(r, sum)
}

// skyrimReadPlugins reads the form version byte, skips the plugin-info
// size, and reads the main plugin list, appending the light plugin
// list (introduced at form version 0x4E) when present.
func skyrimReadPlugins(r *frameReader, sum *Summary) error {
	formVersion, err := r.readU8()
	if err != nil {
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

	if formVersion >= formVersionLightPlugins {
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
