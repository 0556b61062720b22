package gamebryo

import "fmt"

// parseOblivion implements spec.md §4.6.1. Oblivion uses bzstring
// framing throughout and never sets field markers.
func parseOblivion(r *frameReader, sum *Summary, quick bool) error {
	r.bzString = true
	r.hasFieldMarkers = false

	if _, err := r.readU8(); err != nil { // major version
		return err
	}
	if _, err := r.readU8(); err != nil { // minor version
		return err
	}
	if err := r.skipBytes(16); err != nil { // exe mtime, WINSYSTEMTIME
		return err
	}
	if _, err := r.readU32(); err != nil { // header version
		return err
	}
	if _, err := r.readU32(); err != nil { // header size
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

	level, err := r.readU16()
	if err != nil {
		return err
	}
	sum.CharacterLevel = level

	location, err := r.readString()
	if err != nil {
		return err
	}
	sum.Location = location

	gameDays, err := r.readF32()
	if err != nil {
		return err
	}
	if _, err := r.readU32(); err != nil { // game ticks
		return err
	}
	sum.PlayTime = oblivionPlayTime(gameDays)

	winTime, err := r.readWinSystemTime()
	if err != nil {
		return err
	}
	sum.CreationTime = winSystemTimeToEpoch(winTime)

	if quick {
		return nil
	}

	if _, err := r.readU32(); err != nil { // screenshot byte size, trusted not validated
		return err
	}

	dim, pixels, err := r.readImageDims(false)
	if err != nil {
		return err
	}
	sum.ScreenshotSize = Dimensions(dim)
	sum.Screenshot = pixels

	count, err := r.readU8()
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		plugin, err := r.readBString(maxPluginNameLen)
		if err != nil {
			return err
		}
		sum.Plugins = append(sum.Plugins, plugin)
	}

	return nil
}

// oblivionPlayTime synthesizes the "D days, H hours" playtime string
// from a float day count, using integer truncation throughout: 3.5 =>
// "3 days, 12 hours", 48.99 => "48 days, 23 hours".
func oblivionPlayTime(gameDays float32) string {
	days := int64(gameDays)
	hours := int64(gameDays*24) % 24
	return fmt.Sprintf("%d days, %d hours", days, hours)
}
