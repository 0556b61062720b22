package gamebryo

// formatParser drives a frameReader configured for one of the four
// known savegame formats and populates sum. Each parser sets whatever
// frameReader flags (bzString, hasFieldMarkers) its format requires
// before reading its first field.
type formatParser func(r *frameReader, sum *Summary, quick bool) error

// magics lists the four recognized format headers in the fixed probe
// order of spec.md §4.5: first match wins.
var magics = []struct {
	magic  string
	parser formatParser
}{
	{"TES4SAVEGAME", parseOblivion},
	{"TESV_SAVEGAME", parseSkyrim},
	{"FO3SAVEGAME", parseFallout3},
	{"FO4_SAVEGAME", parseFallout4},
}
