// Package gamebryo parses savegame files produced by the
// Gamebryo/Creation engine family (Oblivion, Skyrim, Fallout 3 / New
// Vegas, Fallout 4) into a stable, game-agnostic summary.
package gamebryo

import "os"

// Dimensions is the width/height of an embedded screenshot, in pixels.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// Summary is the single output entity produced by Parse: a
// game-agnostic view of one savegame file.
type Summary struct {
	FileName       string
	CharacterName  string
	CharacterLevel uint16
	Location       string
	SaveNumber     uint32
	PlayTime       string
	CreationTime   uint32
	Plugins        []string
	ScreenshotSize Dimensions
	Screenshot     []byte
}

// GetScreenshot copies up to min(len(dest), len(s.Screenshot)) bytes of
// the decoded RGBA8 screenshot into dest, returning the number of
// bytes copied.
func (s *Summary) GetScreenshot(dest []byte) int {
	return copy(dest, s.Screenshot)
}

const maxPluginNameLen = 256

// Parse synchronously decodes the savegame at path. When quick is
// true, the screenshot and plugin-list subsections are skipped and
// Summary.Screenshot / ScreenshotSize stay zero.
func Parse(path string, quick bool) (*Summary, error) {
	src, err := newFileSource(path)
	if err != nil {
		return nil, err
	}
	defer src.close()

	enc := determineEncoding(path)
	r := newFrameReader(src, enc)

	sum := &Summary{FileName: path}

	var matched bool
	for _, m := range magics {
		ok, err := r.header(m.magic)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		matched = true
		if err := m.parser(r, sum, quick); err != nil {
			return nil, err
		}
		break
	}

	if !matched {
		return nil, ErrInvalidHeader
	}

	if sum.CreationTime == 0 {
		if info, err := os.Stat(path); err == nil {
			sum.CreationTime = uint32(info.ModTime().Unix())
		}
	}

	return sum, nil
}
