package gamebryo

import (
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// codePage identifies the byte-to-UTF-8 decoding convention selected
// for a particular savegame, derived from its filename by
// determineEncoding.
type codePage int

const (
	codePageUTF8OrLatin1 codePage = iota
	codePageCyrillic
)

// determineEncoding implements the filename heuristic of spec.md
// §4.3: strip the extension, drop digits/dash/dot/space, and call the
// remainder Cyrillic if more than half its runes fall in the Cyrillic
// block.
func determineEncoding(path string) codePage {
	base := filepath.Base(path)
	if len(base) > 4 {
		base = base[:len(base)-4]
	} else {
		base = ""
	}

	var filtered []rune
	for _, r := range base {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' || r == ' ' {
			continue
		}
		filtered = append(filtered, r)
	}

	if isMostlyCyrillic(string(filtered)) {
		return codePageCyrillic
	}
	return codePageUTF8OrLatin1
}

// decodeString converts a raw byte payload read from the savegame into
// UTF-8 according to cp. UTF8OrLatin1 attempts strict UTF-8 first and
// falls back to CP 850 (the original's Windows fallback codepage) on
// any invalid sequence; Cyrillic always decodes as Windows-1251.
func decodeString(raw []byte, cp codePage) (string, error) {
	switch cp {
	case codePageCyrillic:
		out, err := charmap.Windows1251.NewDecoder().Bytes(raw)
		if err != nil {
			return "", decodeErr("windows-1251 decode failed", err)
		}
		return string(out), nil
	default:
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		out, err := charmap.CodePage850.NewDecoder().Bytes(raw)
		if err != nil {
			return "", decodeErr("cp850 decode failed", err)
		}
		return string(out), nil
	}
}

// isMostlyCyrillic reports whether s (already filtered) is majority
// Cyrillic by rune count; exposed for testing determineEncoding's
// building block in isolation.
func isMostlyCyrillic(s string) bool {
	var total, cyr int
	for _, r := range s {
		total++
		if r >= 0x0400 && r <= 0x052F {
			cyr++
		}
	}
	return total > 0 && cyr*2 > total
}
