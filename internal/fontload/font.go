// Package fontload fetches a font over HTTP and turns it into glyph outlines
// for text extrusion. Both three.js typeface JSON and OpenType/TrueType
// binaries are understood.
package fontload

import (
	"bytes"
	"errors"

	"glyphglow/internal/geometry"
)

var (
	// ErrUnsupportedFormat is returned for payloads that are neither typeface
	// JSON nor an sfnt font.
	ErrUnsupportedFormat = errors.New("unsupported font format")

	// ErrGlyphNotFound is returned for characters the font has no outline for.
	ErrGlyphNotFound = errors.New("glyph not found")
)

// Font resolves characters to outlines in em units with Y pointing up.
type Font interface {
	geometry.GlyphSource
	Family() string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse detects the payload format and parses it.
func Parse(data []byte) (Font, error) {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return parseTypeface(trimmed)
	}
	if len(data) >= 4 {
		switch string(data[:4]) {
		case "\x00\x01\x00\x00", "OTTO", "true":
			return parseOpenType(data, false)
		case "ttcf":
			return parseOpenType(data, true)
		}
	}
	return nil, ErrUnsupportedFormat
}
