package ansi

import "github.com/espterm/termcore/grid"

// decSpecialGraphics maps 0x60-0x7E to the VT100 line-drawing glyphs
// when G-set is designated CharsetDECSpecialGraphics (ESC ( 0). Bytes
// outside this range render as plain ASCII regardless of the active
// charset (spec §9).
var decSpecialGraphics = map[byte]rune{
	0x60: '◆', // diamond
	0x61: '▒', // checkerboard
	0x62: '␉', // HT symbol
	0x63: '␌', // FF symbol
	0x64: '␍', // CR symbol
	0x65: '␊', // LF symbol
	0x66: '°', // degree
	0x67: '±', // plus/minus
	0x68: '␤', // NL symbol
	0x69: '␋', // VT symbol
	0x6a: '┘', // bottom-right corner
	0x6b: '┐', // top-right corner
	0x6c: '┌', // top-left corner
	0x6d: '└', // bottom-left corner
	0x6e: '┼', // crossing lines
	0x6f: '⎺', // scan line 1
	0x70: '⎻', // scan line 3
	0x71: '─', // horizontal line
	0x72: '⎼', // scan line 7
	0x73: '⎽', // scan line 9
	0x74: '├', // left tee
	0x75: '┤', // right tee
	0x76: '┴', // bottom tee
	0x77: '┬', // top tee
	0x78: '│', // vertical line
	0x79: '≤', // less-or-equal
	0x7a: '≥', // greater-or-equal
	0x7b: 'π', // pi
	0x7c: '≠', // not-equal
	0x7d: '£', // pound sterling
	0x7e: '·', // centered dot
}

// translate applies the active G-set to a single 0x20-0x7E byte,
// returning the rune that should actually be rendered.
func translate(cs grid.Charset, b byte) rune {
	if cs == grid.CharsetDECSpecialGraphics {
		if r, ok := decSpecialGraphics[b]; ok {
			return r
		}
	}
	return rune(b)
}

// designatorCharset maps an ESC ( / ) / * / + final byte to a
// Charset. Only '0' (DEC Special Graphics) differs from ASCII; every
// other designator accepted by real terminals (A, B, 4, 5, ...)
// renders as plain ASCII in this core (spec §9).
func designatorCharset(final byte) grid.Charset {
	if final == '0' {
		return grid.CharsetDECSpecialGraphics
	}
	return grid.CharsetASCII
}
