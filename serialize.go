package termcore

import "github.com/espterm/termcore/grid"

// encode2BBase and encode2BMax bound the single-parameter domain
// Encode2B can represent as two bytes (spec §6 helper encode2B).
const (
	encode2BBase = 127
	encode2BMax  = encode2BBase*encode2BBase - 1
)

// Encode2B maps a non-negative integer to two printable, non-NUL
// bytes starting at 1 (spec §6: "maps a 16-bit integer to two
// printable bytes... so serialized streams are NUL-free"). Values
// above encode2BMax are clamped. This is the only encoding primitive
// SerializeScreen/SerializeLabels use, so nothing they emit can ever
// contain a zero byte.
func Encode2B(n int) [2]byte {
	if n < 0 {
		n = 0
	}
	if n > encode2BMax {
		n = encode2BMax
	}
	hi := n / encode2BBase
	lo := n % encode2BBase
	return [2]byte{byte(1 + hi), byte(1 + lo)}
}

// ScreenCursor is the opaque resumption cursor of spec §6
// serialize_screen; its zero value starts serialization from the
// first cell.
type ScreenCursor int

// encodeCell renders one cell as fg, bg, attrs (each via Encode2B,
// offset by 1 so ColorDefault's -1 encodes as 0) followed by a
// length-prefixed glyph. Every cell's glyph is non-empty (Blank()
// stores a literal space), so no field in the record is ever zero.
func encodeCell(c *grid.Cell) []byte {
	fg := Encode2B(int(c.Fg) + 1)
	bg := Encode2B(int(c.Bg) + 1)
	attrs := Encode2B(int(c.Attrs) + 1)
	glyph := c.Glyph()
	glyphLen := Encode2B(len(glyph))

	out := make([]byte, 0, 8+len(glyph))
	out = append(out, fg[:]...)
	out = append(out, bg[:]...)
	out = append(out, attrs[:]...)
	out = append(out, glyphLen[:]...)
	out = append(out, glyph...)
	return out
}

// SerializeScreen is serialize_screen(buffer, len, cursor) of spec
// §6: writes as many whole cell records as fit in buf, starting from
// *cursor, and reports whether more cells remain. Calling it again
// with the same cursor value and a fresh buffer resumes exactly where
// the previous call left off (spec §7 "Serializer buffer exhaustion:
// returns more with the resumption cursor; not an error").
func (t *Terminal) SerializeScreen(buf []byte, cursor *ScreenCursor) (n int, more bool) {
	w, h := t.grid.Width(), t.grid.Height()
	total := w * h
	idx := int(*cursor)

	pos := 0
	for idx < total {
		row, col := idx/w, idx%w
		rec := encodeCell(t.grid.Cell(row, col))
		if pos+len(rec) > len(buf) {
			*cursor = ScreenCursor(idx)
			return pos, true
		}
		pos += copy(buf[pos:], rec)
		idx++
	}
	*cursor = ScreenCursor(idx)
	return pos, false
}

// writeLString appends an Encode2B-length-prefixed string to buf at
// pos, returning the new position and whether it fit.
func writeLString(buf []byte, pos int, s string) (int, bool) {
	lenCode := Encode2B(len(s))
	if pos+2+len(s) > len(buf) {
		return pos, false
	}
	pos += copy(buf[pos:], lenCode[:])
	pos += copy(buf[pos:], s)
	return pos, true
}

// SerializeLabels is serialize_labels(buffer, len) of spec §6: emits
// the title followed by the five button labels in one shot (no
// resumption cursor — spec describes this one as a single-shot
// operation, unlike SerializeScreen). Returns the number of bytes
// written; stops early, returning what fit, if buf is too small.
func (t *Terminal) SerializeLabels(buf []byte) int {
	pos, ok := writeLString(buf, 0, t.scratch.Title)
	if !ok {
		return pos
	}
	for _, label := range t.scratch.Buttons {
		pos, ok = writeLString(buf, pos, label)
		if !ok {
			return pos
		}
	}
	return pos
}
