package grid

// CharsetSlot selects one of the four character-set designator
// registers (spec §3: "G0..G3").
type CharsetSlot int

const (
	G0 CharsetSlot = iota
	G1
	G2
	G3
)

// Charset identifies a designated character set. Only the two sets a
// VT220-class terminal actually renders differently are modeled: US
// ASCII (bytes render as-is) and DEC Special Graphics (0x60-0x7E
// render as line-drawing glyphs). Other designators accepted by the
// parser (UK, Finnish, German, ...) map to CharsetASCII, matching
// spec §9's note that only the 0x60-0x7E divergence needs a table.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetDECSpecialGraphics
)

// Cursor is the write position and the rendering state that applies
// to the next glyph written there (spec §3 "Cursor").
//
// Col may equal the grid width: that is the "pending wrap" state
// (spec glossary). Row is always a valid row index.
type Cursor struct {
	Row, Col int

	Fg, Bg Color
	Attrs  Attr

	// GL is the active G-set slot (locking shift via SO/SI);
	// charsets holds what each of the four slots is designated to.
	GL       CharsetSlot
	charsets [4]Charset
}

// NewCursor returns a cursor at (0,0) with default colors, no
// attributes, GL pointing at G0, and all slots designated US ASCII.
func NewCursor() *Cursor {
	return &Cursor{Fg: ColorDefault, Bg: ColorDefault}
}

// ResetAttrs returns the cursor's rendering state to defaults without
// moving it (SGR 0, and part of a full terminal reset).
func (c *Cursor) ResetAttrs() {
	c.Fg = ColorDefault
	c.Bg = ColorDefault
	c.Attrs = 0
}

// Charset returns what slot s is currently designated to.
func (c *Cursor) Charset(s CharsetSlot) Charset {
	return c.charsets[s]
}

// Designate sets slot s to the given charset (ESC ( / ) / * / + c).
func (c *Cursor) Designate(s CharsetSlot, cs Charset) {
	c.charsets[s] = cs
}

// ActiveCharset is the charset currently in effect for rendering
// 0x20-0x7E bytes: whatever GL is designated to.
func (c *Cursor) ActiveCharset() Charset {
	return c.charsets[c.GL]
}

// ResetCharsets designates all four slots back to US ASCII and points
// GL at G0 (part of a full terminal reset).
func (c *Cursor) ResetCharsets() {
	c.GL = G0
	for i := range c.charsets {
		c.charsets[i] = CharsetASCII
	}
}

// SavedCursor is one of the two independent save slots of spec §3:
// "(1) DECSC-style including attributes, (2) cursor-only". Valid is
// false until the first save; a restore on an empty slot restores
// defaults (spec §3).
type SavedCursor struct {
	Valid    bool
	Row, Col int

	// WithAttrs records whether Fg/Bg/Attrs/charsets were captured
	// (DECSC-style save) or only position (cursor-only save, CSI s).
	WithAttrs bool
	Fg, Bg    Color
	Attrs     Attr
	GL        CharsetSlot
	charsets  [4]Charset
}

// Save captures c into the slot. withAttrs selects DECSC-style
// (position + attributes + charsets) vs cursor-only.
func (s *SavedCursor) Save(c *Cursor, withAttrs bool) {
	s.Valid = true
	s.Row, s.Col = c.Row, c.Col
	s.WithAttrs = withAttrs
	if withAttrs {
		s.Fg, s.Bg, s.Attrs = c.Fg, c.Bg, c.Attrs
		s.GL = c.GL
		s.charsets = c.charsets
	}
}

// Restore applies the slot back onto c. If the slot was never saved,
// c is reset to defaults instead (spec §3: "restore on empty slot
// restores defaults").
func (s *SavedCursor) Restore(c *Cursor) {
	if !s.Valid {
		c.Row, c.Col = 0, 0
		c.ResetAttrs()
		c.ResetCharsets()
		return
	}
	c.Row, c.Col = s.Row, s.Col
	if s.WithAttrs {
		c.Fg, c.Bg, c.Attrs = s.Fg, s.Bg, s.Attrs
		c.GL = s.GL
		c.charsets = s.charsets
	}
}
