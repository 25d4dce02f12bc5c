package grid

import "testing"

func TestBlankCell(t *testing.T) {
	c := Blank()

	if c.Rune() != ' ' {
		t.Errorf("expected space, got %q", c.Rune())
	}
	if c.Fg != ColorDefault || c.Bg != ColorDefault {
		t.Error("expected default colors")
	}
	if c.Attrs != 0 {
		t.Error("expected no attrs")
	}
}

func TestCellSetGlyph(t *testing.T) {
	var c Cell
	c.SetGlyph([]byte("€")) // 3-byte UTF-8
	if got := c.Rune(); got != '€' {
		t.Errorf("expected €, got %q", got)
	}
	if len(c.Glyph()) != 3 {
		t.Errorf("expected 3 glyph bytes, got %d", len(c.Glyph()))
	}
}

func TestCellSetGlyphTruncates(t *testing.T) {
	var c Cell
	c.SetGlyph([]byte{1, 2, 3, 4, 5, 6})
	if len(c.Glyph()) != MaxGlyphBytes {
		t.Errorf("expected truncation to %d bytes, got %d", MaxGlyphBytes, len(c.Glyph()))
	}
}

func TestCellAttrs(t *testing.T) {
	var c Cell
	c.Attrs |= AttrBold
	if !c.HasAttr(AttrBold) {
		t.Error("expected bold attr")
	}
	c.Attrs |= AttrItalic
	if !c.HasAttr(AttrBold) || !c.HasAttr(AttrItalic) {
		t.Error("expected both attrs")
	}
	c.Attrs &^= AttrBold
	if c.HasAttr(AttrBold) {
		t.Error("expected bold cleared")
	}
	if !c.HasAttr(AttrItalic) {
		t.Error("expected italic to remain")
	}
}

func TestCellEmptyGlyphIsSpace(t *testing.T) {
	var c Cell
	if c.Rune() != ' ' {
		t.Errorf("expected zero-value cell to read as space, got %q", c.Rune())
	}
}

func TestCellDirtyTracking(t *testing.T) {
	var c Cell
	if c.IsDirty() {
		t.Error("zero-value cell should not start dirty")
	}
	c.MarkDirty()
	if !c.IsDirty() {
		t.Error("expected dirty after MarkDirty")
	}
	c.ClearDirty()
	if c.IsDirty() {
		t.Error("expected clean after ClearDirty")
	}
}
