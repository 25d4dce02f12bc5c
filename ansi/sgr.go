package ansi

import "github.com/espterm/termcore/grid"

// handleSGR applies CSI Pn (;Pn...) m to the cursor's rendering
// state. Sub-parameters are consumed positionally so 38;5;N and
// 48;5;N can pull two extra values out of the same parameter list
// (spec §4.2 SGR).
func (p *Parser) handleSGR() {
	cur := p.sink.Grid().Cursor()
	a := &p.csi
	n := a.count()
	if n == 0 {
		cur.ResetAttrs()
		return
	}
	for i := 0; i < n; i++ {
		switch a.arg(i, 0) {
		case 0:
			cur.ResetAttrs()
		case 1:
			cur.Attrs |= grid.AttrBold
		case 2:
			cur.Attrs |= grid.AttrFaint
		case 3:
			cur.Attrs |= grid.AttrItalic
		case 4:
			cur.Attrs |= grid.AttrUnderline
		case 5, 6:
			cur.Attrs |= grid.AttrBlink
		case 7:
			cur.Attrs |= grid.AttrInverse
		case 8:
			// concealed text: not rendered as a distinct attribute bit
			// in this core; no-op rather than faked as something else.
		case 9:
			cur.Attrs |= grid.AttrStrike
		case 20:
			cur.Attrs |= grid.AttrFraktur
		case 21, 22:
			cur.Attrs &^= grid.AttrBold | grid.AttrFaint
		case 23:
			cur.Attrs &^= grid.AttrItalic | grid.AttrFraktur
		case 24:
			cur.Attrs &^= grid.AttrUnderline
		case 25:
			cur.Attrs &^= grid.AttrBlink
		case 27:
			cur.Attrs &^= grid.AttrInverse
		case 29:
			cur.Attrs &^= grid.AttrStrike
		case 30, 31, 32, 33, 34, 35, 36, 37:
			cur.Fg = grid.Color(a.arg(i, 0) - 30)
		case 38:
			i = p.consumeExtendedColor(i, &cur.Fg)
		case 39:
			cur.Fg = grid.ColorDefault
		case 40, 41, 42, 43, 44, 45, 46, 47:
			cur.Bg = grid.Color(a.arg(i, 0) - 40)
		case 48:
			i = p.consumeExtendedColor(i, &cur.Bg)
		case 49:
			cur.Bg = grid.ColorDefault
		case 90, 91, 92, 93, 94, 95, 96, 97:
			cur.Fg = grid.Color(a.arg(i, 0) - 90 + 8)
		case 100, 101, 102, 103, 104, 105, 106, 107:
			cur.Bg = grid.Color(a.arg(i, 0) - 100 + 8)
		}
	}
}

// consumeExtendedColor handles the 38/48 "set extended color" forms
// starting at parameter index i (which holds 38 or 48 itself),
// returning the index of the last sub-parameter it consumed so the
// caller's loop skips past them. The ";5;N" (256-color palette) form
// goes through grid.Map256ToPalette; the ";2;R;G;B" true-color form is
// mapped to the palette entry nearest by RGB distance, since the grid
// stores only a 4-bit index (spec §4.1 "Color semantics").
func (p *Parser) consumeExtendedColor(i int, dst *grid.Color) int {
	a := &p.csi
	if a.arg(i+1, -1) == 5 {
		*dst = grid.Map256ToPalette(a.arg(i+2, 0))
		return i + 2
	}
	if a.arg(i+1, -1) == 2 {
		r := a.arg(i+2, 0)
		g := a.arg(i+3, 0)
		b := a.arg(i+4, 0)
		*dst = nearestPaletteEntry(r, g, b)
		return i + 4
	}
	return i
}

func nearestPaletteEntry(r, g, b int) grid.Color {
	best := grid.Color(0)
	bestDist := -1
	for idx, c := range grid.DefaultPalette {
		dr := r - int(c.R)
		dg := g - int(c.G)
		db := b - int(c.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = grid.Color(idx)
		}
	}
	return best
}
