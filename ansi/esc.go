package ansi

import "github.com/espterm/termcore/grid"

// stepEsc handles the byte immediately following a lone ESC: either
// an intermediate (moving to ESC_INT), a sequence introducer ('[',
// ']', 'P'/'X'/'^'/'_', '(' ')' '*' '+'), or a single-byte final
// escape (spec §4.2 ESC table).
func (p *Parser) stepEsc(b byte) {
	// '(' ')' '*' '+' lie in the intermediate range, so they are
	// checked before the generic intermediate case.
	switch b {
	case '(', ')', '*', '+':
		p.charsetSlot = designatorSlot(b)
		p.state = CHARSET_DESIGNATE
		return
	}
	if isIntermediate(b) {
		p.escIntermediate = b
		p.state = ESC_INT
		return
	}

	g := p.sink.Grid()
	switch b {
	case '[':
		p.csi.reset()
		p.state = CSI_ENTRY
		return
	case ']':
		p.oscBuf = p.oscBuf[:0]
		p.state = OSC_STRING
		return
	case 'P', 'X', '^', '_': // DCS, SOS, PM, APC: content ignored
		p.state = DCS_STRING
		return
	case '7':
		g.CursorSave(true)
	case '8':
		g.CursorRestore(true)
	case 'c':
		p.fullReset()
	case 'D':
		g.IndexDown()
	case 'M':
		g.ReverseIndex()
	case 'E':
		g.NextLine()
	case 'H':
		g.SetTabStop(g.Cursor().Col)
	case '=':
		g.Modes |= grid.ModeAppKeypad
		p.sink.SetKeypadApplication(true)
	case '>':
		g.Modes &^= grid.ModeAppKeypad
		p.sink.SetKeypadApplication(false)
	case 'n': // LS2: lock G2 into GL
		g.Cursor().GL = grid.G2
	case 'o': // LS3: lock G3 into GL
		g.Cursor().GL = grid.G3
	case 'N', 'O': // SS2/SS3: single-shift next char from G2/G3
		p.singleShift(b)
	}
	p.state = GROUND
}

// singleShift implements ESC N / ESC O (SS2/SS3): the G2 or G3 set
// applies to the next printed glyph only, then GL reverts. This core
// renders at most one of two charsets (ASCII or DEC Special Graphics),
// so a single-shift is realized by recording the shifted slot and
// translating the next printable byte through it; GL is not changed.
func (p *Parser) singleShift(final byte) {
	slot := grid.G2
	if final == 'O' {
		slot = grid.G3
	}
	p.pendingShift = slot
	p.hasPendingShift = true
}

// stepEscInt runs after one or more intermediates following ESC; this
// core only acts on ESC # 8 (DECALN).
func (p *Parser) stepEscInt(b byte) {
	if isIntermediate(b) {
		return
	}
	if p.escIntermediate == '#' && b == '8' {
		p.sink.Grid().FillWithE()
	}
	p.state = GROUND
}

// stepCharsetDesignate consumes the final byte of ESC ( / ) / * / +,
// designating the pending G-set slot.
func (p *Parser) stepCharsetDesignate(b byte) {
	p.sink.Grid().Cursor().Designate(p.charsetSlot, designatorCharset(b))
	p.state = GROUND
}
