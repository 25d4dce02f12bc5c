package ansi

import "github.com/espterm/termcore/grid"

// Parser is the byte-driven VT500-style interpreter of spec §4.2: one
// instance owns no goroutines, holds all accumulator state for the
// sequence currently in flight, and dispatches completed operations
// onto a Sink. Grounded on the teacher's handler.go dispatch style,
// rebuilt in-repo since the teacher itself delegates parsing to an
// external package this pack doesn't carry.
type Parser struct {
	sink  Sink
	state State

	csi csiParams

	escIntermediate byte
	charsetSlot     grid.CharsetSlot
	pendingShift    grid.CharsetSlot
	hasPendingShift bool

	oscBuf []byte

	utf8Need int
	utf8Got  int
	utf8Buf  [4]byte
}

// NewParser returns a Parser in GROUND state, dispatching onto sink.
func NewParser(sink Sink) *Parser {
	return &Parser{sink: sink, state: GROUND}
}

// State reports the parser's current state, mainly for diagnostics.
func (p *Parser) State() State { return p.state }

// Feed runs the state machine over data, a chunk at a time; it may be
// called repeatedly as bytes arrive from the host (spec §4.2: "must
// tolerate a sequence split across any number of Feed calls").
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.step(b)
	}
}

func (p *Parser) resetToGround() {
	p.state = GROUND
	p.csi.reset()
	p.oscBuf = p.oscBuf[:0]
	p.utf8Need, p.utf8Got = 0, 0
}

// fullReset implements ESC c (RIS): the grid returns to its power-on
// state and the parser itself drops any in-flight sequence.
func (p *Parser) fullReset() {
	g := p.sink.Grid()
	g.Reset(g.DefaultFg, g.DefaultBg)
	p.resetToGround()
}

func (p *Parser) step(b byte) {
	class := classTable[b]

	switch p.state {
	case OSC_STRING:
		p.stepOSC(b, class)
		return
	case DCS_STRING:
		p.stepDCS(b, class)
		return
	}

	if p.state != GROUND {
		switch class {
		case classCancel:
			p.resetToGround()
			return
		case classEsc:
			p.resetToGround()
			p.state = ESC
			return
		}
	}

	if p.state == UTF8_CONT {
		p.stepUTF8Cont(b, class)
		return
	}

	if class == classC0 {
		p.execC0(b)
		return
	}

	switch p.state {
	case GROUND:
		p.stepGround(b, class)
	case ESC:
		p.stepEsc(b)
	case ESC_INT:
		p.stepEscInt(b)
	case CSI_ENTRY:
		p.stepCSIEntry(b)
	case CSI_PARAM:
		p.stepCSIParam(b)
	case CSI_INT:
		p.stepCSIInt(b)
	case CSI_IGNORE:
		p.stepCSIIgnore(b)
	case CHARSET_DESIGNATE:
		p.stepCharsetDesignate(b)
	}
}

// execC0 runs a single-byte control function. It fires from GROUND
// and from every mid-sequence state except the string states (which
// intercept it themselves) so an embedded control code, e.g. a
// newline inside a CSI sequence's parameters, executes without
// aborting the sequence collecting around it.
func (p *Parser) execC0(b byte) {
	g := p.sink.Grid()
	switch b {
	case 0x07: // BEL
		p.sink.Bell()
	case 0x08: // BS
		g.CursorMove(0, -1, false)
	case 0x09: // HT
		g.Tab()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		if g.Modes&grid.ModeNewline != 0 {
			g.NextLine()
		} else {
			g.IndexDown()
		}
	case 0x0D: // CR
		g.CR()
	case 0x0E: // SO: invoke G1 into GL
		g.Cursor().GL = grid.G1
	case 0x0F: // SI: invoke G0 into GL
		g.Cursor().GL = grid.G0
	}
}

func (p *Parser) stepGround(b byte, class byteClass) {
	switch class {
	case classEsc:
		p.state = ESC
	case classCancel, classDel:
		// no-op
	case classPrintable:
		p.putByte(b)
	case classUTF8Lead2:
		p.beginUTF8(b, 2)
	case classUTF8Lead3:
		p.beginUTF8(b, 3)
	case classUTF8Lead4:
		p.beginUTF8(b, 4)
	case classUTF8Cont, classInvalid:
		p.emitGlyph(replacementChar)
	}
}

func (p *Parser) putByte(b byte) {
	cur := p.sink.Grid().Cursor()
	slot := cur.GL
	if p.hasPendingShift {
		slot = p.pendingShift
		p.hasPendingShift = false
	}
	p.emitGlyph(translate(cur.Charset(slot), b))
}

func (p *Parser) emitGlyph(r rune) {
	var buf [4]byte
	g := encodeRune(buf[:0], r)
	p.sink.Grid().PutGlyph(g)
}

func (p *Parser) beginUTF8(lead byte, need int) {
	p.utf8Buf[0] = lead
	p.utf8Got = 1
	p.utf8Need = need
	p.state = UTF8_CONT
}

func (p *Parser) stepUTF8Cont(b byte, class byteClass) {
	if class != classUTF8Cont {
		// Sequence ended early: emit replacement for what we had and
		// reprocess b from GROUND, since it's the start of whatever
		// comes next rather than part of this glyph.
		p.state = GROUND
		p.emitGlyph(replacementChar)
		p.step(b)
		return
	}
	p.utf8Buf[p.utf8Got] = b
	p.utf8Got++
	if p.utf8Got == p.utf8Need {
		r := decodeAccumulated(p.utf8Buf[:p.utf8Got])
		p.state = GROUND
		p.emitGlyph(r)
	}
}
