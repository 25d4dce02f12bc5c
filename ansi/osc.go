package ansi

import "strconv"

// maxOSCLen bounds the OSC accumulation buffer; this core only ever
// needs a title/icon string or a short button label, so runaway input
// is simply truncated rather than grown without bound (spec §9,
// embedded-scale resource limits).
const maxOSCLen = 256

func (p *Parser) stepOSC(b byte, class byteClass) {
	// BEL and ST are the standard terminators; a bare NUL also ends the
	// string, matching the original firmware's C-string convention for
	// button labels.
	switch {
	case b == 0x07, b == 0x00:
		p.finishOSC()
	case class == classEsc:
		// Treat ESC as terminating the string; the conventional
		// trailing '\' of a 7-bit ST carries no further meaning here
		// and is consumed as an ordinary (ignored) ESC sequence.
		p.finishOSC()
		p.state = ESC
	case class == classCancel:
		p.resetToGround()
	default:
		if len(p.oscBuf) < maxOSCLen {
			p.oscBuf = append(p.oscBuf, b)
		}
	}
}

// finishOSC parses the accumulated "Ps;Pt" body and dispatches it.
// Spec §4.2 assigns OSC 0/2 to the title and OSC 1 to the icon name,
// then separately describes "custom OSCs for button labels" as an
// n;text form with 1 <= n <= 5. Taken literally those two schemes
// collide (n=1 and n=2 would mean both icon/title and a button), so
// button labels are shifted into 10..14, just above the well-known
// xterm numbers they'd otherwise overwrite. Slot is 0-based.
func (p *Parser) finishOSC() {
	defer func() {
		p.oscBuf = p.oscBuf[:0]
		p.state = GROUND
	}()

	body := p.oscBuf
	sep := -1
	for i, c := range body {
		if c == ';' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return
	}
	ps, err := strconv.Atoi(string(body[:sep]))
	if err != nil {
		return
	}
	pt := string(body[sep+1:])

	switch {
	case ps == 0:
		p.sink.SetTitle(pt)
		p.sink.SetIconName(pt)
	case ps == 1:
		p.sink.SetIconName(pt)
	case ps == 2:
		p.sink.SetTitle(pt)
	case ps >= 10 && ps <= 14:
		p.sink.SetButtonLabel(ps-10, pt)
	}
}

func (p *Parser) stepDCS(b byte, class byteClass) {
	switch class {
	case classEsc:
		p.state = ESC
	case classCancel:
		p.resetToGround()
	default:
		// DCS/SOS/PM/APC payloads carry no meaning for this core;
		// content is discarded, only the terminator matters.
	}
}
