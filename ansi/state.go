// Package ansi implements the byte-driven VT500-style state machine
// that decodes the C0/CSI/ESC/OSC/DCS escape dialects and the UTF-8
// accumulator, dispatching decoded operations onto a Sink (spec §4.2
// "ANSI Interpreter").
package ansi

// State names the parser's explicit states, matching spec §4.2's
// table exactly.
type State int

const (
	GROUND State = iota
	ESC
	ESC_INT
	CSI_ENTRY
	CSI_PARAM
	CSI_INT
	CSI_IGNORE
	OSC_STRING
	DCS_STRING
	CHARSET_DESIGNATE
	UTF8_CONT
)

// byteClass categorizes a raw byte for the top-level dispatch in
// parser.go (spec §9: "Byte-class can be precomputed into a 256-entry
// table"). Finer-grained distinctions within a class (intermediate
// vs. final, param digit vs. separator) are range-checked directly by
// each per-state handler, which keeps this table small and the
// handlers readable.
type byteClass int

const (
	classC0      byteClass = iota // 0x00-0x1F except ESC/CAN/SUB
	classEsc                      // 0x1B
	classCancel                   // 0x18, 0x1A
	classDel                      // 0x7F
	classPrintable                // 0x20-0x7E
	classUTF8Lead2                // 0xC2-0xDF
	classUTF8Lead3                // 0xE0-0xEF
	classUTF8Lead4                // 0xF0-0xF4
	classUTF8Cont                 // 0x80-0xBF (continuation, or a malformed lone byte)
	classInvalid                   // 0xC0, 0xC1, 0xF5-0xFF: never valid as a lead byte
)

var classTable [256]byteClass

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b == 0x18 || b == 0x1A:
			classTable[i] = classCancel
		case b == 0x1B:
			classTable[i] = classEsc
		case b < 0x20:
			classTable[i] = classC0
		case b == 0x7F:
			classTable[i] = classDel
		case b >= 0x20 && b <= 0x7E:
			classTable[i] = classPrintable
		case b >= 0xC2 && b <= 0xDF:
			classTable[i] = classUTF8Lead2
		case b >= 0xE0 && b <= 0xEF:
			classTable[i] = classUTF8Lead3
		case b >= 0xF0 && b <= 0xF4:
			classTable[i] = classUTF8Lead4
		case b >= 0x80 && b <= 0xBF:
			classTable[i] = classUTF8Cont
		default: // 0xC0, 0xC1, 0xF5-0xFF
			classTable[i] = classInvalid
		}
	}
}

// isCSIFinal reports whether b is a valid final byte for a CSI
// sequence (0x40-0x7E).
func isCSIFinal(b byte) bool { return b >= 0x40 && b <= 0x7E }

// isIntermediate reports whether b is an intermediate byte
// (0x20-0x2F), valid in ESC_INT and CSI_INT.
func isIntermediate(b byte) bool { return b >= 0x20 && b <= 0x2F }

// isCSIParamByte reports whether b continues CSI parameter
// collection: digits, ';', and the private/sub-parameter markers
// ('?', '<', '=', '>') spec §4.2 groups under "a leading '?' marks
// DEC-private".
func isCSIParamByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';' || b == '?' || b == '<' || b == '=' || b == '>'
}
