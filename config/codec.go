package config

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// These offsets document the exact byte layout of spec §6: width(4),
// height(4), default_bg(1), default_fg(1), title(64), 5*button(10
// each=50), theme(1), parser_timeout_ms(4), display_timeout_ms(4),
// fn_alt_mode(1), padding to 200. This is the one part of the ambient
// stack built directly on the standard library rather than a pack
// dependency; see DESIGN.md for why a fixed hardware record layout
// has no natural third-party owner in this pack, and for the two pack
// repos (goserial, ssd1306) that use encoding/binary the same way for
// equivalent fixed-layout device records.
const (
	offWidth     = 0
	offHeight    = 4
	offBg        = 8
	offFg        = 9
	offTitle     = 10
	offButtons   = offTitle + TitleLen
	offTheme     = offButtons + NumButtons*ButtonLen
	offParserTO  = offTheme + 1
	offDisplayTO = offParserTO + 4
	offFnAlt     = offDisplayTO + 4
	usedBytes    = offFnAlt + 1
)

func init() {
	if usedBytes > EncodedSize {
		panic("config: encoded layout overflows EncodedSize")
	}
}

// putCString writes s, NUL-terminated and zero-padded, into the n-byte
// field dst. s is truncated to n-1 bytes first so the terminator
// always fits (spec §9 Open Question (a): "treat the stored region as
// ... explicitly terminated").
func putCString(dst []byte, s string, n int) {
	s = truncate(s, n-1)
	copy(dst, s)
	for i := len(s); i < n; i++ {
		dst[i] = 0
	}
}

func getCString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return string(src[:i])
	}
	return string(src)
}

// Encode renders b into the exact 200-byte layout of spec §6.
func Encode(b Bundle) [EncodedSize]byte {
	var out [EncodedSize]byte
	binary.BigEndian.PutUint32(out[offWidth:], uint32(b.Width))
	binary.BigEndian.PutUint32(out[offHeight:], uint32(b.Height))
	out[offBg] = b.DefaultBg
	out[offFg] = b.DefaultFg
	putCString(out[offTitle:offTitle+TitleLen], b.Title, TitleLen)
	for i, label := range b.Buttons {
		start := offButtons + i*ButtonLen
		putCString(out[start:start+ButtonLen], label, ButtonLen)
	}
	out[offTheme] = b.Theme
	binary.BigEndian.PutUint32(out[offParserTO:], b.ParserTimeoutMs)
	binary.BigEndian.PutUint32(out[offDisplayTO:], b.DisplayTimeoutMs)
	if b.FnAltMode {
		out[offFnAlt] = 1
	}
	return out
}

// Decode parses a 200-byte record produced by Encode. It returns an
// error only on a length mismatch; field contents are never rejected,
// matching spec §7's "lenient consumer" policy for the runtime parser
// (the codec is the one place a length check is still meaningful,
// since a short/long record means storage itself is corrupt).
func Decode(data []byte) (Bundle, error) {
	if len(data) != EncodedSize {
		return Bundle{}, fmt.Errorf("config: want %d bytes, got %d", EncodedSize, len(data))
	}
	var b Bundle
	b.Width = int32(binary.BigEndian.Uint32(data[offWidth:]))
	b.Height = int32(binary.BigEndian.Uint32(data[offHeight:]))
	b.DefaultBg = data[offBg]
	b.DefaultFg = data[offFg]
	b.Title = getCString(data[offTitle : offTitle+TitleLen])
	for i := range b.Buttons {
		start := offButtons + i*ButtonLen
		b.Buttons[i] = getCString(data[start : start+ButtonLen])
	}
	b.Theme = data[offTheme]
	b.ParserTimeoutMs = binary.BigEndian.Uint32(data[offParserTO:])
	b.DisplayTimeoutMs = binary.BigEndian.Uint32(data[offDisplayTO:])
	b.FnAltMode = data[offFnAlt] != 0
	return b, nil
}
