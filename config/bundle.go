// Package config implements the Configuration & Mode Plane of spec
// §4.3: the 200-byte persisted settings bundle, factory defaults, and
// the codec that turns one into the other. Grounded on the teacher's
// construction-time Option pattern (terminal.go), generalized here
// into a value the host loads once and the root termcore package
// re-applies at runtime (spec §4.3 terminal_apply_settings).
package config

// NumButtons is the number of physical/virtual button labels the
// bundle carries (spec §3 "5 button labels").
const NumButtons = 5

// TitleLen and ButtonLen are the fixed field widths of spec §6's
// on-disk layout: title <=64 bytes, each button label <=10 bytes.
const (
	TitleLen  = 64
	ButtonLen = 10
)

// EncodedSize is the exact persisted record size of spec §6: "The
// configuration bundle is exactly 200 bytes". Field sizes are fixed
// forever for forward-compatible upgrades; adding a field means using
// part of the trailing padding, never resizing an existing one.
const EncodedSize = 200

// Bundle is the persisted configuration of spec §3/§6: screen size,
// default colors, title, button labels, theme, timeouts, and the
// function-key alternate mode flag. One Bundle is the on-disk
// baseline; termcore.Terminal keeps a second, identically-typed
// scratch copy that escape sequences and live reconfiguration mutate,
// re-seeded from the baseline by ApplySettings/RestoreDefaults.
type Bundle struct {
	Width, Height        int32
	DefaultBg, DefaultFg uint8
	Title                string
	Buttons              [NumButtons]string
	Theme                uint8
	ParserTimeoutMs      uint32
	DisplayTimeoutMs     uint32
	FnAltMode            bool
}

// Defaults returns the factory configuration of spec §6 "Defaults":
// 26x10, title "ESPTerm", 20ms display timeout, 10ms parser timeout,
// fn_alt_mode off, default fg 7 (white), default bg 0 (black).
func Defaults() Bundle {
	return Bundle{
		Width:            26,
		Height:           10,
		DefaultBg:        0,
		DefaultFg:        7,
		Title:            "ESPTerm",
		ParserTimeoutMs:  10,
		DisplayTimeoutMs: 20,
		FnAltMode:        false,
	}
}

// Clone returns an independent copy, used when seeding the scratch
// bundle from the persisted baseline.
func (b Bundle) Clone() Bundle {
	out := b
	out.Buttons = b.Buttons
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// normalizeStrings truncates Title and each button label to the field
// widths of spec §6, matching the "Overlong strings... truncated at
// the field length" policy of spec §7.
func (b Bundle) normalizeStrings() Bundle {
	b.Title = truncate(b.Title, TitleLen-1) // -1 leaves room for the NUL terminator spec §9(a) calls for
	for i := range b.Buttons {
		b.Buttons[i] = truncate(b.Buttons[i], ButtonLen-1)
	}
	return b
}
