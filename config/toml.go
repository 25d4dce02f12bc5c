package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// tomlDoc mirrors Bundle field-for-field in a human-editable shape;
// kept distinct from Bundle so the on-disk wire format (codec.go)
// never has to change shape to satisfy struct-tag conventions.
type tomlDoc struct {
	Width            int32    `toml:"width"`
	Height           int32    `toml:"height"`
	DefaultBg        uint8    `toml:"default_bg"`
	DefaultFg        uint8    `toml:"default_fg"`
	Title            string   `toml:"title"`
	Buttons          []string `toml:"buttons"`
	Theme            uint8    `toml:"theme"`
	ParserTimeoutMs  uint32   `toml:"parser_timeout_ms"`
	DisplayTimeoutMs uint32   `toml:"display_timeout_ms"`
	FnAltMode        bool     `toml:"fn_alt_mode"`
}

// DumpTOML renders b as human-readable TOML, grounded on
// javanhut-RavenTerminal's BurntSushi/toml dependency — an ops/debug
// path for inspecting or hand-editing the 200-byte bundle without a
// binary editor. It is additive: the wire format of Encode/Decode is
// unaffected.
func DumpTOML(b Bundle) (string, error) {
	doc := tomlDoc{
		Width:            b.Width,
		Height:           b.Height,
		DefaultBg:        b.DefaultBg,
		DefaultFg:        b.DefaultFg,
		Title:            b.Title,
		Buttons:          append([]string(nil), b.Buttons[:]...),
		Theme:            b.Theme,
		ParserTimeoutMs:  b.ParserTimeoutMs,
		DisplayTimeoutMs: b.DisplayTimeoutMs,
		FnAltMode:        b.FnAltMode,
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// LoadTOML parses the inverse of DumpTOML. Missing button slots are
// left empty rather than erroring.
func LoadTOML(text string) (Bundle, error) {
	var doc tomlDoc
	if _, err := toml.Decode(text, &doc); err != nil {
		return Bundle{}, err
	}
	b := Bundle{
		Width:            doc.Width,
		Height:           doc.Height,
		DefaultBg:        doc.DefaultBg,
		DefaultFg:        doc.DefaultFg,
		Title:            doc.Title,
		Theme:            doc.Theme,
		ParserTimeoutMs:  doc.ParserTimeoutMs,
		DisplayTimeoutMs: doc.DisplayTimeoutMs,
		FnAltMode:        doc.FnAltMode,
	}
	for i := 0; i < NumButtons && i < len(doc.Buttons); i++ {
		b.Buttons[i] = doc.Buttons[i]
	}
	return b.normalizeStrings(), nil
}
