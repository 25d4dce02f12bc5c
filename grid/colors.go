package grid

// RGB is a resolved 24-bit color, used only at serialization/render
// time — the grid itself never stores anything but a 4-bit palette
// index or ColorDefault (spec §4.1 "Color semantics").
type RGB struct {
	R, G, B uint8
}

// DefaultPalette is the standard 16-color ANSI palette: 0-7 normal,
// 8-15 bright. Indices beyond 15 never occur in a Cell; SGR 38;5;N /
// 48;5;N map their 256-color argument down to the nearest of these 16
// (spec §9 Open Question (c): "any deterministic mapping is
// acceptable").
var DefaultPalette = [16]RGB{
	{0, 0, 0},       // 0 black
	{205, 0, 0},     // 1 red
	{0, 205, 0},     // 2 green
	{205, 205, 0},   // 3 yellow
	{0, 0, 238},     // 4 blue
	{205, 0, 205},   // 5 magenta
	{0, 205, 205},   // 6 cyan
	{229, 229, 229}, // 7 white
	{127, 127, 127}, // 8 bright black
	{255, 0, 0},     // 9 bright red
	{0, 255, 0},     // 10 bright green
	{255, 255, 0},   // 11 bright yellow
	{92, 92, 255},   // 12 bright blue
	{255, 0, 255},   // 13 bright magenta
	{0, 255, 255},   // 14 bright cyan
	{255, 255, 255}, // 15 bright white
}

// Resolve maps a stored Color to RGB, substituting def when c is
// ColorDefault or out of the valid palette range.
func Resolve(c Color, def RGB) RGB {
	if c < 0 || int(c) >= len(DefaultPalette) {
		return def
	}
	return DefaultPalette[c]
}

// Map256ToPalette maps a 256-color SGR index (38;5;N / 48;5;N, spec
// §4.2) to the nearest of the 16 palette entries this core stores.
//
//   - 0-15 map directly onto the same 16 entries (exact).
//   - 16-231 are the 6x6x6 color cube; mapped onto the 8 normal hues
//     by which half of its range each RGB component falls into, then
//     promoted to the bright range if any component is in the upper
//     half.
//   - 232-255 are the grayscale ramp; mapped to black for the darker
//     half and bright white for the lighter half.
func Map256ToPalette(n int) Color {
	switch {
	case n < 0:
		return 0
	case n < 16:
		return Color(n)
	case n < 232:
		n -= 16
		r := (n / 36) % 6
		g := (n / 6) % 6
		b := n % 6
		idx := 0
		if r >= 3 {
			idx |= 1
		}
		if g >= 3 {
			idx |= 2
		}
		if b >= 3 {
			idx |= 4
		}
		bright := r >= 3 || g >= 3 || b >= 3
		if bright {
			return Color(8 + idx%8)
		}
		return Color(idx % 8)
	default:
		level := n - 232 // 0..23
		if level >= 12 {
			return 15 // bright white
		}
		return 0 // black
	}
}
