package ansi

import "github.com/espterm/termcore/grid"

// Sink is everything the interpreter dispatches onto: the Grid &
// Cursor Model (component 1) plus the handful of Configuration &
// Mode Plane (component 3) and host-collaborator hooks that escape
// sequences reach past the grid (title/labels, replies, bell,
// notifications). Grounded on the teacher's provider-interface
// pattern (providers.go) generalized from "external collaborator"
// hooks to the full set spec §6 names.
type Sink interface {
	// Grid returns the live grid the interpreter mutates.
	Grid() *grid.Grid

	// SetTitle / SetIconName apply OSC 0/1/2.
	SetTitle(title string)
	SetIconName(name string)

	// SetButtonLabel applies a custom OSC button-label sequence;
	// slot is 0-based (n-10 of the OSC 10-14 parameter, see osc.go).
	SetButtonLabel(slot int, text string)

	// Emit sends reply bytes to the host (DSR/DA/DECRQSS-style
	// responses). The interpreter never blocks on this call (spec
	// §6).
	Emit(b []byte)

	// Notify fires a change-notification topic ("content-changed" /
	// "labels-changed", spec §4.3).
	Notify(topic string)

	// Bell is called on C0 BEL (0x07) outside of an OSC string.
	Bell()

	// SetKeypadApplication / SetCursorKeyApplication toggle the DEC
	// private modes that live outside the Grid's own Modes bitset
	// because the host (not the grid) interprets them when encoding
	// key presses.
	SetKeypadApplication(on bool)
	SetCursorKeyApplication(on bool)
}

// Notification topics (spec §4.3).
const (
	TopicContentChanged = "content-changed"
	TopicLabelsChanged  = "labels-changed"
)
