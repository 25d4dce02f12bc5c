// Package termcore is the Terminal facade of SPEC_FULL.md §2: it owns
// one Grid, one ANSI Parser, and one Configuration bundle pair, and is
// the "single owned Terminal value" spec.md §9 calls for in place of
// the original firmware's process-wide globals. Grounded on the
// teacher's Option-functional Terminal construction (terminal.go) and
// provider-hook pattern (providers.go), generalized from the
// teacher's dual-buffer/scrollback/image-capable terminal down to the
// single fixed grid and narrower hook set spec.md §4.1-§4.3 and §6
// actually call for.
package termcore

import (
	"github.com/espterm/termcore/ansi"
	"github.com/espterm/termcore/config"
	"github.com/espterm/termcore/grid"
)

// Ensure Terminal implements the interpreter's dispatch target.
var _ ansi.Sink = (*Terminal)(nil)

// Terminal couples a Grid, an ansi.Parser, and a config.Bundle pair
// (persisted baseline + mutable scratch), exactly the three
// components of spec §2. It performs no internal locking: spec §5
// requires the host to never call Feed concurrently with a
// serialization read, so Terminal carries none of the teacher's
// sync.RWMutex (see DESIGN.md).
type Terminal struct {
	grid   *grid.Grid
	parser *ansi.Parser

	baseline config.Bundle
	scratch  config.Bundle

	iconName string

	emit          EmitFunc
	notify        NotifyFunc
	bell          BellFunc
	keypadMode    KeypadModeFunc
	cursorKeyMode CursorKeyModeFunc
}

// Option configures a Terminal during construction, in the style of
// the teacher's functional options (terminal.go WithSize/WithBell/...).
type Option func(*Terminal)

// WithConfig sets the persisted baseline configuration. Defaults to
// config.Defaults() if not given.
func WithConfig(b config.Bundle) Option {
	return func(t *Terminal) { t.baseline = b }
}

// WithEmit sets the reply channel used for DSR/DA responses.
func WithEmit(f EmitFunc) Option {
	return func(t *Terminal) { t.emit = f }
}

// WithNotify sets the change-notification callback (spec §4.3).
func WithNotify(f NotifyFunc) Option {
	return func(t *Terminal) { t.notify = f }
}

// WithBell sets the bell handler.
func WithBell(f BellFunc) Option {
	return func(t *Terminal) { t.bell = f }
}

// WithKeypadMode sets the handler invoked when ESC =/> or DEC private
// mode 66 toggles application-keypad mode.
func WithKeypadMode(f KeypadModeFunc) Option {
	return func(t *Terminal) { t.keypadMode = f }
}

// WithCursorKeyMode sets the handler invoked when DEC private mode 1
// (DECCKM) toggles application-cursor-keys mode.
func WithCursorKeyMode(f CursorKeyModeFunc) Option {
	return func(t *Terminal) { t.cursorKeyMode = f }
}

// New builds a Terminal and applies its configuration with a full
// screen reset, mirroring how the host wires up the single instance
// at start (spec §9 "Global mutable state").
func New(opts ...Option) *Terminal {
	t := &Terminal{
		baseline:      config.Defaults(),
		emit:          noopEmit,
		notify:        noopNotify,
		bell:          noopBell,
		keypadMode:    noopKeypadMode,
		cursorKeyMode: noopCursorKeyMode,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.grid = grid.New(int(t.baseline.Width), int(t.baseline.Height))
	t.parser = ansi.NewParser(t)
	t.ApplySettings(true)
	return t
}

// Grid exposes the live grid for read access (cursor position,
// cells, modes) between Feed calls, per spec §5's consistency
// guarantee.
func (t *Terminal) Grid() *grid.Grid { return t.grid }

// Title returns the scratch configuration's current title.
func (t *Terminal) Title() string { return t.scratch.Title }

// ButtonLabel returns the 0-based button label slot, or "" if out of
// range.
func (t *Terminal) ButtonLabel(slot int) string {
	if slot < 0 || slot >= config.NumButtons {
		return ""
	}
	return t.scratch.Buttons[slot]
}

// IconName returns the most recent OSC 1 icon name (transient, not
// persisted).
func (t *Terminal) IconName() string { return t.iconName }

// Feed consumes an input chunk of any length, including zero (spec
// §6 "Input"). A non-empty chunk fires a single content-changed
// notification after the whole chunk is processed rather than one
// per mutating escape sequence — the host-side display timeout is
// what actually throttles redraws (spec §9 "Notification
// throttling"), so collapsing to one notification per Feed call loses
// nothing the collaborator would not have coalesced anyway.
func (t *Terminal) Feed(data []byte) {
	if len(data) == 0 {
		return
	}
	t.parser.Feed(data)
	t.notify(TopicContentChanged)
}

// ApplySettings is terminal_apply_settings(reset_screen) of spec
// §4.3: copies the persisted baseline into the scratch bundle. When
// resetScreen is true it also resizes and fully resets the grid
// (power-on state); when false it only updates width/height/colors,
// preserving existing cell content beyond what Resize itself discards
// (used for a live config change without a visible flash).
func (t *Terminal) ApplySettings(resetScreen bool) {
	t.scratch = t.baseline.Clone()
	fg := grid.Color(t.scratch.DefaultFg)
	bg := grid.Color(t.scratch.DefaultBg)

	if resetScreen {
		t.grid.Resize(int(t.scratch.Width), int(t.scratch.Height))
		t.grid.Reset(fg, bg)
		t.notify(TopicContentChanged)
	} else {
		t.grid.DefaultFg, t.grid.DefaultBg = fg, bg
		t.grid.Resize(int(t.scratch.Width), int(t.scratch.Height))
	}
	t.notify(TopicLabelsChanged)
}

// RestoreDefaults is terminal_restore_defaults(): the persisted
// baseline becomes config.Defaults() and is immediately re-applied
// with a full screen reset. Writing the new baseline to actual
// non-volatile storage is a host responsibility — spec.md §1 lists
// "Persistent configuration storage and its upgrade policy" as out of
// scope for this core.
func (t *Terminal) RestoreDefaults() {
	t.baseline = config.Defaults()
	t.ApplySettings(true)
}

// Notification topics (spec §4.3), re-exported from package ansi so
// callers need not import it just to compare topics.
const (
	TopicContentChanged = ansi.TopicContentChanged
	TopicLabelsChanged  = ansi.TopicLabelsChanged
)

// --- ansi.Sink ---

func (t *Terminal) SetTitle(title string) {
	t.scratch.Title = truncateField(title, config.TitleLen-1)
	t.notify(TopicLabelsChanged)
}

func (t *Terminal) SetIconName(name string) {
	t.iconName = truncateField(name, config.TitleLen-1)
}

func (t *Terminal) SetButtonLabel(slot int, text string) {
	if slot < 0 || slot >= config.NumButtons {
		return
	}
	t.scratch.Buttons[slot] = truncateField(text, config.ButtonLen-1)
	t.notify(TopicLabelsChanged)
}

func (t *Terminal) Emit(b []byte) { t.emit(b) }

func (t *Terminal) Notify(topic string) { t.notify(topic) }

func (t *Terminal) Bell() { t.bell() }

func (t *Terminal) SetKeypadApplication(on bool) { t.keypadMode(on) }

func (t *Terminal) SetCursorKeyApplication(on bool) { t.cursorKeyMode(on) }

func truncateField(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
