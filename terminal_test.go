package termcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/espterm/termcore/config"
	"github.com/espterm/termcore/grid"
)

func rowText(g *grid.Grid, row int) string {
	out := make([]rune, g.Width())
	for col := range out {
		out[col] = g.Cell(row, col).Rune()
	}
	return string(out)
}

func newTestTerminal(width, height int32) *Terminal {
	cfg := config.Defaults()
	cfg.Width, cfg.Height = width, height
	return New(WithConfig(cfg))
}

// S1: feeding "Hi" through Terminal.Feed lands in the grid.
func TestScenarioS1Feed(t *testing.T) {
	term := newTestTerminal(10, 3)
	term.Feed([]byte("Hi"))
	require.Equal(t, "Hi", rowText(term.Grid(), 0)[:2])
}

// S6: CSI 3;5H with and without origin mode, with a scroll region of
// rows [1,8] (0-based), lands at different absolute positions.
func TestScenarioS6OriginModeCursorPositioning(t *testing.T) {
	term := newTestTerminal(26, 10)
	term.Feed([]byte("\x1b[2;9r")) // DECSTBM rows 2..9 (1-based) -> region [1,8]

	term.Feed([]byte("\x1b[3;5H"))
	require.Equal(t, 2, term.Grid().Cursor().Row)
	require.Equal(t, 4, term.Grid().Cursor().Col)

	term.Feed([]byte("\x1b[?6h")) // DECOM on
	term.Feed([]byte("\x1b[3;5H"))
	require.Equal(t, 3, term.Grid().Cursor().Row)
	require.Equal(t, 4, term.Grid().Cursor().Col)
}

// CHA (CSI G) addresses the column only. With origin mode on and the
// scroll region still [1,8], it must leave the row exactly where CUP
// put it rather than running it back through the origin transform.
func TestCHALeavesRowUntouchedUnderOriginMode(t *testing.T) {
	term := newTestTerminal(26, 10)
	term.Feed([]byte("\x1b[2;9r")) // DECSTBM rows 2..9 (1-based) -> region [1,8]
	term.Feed([]byte("\x1b[?6h")) // DECOM on
	term.Feed([]byte("\x1b[3;5H"))
	require.Equal(t, 3, term.Grid().Cursor().Row)

	term.Feed([]byte("\x1b[10G")) // CHA to column 10 (1-based)
	require.Equal(t, 3, term.Grid().Cursor().Row, "CHA must not move the row")
	require.Equal(t, 9, term.Grid().Cursor().Col)
}

// S7: OSC 0 fires labels-changed exactly once, not once for title and
// once for icon.
func TestScenarioS7TitleNotifiesOnce(t *testing.T) {
	var topics []string
	term := New(
		WithConfig(config.Defaults()),
		WithNotify(func(topic string) { topics = append(topics, topic) }),
	)
	topics = nil // drop the notifications fired by New's initial ApplySettings
	term.Feed([]byte("\x1b]0;Hello\x07"))

	labelsChanged := 0
	for _, topic := range topics {
		if topic == TopicLabelsChanged {
			labelsChanged++
		}
	}
	require.Equal(t, 1, labelsChanged)
	require.Equal(t, "Hello", term.Title())
}

func TestApplySettingsWithoutResetPreservesContent(t *testing.T) {
	term := newTestTerminal(10, 3)
	term.Feed([]byte("Hi"))

	term.baseline.DefaultFg = 2
	term.ApplySettings(false)

	require.Equal(t, "Hi", rowText(term.Grid(), 0)[:2], "a non-resetting settings apply must not clear the grid")
}

func TestApplySettingsWithResetClearsGrid(t *testing.T) {
	term := newTestTerminal(10, 3)
	term.Feed([]byte("Hi"))
	term.ApplySettings(true)
	require.Equal(t, "          ", rowText(term.Grid(), 0))
}

func TestRestoreDefaultsResetsBaseline(t *testing.T) {
	term := newTestTerminal(40, 20)
	term.RestoreDefaults()
	require.Equal(t, int32(26), term.baseline.Width)
	require.Equal(t, int32(10), term.baseline.Height)
	require.Equal(t, "ESPTerm", term.Title())
}

func TestButtonLabelSlotBounds(t *testing.T) {
	term := newTestTerminal(10, 3)
	require.Equal(t, "", term.ButtonLabel(-1))
	require.Equal(t, "", term.ButtonLabel(config.NumButtons))
}

func TestSerializeScreenResumesAcrossCalls(t *testing.T) {
	term := newTestTerminal(5, 2)
	term.Feed([]byte("ab"))

	var cursor ScreenCursor
	var all []byte
	small := make([]byte, 9) // smaller than one full pass, forces resumption
	for {
		buf := make([]byte, len(small))
		n, more := term.SerializeScreen(buf, &cursor)
		all = append(all, buf[:n]...)
		if !more {
			break
		}
	}
	require.NotEmpty(t, all)

	var fresh ScreenCursor
	oneShot := make([]byte, 4096)
	n, more := term.SerializeScreen(oneShot, &fresh)
	require.False(t, more)
	require.Equal(t, all, oneShot[:n])
}

func TestSerializeLabelsRoundTripsTitleAndButtons(t *testing.T) {
	term := newTestTerminal(10, 3)
	term.Feed([]byte("\x1b]0;Hello\x07"))
	term.Feed([]byte("\x1b]10;A\x07"))

	buf := make([]byte, 1024)
	n := term.SerializeLabels(buf)
	require.Greater(t, n, 0)
	for _, b := range buf[:n] {
		require.NotZero(t, b, "serialized label bytes must never contain a NUL byte")
	}
}

func TestEncode2BNeverProducesZeroByte(t *testing.T) {
	for _, n := range []int{0, 1, 126, 127, 128, 16000, -5, 1 << 20} {
		enc := Encode2B(n)
		require.NotZero(t, enc[0])
		require.NotZero(t, enc[1])
	}
}
