package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGrid(w, h int) *Grid {
	g := New(w, h)
	g.Reset(ColorDefault, ColorDefault)
	return g
}

func rowText(g *Grid, row int) string {
	out := make([]rune, g.Width())
	for col := range out {
		out[col] = g.Cell(row, col).Rune()
	}
	return string(out)
}

func putString(g *Grid, s string) {
	for _, r := range s {
		var buf [4]byte
		n := copy(buf[:], string(r))
		g.PutGlyph(buf[:n])
	}
}

// S1: "Hi" on a fresh 10x3 grid.
func TestScenarioS1PutGlyph(t *testing.T) {
	g := newTestGrid(10, 3)
	putString(g, "Hi")
	require.Equal(t, byte('H'), g.Cell(0, 0).Glyph()[0])
	require.Equal(t, byte('i'), g.Cell(0, 1).Glyph()[0])
	require.Equal(t, 0, g.Cursor().Row)
	require.Equal(t, 2, g.Cursor().Col)
}

// S2: "AB\rC" -> row 0 = "CB", cursor at (0,1).
func TestScenarioS2CarriageReturn(t *testing.T) {
	g := newTestGrid(10, 3)
	putString(g, "AB")
	g.CR()
	putString(g, "C")
	require.Equal(t, "CB        ", rowText(g, 0))
	require.Equal(t, 1, g.Cursor().Col)
}

// S3: 5x3 grid, "12345" wraps into pending-wrap, then one more glyph
// starts row 1.
func TestScenarioS3AutoWrap(t *testing.T) {
	g := newTestGrid(5, 3)
	putString(g, "12345")
	require.Equal(t, "12345", rowText(g, 0))
	require.Equal(t, 5, g.Cursor().Col, "expected pending-wrap at col==width")

	putString(g, "X")
	require.Equal(t, 1, g.Cursor().Row)
	require.Equal(t, byte('X'), g.Cell(1, 0).Glyph()[0])
}

func TestInsertDeleteCharactersInvariant(t *testing.T) {
	g := newTestGrid(10, 1)
	putString(g, "ABCDEFGHIJ")
	g.CursorSet(0, 2)
	g.InsertCharacters(3)
	g.DeleteCharacters(3)
	require.Equal(t, "ABCDEFG", rowText(g, 0)[:7], "leading cells before the shift must be unchanged")
}

func TestScrollUpDownPreservesRows(t *testing.T) {
	g := newTestGrid(5, 5)
	for row := 0; row < 5; row++ {
		g.CursorSet(row, 0)
		putString(g, string(rune('A'+row)))
	}
	before := make([]string, 5)
	for row := range before {
		before[row] = rowText(g, row)
	}

	g.ScrollUp(2)
	g.ScrollDown(2)

	// Rows that were not vacated by the round trip (the middle of the
	// grid) must read back unchanged.
	require.Equal(t, before[2], rowText(g, 2))
}

func TestCursorSaveRestore(t *testing.T) {
	g := newTestGrid(10, 5)
	g.CursorSet(2, 3)
	g.CursorSave(true)

	g.CursorSet(4, 4)
	g.Cursor().Attrs |= AttrBold
	g.CursorRestore(true)

	require.Equal(t, 2, g.Cursor().Row)
	require.Equal(t, 3, g.Cursor().Col)
	require.Zero(t, g.Cursor().Attrs, "restore must not carry the post-save bold forward")
}

func TestScrollRegionClipsCursorMove(t *testing.T) {
	g := newTestGrid(10, 10)
	g.SetScrollRegion(2, 6)
	g.CursorSet(2, 0)
	g.CursorMove(-5, 0, false)
	require.Equal(t, 2, g.Cursor().Row, "a move up from inside the region stops at the region top")
}

// S4: "\x1b[2J\x1b[H" after arbitrary content clears the grid and
// homes the cursor.
func TestScenarioS4ClearAllHome(t *testing.T) {
	g := newTestGrid(8, 4)
	putString(g, "garbage!")
	g.Clear(ClearAll)
	g.CursorSet(0, 0)

	for row := 0; row < g.Height(); row++ {
		require.Equal(t, "        ", rowText(g, row))
	}
	require.Equal(t, 0, g.Cursor().Row)
	require.Equal(t, 0, g.Cursor().Col)
}

// S8: ESC # 8 fills every cell with 'E'.
func TestScenarioS8FillWithE(t *testing.T) {
	g := newTestGrid(6, 3)
	g.FillWithE()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			require.Equal(t, byte('E'), g.Cell(row, col).Glyph()[0])
		}
	}
}

func TestResizeClipsCursorAndRebuildsTabStops(t *testing.T) {
	g := newTestGrid(20, 10)
	g.CursorSet(9, 19)
	g.Resize(5, 5)
	require.LessOrEqual(t, g.Cursor().Row, 4)
	require.LessOrEqual(t, g.Cursor().Col, 5)
	require.Equal(t, 4, g.NextTabStop(), "no default stop falls inside a 5-wide grid, so the next stop is width-1")
}

func TestDirtyCellsTracksPutGlyphAndClears(t *testing.T) {
	g := newTestGrid(5, 2)
	g.ClearAllDirty()
	require.False(t, g.HasDirty())

	putString(g, "Hi")
	require.True(t, g.HasDirty())
	dirty := g.DirtyCells()
	require.Contains(t, dirty, Position{Row: 0, Col: 0})
	require.Contains(t, dirty, Position{Row: 0, Col: 1})

	g.ClearAllDirty()
	require.False(t, g.HasDirty())
	require.Empty(t, g.DirtyCells())
}

func TestPositionOrdering(t *testing.T) {
	a := Position{Row: 0, Col: 5}
	b := Position{Row: 1, Col: 0}
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
	require.True(t, a.Equal(Position{Row: 0, Col: 5}))
}

func TestCursorInvariantAfterArbitraryMovement(t *testing.T) {
	g := newTestGrid(10, 5)
	moves := []struct{ dy, dx int }{{-3, 2}, {7, -1}, {0, 50}, {-50, 0}}
	for _, m := range moves {
		g.CursorMove(m.dy, m.dx, true)
		require.GreaterOrEqual(t, g.Cursor().Row, 0)
		require.Less(t, g.Cursor().Row, g.Height())
		require.GreaterOrEqual(t, g.Cursor().Col, 0)
		require.LessOrEqual(t, g.Cursor().Col, g.Width())
	}
}
