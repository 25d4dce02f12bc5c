package grid

// MaxCells is the hard upper bound on grid capacity (spec §3: "W·H ≤
// 2000"). The backing array is allocated once at this size and never
// grows; resize only changes how much of it is active.
const MaxCells = 2000

// MaxWidth and MaxHeight are the per-dimension caps of spec §3.
const (
	MaxWidth  = 80
	MaxHeight = 25
)

// ClearMode selects the range cleared by Clear/ClearLine (spec §4.1).
type ClearMode int

const (
	ClearToCursor ClearMode = iota
	ClearFromCursor
	ClearAll
)

// Modes is the bitset of terminal mode flags of spec §3 "Mode flags".
type Modes uint16

const (
	ModeAutoWrap Modes = 1 << iota
	ModeInsert
	ModeCursorVisible
	ModeNewline
	ModeOrigin
	ModeAppKeypad
	ModeAppCursor
	ModeFnAlt
	ModeScreenReverse
)

// defaultModes are the documented defaults of spec §3: auto-wrap on,
// insert off, cursor visible on, newline-mode off, origin off,
// app-keypad off, app-cursor off. fn-alt defaults per configuration
// and is applied separately by the config/termcore layer.
const defaultModes = ModeAutoWrap | ModeCursorVisible

// Grid is the fixed-capacity screen: cells, cursor, saved-cursor
// slots, tab stops, scroll region, and mode flags (spec §3, §4.1).
// It owns no goroutines and performs no locking; spec §5 requires the
// host to never call into it concurrently with a serialization read.
type Grid struct {
	width, height int

	cells [MaxCells]Cell

	cursor Cursor

	// savedAttrs is the DECSC-style slot (ESC 7 / CSI s per some
	// terminals' convention, here kept distinct per spec §3 "two
	// independent save slots"); savedPos is the cursor-only slot.
	savedAttrs SavedCursor
	savedPos   SavedCursor

	tabStops [MaxWidth]bool

	top, bottom int // scroll region [top, bottom], inclusive, 0 <= top < bottom < height

	Modes Modes

	DefaultFg, DefaultBg Color
}

// New creates a grid of the given size, clamped to [1,80]x[1,25] and
// to the W*H <= MaxCells bound, with default tab stops, full-height
// scroll region, and default mode flags.
func New(width, height int) *Grid {
	g := &Grid{DefaultFg: ColorDefault, DefaultBg: ColorDefault, Modes: defaultModes}
	g.Resize(width, height)
	return g
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampSize(width, height int) (int, int) {
	width = clampInt(width, 1, MaxWidth)
	height = clampInt(height, 1, MaxHeight)
	for width*height > MaxCells {
		if height > 1 {
			height--
		} else {
			width--
		}
	}
	return width, height
}

// Width and Height report the active grid extent.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// index returns the backing-array slot for (row, col). Callers must
// ensure 0 <= row < height and 0 <= col < width.
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// Cell returns a pointer to the cell at (row, col), or nil if out of
// the active region.
func (g *Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return nil
	}
	return &g.cells[g.index(row, col)]
}

// Cursor returns a pointer to the live cursor.
func (g *Grid) Cursor() *Cursor { return &g.cursor }

// ScrollRegion returns the current [top, bottom] rows, inclusive.
func (g *Grid) ScrollRegion() (top, bottom int) { return g.top, g.bottom }

// --- construction / reset / resize ---

// Reset re-initializes all grid-level state: mode flags to defaults,
// grid cleared, cursor homed, both save slots emptied, default tab
// stops, full-height scroll region, charset slots back to US ASCII
// (spec §4.1 "reset()"). defaultFg/defaultBg become the colors used
// to blank cells and are also applied to the cursor's current
// rendering state.
func (g *Grid) Reset(defaultFg, defaultBg Color) {
	g.DefaultFg, g.DefaultBg = defaultFg, defaultBg
	g.Modes = defaultModes
	g.top, g.bottom = 0, g.height-1
	g.resetTabStops()
	g.cursor = Cursor{Fg: defaultFg, Bg: defaultBg}
	g.savedAttrs = SavedCursor{}
	g.savedPos = SavedCursor{}
	g.clearAllCells()
}

func (g *Grid) resetTabStops() {
	for i := range g.tabStops {
		g.tabStops[i] = i > 0 && i%8 == 0
	}
}

func (g *Grid) blank() Cell {
	c := Blank()
	c.Fg, c.Bg = g.DefaultFg, g.DefaultBg
	c.MarkDirty()
	return c
}

// setCell overwrites the cell at (row, col) and marks it dirty,
// grounded on the teacher's Buffer.SetCell. The shift, scroll, clear
// and fill mutators write cells through here (or through blank(),
// which pre-marks its result dirty); PutGlyph edits its cell in place
// and marks it dirty itself.
func (g *Grid) setCell(row, col int, c Cell) {
	dst := g.Cell(row, col)
	if dst == nil {
		return
	}
	c.MarkDirty()
	*dst = c
}

// moveCell copies the cell at (srow, scol) onto (drow, dcol), used by
// the row-shift helpers below; the destination is marked dirty even
// though the source's own dirty bit travels with it, since a cell
// that changed location has visibly changed regardless of whether its
// content differs from what used to be there.
func (g *Grid) moveCell(drow, dcol, srow, scol int) {
	src := g.Cell(srow, scol)
	if src == nil {
		return
	}
	g.setCell(drow, dcol, *src)
}

// DirtyCells returns the positions of every cell modified since the
// last ClearAllDirty call, grounded on the teacher's
// Buffer.DirtyCells. A renderer uses this to redraw only what
// changed instead of the whole active region.
func (g *Grid) DirtyCells() []Position {
	var out []Position
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.Cell(row, col).IsDirty() {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// HasDirty reports whether any active cell is currently dirty.
func (g *Grid) HasDirty() bool {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.Cell(row, col).IsDirty() {
				return true
			}
		}
	}
	return false
}

// ClearAllDirty resets the dirty flag on every active cell.
func (g *Grid) ClearAllDirty() {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			g.Cell(row, col).ClearDirty()
		}
	}
}

// CursorPosition returns the cursor's current (row, col) as a
// Position, clipped exactly as the cursor itself is (Col may equal
// width, the pending-wrap state).
func (g *Grid) CursorPosition() Position {
	return Position{Row: g.cursor.Row, Col: g.cursor.Col}
}

func (g *Grid) clearAllCells() {
	blank := g.blank()
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			g.cells[g.index(row, col)] = blank
		}
	}
}

// Resize changes dimensions in place (spec §4.1 "resize()"). Cells
// beyond the new extent are discarded; newly exposed cells are blank.
// The cursor is clipped. Tab stops and the scroll region are rebuilt
// to defaults, matching the teacher's Buffer.Resize which always
// resets the scroll bookkeeping on a dimension change.
func (g *Grid) Resize(width, height int) {
	width, height = clampSize(width, height)

	oldWidth, oldHeight := g.width, g.height
	var old [MaxCells]Cell
	copy(old[:], g.cells[:])

	g.width, g.height = width, height
	blank := g.blank()

	minW, minH := width, height
	if oldWidth < minW {
		minW = oldWidth
	}
	if oldHeight < minH {
		minH = oldHeight
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if row < minH && col < minW {
				g.cells[g.index(row, col)] = old[row*oldWidth+col]
			} else {
				g.cells[g.index(row, col)] = blank
			}
		}
	}

	g.cursor.Row = clampInt(g.cursor.Row, 0, height-1)
	g.cursor.Col = clampInt(g.cursor.Col, 0, width)
	g.top, g.bottom = 0, height-1
	g.resetTabStops()
}

// --- cursor movement ---

// originTop returns the effective top bound for vertical movement:
// the scroll region top when origin mode is active, else 0.
func (g *Grid) originTop() int {
	if g.Modes&ModeOrigin != 0 {
		return g.top
	}
	return 0
}

func (g *Grid) originBottom() int {
	if g.Modes&ModeOrigin != 0 {
		return g.bottom
	}
	return g.height - 1
}

// CursorSet is cursor_set(y, x): absolute move, clipped to the grid
// (or, in origin mode, to the scroll region), clearing pending wrap.
func (g *Grid) CursorSet(y, x int) {
	lo, hi := g.originTop(), g.originBottom()
	if g.Modes&ModeOrigin != 0 {
		y += g.top
	}
	g.cursor.Row = clampInt(y, lo, hi)
	g.cursor.Col = clampInt(x, 0, g.width-1)
}

// CursorSetCol moves the cursor to an absolute column, leaving the row
// untouched. Used by CHA/HPA, which address the column only and must
// not run the row through CursorSet's origin-mode transform.
func (g *Grid) CursorSetCol(x int) {
	g.cursor.Col = clampInt(x, 0, g.width-1)
}

// CursorMove is cursor_move(dy, dx, scroll) of spec §4.1. Horizontal
// motion clips to [0, width-1]. Vertical motion within the scroll
// region clips when scroll is false; when scroll is true and the move
// would cross a scroll-region boundary, it performs index/reverse-
// index scrolls for each excess row instead of clipping. Per spec §9
// Open Question (b), if the cursor starts outside the scroll region,
// scroll is treated as false (no scrolling).
func (g *Grid) CursorMove(dy, dx int, scroll bool) {
	g.cursor.Col = clampInt(g.cursor.Col+dx, 0, g.width-1)

	if dy == 0 {
		return
	}

	insideRegion := g.cursor.Row >= g.top && g.cursor.Row <= g.bottom
	if !scroll || !insideRegion {
		lo, hi := g.originTop(), g.originBottom()
		if insideRegion {
			lo, hi = g.top, g.bottom
		}
		g.cursor.Row = clampInt(g.cursor.Row+dy, lo, hi)
		return
	}

	if dy > 0 {
		for i := 0; i < dy; i++ {
			g.indexDown()
		}
	} else {
		for i := 0; i < -dy; i++ {
			g.reverseIndex()
		}
	}
}

// indexDown moves the cursor down one row, scrolling the region up by
// one when the cursor sits on the bottom scroll-region boundary (the
// IND behavior LF/VT/FF and auto-wrap rely on).
func (g *Grid) indexDown() {
	if g.cursor.Row == g.bottom {
		g.ScrollUp(1)
		return
	}
	if g.cursor.Row < g.height-1 {
		g.cursor.Row++
	}
}

// reverseIndex moves the cursor up one row, scrolling the region down
// by one when the cursor sits on the top scroll-region boundary (ESC
// M).
func (g *Grid) reverseIndex() {
	if g.cursor.Row == g.top {
		g.ScrollDown(1)
		return
	}
	if g.cursor.Row > 0 {
		g.cursor.Row--
	}
}

// IndexDown and ReverseIndex expose indexDown/reverseIndex for the
// ANSI interpreter (LF/VT/FF, CR+LF, ESC D, ESC M).
func (g *Grid) IndexDown()    { g.indexDown() }
func (g *Grid) ReverseIndex() { g.reverseIndex() }

// CR moves to column 0 of the current row, clearing pending wrap.
func (g *Grid) CR() { g.cursor.Col = 0 }

// NextLine is ESC E / CNL-style "move to column 0 of the next row",
// scrolling as IndexDown would.
func (g *Grid) NextLine() {
	g.indexDown()
	g.cursor.Col = 0
}

// --- save / restore ---

// CursorSave captures the cursor into one of the two slots.
func (g *Grid) CursorSave(withAttrs bool) {
	if withAttrs {
		g.savedAttrs.Save(&g.cursor, true)
	} else {
		g.savedPos.Save(&g.cursor, false)
	}
}

// CursorRestore restores the cursor from one of the two slots.
func (g *Grid) CursorRestore(withAttrs bool) {
	if withAttrs {
		g.savedAttrs.Restore(&g.cursor)
	} else {
		g.savedPos.Restore(&g.cursor)
	}
	g.cursor.Col = clampInt(g.cursor.Col, 0, g.width-1)
	g.cursor.Row = clampInt(g.cursor.Row, 0, g.height-1)
}

// --- writing ---

// PutGlyph is put_glyph(utf8_bytes) of spec §4.1.
func (g *Grid) PutGlyph(glyph []byte) {
	if g.Modes&ModeAutoWrap != 0 && g.cursor.Col == g.width {
		g.indexDown()
		g.cursor.Col = 0
	}
	if g.cursor.Col >= g.width {
		g.cursor.Col = g.width - 1
	}

	if g.Modes&ModeInsert != 0 {
		g.shiftRowRight(g.cursor.Row, g.cursor.Col, 1)
	}

	c := g.Cell(g.cursor.Row, g.cursor.Col)
	c.SetGlyph(glyph)
	c.Fg, c.Bg, c.Attrs = g.cursor.Fg, g.cursor.Bg, g.cursor.Attrs
	c.MarkDirty()

	if g.cursor.Col+1 == g.width {
		if g.Modes&ModeAutoWrap != 0 {
			g.cursor.Col = g.width // pending wrap
		}
		// else: clamp, stay at width-1
	} else {
		g.cursor.Col++
	}
}

// --- editing ---

// shiftRowRight moves cells [col, width-n) right by n within row,
// dropping the tail; vacated cells at [col, col+n) become blank. Used
// by insert-mode writes and InsertCharacters.
func (g *Grid) shiftRowRight(row, col, n int) {
	if n <= 0 {
		return
	}
	for c := g.width - 1; c >= col+n; c-- {
		g.moveCell(row, c, row, c-n)
	}
	blank := g.blank()
	for c := col; c < col+n && c < g.width; c++ {
		g.setCell(row, c, blank)
	}
}

// shiftRowLeft moves cells [col+n, width) left by n within row;
// vacated cells at the tail become blank. Used by DeleteCharacters.
func (g *Grid) shiftRowLeft(row, col, n int) {
	if n <= 0 {
		return
	}
	blank := g.blank()
	for c := col; c < g.width; c++ {
		if c+n < g.width {
			g.moveCell(row, c, row, c+n)
		} else {
			g.setCell(row, c, blank)
		}
	}
}

// InsertCharacters is insert_characters(n): shift cells in the
// current row starting at the cursor right by n, filling vacated
// cells with blanks.
func (g *Grid) InsertCharacters(n int) {
	if n < 1 {
		n = 1
	}
	g.shiftRowRight(g.cursor.Row, g.cursor.Col, n)
}

// DeleteCharacters is delete_characters(n): shift cells left by n
// starting at the cursor, filling vacated cells with blanks.
func (g *Grid) DeleteCharacters(n int) {
	if n < 1 {
		n = 1
	}
	g.shiftRowLeft(g.cursor.Row, g.cursor.Col, n)
}

// EraseCharacters is erase_characters(n): clear n cells starting at
// the cursor without shifting the remainder of the row (CSI X, unlike
// DeleteCharacters which closes the gap).
func (g *Grid) EraseCharacters(n int) {
	if n < 1 {
		n = 1
	}
	to := g.cursor.Col + n - 1
	if to > g.width-1 {
		to = g.width - 1
	}
	g.clearLineRange(g.cursor.Row, g.cursor.Col, to, g.blank())
}

// ScrollUp is scroll_up(n): move rows within the scroll region up by
// n, filling vacated rows with blanks. n >= region height clears it.
func (g *Grid) ScrollUp(n int) {
	g.scrollRegionRows(g.top, g.bottom, n, true)
}

// ScrollDown is scroll_down(n): the mirror of ScrollUp.
func (g *Grid) ScrollDown(n int) {
	g.scrollRegionRows(g.top, g.bottom, n, false)
}

// scrollRegionRows implements both ScrollUp/ScrollDown and
// InsertLines/DeleteLines (which are scrolls confined to [row,
// bottom] instead of [top, bottom]).
func (g *Grid) scrollRegionRows(top, bottom, n int, up bool) {
	if top > bottom || n <= 0 {
		return
	}
	height := bottom - top + 1
	if n >= height {
		g.clearRows(top, bottom)
		return
	}

	blank := g.blank()
	if up {
		for row := top; row <= bottom-n; row++ {
			g.copyRow(row, row+n)
		}
		for row := bottom - n + 1; row <= bottom; row++ {
			g.fillRow(row, blank)
		}
	} else {
		for row := bottom; row >= top+n; row-- {
			g.copyRow(row, row-n)
		}
		for row := top; row < top+n; row++ {
			g.fillRow(row, blank)
		}
	}
}

func (g *Grid) copyRow(dst, src int) {
	for col := 0; col < g.width; col++ {
		g.moveCell(dst, col, src, col)
	}
}

func (g *Grid) fillRow(row int, blank Cell) {
	for col := 0; col < g.width; col++ {
		g.setCell(row, col, blank)
	}
}

func (g *Grid) clearRows(top, bottom int) {
	blank := g.blank()
	for row := top; row <= bottom; row++ {
		g.fillRow(row, blank)
	}
}

// InsertLines is insert_lines(n): effective only when the cursor sits
// inside the scroll region; shifts rows [cursorRow, bottom] down by
// n, filling vacated rows with blanks.
func (g *Grid) InsertLines(n int) {
	if n < 1 {
		n = 1
	}
	if g.cursor.Row < g.top || g.cursor.Row > g.bottom {
		return
	}
	g.scrollRegionRows(g.cursor.Row, g.bottom, n, false)
}

// DeleteLines is delete_lines(n): the mirror of InsertLines, shifting
// rows [cursorRow, bottom] up by n.
func (g *Grid) DeleteLines(n int) {
	if n < 1 {
		n = 1
	}
	if g.cursor.Row < g.top || g.cursor.Row > g.bottom {
		return
	}
	g.scrollRegionRows(g.cursor.Row, g.bottom, n, true)
}

// Clear implements clear(mode) over the whole grid (ED).
func (g *Grid) Clear(mode ClearMode) {
	blank := g.blank()
	row, col := g.cursor.Row, g.cursor.Col
	switch mode {
	case ClearFromCursor:
		g.clearLineRange(row, col, g.width-1, blank)
		if row < g.height-1 {
			g.clearRows(row+1, g.height-1)
		}
	case ClearToCursor:
		if row > 0 {
			g.clearRows(0, row-1)
		}
		g.clearLineRange(row, 0, col, blank)
	case ClearAll:
		g.clearRows(0, g.height-1)
	}
}

// ClearLine implements clear_line(mode) over the current row (EL).
func (g *Grid) ClearLine(mode ClearMode) {
	blank := g.blank()
	row, col := g.cursor.Row, g.cursor.Col
	switch mode {
	case ClearFromCursor:
		g.clearLineRange(row, col, g.width-1, blank)
	case ClearToCursor:
		g.clearLineRange(row, 0, col, blank)
	case ClearAll:
		g.clearLineRange(row, 0, g.width-1, blank)
	}
}

func (g *Grid) clearLineRange(row, from, to int, blank Cell) {
	for col := from; col <= to && col < g.width; col++ {
		if col < 0 {
			continue
		}
		g.setCell(row, col, blank)
	}
}

// FillWithE is fill_with_E(), the DEC alignment test (ESC # 8):
// overwrite every cell with 'E' using default fg/bg and no attrs.
func (g *Grid) FillWithE() {
	var e Cell
	e.SetGlyph([]byte{'E'})
	e.Fg, e.Bg = g.DefaultFg, g.DefaultBg
	for row := 0; row < g.height; row++ {
		g.fillRow(row, e)
	}
}

// --- scroll region / tab stops ---

// SetScrollRegion is DECSTBM: sets [top, bottom] (0-based, inclusive).
// Invalid ranges (top >= bottom) are ignored, matching spec §4.2
// "DECSTBM (r) — sets top/bottom".
func (g *Grid) SetScrollRegion(top, bottom int) {
	top = clampInt(top, 0, g.height-1)
	bottom = clampInt(bottom, 0, g.height-1)
	if top >= bottom {
		return
	}
	g.top, g.bottom = top, bottom
}

// SetTabStop sets a tab stop at the given column.
func (g *Grid) SetTabStop(col int) {
	if col >= 0 && col < g.width {
		g.tabStops[col] = true
	}
}

// ClearTabStop clears the tab stop at the given column.
func (g *Grid) ClearTabStop(col int) {
	if col >= 0 && col < g.width {
		g.tabStops[col] = false
	}
}

// ClearAllTabStops clears every tab stop.
func (g *Grid) ClearAllTabStops() {
	for i := range g.tabStops {
		g.tabStops[i] = false
	}
}

// NextTabStop returns the next stop after the cursor, or width-1 if
// none remain (HT: "advance to next tab stop or column W-1").
func (g *Grid) NextTabStop() int {
	for c := g.cursor.Col + 1; c < g.width; c++ {
		if g.tabStops[c] {
			return c
		}
	}
	return g.width - 1
}

// Tab advances the cursor to the next tab stop.
func (g *Grid) Tab() {
	g.cursor.Col = g.NextTabStop()
}
