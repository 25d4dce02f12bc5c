package grid

// Position identifies a cell location in the grid (0-based row, col),
// grounded on the teacher's buffer.go Position — used by DirtyCells
// and by tests that want to assert "exactly these cells changed"
// without reaching into Grid internals.
type Position struct {
	Row, Col int
}

// Before reports whether p comes before other in reading order
// (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Equal reports whether p and other name the same cell.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}
