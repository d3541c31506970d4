package maze

// Cell values stored in a Grid. Floor and Wall are the only values a
// generator produces; the remaining values are overlay markers used by
// observation snapshots.
const (
	Floor int8 = iota
	Wall
	Agent
	Target
	AgentOnTarget
)

// Position is a 0-indexed (row, column) cell address.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Directions is the canonical ordered displacement table: right, up,
// left, down. Action symbols index into it.
var Directions = [4]Position{
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
}

// Add returns the position displaced by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Equal reports whether two positions address the same cell.
func (p Position) Equal(o Position) bool {
	return p.Row == o.Row && p.Col == o.Col
}

// L1Dist returns the Manhattan distance between two positions.
func (p Position) L1Dist(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
