package types

import "fmt"

// Point is a cell coordinate on the grid. Equality is exact coordinate match.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions. The outermost ring of cells is
// the border; only the interior is playable.
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns a size x size grid.
func NewSquareGrid(size int) Grid {
	return Grid{Width: size, Height: size}
}

// IsInterior reports whether p lies inside the border ring.
func (g Grid) IsInterior(p Point) bool {
	return p.X >= 1 && p.X <= g.Width-2 && p.Y >= 1 && p.Y <= g.Height-2
}

// InteriorCells returns every playable cell in row-major order.
func (g Grid) InteriorCells() []Point {
	if g.Width < 3 || g.Height < 3 {
		return nil
	}
	cells := make([]Point, 0, (g.Width-2)*(g.Height-2))
	for y := 1; y <= g.Height-2; y++ {
		for x := 1; x <= g.Width-2; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// Step moves p one cell in direction d. Leaving the interior wraps to the
// opposite interior edge: reaching row/column 0 lands on size-2, reaching
// size-1 lands on 1.
func (g Grid) Step(p Point, d Direction) Point {
	switch d {
	case Up:
		p.Y--
		if p.Y <= 0 {
			p.Y = g.Height - 2
		}
	case Down:
		p.Y++
		if p.Y >= g.Height-1 {
			p.Y = 1
		}
	case Left:
		p.X--
		if p.X <= 0 {
			p.X = g.Width - 2
		}
	case Right:
		p.X++
		if p.X >= g.Width-1 {
			p.X = 1
		}
	}
	return p
}

// GameStatus is the round state machine.
type GameStatus int

const (
	Paused GameStatus = iota
	Playing
	GameOver
)

func (s GameStatus) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("GameStatus(%d)", int(s))
	}
}

// Input is one tick's worth of freshly pressed keys (edge-triggered).
type Input struct {
	CloseRequested bool
	Up             bool
	Down           bool
	Left           bool
	Right          bool
	TogglePause    bool
}

// Direction returns the requested heading, if any. When several arrows were
// pressed in the same tick the last one in Up, Down, Left, Right order wins.
func (in Input) Direction() (Direction, bool) {
	var (
		dir Direction
		ok  bool
	)
	if in.Up {
		dir, ok = Up, true
	}
	if in.Down {
		dir, ok = Down, true
	}
	if in.Left {
		dir, ok = Left, true
	}
	if in.Right {
		dir, ok = Right, true
	}
	return dir, ok
}

// Press records a freshly pressed heading key.
func (in *Input) Press(d Direction) {
	switch d {
	case Up:
		in.Up = true
	case Down:
		in.Down = true
	case Left:
		in.Left = true
	case Right:
		in.Right = true
	}
}

// CellKind tells the renderer how to paint a cell.
type CellKind int

const (
	CellBody CellKind = iota
	CellHead
	CellFood
)
