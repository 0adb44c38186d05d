package entity

import (
	"raysnake/game/types"
)

// InitialLength is the body length of a fresh snake.
const InitialLength = 3

// Snake is an ordered body with the head at index 0 and the tail last.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction
	NextDirection types.Direction
}

// NewSnake places a three-cell snake on the middle row heading right, head at
// x=4.
func NewSnake(grid types.Grid) *Snake {
	row := grid.Height / 2
	return &Snake{
		Body: []types.Point{
			{X: 4, Y: row},
			{X: 3, Y: row},
			{X: 2, Y: row},
		},
		Direction:     types.Right,
		NextDirection: types.Right,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetNextDirection queues a heading for the next Update. Reversals are
// accepted here and rejected by Update.
func (s *Snake) SetNextDirection(d types.Direction) {
	s.NextDirection = d
}

// Update advances the snake one cell. Length is unchanged.
func (s *Snake) Update(grid types.Grid) {
	head := s.Head()
	s.Body = s.Body[:len(s.Body)-1]

	if s.NextDirection != s.Direction {
		if s.Direction.IsOpposite(s.NextDirection) {
			s.NextDirection = s.Direction
		}
		s.Direction = s.NextDirection
	}

	newHead := grid.Step(head, s.Direction)

	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	s.Body = append(body, s.Body...)
}

// Grow duplicates the tail segment; the copy separates on the next Update.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Tail())
}

// HitsItself reports whether any segment other than the head shares the
// head's cell.
func (s *Snake) HitsItself() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
