package entity

import (
	"testing"

	"raysnake/game/types"
)

// seqRand returns the queued values in order, each reduced modulo n, and
// repeats the last one when exhausted.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v % n
}

var grid30 = types.NewSquareGrid(30)

func pts(xy ...int) []types.Point {
	out := make([]types.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func sameBody(a, b []types.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(grid30)
	if want := pts(4, 15, 3, 15, 2, 15); !sameBody(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	if s.Direction != types.Right || s.NextDirection != types.Right {
		t.Errorf("heading = %v/%v, want right/right", s.Direction, s.NextDirection)
	}
}

func TestSnakeUpdateMovesOneCell(t *testing.T) {
	s := NewSnake(grid30)
	s.Update(grid30)
	if want := pts(5, 15, 4, 15, 3, 15); !sameBody(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
}

func TestSnakeUpdateWrapsRight(t *testing.T) {
	s := &Snake{Body: pts(28, 15, 27, 15, 26, 15), Direction: types.Right, NextDirection: types.Right}
	s.Update(grid30)
	if s.Head() != (types.Point{X: 1, Y: 15}) {
		t.Errorf("head = %v, want (1,15)", s.Head())
	}
}

func TestSnakeReversalGuard(t *testing.T) {
	tests := []struct {
		from, req types.Direction
	}{
		{types.Right, types.Left},
		{types.Left, types.Right},
		{types.Up, types.Down},
		{types.Down, types.Up},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			s := &Snake{Body: pts(10, 10, 10, 10, 10, 10), Direction: tt.from, NextDirection: tt.from}
			before := s.Head()
			s.SetNextDirection(tt.req)
			s.Update(grid30)

			if s.Direction != tt.from {
				t.Errorf("direction = %v, want %v", s.Direction, tt.from)
			}
			if s.NextDirection != tt.from {
				t.Errorf("next direction = %v, want snapped back to %v", s.NextDirection, tt.from)
			}
			if want := grid30.Step(before, tt.from); s.Head() != want {
				t.Errorf("head = %v, want %v", s.Head(), want)
			}
		})
	}
}

func TestSnakeTurnCommits(t *testing.T) {
	s := NewSnake(grid30)
	s.SetNextDirection(types.Up)
	s.Update(grid30)
	if s.Direction != types.Up {
		t.Fatalf("direction = %v, want up", s.Direction)
	}
	if s.Head() != (types.Point{X: 4, Y: 14}) {
		t.Errorf("head = %v, want (4,14)", s.Head())
	}
}

func TestSnakeMovementAlongPath(t *testing.T) {
	s := NewSnake(grid30)
	path := []types.Direction{types.Right, types.Up, types.Up, types.Left, types.Left, types.Down, types.Left}

	want := s.Head()
	for _, d := range path {
		s.SetNextDirection(d)
		s.Update(grid30)
		want = grid30.Step(want, d)
		if s.Head() != want {
			t.Fatalf("after %v head = %v, want %v", d, s.Head(), want)
		}
		if s.Len() != InitialLength {
			t.Fatalf("length changed to %d", s.Len())
		}
	}
}

func TestSnakeFullLapWraps(t *testing.T) {
	s := NewSnake(grid30)
	start := s.Head()
	// 28 interior columns: a full lap returns to the start.
	for i := 0; i < 28; i++ {
		s.Update(grid30)
	}
	if s.Head() != start {
		t.Errorf("head after lap = %v, want %v", s.Head(), start)
	}
}

func TestSnakeGrowAndSelfCollision(t *testing.T) {
	s := NewSnake(grid30)
	s.Grow()
	if s.Len() != 4 || s.Body[3] != s.Body[2] {
		t.Fatalf("grow did not duplicate tail: %v", s.Body)
	}
	s.Update(grid30)
	if s.Len() != 4 {
		t.Fatalf("length after update = %d, want 4", s.Len())
	}
	if s.HitsItself() {
		t.Fatal("straight snake reported self collision")
	}

	loop := &Snake{Body: pts(5, 6, 6, 6, 6, 5, 5, 5, 5, 6), Direction: types.Down, NextDirection: types.Down}
	if !loop.HitsItself() {
		t.Error("head on body segment not detected")
	}
	if !loop.Occupies(types.Point{X: 6, Y: 6}) || loop.Occupies(types.Point{X: 9, Y: 9}) {
		t.Error("Occupies mismatch")
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	s := NewSnake(grid30)
	seg := s.Segments()
	seg[0] = types.Point{}
	if s.Head() == (types.Point{}) {
		t.Error("Segments aliases the body")
	}
}

func TestFoodRespawnAvoidsBody(t *testing.T) {
	g := types.NewSquareGrid(8)
	body := pts(1, 1, 2, 1, 3, 1)
	for seed := 0; seed < 36; seed++ {
		f := &Food{}
		if !f.Respawn(g, body, &seqRand{vals: []int{seed}}) {
			t.Fatal("respawn failed on a mostly empty board")
		}
		for _, p := range body {
			if f.Position == p {
				t.Fatalf("seed %d placed food on the body at %v", seed, p)
			}
		}
		if !g.IsInterior(f.Position) {
			t.Fatalf("seed %d placed food outside the interior at %v", seed, f.Position)
		}
	}
}

func TestFoodRespawnPicksFromFreeCells(t *testing.T) {
	g := types.NewSquareGrid(4) // interior (1,1) (2,1) (1,2) (2,2)
	f := &Food{}
	if !f.Respawn(g, pts(1, 1, 2, 1, 1, 2), &seqRand{vals: []int{0}}) {
		t.Fatal("respawn failed with one free cell")
	}
	if f.Position != (types.Point{X: 2, Y: 2}) {
		t.Errorf("position = %v, want (2,2)", f.Position)
	}
}

func TestFoodRespawnFullBoardKeepsPosition(t *testing.T) {
	g := types.NewSquareGrid(4)
	f := &Food{Position: types.Point{X: 2, Y: 2}}
	if f.Respawn(g, g.InteriorCells(), &seqRand{vals: []int{1}}) {
		t.Fatal("respawn succeeded on a full board")
	}
	if f.Position != (types.Point{X: 2, Y: 2}) {
		t.Errorf("position moved to %v", f.Position)
	}
}

func TestGameStateTransitions(t *testing.T) {
	s := NewGameState()
	if s.Status != types.Paused {
		t.Fatalf("initial status = %v", s.Status)
	}

	if s.Toggle() || s.Status != types.Playing {
		t.Fatalf("paused toggle: status %v", s.Status)
	}
	s.AddPoint()
	s.AddPoint()
	if s.Toggle() || s.Status != types.Paused || s.CurrentScore != 2 {
		t.Fatalf("playing toggle: %+v", s)
	}
	if s.EndRound() {
		t.Fatal("EndRound must not fire while paused")
	}

	s.Toggle()
	if s.HighestScore != 0 {
		t.Fatalf("high score raised mid-round: %d", s.HighestScore)
	}
	if !s.EndRound() || s.Status != types.GameOver || s.HighestScore != 2 {
		t.Fatalf("end round: %+v", s)
	}
	if s.CurrentScore != 2 {
		t.Fatalf("score reset at game over: %d", s.CurrentScore)
	}

	if !s.Toggle() || s.Status != types.Playing || s.CurrentScore != 0 {
		t.Fatalf("restart: %+v", s)
	}

	s.AddPoint()
	s.EndRound()
	if s.HighestScore != 2 {
		t.Errorf("high score dropped to %d", s.HighestScore)
	}
}
