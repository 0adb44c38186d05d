package entity

import (
	"raysnake/game/types"
)

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

type Food struct {
	Position types.Point
}

// NewFood places food on a random free interior cell.
func NewFood(grid types.Grid, occupied []types.Point, rng RandomSource) *Food {
	f := &Food{Position: types.Point{X: 1, Y: 1}}
	f.Respawn(grid, occupied, rng)
	return f
}

// Respawn moves the food to a uniformly chosen interior cell not in occupied.
// When every interior cell is occupied the position is left unchanged and
// Respawn returns false.
func (f *Food) Respawn(grid types.Grid, occupied []types.Point, rng RandomSource) bool {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	cells := grid.InteriorCells()
	free := make([]types.Point, 0, len(cells))
	for _, p := range cells {
		if _, ok := taken[p]; !ok {
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		return false
	}

	f.Position = free[rng.Intn(len(free))]
	return true
}
