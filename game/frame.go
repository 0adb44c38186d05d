package game

import (
	"fmt"

	"raysnake/game/types"
)

// Banner texts.
const (
	PausedText   = "GAME PAUSED"
	GameOverText = "GAME OVER!"
)

// Cell is one painted grid cell.
type Cell struct {
	Pos  types.Point
	Kind types.CellKind
}

// Rect is an axis-aligned rectangle in grid units.
type Rect struct {
	X, Y, W, H int
}

// Overlay is the status banner drawn over the board.
type Overlay struct {
	Lines []string
}

// Frame is everything a renderer needs for one tick. All coordinates are in
// cells; renderers scale by the tile size.
type Frame struct {
	Grid          types.Grid
	Snake         []Cell // head first
	Food          Cell
	Borders       [4]Rect // top, left, right, bottom
	Status        types.GameStatus
	Score         int
	HighScore     int
	ScoreText     string
	HighScoreText string
	Overlay       *Overlay
}

func ScoreText(score int) string {
	return fmt.Sprintf("SCORE: %d", score)
}

func HighScoreText(score int) string {
	return fmt.Sprintf("HIGHEST SCORE: %d", score)
}

// BorderRects returns the four one-cell-thick edges of grid.
func BorderRects(grid types.Grid) [4]Rect {
	return [4]Rect{
		{X: 0, Y: 0, W: grid.Width, H: 1},
		{X: 0, Y: 0, W: 1, H: grid.Height},
		{X: grid.Width - 1, Y: 0, W: 1, H: grid.Height},
		{X: 0, Y: grid.Height - 1, W: grid.Width, H: 1},
	}
}

// Frame builds the render data for the current state.
func (g *Game) Frame() Frame {
	body := g.snake.Segments()
	cells := make([]Cell, len(body))
	for i, p := range body {
		kind := types.CellBody
		if i == 0 {
			kind = types.CellHead
		}
		cells[i] = Cell{Pos: p, Kind: kind}
	}

	f := Frame{
		Grid:          g.grid,
		Snake:         cells,
		Food:          Cell{Pos: g.food.Position, Kind: types.CellFood},
		Borders:       BorderRects(g.grid),
		Status:        g.state.Status,
		Score:         g.state.CurrentScore,
		HighScore:     g.state.HighestScore,
		ScoreText:     ScoreText(g.state.CurrentScore),
		HighScoreText: HighScoreText(g.state.HighestScore),
	}

	switch g.state.Status {
	case types.Playing:
	case types.Paused:
		f.Overlay = &Overlay{Lines: []string{PausedText}}
	case types.GameOver:
		f.Overlay = &Overlay{Lines: []string{GameOverText, f.HighScoreText}}
	}

	return f
}
