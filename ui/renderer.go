package ui

import (
	"raysnake/config"
	"raysnake/game"
	"raysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorHead        = rl.Green
	colorBody        = rl.RayWhite
	colorFood        = rl.Magenta
	colorBorder      = rl.Red
	colorText        = rl.White
	colorPausedPanel = rl.NewColor(154, 205, 50, 255) // yellow green
	colorOverPanel   = rl.Green
)

type Renderer struct {
	tileSize     float32
	fontSize     int32
	screenWidth  float32
	screenHeight float32
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{
		tileSize:     float32(cfg.TileSize),
		fontSize:     int32(cfg.FontSize()),
		screenWidth:  float32(cfg.ScreenWidth()),
		screenHeight: float32(cfg.ScreenHeight()),
	}
}

func (r *Renderer) Draw(f game.Frame) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)

	for _, b := range f.Borders {
		rl.DrawRectangleRec(r.rect(float32(b.X), float32(b.Y), float32(b.W), float32(b.H)), colorBorder)
	}

	// Tail to head, so the head is painted last.
	for i := len(f.Snake) - 1; i >= 0; i-- {
		cell := f.Snake[i]
		color := colorBody
		if cell.Kind == types.CellHead {
			color = colorHead
		}
		r.drawCell(cell.Pos, color)
	}
	r.drawCell(f.Food.Pos, colorFood)

	r.drawCentered(f.ScoreText, int32(r.tileSize*0.25))

	if f.Overlay == nil {
		return
	}
	switch f.Status {
	case types.Paused:
		r.drawPaused(f.Overlay)
	case types.GameOver:
		r.drawGameOver(f)
	}
}

func (r *Renderer) drawPaused(o *game.Overlay) {
	text := o.Lines[0]
	width := float32(rl.MeasureText(text, r.fontSize))
	fontSize := float32(r.fontSize)

	rl.DrawRectangleRec(rl.Rectangle{
		X:      r.screenWidth/2 - (width/2 + fontSize),
		Y:      r.screenHeight / 2,
		Width:  fontSize*2 + width,
		Height: r.tileSize,
	}, colorPausedPanel)
	r.drawCentered(text, int32(r.screenHeight/2))
}

func (r *Renderer) drawGameOver(f game.Frame) {
	fontSize := float32(r.fontSize)
	// The high score line is the wider one and sizes the panel.
	width := float32(rl.MeasureText(f.HighScoreText, r.fontSize))
	mid := float32(f.Grid.Height) / 2

	rl.DrawRectangleRec(rl.Rectangle{
		X:      r.screenWidth/2 - (width/2 + fontSize),
		Y:      (mid - 1) * r.tileSize,
		Width:  fontSize*2 + width,
		Height: r.tileSize * 2,
	}, colorOverPanel)

	for i, line := range f.Overlay.Lines {
		r.drawCentered(line, int32((mid-1+float32(i))*r.tileSize))
	}
}

func (r *Renderer) drawCentered(text string, y int32) {
	width := rl.MeasureText(text, r.fontSize)
	rl.DrawText(text, int32(r.screenWidth/2)-width/2, y, r.fontSize, colorText)
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangleRec(r.rect(float32(p.X), float32(p.Y), 1, 1), color)
}

func (r *Renderer) rect(x, y, w, h float32) rl.Rectangle {
	return rl.Rectangle{
		X:      x * r.tileSize,
		Y:      y * r.tileSize,
		Width:  w * r.tileSize,
		Height: h * r.tileSize,
	}
}
