// Package ebitenui renders the game with ebiten.
package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"

	"raysnake/config"
	"raysnake/game"
	"raysnake/game/types"
)

const windowTitle = "RaySnake"

var (
	colorBackground  = color.RGBA{0, 0, 0, 255}
	colorHead        = color.RGBA{0, 228, 48, 255}
	colorBody        = color.RGBA{245, 245, 245, 255}
	colorFood        = color.RGBA{255, 0, 255, 255}
	colorBorder      = color.RGBA{230, 41, 55, 255}
	colorText        = color.RGBA{255, 255, 255, 255}
	colorPausedPanel = color.RGBA{154, 205, 50, 255}
	colorOverPanel   = color.RGBA{0, 228, 48, 255}
)

// basicfont.Face7x13 glyph metrics.
const (
	glyphWidth  = 7
	glyphHeight = 13
)

// Screen adapts a game.Game to ebiten.Game.
type Screen struct {
	g    *game.Game
	tile float32
	w, h int
}

func NewScreen(cfg config.Config, g *game.Game) *Screen {
	return &Screen{
		g:    g,
		tile: float32(cfg.TileSize),
		w:    cfg.ScreenWidth(),
		h:    cfg.ScreenHeight(),
	}
}

func pollInput() types.Input {
	return types.Input{
		CloseRequested: ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Up:             inpututil.IsKeyJustPressed(ebiten.KeyUp),
		Down:           inpututil.IsKeyJustPressed(ebiten.KeyDown),
		Left:           inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		Right:          inpututil.IsKeyJustPressed(ebiten.KeyRight),
		TogglePause:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

func (s *Screen) Update() error {
	if !s.g.Tick(pollInput()) {
		return ebiten.Termination
	}
	return nil
}

func (s *Screen) Draw(screen *ebiten.Image) {
	f := s.g.Frame()
	screen.Fill(colorBackground)

	for _, b := range f.Borders {
		s.fill(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorBorder)
	}
	for i := len(f.Snake) - 1; i >= 0; i-- {
		clr := colorBody
		if f.Snake[i].Kind == types.CellHead {
			clr = colorHead
		}
		p := f.Snake[i].Pos
		s.fill(screen, float32(p.X), float32(p.Y), 1, 1, clr)
	}
	s.fill(screen, float32(f.Food.Pos.X), float32(f.Food.Pos.Y), 1, 1, colorFood)

	s.drawCentered(screen, f.ScoreText, int(s.tile*0.75))

	if f.Overlay == nil {
		return
	}

	panel := colorPausedPanel
	if f.Status == types.GameOver {
		panel = colorOverPanel
	}
	widest := 0
	for _, line := range f.Overlay.Lines {
		widest = max(widest, len(line))
	}
	rows := float32(len(f.Overlay.Lines))
	pw := float32((widest + 4) * glyphWidth)
	top := float32(s.h)/2 - rows*s.tile/2
	vector.DrawFilledRect(screen, float32(s.w)/2-pw/2, top, pw, rows*s.tile, panel, false)

	for i, line := range f.Overlay.Lines {
		baseline := top + float32(i)*s.tile + (s.tile+glyphHeight)/2 - 2
		s.drawCentered(screen, line, int(baseline))
	}
}

func (s *Screen) Layout(_, _ int) (int, int) {
	return s.w, s.h
}

func (s *Screen) fill(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x*s.tile, y*s.tile, w*s.tile, h*s.tile, clr, false)
}

func (s *Screen) drawCentered(dst *ebiten.Image, str string, baseline int) {
	x := (s.w - len(str)*glyphWidth) / 2
	text.Draw(dst, str, basicfont.Face7x13, x, baseline, colorText)
}

// Run opens an ebiten window and blocks until the game stops.
func Run(cfg config.Config, g *game.Game) error {
	ebiten.SetWindowSize(cfg.ScreenWidth(), cfg.ScreenHeight())
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TargetFPS)

	log.Info().
		Int("width", cfg.ScreenWidth()).
		Int("height", cfg.ScreenHeight()).
		Int("tps", cfg.TargetFPS).
		Msg("ebiten window opened")

	if err := ebiten.RunGame(NewScreen(cfg, g)); err != nil {
		return fmt.Errorf("run ebiten game: %w", err)
	}
	return nil
}
