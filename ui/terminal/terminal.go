// Package terminal renders the game in a terminal with tcell.
package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"raysnake/config"
	"raysnake/game"
	"raysnake/game/types"
)

// Each grid cell is two columns wide so the board looks square.
const cellWidth = 2

var (
	defStyle    = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	borderStyle = tcell.StyleDefault.Background(tcell.ColorRed)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorGreen)
	bodyStyle   = tcell.StyleDefault.Background(tcell.ColorWhite)
	foodStyle   = tcell.StyleDefault.Background(tcell.ColorFuchsia)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	pausedStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorYellowGreen)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen)
)

var keyToDirection = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// Latch folds one key press into in. It reports false for keys the game does
// not use.
func Latch(in *types.Input, key tcell.Key, r rune) bool {
	if dir, ok := keyToDirection[key]; ok {
		in.Press(dir)
		return true
	}

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.CloseRequested = true
		return true
	case tcell.KeyRune:
		switch r {
		case ' ':
			in.TogglePause = true
			return true
		case 'q', 'Q':
			in.CloseRequested = true
			return true
		}
	}
	return false
}

// Run drives g on a tcell screen until the player quits or ctx ends.
func Run(ctx context.Context, cfg config.Config, g *game.Game) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(s.Fini) }
	defer fini()

	s.DisableMouse()
	s.SetStyle(defStyle)
	s.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	grp.Go(func() error {
		// Fini unblocks PollEvent above.
		defer fini()
		defer cancel()

		ticker := time.NewTicker(time.Second / time.Duration(cfg.TargetFPS))
		defer ticker.Stop()

		var pending types.Input
		draw(s, g)

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					s.Sync()
				case *tcell.EventKey:
					Latch(&pending, ev.Key(), ev.Rune())
				}

			case <-ticker.C:
				in := pending
				pending = types.Input{}
				if !g.Tick(in) {
					return nil
				}
				draw(s, g)
			}
		}
	})

	log.Info().Int("fps", cfg.TargetFPS).Msg("Terminal frontend started")

	if err := grp.Wait(); err != nil {
		return fmt.Errorf("terminal loop: %w", err)
	}
	return nil
}

func draw(s tcell.Screen, g *game.Game) {
	f := g.Frame()
	s.Clear()

	// Row 0 holds the score; the board starts on row 1.
	const top = 1

	width := f.Grid.Width * cellWidth
	drawText(s, (width-len(f.ScoreText))/2, 0, textStyle, f.ScoreText)

	for _, b := range f.Borders {
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				fillCell(s, types.Point{X: x, Y: y}, top, borderStyle)
			}
		}
	}

	fillCell(s, f.Food.Pos, top, foodStyle)
	for i := len(f.Snake) - 1; i >= 0; i-- {
		style := bodyStyle
		if f.Snake[i].Kind == types.CellHead {
			style = headStyle
		}
		fillCell(s, f.Snake[i].Pos, top, style)
	}

	stats := g.Stats()
	footer := fmt.Sprintf("%s  GAMES: %d  AVG: %.1f", f.HighScoreText, stats.GamesPlayed(), stats.AverageScore())
	drawText(s, 0, top+f.Grid.Height, textStyle, footer)

	if f.Overlay != nil {
		style := pausedStyle
		if f.Status == types.GameOver {
			style = overStyle
		}
		mid := top + f.Grid.Height/2 - 1
		for i, line := range f.Overlay.Lines {
			padded := " " + line + " "
			drawText(s, (width-len(padded))/2, mid+i, style, padded)
		}
	}

	s.Show()
}

func fillCell(s tcell.Screen, p types.Point, top int, style tcell.Style) {
	for dx := 0; dx < cellWidth; dx++ {
		s.SetContent(p.X*cellWidth+dx, p.Y+top, ' ', nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
