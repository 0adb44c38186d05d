package ui

import (
	"github.com/rs/zerolog/log"

	"raysnake/config"
	"raysnake/game"
	"raysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "RaySnake"

// PollInput reads this frame's freshly pressed keys.
func PollInput() types.Input {
	return types.Input{
		CloseRequested: rl.WindowShouldClose(),
		Up:             rl.IsKeyPressed(rl.KeyUp),
		Down:           rl.IsKeyPressed(rl.KeyDown),
		Left:           rl.IsKeyPressed(rl.KeyLeft),
		Right:          rl.IsKeyPressed(rl.KeyRight),
		TogglePause:    rl.IsKeyPressed(rl.KeySpace),
	}
}

// Run opens the window and drives g once per frame until it is closed.
func Run(cfg config.Config, g *game.Game) error {
	rl.InitWindow(int32(cfg.ScreenWidth()), int32(cfg.ScreenHeight()), windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.TargetFPS))

	log.Info().
		Int("width", cfg.ScreenWidth()).
		Int("height", cfg.ScreenHeight()).
		Int("fps", cfg.TargetFPS).
		Msg("raylib window opened")

	renderer := NewRenderer(cfg)
	for g.Tick(PollInput()) {
		renderer.Draw(g.Frame())
	}

	return nil
}
