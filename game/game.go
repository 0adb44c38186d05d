package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"raysnake/game/entity"
	"raysnake/game/manager"
	"raysnake/game/types"
)

// Game is the frame controller. It owns the snake, food and score state of
// one session and advances them once per Tick.
type Game struct {
	grid types.Grid

	snake *entity.Snake
	food  *entity.Food
	state *entity.GameState

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	session    string
	roundStart time.Time
	log        zerolog.Logger
}

func NewGame(grid types.Grid, rng entity.RandomSource, logger zerolog.Logger) *Game {
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		grid:         grid,
		state:        entity.NewGameState(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
		log:          logger,
	}
	g.newRound()
	return g
}

// newRound replaces the snake and food with fresh instances.
func (g *Game) newRound() {
	g.snake = entity.NewSnake(g.grid)
	g.food = g.foodMgr.GenerateFood(g.snake)
	g.session = uuid.New().String()
	g.roundStart = g.stateMgr.Now()
	g.log.Debug().
		Str("session", g.session).
		Stringer("food", g.food.Position).
		Msg("New round")
}

// Tick advances the game by one frame. It returns false, without touching
// any state, when the input asks to close.
func (g *Game) Tick(in types.Input) bool {
	if in.CloseRequested {
		g.log.Info().Str("session", g.session).Msg("Close requested")
		return false
	}

	if in.TogglePause {
		g.toggle()
	}

	if g.state.Status != types.Playing {
		return true
	}

	if dir, ok := in.Direction(); ok {
		g.snake.SetNextDirection(dir)
	}

	g.snake.Update(g.grid)

	if g.collisionMgr.IsSelfCollision(g.snake) {
		g.endRound()
		return true
	}

	if g.collisionMgr.IsFoodCollision(g.snake, g.food) {
		if !g.foodMgr.Relocate(g.food, g.snake) {
			g.log.Warn().Str("session", g.session).Int("length", g.snake.Len()).Msg("No free cell left for food")
		}
		g.snake.Grow()
		g.state.AddPoint()
		g.log.Debug().
			Str("session", g.session).
			Int("score", g.state.CurrentScore).
			Stringer("food", g.food.Position).
			Msg("Food eaten")
	}

	return true
}

func (g *Game) toggle() {
	from := g.state.Status
	if g.state.Toggle() {
		g.newRound()
	}
	g.log.Info().
		Str("session", g.session).
		Stringer("from", from).
		Stringer("to", g.state.Status).
		Msg("Status changed")
}

func (g *Game) endRound() {
	length := g.snake.Len()
	if !g.state.EndRound() {
		return
	}
	rec := g.stateMgr.AddRound(g.session, g.roundStart, g.state.CurrentScore, length)
	g.log.Info().
		Str("session", g.session).
		Int("score", rec.Score).
		Int("high_score", g.state.HighestScore).
		Dur("duration", rec.Duration).
		Int("games_played", g.stateMgr.GamesPlayed()).
		Msg("Game over")
	g.newRound()
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.food
}

func (g *Game) State() entity.GameState {
	return *g.state
}

func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// Session identifies the current round.
func (g *Game) Session() string {
	return g.session
}
