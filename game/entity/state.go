package entity

import (
	"raysnake/game/types"
)

// GameState holds the score and round status. HighestScore is only raised
// when a round ends, so mid-round CurrentScore may exceed it.
type GameState struct {
	CurrentScore int
	HighestScore int
	Status       types.GameStatus
}

func NewGameState() *GameState {
	return &GameState{Status: types.Paused}
}

// Toggle applies the pause key. It reports true when the toggle starts a new
// round from GameOver; the caller must then rebuild the snake and food.
func (s *GameState) Toggle() (restart bool) {
	switch s.Status {
	case types.Paused:
		s.Status = types.Playing
	case types.Playing:
		s.Status = types.Paused
	case types.GameOver:
		s.CurrentScore = 0
		s.Status = types.Playing
		return true
	}
	return false
}

// EndRound moves Playing to GameOver and folds the score into HighestScore.
// It is a no-op in any other status.
func (s *GameState) EndRound() bool {
	if s.Status != types.Playing {
		return false
	}
	if s.CurrentScore > s.HighestScore {
		s.HighestScore = s.CurrentScore
	}
	s.Status = types.GameOver
	return true
}

func (s *GameState) AddPoint() {
	s.CurrentScore++
}
