package manager

import (
	"sort"
	"sync"
	"time"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	Session   string        `json:"session"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Score     int           `json:"score"`
	Length    int           `json:"length"`
	Duration  time.Duration `json:"duration"`
}

// StateManager keeps the round history for the lifetime of the process.
// Nothing is written to disk.
type StateManager struct {
	mutex  sync.RWMutex
	rounds []RoundRecord
	now    func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		rounds: make([]RoundRecord, 0),
		now:    time.Now,
	}
}

// Now is the clock used to stamp rounds.
func (sm *StateManager) Now() time.Time {
	return sm.now()
}

// AddRound records a finished round that began at start.
func (sm *StateManager) AddRound(session string, start time.Time, score, length int) RoundRecord {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	end := sm.now()
	rec := RoundRecord{
		Session:   session,
		StartTime: start,
		EndTime:   end,
		Score:     score,
		Length:    length,
		Duration:  end.Sub(start),
	}
	sm.rounds = append(sm.rounds, rec)
	return rec
}

// Records returns a copy of the history, oldest first.
func (sm *StateManager) Records() []RoundRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]RoundRecord, len(sm.rounds))
	copy(out, sm.rounds)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func (sm *StateManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.rounds)
}

func (sm *StateManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}

// MaxScore is the best score this session, i.e. the high score.
func (sm *StateManager) MaxScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	best := 0
	for _, r := range sm.rounds {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

func (sm *StateManager) AverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.rounds {
		total += r.Duration
	}
	return total / time.Duration(len(sm.rounds))
}
