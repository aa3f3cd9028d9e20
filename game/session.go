// Package game holds the state a driver keeps between ticks: the live grid,
// whether the simulation is playing, and enough history to notice when the
// board has stopped changing.
package game

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// stagnationLookback is how many recorded generations IsStagnant compares against.
// Three catches still lifes and period-2 and period-3 oscillators.
const stagnationLookback = 3

// Session owns one grid and serializes every call made on it
type Session struct {
	grid        *model.Grid
	pool        *model.GridPool
	playing     bool
	generation  int
	history     []string
	historySize int
}

// NewSession creates a dead grid sized from cfg
func NewSession(cfg utils.Config) *Session {
	var pool *model.GridPool
	if cfg.UseMemoryPool {
		pool = model.NewGridPool()
	}
	return &Session{
		grid:        model.NewGrid(cfg.Width, cfg.Height),
		pool:        pool,
		playing:     cfg.StartPlaying,
		historySize: max(cfg.HistorySize, stagnationLookback),
	}
}

// Grid returns the current generation. With pooling enabled the returned grid
// is recycled by the next Tick, Step or Resize and must not be kept past it.
func (s *Session) Grid() *model.Grid {
	return s.grid
}

// Generation is the number of generations advanced since the session started
func (s *Session) Generation() int {
	return s.generation
}

func (s *Session) IsPlaying() bool { return s.playing }

func (s *Session) Start() { s.playing = true }

func (s *Session) Stop() { s.playing = false }

// TogglePlaying flips between playing and paused and returns the new state
func (s *Session) TogglePlaying() bool {
	s.playing = !s.playing
	return s.playing
}

// Toggle flips one cell. Locations come from user input, so a miss is an error, not a panic.
func (s *Session) Toggle(loc model.Location) error {
	alive, err := s.grid.Lookup(loc)
	if err != nil {
		return errors.Wrap(err, "[Toggle] cannot toggle cell")
	}
	s.grid.SetState(loc, !alive)
	return nil
}

// Seed applies fn to the current grid and forgets the recorded history
func (s *Session) Seed(fn func(g *model.Grid)) {
	fn(s.grid)
	s.history = nil
}

// Tick advances one generation if the session is playing and reports whether it did
func (s *Session) Tick() bool {
	if !s.playing {
		return false
	}
	s.Step()
	return true
}

// Step advances exactly one generation regardless of the playing flag
func (s *Session) Step() {
	prev := s.grid
	s.record(prev.Fingerprint())
	s.grid = prev.NextGeneration(s.pool)
	model.GridToPool(prev, s.pool)
	s.generation++
}

// Resize swaps in a grid of the new dimensions, keeping the overlapping cells.
// It returns false without doing anything when the dimensions are unchanged.
func (s *Session) Resize(width, height int) bool {
	if width == s.grid.GetWidth() && height == s.grid.GetHeight() {
		return false
	}
	prev := s.grid
	s.grid = prev.Resize(width, height)
	model.GridToPool(prev, s.pool)
	s.history = nil
	return true
}

// record appends a fingerprint, keeping at most historySize entries
func (s *Session) record(fingerprint string) {
	s.history = append(s.history, fingerprint)
	if len(s.history) > s.historySize {
		s.history = s.history[len(s.history)-s.historySize:]
	}
}

// IsStagnant reports whether the current grid repeats one of the last few recorded generations
func (s *Session) IsStagnant() bool {
	if len(s.history) == 0 {
		return false
	}

	current := s.grid.Fingerprint()
	for i := len(s.history) - 1; i >= max(0, len(s.history)-stagnationLookback); i-- {
		if s.history[i] == current {
			return true
		}
	}
	return false
}
