// Package scoring is the state machine behind answering: per-section
// practice sessions and the two-phase tests. It is the only writer of
// the progress record; the engine computes the full next state, persists
// once, and returns the derived view the front-end re-renders from.
package scoring

import (
	"sync"

	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/progress"
)

type Engine struct {
	content  *content.Store
	progress *progress.Store

	mu       sync.Mutex
	sessions map[int]*practiceSession
	attempts map[string]*testAttempt
}

func NewEngine(c *content.Store, p *progress.Store) *Engine {
	return &Engine{
		content:  c,
		progress: p,
		sessions: map[int]*practiceSession{},
		attempts: map[string]*testAttempt{},
	}
}

// ResetAll erases the stored record and every live session and attempt
// snapshot, returning the unit to a blank slate.
func (e *Engine) ResetAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions = map[int]*practiceSession{}
	e.attempts = map[string]*testAttempt{}
	return e.progress.Reset()
}
