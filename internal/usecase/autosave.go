package usecase

import (
	"sync"
	"time"
)

// DefaultAutosaveDelay is the inactivity window after the last edit.
const DefaultAutosaveDelay = 2 * time.Second

// Autosaver is a trailing-edge debounce around a commit function. Every
// edit re-arms the timer, so a burst of edits produces exactly one commit
// after the quiet period. A manual flush cancels the timer and commits
// immediately.
type Autosaver struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending bool
	commit  func()
}

func NewAutosaver(delay time.Duration, commit func()) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{delay: delay, commit: commit}
}

// Touch records an edit and (re)arms the inactivity timer.
func (a *Autosaver) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if !a.pending {
		a.mu.Unlock()
		return
	}
	a.pending = false
	a.mu.Unlock()
	a.commit()
}

// Flush commits immediately when edits are pending, cancelling any armed
// timer. This backs the manual save action and the shutdown path that
// refuses to drop unsaved edits.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	wasPending := a.pending
	a.pending = false
	a.mu.Unlock()

	if wasPending {
		a.commit()
	}
}

// Pending reports whether an edit is waiting for its quiet window.
func (a *Autosaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}
