package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/quizjump/internal/game"
)

// Feedback display durations.
const (
	feedbackDuration = 1500 * time.Millisecond
	shakeDuration    = 400 * time.Millisecond
)

// presenter implements game.Presenter for the terminal. The session writes
// to it during a frame and the view reads it afterwards.
type presenter struct {
	mu         sync.Mutex
	now        func() time.Time
	message    string
	kind       game.FeedbackKind
	until      time.Time
	shakeUntil time.Time
}

func newPresenter(now func() time.Time) *presenter {
	if now == nil {
		now = time.Now
	}
	return &presenter{now: now}
}

func (p *presenter) Feedback(kind game.FeedbackKind, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kind = kind
	p.message = message
	p.until = p.now().Add(feedbackDuration)
}

func (p *presenter) HeartShake() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shakeUntil = p.now().Add(shakeDuration)
}

// Current returns the visible message, if any.
func (p *presenter) Current() (string, game.FeedbackKind, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.message == "" || !p.now().Before(p.until) {
		return "", p.kind, false
	}
	return p.message, p.kind, true
}

// ShakeOffset returns the horizontal jitter of the hearts display.
func (p *presenter) ShakeOffset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	if !now.Before(p.shakeUntil) {
		return 0
	}
	if (p.shakeUntil.Sub(now)/(50*time.Millisecond))%2 == 0 {
		return 1
	}
	return -1
}

// Reset drops any visible feedback.
func (p *presenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = ""
	p.until = time.Time{}
	p.shakeUntil = time.Time{}
}
