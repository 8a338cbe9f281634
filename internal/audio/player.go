package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/quizjump/internal/game"
)

const (
	sampleRate    = beep.SampleRate(44100)
	bufferLength  = 100 * time.Millisecond
	defaultVolume = 0.4
)

// Player plays cues through the system speaker. It implements
// game.AudioCue. Until Init succeeds, and while muted, cues are dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Init opens the speaker. Failing to open it leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything queued.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetMuted toggles output.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// SetVolume sets the linear volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = min(max(v, 0), 1)
}

// Cue queues the sound for c.
func (p *Player) Cue(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := Sound(c, sampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Active returns how many cues are still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}
