// Package audio synthesizes the game's sound cues with beep. Every cue is
// built from short oscillator notes shaped by an attack/release envelope;
// nothing is loaded from disk.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/quizjump/internal/game"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator streams a fixed-length wave, optionally sliding linearly from
// freq to slideTo over its length.
type oscillator struct {
	freq     float64
	slideTo  float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch note.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a note whose pitch slides from start to end.
func NewSweep(start, end float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		slideTo:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.duration > 0 {
			freq += (o.slideTo - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release inside duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one enveloped oscillator note.
type note struct {
	freq, slideTo float64
	length        time.Duration
	wave          Wave
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	slide := n.slideTo
	if slide == 0 {
		slide = n.freq
	}
	osc := NewSweep(n.freq, slide, n.length, n.wave, rate)
	return NewEnvelope(osc, n.length, 5*time.Millisecond, n.length/2, rate)
}

// melodies lists the notes of each cue, played in sequence.
var melodies = map[game.Cue][]note{
	game.CueJump: {
		{freq: 330, slideTo: 660, length: 90 * time.Millisecond, wave: WaveSquare},
	},
	game.CueCorrect: {
		{freq: 659.25, length: 80 * time.Millisecond, wave: WaveTriangle},
		{freq: 987.77, length: 140 * time.Millisecond, wave: WaveTriangle},
	},
	game.CueWrong: {
		{freq: 180, slideTo: 90, length: 220 * time.Millisecond, wave: WaveSaw},
	},
	game.CueCoin: {
		{freq: 987.77, length: 60 * time.Millisecond, wave: WaveSquare},
		{freq: 1318.51, length: 120 * time.Millisecond, wave: WaveSquare},
	},
	game.CuePowerUp: {
		{freq: 440, slideTo: 880, length: 120 * time.Millisecond, wave: WaveSine},
		{freq: 880, slideTo: 1320, length: 120 * time.Millisecond, wave: WaveSine},
	},
	game.CueBossClear: {
		{freq: 523.25, length: 110 * time.Millisecond, wave: WaveTriangle},
		{freq: 659.25, length: 110 * time.Millisecond, wave: WaveTriangle},
		{freq: 783.99, length: 110 * time.Millisecond, wave: WaveTriangle},
		{freq: 1046.5, length: 260 * time.Millisecond, wave: WaveTriangle},
	},
}

// Sound builds the streamer for a cue at the given linear volume. It
// returns nil for an unknown cue.
func Sound(c game.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := melodies[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return newVolume(beep.Seq(parts...), volume)
}

// Length returns how long a cue plays.
func Length(c game.Cue) time.Duration {
	var total time.Duration
	for _, n := range melodies[c] {
		total += n.length
	}
	return total
}
