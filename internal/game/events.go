package game

// FeedbackKind tints a feedback message.
type FeedbackKind int

const (
	FeedbackCorrect FeedbackKind = iota
	FeedbackWrong
)

func (k FeedbackKind) String() string {
	if k == FeedbackWrong {
		return "wrong"
	}
	return "correct"
}

// Cue is a semantic sound event.
type Cue int

const (
	CueJump Cue = iota
	CueCorrect
	CueWrong
	CueCoin
	CuePowerUp
	CueBossClear
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueCoin:
		return "coin"
	case CuePowerUp:
		return "powerup"
	case CueBossClear:
		return "boss"
	default:
		return "unknown"
	}
}

// Presenter shows transient feedback. HUD data is pulled with Snapshot.
type Presenter interface {
	// Feedback shows a short message for a fixed duration.
	Feedback(kind FeedbackKind, message string)

	// HeartShake animates the hearts display after a heart is lost.
	HeartShake()
}

// AudioCue plays semantic sound cues.
type AudioCue interface {
	Cue(c Cue)
}

// NopPresenter discards feedback.
type NopPresenter struct{}

func (NopPresenter) Feedback(FeedbackKind, string) {}
func (NopPresenter) HeartShake()                   {}

// NopAudio discards cues.
type NopAudio struct{}

func (NopAudio) Cue(Cue) {}
