package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quizjump/internal/config"
	"github.com/vovakirdan/quizjump/internal/game"
)

// Profile binds a Store to one player. It implements game.Store and
// game.Recorder: failures are logged and the game carries on with the
// in-memory values.
type Profile struct {
	store  *Store
	name   string
	logger *log.Logger
	rec    ProfileRecord
}

// NewProfile loads (or creates) the named profile. An empty name selects
// DefaultProfile. A nil logger discards messages.
func NewProfile(store *Store, name string, logger *log.Logger) (*Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rec, err := store.LoadProfile(name)
	if err != nil {
		if rec.Name == "" {
			return nil, err
		}
		logger.Warn("profile settings reset to defaults", "profile", name, "err", err)
	}

	return &Profile{store: store, name: name, logger: logger, rec: rec}, nil
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// Settings returns the stored settings.
func (p *Profile) Settings() config.Settings {
	return p.rec.Settings
}

// SaveSettings normalizes and stores settings.
func (p *Profile) SaveSettings(s config.Settings) error {
	s = s.Normalize()
	if err := p.store.SaveSettings(p.name, s); err != nil {
		return err
	}
	p.rec.Settings = s
	return nil
}

func (p *Profile) Highscore() int {
	return p.rec.Highscore
}

func (p *Profile) SetHighscore(score int) {
	if score == p.rec.Highscore {
		return
	}
	p.rec.Highscore = score
	p.check("highscore", p.store.SaveHighscore(p.name, score))
}

func (p *Profile) Coins() int {
	return p.rec.Coins
}

func (p *Profile) SetCoins(coins int) {
	p.rec.Coins = coins
	p.check("coins", p.store.SaveCoins(p.name, coins))
}

func (p *Profile) Inventory() game.Inventory {
	return p.rec.Inventory
}

func (p *Profile) SetInventory(inv game.Inventory) {
	p.rec.Inventory = inv
	p.check("inventory", p.store.SaveInventory(p.name, inv))
}

// Cosmetics returns a copy; the completions map is not shared.
func (p *Profile) Cosmetics() game.Cosmetics {
	c := p.rec.Cosmetics
	c.Completions = make(map[string]int, len(p.rec.Cosmetics.Completions))
	for k, v := range p.rec.Cosmetics.Completions {
		c.Completions[k] = v
	}
	return c
}

func (p *Profile) SetCosmetics(c game.Cosmetics) {
	p.rec.Cosmetics = c
	p.check("cosmetics", p.store.SaveCosmetics(p.name, c))
}

// RecordRun appends the run to the history.
func (p *Profile) RecordRun(r game.RunSummary) {
	id, err := p.store.SaveRun(p.name, r)
	if p.check("run", err) {
		p.logger.Debug("run saved", "profile", p.name, "run", id, "score", r.Score)
	}
}

func (p *Profile) check(what string, err error) bool {
	if err != nil {
		p.logger.Error("cannot persist "+what, "profile", p.name, "err", err)
		return false
	}
	return true
}
