package game

import (
	"sync"
	"time"

	"github.com/vovakirdan/quizjump/internal/config"
)

// Inventory holds consumable charges.
type Inventory struct {
	Shield    int `yaml:"shield" json:"shield"`
	ExtraLife int `yaml:"extra_life" json:"extra_life"`
}

// Cosmetics holds unlock bookkeeping. Completions counts boss clears per
// "difficulty_mode" key.
type Cosmetics struct {
	EquippedCharacter string         `yaml:"equipped_character,omitempty" json:"equipped_character,omitempty"`
	EquippedHat       string         `yaml:"equipped_hat,omitempty" json:"equipped_hat,omitempty"`
	EquippedSkin      string         `yaml:"equipped_skin,omitempty" json:"equipped_skin,omitempty"`
	Completions       map[string]int `yaml:"completions,omitempty" json:"completions,omitempty"`
}

// CompletionKey returns the completion counter key for a boss clear.
func CompletionKey(d config.Difficulty, m config.MathMode) string {
	return string(d) + "_" + string(m)
}

// Store persists progress between runs. Calls are synchronous and assumed
// to succeed; implementations handle their own failures.
type Store interface {
	Highscore() int
	SetHighscore(score int)
	Coins() int
	SetCoins(coins int)
	Inventory() Inventory
	SetInventory(inv Inventory)
	Cosmetics() Cosmetics
	SetCosmetics(c Cosmetics)
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score        int
	Best         int
	CorrectCount int
	Coins        int
	Difficulty   config.Difficulty
	Mode         config.MathMode
	Reason       string
	StartedAt    time.Time
	Duration     time.Duration
}

// Recorder receives a summary when a run ends in game over.
type Recorder interface {
	RecordRun(RunSummary)
}

// MemoryStore is an in-memory Store. It is safe for concurrent use.
type MemoryStore struct {
	mu        sync.Mutex
	highscore int
	coins     int
	inventory Inventory
	cosmetics Cosmetics
	runs      []RunSummary
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Highscore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highscore
}

func (m *MemoryStore) SetHighscore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highscore = score
}

func (m *MemoryStore) Coins() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coins
}

func (m *MemoryStore) SetCoins(coins int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coins = coins
}

func (m *MemoryStore) Inventory() Inventory {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inventory
}

func (m *MemoryStore) SetInventory(inv Inventory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory = inv
}

// Cosmetics returns a copy; the completions map is not shared.
func (m *MemoryStore) Cosmetics() Cosmetics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cosmetics.clone()
}

func (m *MemoryStore) SetCosmetics(c Cosmetics) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cosmetics = c.clone()
}

// RecordRun appends a finished run.
func (m *MemoryStore) RecordRun(r RunSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, r)
}

// Runs returns the recorded runs in order.
func (m *MemoryStore) Runs() []RunSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RunSummary(nil), m.runs...)
}

func (c Cosmetics) clone() Cosmetics {
	out := c
	if c.Completions != nil {
		out.Completions = make(map[string]int, len(c.Completions))
		for k, v := range c.Completions {
			out.Completions[k] = v
		}
	}
	return out
}
