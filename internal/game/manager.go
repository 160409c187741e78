package game

import (
	"math/rand"
	"slices"
	"unicode/utf8"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
)

// WordSource supplies candidate words for spawning.
type WordSource interface {
	RandomWord() string
}

// Stats counts what the manager has done since it was created.
type Stats struct {
	SpawnAttempts int // spawn ticks reached
	Spawned       int // words placed on the playfield
	Skipped       int // spawns abandoned after too many over-length draws
	Draws         int // words taken from the source, retries included
	Destroyed     int // words typed, hit and finished
	Missed        int // words that left the playfield un-exploded
}

// SpawnResult describes a single spawn attempt.
type SpawnResult struct {
	Word    *Word // nil when skipped
	Draws   int
	Skipped bool
}

// WordManager owns the live words. It spawns them on a fixed interval,
// feeds them typed input, scores finished words and counts misses against
// the turret.
type WordManager struct {
	cfg    config.Config
	source WordSource
	turret *Turret
	score  *Score
	rng    *rand.Rand

	words   []*Word
	counter int
	missed  int
	stats   Stats
}

// NewWordManager creates a manager. turret and score are shared with the session.
func NewWordManager(cfg config.Config, source WordSource, turret *Turret, score *Score, rng *rand.Rand) *WordManager {
	return &WordManager{
		cfg:    cfg,
		source: source,
		turret: turret,
		score:  score,
		rng:    rng,
	}
}

// Update runs one tick: spawn on schedule, advance every word with the
// typed character, then remove misses.
func (m *WordManager) Update(typed rune, ok bool) {
	m.counter++
	if m.counter >= m.cfg.Words.SpawnInterval {
		m.counter = 0
		m.SpawnWord()
	}

	for _, w := range slices.Clone(m.words) {
		w.Update(typed, ok)
		if w.IsFinished() {
			m.score.Add(w.Len())
			m.stats.Destroyed++
			m.remove(w)
		}
	}

	for _, w := range slices.Clone(m.words) {
		if w.Position().X >= 0 || w.Exploded() {
			continue
		}
		m.remove(w)
		m.missed++
		m.stats.Missed++
		if m.missed >= m.cfg.Words.MaxMissed {
			m.turret.Explode()
		}
	}
}

// SpawnWord draws words until one fits the length limit and places it at the
// right edge at a random height in the spawn band. After MaxSpawnAttempts
// over-length draws the spawn is skipped.
func (m *WordManager) SpawnWord() SpawnResult {
	m.stats.SpawnAttempts++

	var res SpawnResult
	for res.Draws < m.cfg.Words.MaxSpawnAttempts {
		text := m.source.RandomWord()
		res.Draws++

		n := utf8.RuneCountInString(text)
		if n == 0 || n > m.cfg.Words.MaxLength {
			continue
		}

		pf := m.cfg.Playfield
		y := pf.SpawnMinY + m.rng.Intn(pf.SpawnMaxY-pf.SpawnMinY+1)
		res.Word = NewWord(text, core.V(pf.Width, float64(y)), m.turret, m.rng, m.cfg)
		m.words = append(m.words, res.Word)
		m.stats.Spawned++
		break
	}

	m.stats.Draws += res.Draws
	if res.Word == nil {
		res.Skipped = true
		m.stats.Skipped++
	}
	return res
}

func (m *WordManager) remove(w *Word) {
	if i := slices.Index(m.words, w); i >= 0 {
		m.words = slices.Delete(m.words, i, i+1)
	}
}

// Words returns the live words in spawn order.
func (m *WordManager) Words() []*Word {
	return slices.Clone(m.words)
}

// MissedWords returns how many words have got past the turret.
func (m *WordManager) MissedWords() int {
	return m.missed
}

// Stats returns the manager counters.
func (m *WordManager) Stats() Stats {
	return m.stats
}

// Draw renders every live word.
func (m *WordManager) Draw(dst core.Renderer) {
	for _, w := range m.words {
		w.Draw(dst)
	}
}
