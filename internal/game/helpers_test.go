package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/wordturret/internal/config"
	"github.com/vovakirdan/wordturret/internal/core"
)

// cycleSource returns its words in order, wrapping around.
type cycleSource struct {
	words []string
	next  int
	draws int
}

func (s *cycleSource) RandomWord() string {
	w := s.words[s.next%len(s.words)]
	s.next++
	s.draws++
	return w
}

// recorder collects draw commands.
type recorder struct {
	texts   []string
	circles int
	rects   int
}

func (r *recorder) DrawText(pos core.Vec2, text string, c core.Color) { r.texts = append(r.texts, text) }
func (r *recorder) DrawCircle(pos core.Vec2, radius float64, c core.Color) {
	r.circles++
}
func (r *recorder) DrawRect(pos core.Vec2, w, h float64, c core.Color) { r.rects++ }

type testRig struct {
	cfg     config.Config
	source  *cycleSource
	turret  *Turret
	score   *Score
	manager *WordManager
}

func newTestRig(t *testing.T, cfg config.Config, words ...string) *testRig {
	t.Helper()

	rng := rand.New(rand.NewSource(1))
	rig := &testRig{
		cfg:    cfg,
		source: &cycleSource{words: words},
		turret: NewTurret(cfg.Turret, rng),
		score:  &Score{},
	}
	rig.manager = NewWordManager(cfg, rig.source, rig.turret, rig.score, rng)
	return rig
}

// tick runs one session tick the way Game.Step does.
func (r *testRig) tick(typed rune, ok bool) {
	r.manager.Update(typed, ok)
	r.turret.Update()
}

func (r *testRig) idle(n int) {
	for i := 0; i < n; i++ {
		r.tick(0, false)
	}
}

// quietConfig disables automatic spawning so tests control every word.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Words.SpawnInterval = 1 << 30
	return cfg
}
