package game

import (
	"testing"

	"github.com/vovakirdan/wordturret/internal/config"
)

func TestManagerSpawnPlacement(t *testing.T) {
	cfg := quietConfig()
	rig := newTestRig(t, cfg, "cat")

	for i := 0; i < 50; i++ {
		res := rig.manager.SpawnWord()
		if res.Skipped || res.Word == nil {
			t.Fatalf("spawn %d skipped", i)
		}
		pos := res.Word.Position()
		if pos.X != cfg.Playfield.Width {
			t.Errorf("spawn x = %g, expected %g", pos.X, cfg.Playfield.Width)
		}
		if pos.Y < float64(cfg.Playfield.SpawnMinY) || pos.Y > float64(cfg.Playfield.SpawnMaxY) {
			t.Errorf("spawn y = %g outside [%d, %d]", pos.Y, cfg.Playfield.SpawnMinY, cfg.Playfield.SpawnMaxY)
		}
	}
	if got := len(rig.manager.Words()); got != 50 {
		t.Errorf("live words = %d, expected 50", got)
	}
}

func TestManagerSpawnCount(t *testing.T) {
	tests := []struct {
		ticks    int
		interval int
	}{
		{0, 100},
		{99, 100},
		{100, 100},
		{1050, 100},
		{37, 5},
		{10, 1},
	}

	for _, tc := range tests {
		cfg := config.DefaultConfig()
		cfg.Words.SpawnInterval = tc.interval
		rig := newTestRig(t, cfg, "cat")

		rig.idle(tc.ticks)

		want := tc.ticks / tc.interval
		if got := rig.manager.Stats().SpawnAttempts; got != want {
			t.Errorf("ticks=%d interval=%d: SpawnAttempts = %d, expected %d", tc.ticks, tc.interval, got, want)
		}
	}
}

func TestManagerRetriesOverLengthWords(t *testing.T) {
	cfg := quietConfig()
	rig := newTestRig(t, cfg, "extraordinary", "unbelievable", "ok")

	res := rig.manager.SpawnWord()
	if res.Skipped {
		t.Fatal("spawn should succeed after retries")
	}
	if res.Draws != 3 {
		t.Errorf("Draws = %d, expected 3", res.Draws)
	}
	if res.Word.Text() != "ok" {
		t.Errorf("spawned %q, expected \"ok\"", res.Word.Text())
	}
}

func TestManagerRetriesAreBounded(t *testing.T) {
	cfg := quietConfig()
	cfg.Words.MaxSpawnAttempts = 32
	rig := newTestRig(t, cfg, "antidisestablishmentarianism")

	res := rig.manager.SpawnWord()
	if !res.Skipped || res.Word != nil {
		t.Fatalf("spawn should be skipped, got %+v", res)
	}
	if res.Draws != 32 || rig.source.draws != 32 {
		t.Errorf("Draws = %d (source %d), expected 32", res.Draws, rig.source.draws)
	}
	if len(rig.manager.Words()) != 0 {
		t.Error("skipped spawn should not add a word")
	}

	stats := rig.manager.Stats()
	if stats.Skipped != 1 || stats.Spawned != 0 || stats.SpawnAttempts != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestManagerWordLifecycleCat(t *testing.T) {
	cfg := quietConfig()
	rig := newTestRig(t, cfg, "cat")

	w := rig.manager.SpawnWord().Word
	if w.Position().X != 800 {
		t.Fatalf("word spawned at x=%g, expected 800", w.Position().X)
	}

	for i, r := range "cat" {
		rig.tick(r, true)
		if got := w.TypedLen(); got != i+1 {
			t.Fatalf("after %q TypedLen() = %d, expected %d", r, got, i+1)
		}
	}
	if !w.IsFullyTyped() {
		t.Fatal("IsFullyTyped() should be true after the third letter")
	}
	if !w.Projectile().Launched {
		t.Fatal("projectile should launch on the tick the last letter is typed")
	}

	rig.idle(cfg.Projectile.FlightTicks)
	if w.Phase() != PhaseExploding {
		t.Fatalf("Phase() = %v after %d flight ticks, expected Exploding", w.Phase(), cfg.Projectile.FlightTicks)
	}

	for i := 0; i < 100 && len(rig.manager.Words()) > 0; i++ {
		rig.tick(0, false)
	}
	if len(rig.manager.Words()) != 0 {
		t.Fatal("finished word was not removed")
	}
	if rig.score.Total() != 3 {
		t.Errorf("score = %d, expected 3", rig.score.Total())
	}
	if rig.manager.MissedWords() != 0 {
		t.Errorf("MissedWords() = %d, expected 0", rig.manager.MissedWords())
	}
}

func TestManagerScoresWordLength(t *testing.T) {
	cfg := quietConfig()
	rig := newTestRig(t, cfg, "apple")
	rig.manager.SpawnWord()

	// Type slowly; the score depends only on the length
	for _, r := range "apple" {
		rig.idle(7)
		rig.tick(r, true)
	}
	for i := 0; i < 200 && len(rig.manager.Words()) > 0; i++ {
		rig.tick(0, false)
	}

	if rig.score.Total() != 5 {
		t.Errorf("score = %d, expected 5", rig.score.Total())
	}
	if got := rig.manager.Stats().Destroyed; got != 1 {
		t.Errorf("Destroyed = %d, expected 1", got)
	}
}

func TestManagerBroadcastsTypedLetter(t *testing.T) {
	cfg := quietConfig()
	rig := newTestRig(t, cfg, "cat", "car", "dog")
	cat := rig.manager.SpawnWord().Word
	car := rig.manager.SpawnWord().Word
	dog := rig.manager.SpawnWord().Word

	rig.tick('c', true)
	rig.tick('a', true)

	if cat.TypedLen() != 2 || car.TypedLen() != 2 {
		t.Errorf("shared prefix: cat=%d car=%d, expected both 2", cat.TypedLen(), car.TypedLen())
	}
	if dog.TypedLen() != 0 {
		t.Errorf("dog TypedLen() = %d, expected 0", dog.TypedLen())
	}
}

func TestManagerMissesExplodeTurret(t *testing.T) {
	cfg := config.DefaultConfig()
	rig := newTestRig(t, cfg, "cat")

	lastMissed := 0
	explodedAt := -1
	for tick := 1; tick <= 2000 && explodedAt < 0; tick++ {
		rig.tick(0, false)

		missed := rig.manager.MissedWords()
		if missed-lastMissed > 1 {
			t.Fatalf("tick %d: missed jumped from %d to %d", tick, lastMissed, missed)
		}
		if missed < cfg.Words.MaxMissed && rig.turret.Exploded() {
			t.Fatalf("tick %d: turret exploded after only %d misses", tick, missed)
		}
		if missed == cfg.Words.MaxMissed {
			if !rig.turret.Exploded() {
				t.Fatalf("tick %d: turret intact on the %d miss", tick, missed)
			}
			explodedAt = tick
		}
		lastMissed = missed
	}
	if explodedAt < 0 {
		t.Fatal("turret never exploded")
	}
	if rig.score.Total() != 0 {
		t.Errorf("missed words scored %d points", rig.score.Total())
	}
	if got := rig.manager.Stats().Missed; got != cfg.Words.MaxMissed {
		t.Errorf("Stats().Missed = %d, expected %d", got, cfg.Words.MaxMissed)
	}

	rig.idle(cfg.Turret.ExplosionDuration)
	if !rig.turret.IsFinished() {
		t.Error("turret should be finished after its explosion duration")
	}
}

func TestManagerMissRemovesOnce(t *testing.T) {
	cfg := quietConfig()
	cfg.Words.Speed = 100
	rig := newTestRig(t, cfg, "cat")
	rig.manager.SpawnWord()

	rig.idle(8) // 800 -> 0
	if rig.manager.MissedWords() != 0 {
		t.Fatalf("word at x=0 counted as a miss")
	}
	rig.idle(1)
	if rig.manager.MissedWords() != 1 || len(rig.manager.Words()) != 0 {
		t.Fatalf("MissedWords() = %d, live = %d", rig.manager.MissedWords(), len(rig.manager.Words()))
	}
	rig.idle(10)
	if rig.manager.MissedWords() != 1 {
		t.Errorf("miss counted again: %d", rig.manager.MissedWords())
	}
}

func TestManagerLaunchedWordCanStillMiss(t *testing.T) {
	cfg := quietConfig()
	cfg.Words.Speed = 100
	cfg.Projectile.FlightTicks = 1000
	rig := newTestRig(t, cfg, "a")
	w := rig.manager.SpawnWord().Word

	rig.tick('a', true)
	if !w.Projectile().Launched {
		t.Fatal("projectile should be launched")
	}
	rig.idle(10)
	if rig.manager.MissedWords() != 1 {
		t.Errorf("launched but unexploded word should count as a miss, got %d", rig.manager.MissedWords())
	}
}
