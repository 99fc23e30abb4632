package teddytoss

import (
	"reflect"
	"testing"

	"github.com/ricochet-arcade/ricochet/internal/core"
	"github.com/ricochet-arcade/ricochet/internal/physics"
)

func countEvents(events []core.Event, want core.Event) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	// Run both games with same inputs for N ticks
	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i >= 20 && i < 40 {
			input.Set(core.ActionLeft)
		}
		if i == 50 || i == 120 {
			input.Set(core.ActionFire)
		}
		if i >= 60 && i < 90 {
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Lives != snap2.Lives {
		t.Errorf("Lives mismatch: %d vs %d", snap1.Lives, snap2.Lives)
	}
	if snap1.LauncherX != snap2.LauncherX {
		t.Errorf("Launcher position mismatch: %v vs %v", snap1.LauncherX, snap2.LauncherX)
	}
	if !reflect.DeepEqual(snap1.Bears, snap2.Bears) {
		t.Errorf("Bears mismatch: %+v vs %+v", snap1.Bears, snap2.Bears)
	}
	if !reflect.DeepEqual(snap1.Darts, snap2.Darts) {
		t.Errorf("Darts mismatch: %+v vs %+v", snap1.Darts, snap2.Darts)
	}
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Snapshot hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
}

func TestSpawnValidity(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    999,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	// Spawn bears repeatedly and verify each lands clear of everything
	for i := 0; i < 20; i++ {
		before := len(g.bears)
		if !g.spawnBear() {
			// A full arena is a legal outcome, not a failure
			break
		}
		bear := g.bears[len(g.bears)-1]

		for _, w := range g.walls {
			if bear.Rect.Intersects(w) {
				t.Errorf("Bear %d spawned overlapping a wall at (%v, %v)", before, bear.Rect.X, bear.Rect.Y)
			}
		}
		for j := 0; j < before; j++ {
			if bear.Rect.Intersects(g.bears[j].Rect) {
				t.Errorf("Bear %d spawned overlapping bear %d", before, j)
			}
		}
		if bear.Rect.Intersects(g.launcher.Rect()) {
			t.Errorf("Bear %d spawned on the launcher", before)
		}
		if physics.OutOfBounds(bear.Rect, float64(cfg.ScreenW), float64(cfg.ScreenH)) {
			t.Errorf("Bear %d spawned out of bounds at (%v, %v)", before, bear.Rect.X, bear.Rect.Y)
		}
	}
}

func TestFireCooldown(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    42,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	// Holding fire should launch once per cooldown window
	input := core.NewInputFrame()
	input.Set(core.ActionFire)

	launches := 0
	for i := 0; i < 37; i++ {
		res := g.Step(input)
		launches += countEvents(res.Events, core.EventLaunch)
	}

	// Cooldown of 18 ticks: launches at ticks 1, 19 and 37
	if launches != 3 {
		t.Errorf("Expected 3 launches in 37 ticks, got %d", launches)
	}
}

func TestLauncherHitCostsLife(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    7,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)
	startLives := g.lives

	// Replace the arena with a single bear diving straight at the launcher
	g.bears = nil
	g.spawnCountdown = 100000
	g.bears = append(g.bears, &Bear{
		Vel:   physics.Vec{Y: 0.5 / float64(g.stepMs)},
		Rect:  physics.NewRect(g.launcher.X+1, g.launcher.Y-6, 4, 3),
		Alive: true,
	})

	input := core.NewInputFrame()
	sawLifeLost := false
	for i := 0; i < 60 && !sawLifeLost; i++ {
		res := g.Step(input)
		sawLifeLost = countEvents(res.Events, core.EventLifeLost) > 0
	}

	if !sawLifeLost {
		t.Fatal("Expected a bear reaching the launcher to emit a life-lost event")
	}
	if g.lives != startLives-1 {
		t.Errorf("Expected %d lives after hit, got %d", startLives-1, g.lives)
	}
	if len(g.bears) != 0 {
		t.Errorf("Expected the bear to despawn after hitting the launcher, %d left", len(g.bears))
	}
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    7,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	g.bears = nil
	g.spawnCountdown = 100000
	g.lives = 1
	g.score = 50
	g.bears = append(g.bears, &Bear{
		Vel:   physics.Vec{Y: 0.5 / float64(g.stepMs)},
		Rect:  physics.NewRect(g.launcher.X+1, g.launcher.Y-6, 4, 3),
		Alive: true,
	})

	input := core.NewInputFrame()
	for i := 0; i < 60 && !g.gameOver; i++ {
		g.Step(input)
	}

	if !g.gameOver {
		t.Fatal("Expected game over once the last life is gone")
	}

	// Restart should give a fresh game
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("Expected restart to clear game over")
	}
	if g.score != 0 {
		t.Errorf("Expected score reset to 0, got %d", g.score)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("Expected lives reset to %d, got %d", g.cfg.Gameplay.Lives, g.lives)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    456,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}

	input.Set(core.ActionPause)
	g.Step(input)
	frozen := g.Snapshot()

	if frozen.State != "paused" {
		t.Fatalf("Expected paused state, got %s", frozen.State)
	}

	input.Clear()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}

	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("Expected no simulation progress while paused")
	}

	// Unpause and verify motion resumes; the unpausing tick itself runs
	input.Set(core.ActionPause)
	g.Step(input)
	input.Clear()
	g.Step(input)

	if g.Snapshot().Tick != frozen.Tick+2 {
		t.Errorf("Expected two ticks after unpause, got %d vs %d", g.Snapshot().Tick, frozen.Tick)
	}
}

func TestBearsLeaveOnlyAtLauncher(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    31337,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	// With no darts in play, the only way a bear may vanish is by reaching
	// the launcher. A silent disappearance means one escaped the arena.
	input := core.NewInputFrame()
	prev := len(g.Snapshot().Bears)
	for i := 0; i < 600; i++ {
		res := g.Step(input)
		now := len(g.Snapshot().Bears)
		lost := countEvents(res.Events, core.EventLifeLost)
		if now < prev && lost == 0 {
			t.Fatalf("Bear vanished at tick %d without reaching the launcher", g.tickCount)
		}
		prev = now
		if g.gameOver {
			break
		}
	}
}

func TestDartPopsBear(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    99,
		ScreenW: 80,
		ScreenH: 24,
	}

	g := New()
	g.Reset(cfg)

	// One stationary bear directly above the launcher muzzle
	g.bears = nil
	g.spawnCountdown = 100000
	g.bears = append(g.bears, &Bear{
		Rect:  physics.NewRect(g.launcher.MuzzleX()-2, 5, 4, 3),
		Alive: true,
	})

	input := core.NewInputFrame()
	input.Set(core.ActionFire)
	g.Step(input)
	input.Clear()

	burst := false
	for i := 0; i < 120 && !burst; i++ {
		res := g.Step(input)
		burst = countEvents(res.Events, core.EventBurst) > 0
	}

	if !burst {
		t.Fatal("Expected the dart to pop the bear")
	}
	if g.score != g.cfg.Gameplay.BurstPoints {
		t.Errorf("Expected score %d after one burst, got %d", g.cfg.Gameplay.BurstPoints, g.score)
	}
	if len(g.bears) != 0 {
		t.Errorf("Expected popped bear to despawn, %d left", len(g.bears))
	}
	if len(g.darts) != 0 {
		t.Errorf("Expected dart to despawn with the bear, %d left", len(g.darts))
	}
}

func TestScreenTooSmall(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    1,
		ScreenW: 10,
		ScreenH: 5,
	}

	g := New()
	g.Reset(cfg)

	if !g.screenTooSmall {
		t.Fatal("Expected 10x5 to be flagged too small")
	}

	input := core.NewInputFrame()
	g.Step(input)

	if g.tickCount != 0 {
		t.Errorf("Expected no ticks on a too-small screen, got %d", g.tickCount)
	}

	// Rendering the warning must not panic on the tiny screen
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
}
