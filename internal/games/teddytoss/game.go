// Package teddytoss implements Teddy Toss, the arcade's flagship game: teddy
// bears ricochet around a walled arena while the player slides a launcher
// along the floor and pops them with darts before they crash into it.
package teddytoss

import (
	"fmt"
	"math"
	"strings"

	"github.com/ricochet-arcade/ricochet/internal/config"
	"github.com/ricochet-arcade/ricochet/internal/core"
	"github.com/ricochet-arcade/ricochet/internal/physics"
	"github.com/ricochet-arcade/ricochet/internal/registry"
)

// Visual characters for rendering
const (
	BearFill     = '▒'
	BearFace     = 'ᴥ'
	LauncherChar = '█'
	MuzzleChar   = '▲'
	DartChar     = '▲'
	HeartChar    = '♥'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Teddy Toss game logic.
type Game struct {
	// Arena objects
	bears    []*Bear
	darts    []*Dart
	launcher Launcher
	walls    [4]physics.Rect

	// Game state
	score          int
	lives          int
	tickCount      int
	spawnCountdown int
	fireCooldown   int
	paused         bool
	gameOver       bool

	// Events accumulated during the current tick
	events []core.Event

	// Deterministic RNG for spawning
	rng *SimpleRNG

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.TeddyTossConfig
	difficulty *config.DifficultyManager
	stepMs     int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Teddy Toss game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "teddytoss"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Teddy Toss"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadTeddyToss(configPath)
	if err != nil {
		cfg = config.DefaultTeddyTossConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyTeddyTossPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.stepMs = runtime.StepMs()
	g.rng = NewSimpleRNG(runtime.Seed)

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.fireCooldown = 0
	g.paused = false
	g.gameOver = false
	g.events = nil

	g.walls = arenaWalls(float64(runtime.ScreenW), float64(runtime.ScreenH))

	lw := float64(cfg.Launcher.Width)
	lh := float64(cfg.Launcher.Height)
	g.launcher = Launcher{
		X: (float64(runtime.ScreenW) - lw) / 2,
		Y: float64(runtime.ScreenH) - 1 - lh,
		W: lw,
		H: lh,
	}

	g.bears = g.bears[:0]
	g.darts = g.darts[:0]
	if !g.screenTooSmall {
		// Two bears to start; the spawner takes over from here.
		g.spawnBear()
		g.spawnBear()
	}
	g.spawnCountdown = cfg.Bears.SpawnEveryTicks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return g.result()
	}

	g.tickCount++

	g.updateLauncher(in)
	g.updateFire(in)
	g.updateSpawner()

	// Everything moves to its end-of-tick position first; the engine then
	// rewinds pairs that collided.
	for _, b := range g.bears {
		if b.Alive {
			b.Advance(g.stepMs)
		}
	}
	for _, d := range g.darts {
		if d.Alive {
			d.Advance(g.stepMs)
		}
	}

	g.resolveCollisions()
	g.cullBodies()

	return g.result()
}

// result packages the current state and this tick's events.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// updateLauncher handles launcher movement.
func (g *Game) updateLauncher(in core.InputFrame) {
	speed := g.cfg.Physics.LauncherSpeed

	if in.Has(core.ActionLeft) {
		g.launcher.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.launcher.X += speed
	}

	// Keep the launcher between the side walls
	minX := 1.0
	maxX := float64(g.runtime.ScreenW-1) - g.launcher.W
	g.launcher.X = core.ClampF(g.launcher.X, minX, maxX)
}

// updateFire handles dart launching and its cooldown.
func (g *Game) updateFire(in core.InputFrame) {
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	if !in.Has(core.ActionFire) || g.fireCooldown > 0 {
		return
	}

	g.darts = append(g.darts, &Dart{
		Vel:   physics.Vec{Y: -g.cfg.Physics.DartSpeed / float64(g.stepMs)},
		Rect:  physics.NewRect(g.launcher.MuzzleX()-0.5, g.launcher.Y-1, 1, 1),
		Alive: true,
	})
	g.fireCooldown = g.cfg.Gameplay.FireCooldownTicks
	g.emit(core.EventLaunch)
}

// updateSpawner drops new bears into the arena on a difficulty-scaled timer.
func (g *Game) updateSpawner() {
	g.spawnCountdown--
	if g.spawnCountdown > 0 {
		return
	}
	if g.countBears() < g.cfg.Bears.MaxOnScreen {
		g.spawnBear()
	}
	g.spawnCountdown = g.difficulty.Interval(g.cfg.Bears.SpawnEveryTicks, g.score, g.tickCount)
}

// countBears returns the number of live bears.
func (g *Game) countBears() int {
	count := 0
	for _, b := range g.bears {
		if b.Alive {
			count++
		}
	}
	return count
}

// spawnBear tries to place a new bear in the upper arena at a spot that
// touches nothing, giving up after a bounded number of attempts so a
// crowded arena never stalls the tick.
func (g *Game) spawnBear() bool {
	bw := float64(g.cfg.Bears.Width)
	bh := float64(g.cfg.Bears.Height)

	minX, maxX := 1.0, float64(g.runtime.ScreenW-1)-bw
	minY, maxY := 2.0, float64(g.runtime.ScreenH)*0.6-bh
	if maxX <= minX || maxY <= minY {
		return false
	}

	for attempt := 0; attempt < g.cfg.Bears.SpawnAttempts; attempt++ {
		r := physics.NewRect(g.rng.FloatRange(minX, maxX), g.rng.FloatRange(minY, maxY), bw, bh)
		if !physics.CollisionFree(r, g.blockingRects()) {
			continue
		}

		speed := g.difficulty.Speed(
			g.rng.FloatRange(g.cfg.Physics.MinBearSpeed, g.cfg.Physics.MaxBearSpeed),
			g.score, g.tickCount,
		) / float64(g.stepMs)
		angle := g.rng.FloatRange(0, 2*math.Pi)

		g.bears = append(g.bears, &Bear{
			Vel:   physics.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Rect:  r,
			Alive: true,
		})
		return true
	}
	return false
}

// blockingRects returns everything a new bear must not spawn on top of.
func (g *Game) blockingRects() []physics.Rect {
	rects := make([]physics.Rect, 0, len(g.bears)+len(g.darts)+5)
	rects = append(rects, g.walls[:]...)
	for _, b := range g.bears {
		if b.Alive {
			rects = append(rects, b.Rect)
		}
	}
	for _, d := range g.darts {
		if d.Alive {
			rects = append(rects, d.Rect)
		}
	}
	rects = append(rects, g.launcher.Rect())
	return rects
}

// resolveCollisions runs all per-tick contact checks in a fixed order:
// darts pop bears, darts stop at the ceiling, bears bounce off walls and
// each other, and bears reaching the launcher cost a life.
func (g *Game) resolveCollisions() {
	screenW := float64(g.runtime.ScreenW)
	screenH := float64(g.runtime.ScreenH)

	for _, d := range g.darts {
		if !d.Alive {
			continue
		}
		for _, b := range g.bears {
			if b.Alive && d.Rect.Intersects(b.Rect) {
				d.Alive = false
				b.Alive = false
				g.score += g.cfg.Gameplay.BurstPoints
				g.emit(core.EventBurst)
				g.emit(core.EventScore)
				break
			}
		}
		if d.Alive && d.Rect.Intersects(g.walls[wallTop]) {
			d.Alive = false
		}
	}

	for _, b := range g.bears {
		if !b.Alive {
			continue
		}
		for _, w := range g.walls {
			res, ok := physics.Resolve(g.stepMs, screenW, screenH, b.Body(), physics.Body{Rect: w})
			if !ok {
				continue
			}
			// Walls carry no kinetic energy, so only the bear's half of the
			// resolution is applied.
			b.Vel = res.A.Vel
			b.Rect = res.A.Rect
			g.emit(core.EventBounce)
		}
	}

	for i := 0; i < len(g.bears); i++ {
		for j := i + 1; j < len(g.bears); j++ {
			a, b := g.bears[i], g.bears[j]
			if !a.Alive || !b.Alive {
				continue
			}
			res, ok := physics.Resolve(g.stepMs, screenW, screenH, a.Body(), b.Body())
			if !ok {
				continue
			}
			a.Vel, a.Rect = res.A.Vel, res.A.Rect
			b.Vel, b.Rect = res.B.Vel, res.B.Rect
			g.emit(core.EventBounce)
		}
	}

	for _, b := range g.bears {
		if g.gameOver {
			break
		}
		if !b.Alive || !b.Rect.Intersects(g.launcher.Rect()) {
			continue
		}
		b.Alive = false
		g.lives--
		g.emit(core.EventLifeLost)
		if g.lives <= 0 {
			g.gameOver = true
			g.emit(core.EventGameOver)
		}
	}
}

// cullBodies drops popped entities and anything that slipped outside the
// window entirely.
func (g *Game) cullBodies() {
	screenW := float64(g.runtime.ScreenW)
	screenH := float64(g.runtime.ScreenH)

	bears := g.bears[:0]
	for _, b := range g.bears {
		if b.Alive && !physics.OutOfBounds(b.Rect, screenW, screenH) {
			bears = append(bears, b)
		}
	}
	g.bears = bears

	darts := g.darts[:0]
	for _, d := range g.darts {
		if d.Alive && !physics.OutOfBounds(d.Rect, screenW, screenH) {
			darts = append(darts, d)
		}
	}
	g.darts = darts
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small!")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	hearts := strings.Repeat(string(HeartChar), g.lives)
	dst.DrawTextColor(dst.Width()-1-g.lives, 0, hearts, core.ColorBrightRed)

	// Arena border
	dst.DrawBox(core.NewRect(0, 1, g.runtime.ScreenW, g.runtime.ScreenH-1))

	// Bears
	for _, b := range g.bears {
		if !b.Alive {
			continue
		}
		x, y := int(b.Rect.X), int(b.Rect.Y)
		w, h := g.cfg.Bears.Width, g.cfg.Bears.Height
		dst.DrawRectColor(core.NewRect(x, y, w, h), BearFill, core.ColorOrange)
		dst.SetColor(x+w/2-1, y+h/2, BearFace, core.ColorBrightWhite)
	}

	// Darts
	for _, d := range g.darts {
		if d.Alive {
			dst.SetColor(int(d.Rect.X), int(d.Rect.Y), DartChar, core.ColorBrightYellow)
		}
	}

	// Launcher: a base with a muzzle on top
	lx, ly := int(g.launcher.X), int(g.launcher.Y)
	lw, lh := int(g.launcher.W), int(g.launcher.H)
	if lh > 1 {
		dst.DrawRectColor(core.NewRect(lx, ly+1, lw, lh-1), LauncherChar, core.ColorCyan)
	}
	dst.SetColor(int(g.launcher.MuzzleX()), ly, MuzzleChar, core.ColorBrightCyan)

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	} else if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextCentered(boxY+2+i, line)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("teddytoss", func() registry.Game {
		return New()
	})
}
