// Package pong implements a classic Pong game with CPU opponent.
// Player 1 controls the left paddle, CPU controls the right paddle.
// The ball runs on the same swept collision engine as Teddy Toss, so a
// fast ball can never tunnel through a paddle between ticks.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ricochet-arcade/ricochet/internal/config"
	"github.com/ricochet-arcade/ricochet/internal/core"
	"github.com/ricochet-arcade/ricochet/internal/physics"
	"github.com/ricochet-arcade/ricochet/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
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

// Game implements the Pong game logic.
type Game struct {
	// Paddles
	paddle1Y float64 // Player 1 (left) paddle Y position
	paddle2Y float64 // Player 2/CPU (right) paddle Y position

	// Paddle movement this tick, in cells per tick; fed to the engine so a
	// moving paddle reflects the ball the way a moving wall would.
	paddle1VY float64
	paddle2VY float64

	// Ball
	ball physics.Body

	// Scores
	score1 int // Player 1 score
	score2 int // Player 2/CPU score

	// Game state
	gameOver   bool
	paused     bool
	winner     int  // 1 or 2
	serving    bool // True when waiting to serve
	serveDelay int  // Ticks to wait before serving

	// Events accumulated during the current tick
	events []core.Event

	// Settings
	runtime      core.RuntimeConfig
	cfg          config.PongConfig
	difficulty   *config.DifficultyManager
	stepMs       int
	paddleHeight int
	rng          *rand.Rand
	tickCount    int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPongPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.stepMs = runtime.StepMs()
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Adjust paddle height based on screen size
	g.paddleHeight = core.Clamp(runtime.ScreenH/5, 3, cfg.Paddles.Height)

	// Center paddles vertically
	centerY := float64(runtime.ScreenH) / 2.0
	g.paddle1Y = centerY - float64(g.paddleHeight)/2.0
	g.paddle2Y = centerY - float64(g.paddleHeight)/2.0
	g.paddle1VY = 0
	g.paddle2VY = 0

	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.paused = false
	g.winner = 0
	g.tickCount = 0
	g.events = nil

	g.startServe(1)
}

// startServe prepares to serve the ball.
func (g *Game) startServe(server int) {
	g.serving = true
	g.serveDelay = g.cfg.Gameplay.ServeDelay

	// Center ball
	g.ball.Rect = physics.NewRect(
		float64(g.runtime.ScreenW)/2.0,
		float64(g.runtime.ScreenH)/2.0,
		1, 1,
	)

	// Ball velocity towards the player who was scored against
	speed := g.cfg.Physics.BallSpeed / float64(g.stepMs)
	if server == 1 {
		g.ball.Vel.X = -speed
	} else {
		g.ball.Vel.X = speed
	}

	// Random vertical angle
	angle := (g.rng.Float64() - 0.5) * 0.6 // -0.3 to 0.3
	g.ball.Vel.Y = speed * angle
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

	// Handle serve delay
	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
			g.emit(core.EventLaunch)
		}
		// Still process paddle movement during serve
	}

	// Update Player 1 paddle
	prev1 := g.paddle1Y
	if in.Has(core.ActionUp) {
		g.paddle1Y -= g.cfg.Physics.PaddleSpeed
	}
	if in.Has(core.ActionDown) {
		g.paddle1Y += g.cfg.Physics.PaddleSpeed
	}

	// Clamp paddle positions
	maxY := float64(g.runtime.ScreenH - g.paddleHeight - 1)
	g.paddle1Y = core.ClampF(g.paddle1Y, 1, maxY)
	g.paddle1VY = g.paddle1Y - prev1

	// Update CPU paddle (Player 2)
	g.updateCPU()

	// Update ball if not serving
	if !g.serving {
		g.updateBall()
	}

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

// cpuSkill returns the CPU tracking skill for the current tick. It ramps
// from min to max over the configured progression window.
func (g *Game) cpuSkill() float64 {
	level := g.difficulty.Level(g.score2, g.tickCount)
	return g.cfg.CPU.MinSkill + level*(g.cfg.CPU.MaxSkill-g.cfg.CPU.MinSkill)
}

// updateCPU handles CPU paddle movement.
func (g *Game) updateCPU() {
	prev := g.paddle2Y

	// CPU tracks ball with some imperfection
	ballCenterY := g.ball.Rect.Y + g.ball.Rect.H/2
	targetY := ballCenterY - float64(g.paddleHeight)/2.0
	diff := targetY - g.paddle2Y

	// Only move if ball is coming towards CPU
	if g.ball.Vel.X > 0 {
		moveSpeed := g.cfg.Physics.PaddleSpeed * g.cpuSkill()
		if math.Abs(diff) > moveSpeed {
			if diff > 0 {
				g.paddle2Y += moveSpeed
			} else {
				g.paddle2Y -= moveSpeed
			}
		}
	}

	// Clamp CPU paddle
	maxY := float64(g.runtime.ScreenH - g.paddleHeight - 1)
	g.paddle2Y = core.ClampF(g.paddle2Y, 1, maxY)
	g.paddle2VY = g.paddle2Y - prev
}

// walls returns the top and bottom bounce strips. Row 0 is the score line,
// so the playfield spans rows 1 through ScreenH-2.
func (g *Game) walls() [2]physics.Rect {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	return [2]physics.Rect{
		physics.NewRect(0, 0, w, 1),
		physics.NewRect(0, h-1, w, 1),
	}
}

// paddleRects returns both paddles as collision rectangles.
func (g *Game) paddleRects() (physics.Rect, physics.Rect) {
	pw := float64(g.cfg.Paddles.Width)
	ph := float64(g.paddleHeight)
	offset := float64(g.cfg.Paddles.Offset)
	p1 := physics.NewRect(offset, g.paddle1Y, pw, ph)
	p2 := physics.NewRect(float64(g.runtime.ScreenW)-offset-pw, g.paddle2Y, pw, ph)
	return p1, p2
}

// updateBall advances the ball and resolves wall and paddle contacts.
func (g *Game) updateBall() {
	g.ball.Rect = g.ball.Rect.Translate(g.ball.Vel.Scale(float64(g.stepMs)))

	screenW := float64(g.runtime.ScreenW)
	screenH := float64(g.runtime.ScreenH)

	for _, wall := range g.walls() {
		res, ok := physics.Resolve(g.stepMs, screenW, screenH, g.ball, physics.Body{Rect: wall})
		if !ok {
			continue
		}
		g.ball = physics.Body{Vel: res.A.Vel, Rect: res.A.Rect}
		g.emit(core.EventBounce)
	}

	p1, p2 := g.paddleRects()
	g.resolvePaddle(p1, g.paddle1VY, g.paddle1Y)
	g.resolvePaddle(p2, g.paddle2VY, g.paddle2Y)

	// Check scoring (ball fully escaped past a paddle)
	if physics.OutOfBounds(g.ball.Rect, screenW, screenH) {
		if g.ball.Rect.X+g.ball.Rect.W/2 < screenW/2 {
			// Player 2 scores
			g.score2++
			g.emit(core.EventScore)
			if g.score2 >= g.cfg.Gameplay.WinScore {
				g.endMatch(2)
			} else {
				g.startServe(2)
			}
		} else {
			// Player 1 scores
			g.score1++
			g.emit(core.EventScore)
			if g.score1 >= g.cfg.Gameplay.WinScore {
				g.endMatch(1)
			} else {
				g.startServe(1)
			}
		}
	}
}

// resolvePaddle bounces the ball off one paddle. The paddle is kinematic:
// the engine's result for it is discarded, only the ball half is applied.
func (g *Game) resolvePaddle(paddle physics.Rect, paddleVY, paddleY float64) {
	paddleBody := physics.Body{
		Vel:  physics.Vec{Y: paddleVY / float64(g.stepMs)},
		Rect: paddle,
	}

	res, ok := physics.Resolve(g.stepMs, float64(g.runtime.ScreenW), float64(g.runtime.ScreenH), g.ball, paddleBody)
	if !ok {
		return
	}

	g.ball = physics.Body{Vel: res.A.Vel, Rect: res.A.Rect}
	g.emit(core.EventBounce)

	// Spin and speed-up only apply to face hits; a ball glancing off the
	// paddle's top or bottom just reflects.
	if res.Side != physics.SideLeft && res.Side != physics.SideRight {
		return
	}

	ballCenterY := g.ball.Rect.Y + g.ball.Rect.H/2
	hitPos := (ballCenterY - paddleY) / float64(g.paddleHeight)
	g.ball.Vel.Y += (hitPos - 0.5) * g.cfg.Physics.SpinFactor / float64(g.stepMs)

	// Slightly increase speed
	g.ball.Vel.X *= 1.02

	// Limit ball speed
	maxSpeed := g.cfg.Physics.MaxBallSpeed / float64(g.stepMs)
	if math.Abs(g.ball.Vel.X) > maxSpeed {
		g.ball.Vel.X = maxSpeed * math.Copysign(1, g.ball.Vel.X)
	}
	if math.Abs(g.ball.Vel.Y) > maxSpeed/2 {
		g.ball.Vel.Y = maxSpeed / 2 * math.Copysign(1, g.ball.Vel.Y)
	}
}

// endMatch finishes the game with the given winner.
func (g *Game) endMatch(winner int) {
	g.gameOver = true
	g.winner = winner
	g.emit(core.EventGameOver)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small!")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetColor(centerX, y, NetChar, core.ColorGray)
	}

	// Draw paddles
	p1, p2 := g.paddleRects()
	for i := 0; i < g.paddleHeight; i++ {
		dst.SetColor(int(p1.X), int(p1.Y)+i, PaddleChar, core.ColorBrightGreen)
		dst.SetColor(int(p2.X), int(p2.Y)+i, PaddleChar, core.ColorBrightRed)
	}

	// Draw ball
	if !g.serving || (g.serveDelay/10)%2 == 0 { // Blink during serve
		dst.SetColor(int(g.ball.Rect.X), int(g.ball.Rect.Y), BallChar, core.ColorBrightWhite)
	}

	// Draw scores
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", g.score1))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", g.score2))

	// Draw labels
	dst.DrawText(1, 0, "P1")
	dst.DrawText(dst.Width()-4, 0, "CPU")

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		var msg string
		if g.winner == 1 {
			msg = "YOU WIN!"
		} else {
			msg = "CPU WINS!"
		}
		g.drawCenteredMessage(dst, msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.score1, g.score2))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score1, // Report player's score
		GameOver:      g.gameOver,
		Paused:        g.paused,
		OpponentScore: g.score2,
		Winner:        g.winner,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
