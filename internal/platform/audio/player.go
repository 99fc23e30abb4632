// Package audio provides synthesized sound effects for game events.
// All sounds are generated, no asset files; when no audio device is
// available the player degrades to silence instead of failing the game.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes and plays the arcade's sound effects.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a new sound player.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init sets up the audio device. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the audio device was initialized.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Cleanup silences all sounds. The player can be re-initialized afterwards.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// play adds a bounded one-shot streamer to the live mixer.
func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	// The speaker pulls from the mixer on its own goroutine.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Bounce plays a short blip for a wall or paddle hit.
func (p *Player) Bounce() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*60), NewBlipGenerator(sampleRate, 660)))
}

// Launch plays a rising chirp for a serve or dart launch.
func (p *Player) Launch() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*120), NewSweepGenerator(sampleRate, 220, 880, time.Millisecond*120)))
}

// Burst plays a crackling pop for a bear burst.
func (p *Player) Burst() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*200), NewPopGenerator(sampleRate)))
}

// Score plays a two-note ding for a scored point.
func (p *Player) Score() {
	first := beep.Take(sampleRate.N(time.Millisecond*80), NewBlipGenerator(sampleRate, 880))
	second := beep.Take(sampleRate.N(time.Millisecond*120), NewBlipGenerator(sampleRate, 1320))
	p.play(beep.Seq(first, second))
}

// LifeLost plays a falling tone for a lost life.
func (p *Player) LifeLost() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*250), NewSweepGenerator(sampleRate, 500, 180, time.Millisecond*250)))
}

// GameOver plays a long falling sweep for the end of a game.
func (p *Player) GameOver() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*500), NewSweepGenerator(sampleRate, 440, 60, time.Millisecond*500)))
}
