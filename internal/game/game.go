// Package game is the simulation core of the chicken shooter: a grid where
// chickens fall toward a ship that shoots piercing bullets upward and
// collects coins to power up its weapon.
//
// A Game is driven entirely from outside. The host calls Step at the interval
// reported by TickInterval and forwards player actions; the Game reports
// every visible change through Callbacks. A Game is not safe for concurrent
// use: all calls must come from the goroutine that owns it.
package game

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoClock is returned by New when Options carries no Clock.
var ErrNoClock = errors.New("game: a clock is required")

// Game owns one session and is its only mutation entrypoint.
type Game struct {
	cfg   Config
	state *State
	clock Clock
	ui    Callbacks
	log   *log.Logger

	weapon   *Weapon
	resolver *Resolver
	spawner  *Spawner
	tempo    *Tempo
}

// New validates cfg and creates a fresh session.
func New(cfg Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		return nil, ErrNoClock
	}

	rng := opts.Rand
	if rng == nil {
		rng = globalRand{}
	}
	ui := opts.Callbacks
	if ui == nil {
		ui = NopCallbacks{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:   cfg,
		state: newState(cfg),
		clock: opts.Clock,
		ui:    ui,
		log:   logger,
		weapon: &Weapon{
			Cooldown:   cfg.ShotCooldown,
			Thresholds: cfg.PowerThresholds,
		},
		spawner: NewSpawner(rng, cfg.CoinChancePercent),
		tempo:   NewTempo(cfg.InitialTick, cfg.MinTick, cfg.Acceleration),
	}
	g.resolver = &Resolver{
		OnKill:    g.handleKill,
		OnShipHit: g.handleShipHit,
		OnCollect: g.handleCollect,
	}
	return g, nil
}

// Config returns the configuration the session was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Init publishes the initial HUD values and requests the first render.
func (g *Game) Init() {
	g.publish()
}

// publish reports every HUD value, as after a fresh start.
func (g *Game) publish() {
	s := g.state
	g.ui.OnHeartsChanged(s.Lives)
	g.ui.OnScoreChanged(s.Score)
	g.ui.OnCoinsChanged(s.Coins)
	g.ui.OnWeaponPowerChanged(g.weapon.Power(s))
	g.ui.OnShootAccepted(0)
	g.ui.OnRender()
}

// IsPaused reports whether steps and player actions are frozen.
func (g *Game) IsPaused() bool {
	return g.state.Paused
}

// SetPaused freezes or resumes the session. Collections and cooldowns are
// kept. A finished game cannot be resumed, only reset.
func (g *Game) SetPaused(paused bool) {
	s := g.state
	if s.Over && !paused {
		return
	}
	if s.Paused == paused {
		return
	}
	s.Paused = paused
	g.log.Debug("pause toggled", "paused", paused)
	g.ui.OnRender()
}

// Phase returns the session state.
func (g *Game) Phase() Phase {
	switch {
	case g.state.Over:
		return PhaseGameOver
	case g.state.Paused:
		return PhasePaused
	default:
		return PhaseActive
	}
}

// ResetGame discards the session and starts a fresh one.
func (g *Game) ResetGame() {
	g.state = newState(g.cfg)
	g.tempo.Reset()
	g.log.Debug("game reset", "cols", g.cfg.Cols, "rows", g.cfg.Rows)
	g.publish()
}

// MoveLeft shifts the ship one column left.
func (g *Game) MoveLeft() {
	g.move(-1)
}

// MoveRight shifts the ship one column right.
func (g *Game) MoveRight() {
	g.move(1)
}

// move shifts the ship by dir columns and settles what it ran into.
// Moves past the board edge are ignored.
func (g *Game) move(dir int) {
	s := g.state
	if s.Paused {
		return
	}
	col := s.PlayerCol + dir
	if col < 0 || col >= s.Cols {
		return
	}
	s.PlayerCol = col
	g.resolver.ResolveShipCell(s)
	g.ui.OnRender()
}

// Shoot tries to fire and reports the outcome to the host.
func (g *Game) Shoot() bool {
	if !g.weapon.TryShoot(g.state, g.clock.Now(), g.handleKill) {
		g.ui.OnShootRejected()
		return false
	}
	g.ui.OnShootAccepted(g.cfg.ShotCooldown)
	g.ui.OnRender()
	return true
}

// Step advances the board by one tick: bullets, then chickens, then coins.
// A hit that ends the game stops the step where it happened.
// Every SpawnEvery steps, starting with the first, it also spawns, awards
// survival score and recomputes the tempo. Step is a no-op while paused.
func (g *Game) Step() {
	s := g.state
	if s.Paused {
		return
	}

	s.Steps++
	g.weapon.AdvanceBullets(s, g.handleKill)
	g.resolver.AdvanceChickens(s)
	if !s.Over {
		g.resolver.AdvanceCoins(s)
	}

	if !s.Over && (s.Steps-1)%g.cfg.SpawnEvery == 0 {
		g.spawner.Spawn(s)
		if g.cfg.SurvivalScore > 0 {
			s.Score += g.cfg.SurvivalScore
			g.ui.OnScoreChanged(s.Score)
		}
		if prev, next := g.tempo.Current(), g.tempo.Recompute(s.Score); next != prev {
			g.log.Debug("tempo changed", "interval", next, "score", s.Score)
		}
	}

	g.ui.OnRender()
}

// TickInterval returns how long the host should wait before the next Step.
// It must be re-read after every step.
func (g *Game) TickInterval() time.Duration {
	return g.tempo.Current()
}

// Snapshot returns a detached copy of the session for rendering.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	now := g.clock.Now()

	snap := s.snapshot()
	snap.Phase = g.Phase()
	snap.Power = g.weapon.Power(s)
	snap.CooldownLeft = g.weapon.CooldownLeft(s, now)
	snap.TickInterval = g.tempo.Current()
	if s.Invulnerable(now) {
		snap.InvulnerableLeft = s.InvulnerableUntil - now
	}
	return snap
}
