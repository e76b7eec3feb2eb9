package game

import (
	"testing"
	"time"
)

// manualClock is a Clock the test moves by hand.
type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now += d }

// scriptedRand returns queued values in order, then zeros.
// Each value is reduced modulo n so scripts stay valid for any range.
type scriptedRand struct {
	values []int
	calls  []int // n of every call, for asserting the draw sequence
}

func (r *scriptedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// recorder captures callbacks.
type recorder struct {
	hearts   []int
	scores   []int
	coins    []int
	powers   []int
	hits     int
	gameOver []int
	accepted []time.Duration
	rejected int
	renders  int
}

func (r *recorder) OnHeartsChanged(lives int) { r.hearts = append(r.hearts, lives) }
func (r *recorder) OnScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recorder) OnCoinsChanged(coins int) { r.coins = append(r.coins, coins) }
func (r *recorder) OnWeaponPowerChanged(power int) { r.powers = append(r.powers, power) }
func (r *recorder) OnHitFeedback() { r.hits++ }
func (r *recorder) OnGameOver(finalScore int) { r.gameOver = append(r.gameOver, finalScore) }
func (r *recorder) OnShootAccepted(cooldown time.Duration) { r.accepted = append(r.accepted, cooldown) }
func (r *recorder) OnShootRejected() { r.rejected++ }
func (r *recorder) OnRender() { r.renders++ }

var _ Callbacks = (*recorder)(nil)

// testConfig is a 5×10 board with spawning pushed far away so tests control
// the board contents.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Cols = 5
	cfg.Rows = 10
	cfg.SpawnEvery = 1000
	cfg.SurvivalScore = 0
	cfg.CoinChancePercent = 0
	return cfg
}

type fixture struct {
	game  *Game
	clock *manualClock
	rand  *scriptedRand
	ui    *recorder
}

// newFixture builds a game whose first spawn cycle has already passed, so
// Step only moves what the test put on the board.
func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		clock: &manualClock{now: 10 * time.Second},
		rand:  &scriptedRand{},
		ui:    &recorder{},
	}
	g, err := New(cfg, Options{Clock: f.clock, Rand: f.rand, Callbacks: f.ui})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.state.Steps = 1
	f.game = g
	return f
}
