package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds every tunable of a session. It is copied into the Game at
// construction and never changes afterwards.
type Config struct {
	Cols int // Board width
	Rows int // Board height, at least 2; the ship lives on Rows-1

	InitialLives int

	// Tempo: the step interval starts at InitialTick and shrinks with score,
	// never going below MinTick.
	InitialTick  time.Duration
	MinTick      time.Duration
	Acceleration float64

	// SpawnEvery is the number of steps between spawn/score/tempo cycles.
	SpawnEvery int

	ShotCooldown       time.Duration
	InvulnerableWindow time.Duration

	CoinChancePercent int // Chance a spawn cycle also drops a coin
	CoinPenalty       int // Coins lost per life lost

	// PowerThresholds are the coin totals unlocking weapon power 2..5.
	PowerThresholds [MaxPower - 1]int

	KillScore     int // Points per chicken shot down
	SurvivalScore int // Points per spawn cycle survived
}

// DefaultConfig returns the stock tuning of the game.
func DefaultConfig() Config {
	return Config{
		Cols:               3,
		Rows:               7,
		InitialLives:       3,
		InitialTick:        500 * time.Millisecond,
		MinTick:            150 * time.Millisecond,
		Acceleration:       0.02,
		SpawnEvery:         2,
		ShotCooldown:       200 * time.Millisecond,
		InvulnerableWindow: 1500 * time.Millisecond,
		CoinChancePercent:  30,
		CoinPenalty:        5,
		PowerThresholds:    [MaxPower - 1]int{15, 25, 50, 100},
		KillScore:          1,
		SurvivalScore:      1,
	}
}

// Validate checks the config for programmer errors. Gameplay never fails
// after a config has passed validation.
func (c Config) Validate() error {
	switch {
	case c.Cols < 1:
		return fmt.Errorf("%w: cols must be at least 1, got %d", ErrInvalidConfig, c.Cols)
	case c.Rows < 2:
		return fmt.Errorf("%w: rows must be at least 2, got %d", ErrInvalidConfig, c.Rows)
	case c.InitialLives < 1:
		return fmt.Errorf("%w: initial lives must be at least 1, got %d", ErrInvalidConfig, c.InitialLives)
	case c.InitialTick <= 0:
		return fmt.Errorf("%w: initial tick must be positive, got %s", ErrInvalidConfig, c.InitialTick)
	case c.MinTick <= 0 || c.MinTick > c.InitialTick:
		return fmt.Errorf("%w: min tick must be in (0, %s], got %s", ErrInvalidConfig, c.InitialTick, c.MinTick)
	case c.Acceleration < 0:
		return fmt.Errorf("%w: acceleration must not be negative, got %g", ErrInvalidConfig, c.Acceleration)
	case c.SpawnEvery < 1:
		return fmt.Errorf("%w: spawn interval must be at least 1 step, got %d", ErrInvalidConfig, c.SpawnEvery)
	case c.ShotCooldown < 0:
		return fmt.Errorf("%w: shot cooldown must not be negative, got %s", ErrInvalidConfig, c.ShotCooldown)
	case c.InvulnerableWindow < 0:
		return fmt.Errorf("%w: invulnerable window must not be negative, got %s", ErrInvalidConfig, c.InvulnerableWindow)
	case c.CoinChancePercent < 0 || c.CoinChancePercent > 100:
		return fmt.Errorf("%w: coin chance must be within 0..100, got %d", ErrInvalidConfig, c.CoinChancePercent)
	case c.CoinPenalty < 0:
		return fmt.Errorf("%w: coin penalty must not be negative, got %d", ErrInvalidConfig, c.CoinPenalty)
	case c.KillScore < 0 || c.SurvivalScore < 0:
		return fmt.Errorf("%w: score rewards must not be negative", ErrInvalidConfig)
	}

	prev := 0
	for i, t := range c.PowerThresholds {
		if t < prev {
			return fmt.Errorf("%w: power thresholds must be non-decreasing, threshold %d is %d after %d",
				ErrInvalidConfig, i, t, prev)
		}
		prev = t
	}
	return nil
}
