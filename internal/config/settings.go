package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/chickens/internal/game"
)

// Environment variables read by LoadSettings.
const (
	EnvConfigPath = "CHICKENS_CONFIG"
	EnvCols       = "CHICKENS_COLS"
	EnvRows       = "CHICKENS_ROWS"
	EnvTickMS     = "CHICKENS_TICK_MS"
	EnvSeed       = "CHICKENS_SEED"
)

// Board size and tick bounds offered to players.
const (
	MinCols   = 3
	MaxCols   = 7
	MinRows   = 5
	MaxRows   = 12
	MinTickMS = 200
	MaxTickMS = 800
)

// ErrInvalidSettings is wrapped by every validation error from Settings.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the on-disk game configuration.
type Settings struct {
	Board   BoardSettings   `yaml:"board"`
	Speed   SpeedSettings   `yaml:"speed"`
	Player  PlayerSettings  `yaml:"player"`
	Economy EconomySettings `yaml:"economy"`
	Scoring ScoringSettings `yaml:"scoring"`
	Seed    uint64          `yaml:"seed"` // 0 picks a random seed per session
}

// BoardSettings sizes the grid.
type BoardSettings struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SpeedSettings controls the step tempo.
type SpeedSettings struct {
	TickMS       int     `yaml:"tick_ms"`
	MinTickMS    int     `yaml:"min_tick_ms"`
	Acceleration float64 `yaml:"acceleration"` // Tempo gain per point of score
	SpawnEvery   int     `yaml:"spawn_every"`  // Steps between spawns
}

// PlayerSettings configures the ship.
type PlayerSettings struct {
	Lives          int `yaml:"lives"`
	ShotCooldownMS int `yaml:"shot_cooldown_ms"`
	InvulnerableMS int `yaml:"invulnerable_ms"`
}

// EconomySettings configures coins and weapon upgrades.
type EconomySettings struct {
	CoinChancePercent int   `yaml:"coin_chance_percent"`
	CoinPenalty       int   `yaml:"coin_penalty"`
	PowerThresholds   []int `yaml:"power_thresholds"`
}

// ScoringSettings configures score rewards.
type ScoringSettings struct {
	Kill     int `yaml:"kill"`
	Survival int `yaml:"survival"`
}

// DefaultSettings mirrors game.DefaultConfig.
func DefaultSettings() Settings {
	d := game.DefaultConfig()
	return Settings{
		Board: BoardSettings{Cols: d.Cols, Rows: d.Rows},
		Speed: SpeedSettings{
			TickMS:       int(d.InitialTick / time.Millisecond),
			MinTickMS:    int(d.MinTick / time.Millisecond),
			Acceleration: d.Acceleration,
			SpawnEvery:   d.SpawnEvery,
		},
		Player: PlayerSettings{
			Lives:          d.InitialLives,
			ShotCooldownMS: int(d.ShotCooldown / time.Millisecond),
			InvulnerableMS: int(d.InvulnerableWindow / time.Millisecond),
		},
		Economy: EconomySettings{
			CoinChancePercent: d.CoinChancePercent,
			CoinPenalty:       d.CoinPenalty,
			PowerThresholds:   d.PowerThresholds[:],
		},
		Scoring: ScoringSettings{Kill: d.KillScore, Survival: d.SurvivalScore},
	}
}

// LoadSettings reads settings from path on top of the defaults, then applies
// environment overrides. An empty path falls back to $CHICKENS_CONFIG; when
// that is unset too, only defaults and overrides are used.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path == "" {
		path = GetEnv(EnvConfigPath, "")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("read settings: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// applyEnv overrides fields from the environment.
func (s *Settings) applyEnv() error {
	overrides := []struct {
		key string
		dst *int
	}{
		{EnvCols, &s.Board.Cols},
		{EnvRows, &s.Board.Rows},
		{EnvTickMS, &s.Speed.TickMS},
	}
	for _, o := range overrides {
		v, ok, err := GetEnvInt(o.key, *o.dst)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidSettings, o.key, err)
		}
		if ok {
			*o.dst = v
		}
	}

	seed, ok, err := GetEnvInt(EnvSeed, 0)
	if err != nil || seed < 0 {
		return fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidSettings, EnvSeed)
	}
	if ok {
		s.Seed = uint64(seed)
	}
	return nil
}

// Validate checks the player-facing bounds, then the full game config.
func (s Settings) Validate() error {
	switch {
	case s.Board.Cols < MinCols || s.Board.Cols > MaxCols:
		return fmt.Errorf("%w: cols must be within %d..%d, got %d", ErrInvalidSettings, MinCols, MaxCols, s.Board.Cols)
	case s.Board.Rows < MinRows || s.Board.Rows > MaxRows:
		return fmt.Errorf("%w: rows must be within %d..%d, got %d", ErrInvalidSettings, MinRows, MaxRows, s.Board.Rows)
	case s.Speed.TickMS < MinTickMS || s.Speed.TickMS > MaxTickMS:
		return fmt.Errorf("%w: tick must be within %d..%d ms, got %d", ErrInvalidSettings, MinTickMS, MaxTickMS, s.Speed.TickMS)
	case len(s.Economy.PowerThresholds) != game.MaxPower-1:
		return fmt.Errorf("%w: need %d power thresholds, got %d", ErrInvalidSettings, game.MaxPower-1, len(s.Economy.PowerThresholds))
	}

	if err := s.GameConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// GameConfig converts the settings into a game.Config. Missing thresholds
// are left at zero; Validate reports them.
func (s Settings) GameConfig() game.Config {
	cfg := game.Config{
		Cols:               s.Board.Cols,
		Rows:               s.Board.Rows,
		InitialLives:       s.Player.Lives,
		InitialTick:        time.Duration(s.Speed.TickMS) * time.Millisecond,
		MinTick:            time.Duration(s.Speed.MinTickMS) * time.Millisecond,
		Acceleration:       s.Speed.Acceleration,
		SpawnEvery:         s.Speed.SpawnEvery,
		ShotCooldown:       time.Duration(s.Player.ShotCooldownMS) * time.Millisecond,
		InvulnerableWindow: time.Duration(s.Player.InvulnerableMS) * time.Millisecond,
		CoinChancePercent:  s.Economy.CoinChancePercent,
		CoinPenalty:        s.Economy.CoinPenalty,
		KillScore:          s.Scoring.Kill,
		SurvivalScore:      s.Scoring.Survival,
	}
	copy(cfg.PowerThresholds[:], s.Economy.PowerThresholds)
	return cfg
}
