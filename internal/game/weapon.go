package game

import (
	"time"

	"github.com/tomz197/chickens/internal/object"
)

// MaxPower is the strongest weapon level.
const MaxPower = object.MaxPower

// WeaponPower returns the weapon level (1..MaxPower) for a coin total.
// Level i+2 unlocks once coins reach thresholds[i].
func WeaponPower(coins int, thresholds [MaxPower - 1]int) int {
	power := 1
	for i, t := range thresholds {
		if coins >= t {
			power = i + 2
		}
	}
	return power
}

// Weapon gates shooting behind a cooldown and moves bullets up the board.
type Weapon struct {
	Cooldown   time.Duration
	Thresholds [MaxPower - 1]int
}

// Power returns the weapon level for the state's current coins.
func (w *Weapon) Power(s *State) int {
	return WeaponPower(s.Coins, w.Thresholds)
}

// ready reports whether the cooldown has elapsed at now.
func (w *Weapon) ready(s *State, now time.Duration) bool {
	return !s.HasShot || now-s.LastShotAt >= w.Cooldown
}

// CooldownLeft returns how long until the weapon can fire again.
func (w *Weapon) CooldownLeft(s *State, now time.Duration) time.Duration {
	if w.ready(s, now) {
		return 0
	}
	return w.Cooldown - (now - s.LastShotAt)
}

// TryShoot fires from the cell right above the ship. It returns false, and
// leaves the cooldown untouched, when the shot cannot be taken.
//
// A chicken sitting in the spawn cell is killed point-blank; the bullet
// keeps the rest of its power and stays in that cell.
func (w *Weapon) TryShoot(s *State, now time.Duration, onKill func()) bool {
	if s.Paused || !w.ready(s, now) {
		return false
	}

	row := s.Rows - 2
	if row < 0 {
		return false
	}
	col := s.PlayerCol
	power := w.Power(s)

	if i := object.IndexAt(s.Chickens, row, col); i != -1 {
		s.Chickens = object.RemoveAt(s.Chickens, i)
		onKill()
		if power > 1 {
			s.Bullets = append(s.Bullets, object.NewBullet(row, col, power-1))
		}
		w.consume(s, now)
		return true
	}

	// No stacking: a bullet already waiting in the spawn cell blocks the shot.
	if object.IndexAt(s.Bullets, row, col) != -1 {
		return false
	}

	s.Bullets = append(s.Bullets, object.NewBullet(row, col, power))
	w.consume(s, now)
	return true
}

func (w *Weapon) consume(s *State, now time.Duration) {
	s.LastShotAt = now
	s.HasShot = true
}

// AdvanceBullets moves every bullet one row up. A bullet entering a
// chicken's cell kills it and loses one power; spent bullets are removed.
func (w *Weapon) AdvanceBullets(s *State, onKill func()) {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Cell = b.Up()
		if b.Row < 0 {
			continue
		}

		if i := object.IndexAt(s.Chickens, b.Row, b.Col); i != -1 {
			s.Chickens = object.RemoveAt(s.Chickens, i)
			onKill()
			b.Power--
			if b.Spent() {
				continue
			}
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}
