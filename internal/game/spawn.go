package game

import (
	"github.com/tomz197/chickens/internal/object"
	"github.com/tomz197/chickens/internal/physics"
)

// Spawner drops new chickens, and sometimes a coin, into free top-row columns.
type Spawner struct {
	rng               Rand
	coinChancePercent int

	top  *physics.ColumnSet
	free []int
}

// NewSpawner creates a spawner drawing columns from rng.
func NewSpawner(rng Rand, coinChancePercent int) *Spawner {
	return &Spawner{
		rng:               rng,
		coinChancePercent: coinChancePercent,
		top:               physics.NewColumnSet(0),
	}
}

// Spawn places one chicken in a random free top-row column, then, on an
// independent draw, a coin in one of the columns still free. Top-row cells
// holding a chicken or a coin are never picked. Cells holding a bullet are
// skipped too, which is stricter than a chickens-and-coins free set: a
// chicken placed on a bullet would share its cell without a collision.
// It reports whether a chicken was placed.
func (sp *Spawner) Spawn(s *State) bool {
	sp.top.Reset(s.Cols)
	for _, ch := range s.Chickens {
		if ch.Row == 0 {
			sp.top.Mark(ch.Col)
		}
	}
	for _, c := range s.CoinDrops {
		if c.Row == 0 {
			sp.top.Mark(c.Col)
		}
	}
	for _, b := range s.Bullets {
		if b.Row == 0 {
			sp.top.Mark(b.Col)
		}
	}

	sp.free = sp.top.Free(sp.free[:0])
	if len(sp.free) == 0 {
		return false
	}

	i := sp.rng.IntN(len(sp.free))
	s.Chickens = append(s.Chickens, object.NewChicken(0, sp.free[i]))
	sp.free = object.RemoveAt(sp.free, i)

	if sp.coinChancePercent <= 0 || sp.rng.IntN(100) >= sp.coinChancePercent {
		return true
	}
	if len(sp.free) == 0 {
		return true
	}
	col := sp.free[sp.rng.IntN(len(sp.free))]
	s.CoinDrops = append(s.CoinDrops, object.NewCoin(0, col))
	return true
}
