package game

import (
	"github.com/tomz197/chickens/internal/object"
)

// Resolver moves chickens and coins down the board and settles contacts.
// The same rules apply whether a falling entity lands on the ship or the
// ship moves under it.
type Resolver struct {
	OnKill    func() // A bullet destroyed a chicken
	OnShipHit func() // A chicken reached the ship
	OnCollect func() // The ship picked up a coin
}

// AdvanceChickens moves every chicken one row down.
//
// A chicken entering a bullet's cell always dies; the bullet only loses one
// power. A chicken entering the ship's cell is removed and hits the ship.
// Chickens leaving the board escape without penalty. Once a hit ends the
// game the remaining chickens stay where they are.
func (r *Resolver) AdvanceChickens(s *State) {
	bottom := s.BottomRow()

	kept := s.Chickens[:0]
	for i, ch := range s.Chickens {
		if s.Over {
			kept = append(kept, s.Chickens[i:]...)
			break
		}
		ch.Cell = ch.Down()
		if ch.Row >= s.Rows {
			continue
		}

		if i := object.IndexAt(s.Bullets, ch.Row, ch.Col); i != -1 {
			s.Bullets[i].Power--
			if s.Bullets[i].Spent() {
				s.Bullets = object.RemoveAt(s.Bullets, i)
			}
			r.OnKill()
			continue
		}

		if ch.At(bottom, s.PlayerCol) {
			r.OnShipHit()
			continue
		}
		kept = append(kept, ch)
	}
	s.Chickens = kept
}

// AdvanceCoins moves every coin one row down, collecting the ones that land
// on the ship and dropping the ones that leave the board.
func (r *Resolver) AdvanceCoins(s *State) {
	bottom := s.BottomRow()

	kept := s.CoinDrops[:0]
	for _, c := range s.CoinDrops {
		c.Cell = c.Down()
		if c.Row >= s.Rows {
			continue
		}
		if c.At(bottom, s.PlayerCol) {
			r.OnCollect()
			continue
		}
		kept = append(kept, c)
	}
	s.CoinDrops = kept
}

// ResolveShipCell settles contacts after the ship moved into a new column.
func (r *Resolver) ResolveShipCell(s *State) {
	bottom := s.BottomRow()

	if i := object.IndexAt(s.Chickens, bottom, s.PlayerCol); i != -1 {
		s.Chickens = object.RemoveAt(s.Chickens, i)
		r.OnShipHit()
	}
	if i := object.IndexAt(s.CoinDrops, bottom, s.PlayerCol); i != -1 {
		s.CoinDrops = object.RemoveAt(s.CoinDrops, i)
		r.OnCollect()
	}
}
