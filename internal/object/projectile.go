package object

// MaxPower is the strongest bullet the weapon can fire.
const MaxPower = 5

// Bullet is a shot travelling up the board.
// Power is how many chickens it can still pierce; it loses one per hit.
type Bullet struct {
	Cell
	Power int
}

// NewBullet creates a bullet at (row, col) with the given power.
func NewBullet(row, col, power int) Bullet {
	return Bullet{Cell: Cell{Row: row, Col: col}, Power: power}
}

// Spent reports whether the bullet has no power left and must be removed.
func (b Bullet) Spent() bool {
	return b.Power <= 0
}
