package game

import (
	"testing"
	"time"

	"github.com/tomz197/chickens/internal/object"
)

func TestStepChickenLandsOnShip(t *testing.T) {
	f := newFixture(t, testConfig())
	s := f.game.state
	s.PlayerCol = 2
	s.Chickens = []object.Chicken{object.NewChicken(8, 2)}

	f.game.Step()

	if len(s.Chickens) != 0 {
		t.Fatalf("chickens = %v, want none", s.Chickens)
	}
	if s.Lives != 2 {
		t.Fatalf("lives = %d, want 2", s.Lives)
	}
	want := f.clock.now + f.game.cfg.InvulnerableWindow
	if s.InvulnerableUntil != want {
		t.Fatalf("InvulnerableUntil = %s, want %s", s.InvulnerableUntil, want)
	}
	if f.ui.hits != 1 {
		t.Fatalf("hit feedback = %d, want 1", f.ui.hits)
	}
}

func TestStepChickenMeetsBulletHalfway(t *testing.T) {
	// Bullet and chicken two rows apart end up in the same cell only after
	// both moved; the chicken's move must catch it.
	f := newFixture(t, testConfig())
	s := f.game.state
	s.Bullets = []object.Bullet{object.NewBullet(6, 1, 2)}
	s.Chickens = []object.Chicken{object.NewChicken(4, 1)}

	f.game.Step()

	if len(s.Chickens) != 0 {
		t.Fatalf("chickens = %v, want none", s.Chickens)
	}
	if len(s.Bullets) != 1 || s.Bullets[0] != object.NewBullet(5, 1, 1) {
		t.Fatalf("bullets = %v, want [{5 1} power 1]", s.Bullets)
	}
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
}

func TestStepChickenSpendsBullet(t *testing.T) {
	f := newFixture(t, testConfig())
	s := f.game.state
	s.Bullets = []object.Bullet{object.NewBullet(6, 1, 1)}
	s.Chickens = []object.Chicken{object.NewChicken(4, 1)}

	f.game.Step()

	if len(s.Chickens) != 0 || len(s.Bullets) != 0 {
		t.Fatalf("chickens = %v bullets = %v, want both empty", s.Chickens, s.Bullets)
	}
}

func TestStepChickensAndCoinsEscape(t *testing.T) {
	f := newFixture(t, testConfig())
	s := f.game.state
	s.PlayerCol = 0
	s.Chickens = []object.Chicken{object.NewChicken(9, 3)}
	s.CoinDrops = []object.Coin{object.NewCoin(9, 4)}

	f.game.Step()

	if len(s.Chickens) != 0 || len(s.CoinDrops) != 0 {
		t.Fatalf("chickens = %v coins = %v, want both gone", s.Chickens, s.CoinDrops)
	}
	if s.Lives != 3 || s.Coins != 0 {
		t.Fatalf("lives = %d coins = %d, want 3 and 0", s.Lives, s.Coins)
	}
}

func TestStepCollectsFallingCoin(t *testing.T) {
	cfg := testConfig()
	cfg.PowerThresholds = [MaxPower - 1]int{1, 2, 3, 4}
	f := newFixture(t, cfg)
	s := f.game.state
	s.PlayerCol = 3
	s.CoinDrops = []object.Coin{object.NewCoin(8, 3), object.NewCoin(2, 3)}

	f.game.Step()

	if s.Coins != 1 {
		t.Fatalf("coins = %d, want 1", s.Coins)
	}
	if len(s.CoinDrops) != 1 || s.CoinDrops[0] != object.NewCoin(3, 3) {
		t.Fatalf("coin drops = %v, want [{3 3}]", s.CoinDrops)
	}
	if len(f.ui.powers) != 1 || f.ui.powers[0] != 2 {
		t.Fatalf("power notifications = %v, want [2]", f.ui.powers)
	}
}

func TestMoveIntoChickenAndCoin(t *testing.T) {
	f := newFixture(t, testConfig())
	s := f.game.state
	s.PlayerCol = 2
	s.Chickens = []object.Chicken{object.NewChicken(9, 3)}
	s.CoinDrops = []object.Coin{object.NewCoin(9, 1)}

	f.game.MoveRight()
	if s.PlayerCol != 3 || len(s.Chickens) != 0 || s.Lives != 2 {
		t.Fatalf("after MoveRight: col=%d chickens=%v lives=%d", s.PlayerCol, s.Chickens, s.Lives)
	}

	f.game.MoveLeft()
	f.game.MoveLeft()
	if s.PlayerCol != 1 || len(s.CoinDrops) != 0 || s.Coins != 1 {
		t.Fatalf("after MoveLeft×2: col=%d coins=%v collected=%d", s.PlayerCol, s.CoinDrops, s.Coins)
	}
}

// The ship running into a chicken and a chicken falling onto the ship must
// leave the same state behind.
func TestMoveAndFallResolveAlike(t *testing.T) {
	byMove := newFixture(t, testConfig())
	byMove.game.state.PlayerCol = 1
	byMove.game.state.Chickens = []object.Chicken{object.NewChicken(9, 2)}
	byMove.game.MoveRight()

	byFall := newFixture(t, testConfig())
	byFall.game.state.PlayerCol = 2
	byFall.game.state.Chickens = []object.Chicken{object.NewChicken(8, 2)}
	byFall.game.Step()

	a, b := byMove.game.state, byFall.game.state
	if a.Lives != b.Lives || a.Coins != b.Coins || a.InvulnerableUntil != b.InvulnerableUntil ||
		len(a.Chickens) != len(b.Chickens) || a.PlayerCol != b.PlayerCol {
		t.Fatalf("move %+v and fall %+v resolved differently", a, b)
	}
}

func TestInvulnerabilityGrace(t *testing.T) {
	f := newFixture(t, testConfig())
	s := f.game.state
	s.PlayerCol = 2
	s.Coins = 9
	s.InvulnerableUntil = f.clock.now + time.Second
	s.Chickens = []object.Chicken{object.NewChicken(8, 2)}

	f.game.Step()

	if len(s.Chickens) != 0 {
		t.Fatalf("chickens = %v, want the chicken removed", s.Chickens)
	}
	if s.Lives != 3 || s.Coins != 9 {
		t.Fatalf("lives = %d coins = %d, want unchanged 3 and 9", s.Lives, s.Coins)
	}
	if f.ui.hits != 0 {
		t.Fatalf("hit feedback = %d, want 0", f.ui.hits)
	}
}

func TestCoinPenaltyFloor(t *testing.T) {
	tests := []struct {
		name    string
		coins   int
		penalty int
		want    int
	}{
		{"partial", 12, 5, 7},
		{"exact", 5, 5, 0},
		{"clamped", 3, 5, 0},
		{"none", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.CoinPenalty = tt.penalty
			f := newFixture(t, cfg)
			s := f.game.state
			s.Coins = tt.coins
			s.Chickens = []object.Chicken{object.NewChicken(9, s.PlayerCol+1)}

			f.game.MoveRight()

			if s.Coins != tt.want {
				t.Fatalf("coins = %d, want %d", s.Coins, tt.want)
			}
		})
	}
}

func TestPenaltyDowngradesWeapon(t *testing.T) {
	f := newFixture(t, testConfig())
	s := f.game.state
	s.Coins = 17 // power 2
	s.Chickens = []object.Chicken{object.NewChicken(9, s.PlayerCol-1)}

	f.game.MoveLeft()

	if s.Coins != 12 {
		t.Fatalf("coins = %d, want 12", s.Coins)
	}
	if len(f.ui.powers) != 1 || f.ui.powers[0] != 1 {
		t.Fatalf("power notifications = %v, want [1]", f.ui.powers)
	}
}

func TestChickenDiesOnce(t *testing.T) {
	// Two bullets stacked under one chicken: only the first one is spent on it.
	f := newFixture(t, testConfig())
	s := f.game.state
	s.Bullets = []object.Bullet{object.NewBullet(5, 0, 1), object.NewBullet(6, 0, 1)}
	s.Chickens = []object.Chicken{object.NewChicken(4, 0)}

	f.game.Step()

	if len(s.Chickens) != 0 {
		t.Fatalf("chickens = %v, want none", s.Chickens)
	}
	if len(s.Bullets) != 1 || s.Bullets[0] != object.NewBullet(5, 0, 1) {
		t.Fatalf("bullets = %v, want the second bullet untouched at {5 0}", s.Bullets)
	}
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
}
