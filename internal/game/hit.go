package game

// handleShipHit applies a chicken reaching the ship. The chicken has already
// been removed by the caller.
func (g *Game) handleShipHit() {
	s := g.state
	if s.Over {
		return
	}

	now := g.clock.Now()
	if s.Invulnerable(now) {
		return
	}

	powerBefore := g.weapon.Power(s)

	s.Lives = max(0, s.Lives-1)
	s.Coins = max(0, s.Coins-g.cfg.CoinPenalty)
	s.InvulnerableUntil = now + g.cfg.InvulnerableWindow

	g.ui.OnHeartsChanged(s.Lives)
	g.ui.OnCoinsChanged(s.Coins)
	if power := g.weapon.Power(s); power != powerBefore {
		g.ui.OnWeaponPowerChanged(power)
	}
	g.ui.OnHitFeedback()

	if s.Lives <= 0 {
		s.Paused = true
		s.Over = true
		g.log.Debug("game over", "score", s.Score, "steps", s.Steps)
		g.ui.OnGameOver(s.Score)
	}
}

// handleKill scores a chicken destroyed by a bullet.
func (g *Game) handleKill() {
	if g.state.Over {
		return
	}
	g.state.Score += g.cfg.KillScore
	g.ui.OnScoreChanged(g.state.Score)
}

// handleCollect adds a collected coin and reports weapon upgrades.
func (g *Game) handleCollect() {
	s := g.state
	if s.Over {
		return
	}
	powerBefore := g.weapon.Power(s)

	s.Coins++
	g.ui.OnCoinsChanged(s.Coins)
	if power := g.weapon.Power(s); power != powerBefore {
		g.log.Debug("weapon upgraded", "power", power, "coins", s.Coins)
		g.ui.OnWeaponPowerChanged(power)
	}
}
