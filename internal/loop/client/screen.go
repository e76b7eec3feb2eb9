package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/chickens/internal/draw"
	"github.com/tomz197/chickens/internal/game"
	"github.com/tomz197/chickens/internal/loop/config"
	"github.com/tomz197/chickens/internal/object"
)

// Cell glyphs, each config.CellWidth columns wide.
const (
	glyphEmpty   = " · "
	glyphChicken = "(v)"
	glyphCoin    = " $ "
	glyphShip    = "/^\\"
	glyphBullet  = " | "
)

// cooldownBarWidth is the number of cells in the weapon cooldown bar.
const cooldownBarWidth = 10

// layoutSize returns the canvas size needed for a board of cfg's dimensions.
func layoutSize(cfg game.Config) (width, height int) {
	width = max(config.LayoutWidth, cfg.Cols*config.CellWidth+2)
	height = config.HUDRows + cfg.Rows + 2 + config.FooterRows
	return width, height
}

// drawFrame draws the current frame. Nothing is sent when the frame would be
// identical to the previous one.
func (c *Client) drawFrame() error {
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
		c.state.dirty = true
	}

	snap := c.game.Snapshot()
	if !c.state.dirty && !c.animating(snap) {
		return c.chunkWriter.Flush()
	}
	c.state.dirty = false

	c.canvas.Clear()
	switch {
	case c.state.GameState == GameStateShutdown:
		c.drawShutdownScreen()
	case c.state.isInactive:
		c.drawInactivityScreen()
	case c.state.GameState == GameStateStart:
		c.drawStartScreen()
	default:
		c.drawPlayingScreen(snap)
	}

	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)
	return c.chunkWriter.Flush()
}

// animating reports whether the frame changes with time alone.
func (c *Client) animating(snap game.Snapshot) bool {
	if c.state.GameState != GameStatePlaying || c.state.isInactive {
		return true
	}
	now := c.now()
	return snap.InvulnerableLeft > 0 ||
		snap.CooldownLeft > 0 ||
		now.Sub(c.state.hud.hitAt) < config.HitFlashDuration ||
		now.Sub(c.state.hud.rejectedAt) < config.HitFlashDuration
}

// drawPlayingScreen draws the HUD, the board and the status lines.
func (c *Client) drawPlayingScreen(snap game.Snapshot) {
	cv := c.canvas
	width := cv.Width()
	h := c.state.hud
	now := c.now()

	// HUD
	cv.Text(0, 0, "CHICKENS")
	players := fmt.Sprintf("Players: %d", c.server.GetSnapshot().Players)
	cv.Text(width-len(players), 0, players)

	maxHearts := c.game.Config().InitialLives
	hearts := strings.Repeat(string(draw.Heart), h.hearts) +
		strings.Repeat(string(draw.HeartEmpty), max(0, maxHearts-h.hearts))
	cv.Text(0, 1, hearts)
	score := fmt.Sprintf("Score: %d", h.score)
	cv.Text(width-len(score), 1, score)

	cv.Text(0, 2, fmt.Sprintf("Coins: %d", h.coins))
	power := "Power " + strings.Repeat("■", h.power) + strings.Repeat("·", max(0, game.MaxPower-h.power))
	cv.Text(width-len([]rune(power)), 2, power)

	cv.Text(0, 3, "Gun "+cooldownBar(snap.CooldownLeft, h.cooldown))
	if now.Sub(h.rejectedAt) < config.HitFlashDuration {
		cv.Text(17, 3, "wait")
	}
	tempo := fmt.Sprintf("Tick %dms", snap.TickInterval.Milliseconds())
	cv.Text(width-len(tempo), 3, tempo)

	// Board
	flash := now.Sub(h.hitAt) < config.HitFlashDuration
	left := (width - (snap.Cols*config.CellWidth + 2)) / 2
	c.drawBoard(snap, left, config.HUDRows, flash)

	// Status and overlays
	status := config.HUDRows + snap.Rows + 2
	switch snap.Phase {
	case game.PhaseGameOver:
		c.drawGameOverOverlay(h.finalScore)
	case game.PhasePaused:
		cv.TextCentered(config.HUDRows+snap.Rows/2+1, " PAUSED ")
		cv.TextCentered(status, "P to resume")
	default:
		if flash {
			cv.TextCentered(status, "HIT!")
		}
	}
	cv.TextCentered(status+1, "A/D move  SPACE fire  P pause")
	cv.TextCentered(status+2, "R restart  Q quit")
}

// drawBoard draws the bordered grid with its top-left border corner at
// (left, top).
func (c *Client) drawBoard(snap game.Snapshot, left, top int, flash bool) {
	cv := c.canvas
	inner := snap.Cols * config.CellWidth

	horizontal, vertical := '─', '│'
	if flash {
		horizontal, vertical = draw.BlockMedium, draw.BlockMedium
	}
	cv.Set(left, top, '┌')
	cv.Set(left+inner+1, top, '┐')
	cv.Set(left, top+snap.Rows+1, '└')
	cv.Set(left+inner+1, top+snap.Rows+1, '┘')
	for x := left + 1; x <= left+inner; x++ {
		cv.Set(x, top, horizontal)
		cv.Set(x, top+snap.Rows+1, horizontal)
	}
	for row := 0; row < snap.Rows; row++ {
		cv.Set(left, top+1+row, vertical)
		cv.Set(left+inner+1, top+1+row, vertical)
		for col := 0; col < snap.Cols; col++ {
			c.drawCell(left, top, row, col, glyphEmpty)
		}
	}

	for _, coin := range snap.CoinDrops {
		c.drawCell(left, top, coin.Row, coin.Col, glyphCoin)
	}
	for _, ch := range snap.Chickens {
		c.drawCell(left, top, ch.Row, ch.Col, glyphChicken)
	}
	for _, b := range snap.Bullets {
		c.drawCell(left, top, b.Row, b.Col, bulletGlyph(b))
	}
	if object.ShouldRenderBlink(snap.InvulnerableLeft, config.PlayerBlinkFrequency) {
		c.drawCell(left, top, snap.Rows-1, snap.PlayerCol, glyphShip)
	}
}

// drawCell writes a glyph into board cell (row, col).
func (c *Client) drawCell(left, top, row, col int, glyph string) {
	c.canvas.Text(left+1+col*config.CellWidth, top+1+row, glyph)
}

// bulletGlyph shows the remaining piercing power of strong bullets.
func bulletGlyph(b object.Bullet) string {
	if b.Power <= 1 {
		return glyphBullet
	}
	return fmt.Sprintf("|%d|", b.Power)
}

// cooldownBar renders the weapon charge: full when ready.
func cooldownBar(left, total time.Duration) string {
	filled := cooldownBarWidth
	if left > 0 && total > 0 {
		filled = int(int64(cooldownBarWidth) * int64(total-left) / int64(total))
	}
	return "[" + strings.Repeat(string(draw.BlockFull), filled) +
		strings.Repeat(string(draw.BlockLight), cooldownBarWidth-filled) + "]"
}

// drawGameOverOverlay covers the middle of the board with the final score
// and the leaderboard.
func (c *Client) drawGameOverOverlay(finalScore int) {
	cv := c.canvas
	lines := []string{
		"",
		"GAME OVER",
		fmt.Sprintf("Score: %d", finalScore),
		"",
	}
	for i, e := range c.server.GetSnapshot().TopScores {
		if i == config.TopScoresShown {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %-*s %6d", i+1, config.MaxUsernameLength, e.Username, e.Score))
	}
	lines = append(lines, "", "R / SPACE to play again", "")

	top := max(0, (cv.Height()-len(lines))/2)
	for i, line := range lines {
		cv.Fill(0, top+i, cv.Width(), 1, draw.BlockEmpty)
		cv.TextCentered(top+i, line)
	}
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen() {
	cv := c.canvas

	titleArt := []string{
		`  ___ _  _ ___ ___ _  __ `,
		` / __| || |_ _/ __| |/ / `,
		`| (__| __ || | (__| ' <  `,
		` \___|_||_|___\___|_|\_\ `,
	}
	for i, line := range titleArt {
		cv.TextCentered(i, line)
	}
	cv.TextCentered(4, "~ shoot the falling chickens ~")

	controlLines := []string{
		"A D / < >  . . . .  Move",
		"SPACE W / ^  . . .  Fire",
		"P  . . . . . . . . Pause",
		"R  . . . . . . . Restart",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cv.TextCentered(6+i, line)
	}

	if c.now().UnixMilli()/600%2 == 0 {
		cv.TextCentered(6+len(controlLines), ">> Press SPACE to start <<")
	}

	lobby := c.server.GetSnapshot()
	cv.TextCentered(cv.Height()-1, fmt.Sprintf("%d playing", lobby.Players))
	if len(lobby.TopScores) > 0 {
		best := lobby.TopScores[0]
		cv.TextCentered(cv.Height()-2, fmt.Sprintf("Best: %s %d", best.Username, best.Score))
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen() {
	cv := c.canvas
	mid := cv.Height() / 2
	left := int(config.InactivityDisconnectUser - c.now().Sub(c.lastInput).Seconds())

	cv.TextCentered(mid-2, "INACTIVITY WARNING")
	cv.TextCentered(mid, fmt.Sprintf("Disconnecting in %d seconds", max(0, left)))
	cv.TextCentered(mid+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen() {
	cv := c.canvas
	mid := cv.Height() / 2
	remaining := int(c.state.shutdownTimer) + 1

	cv.TextCentered(mid-2, "SERVER SHUTTING DOWN")
	cv.TextCentered(mid, fmt.Sprintf("Final score: %d", c.state.hud.score))
	cv.TextCentered(mid+2, fmt.Sprintf("Disconnecting in %d seconds", remaining))
}
