// Package client runs one terminal session: it owns a game, feeds it key
// presses and steps at the game's tempo, and draws the board and HUD.
package client

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/chickens/internal/draw"
	"github.com/tomz197/chickens/internal/game"
	"github.com/tomz197/chickens/internal/input"
	"github.com/tomz197/chickens/internal/loop"
	"github.com/tomz197/chickens/internal/loop/config"
	"github.com/tomz197/chickens/internal/loop/server"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	game         *game.Game
	clock        *loop.PausableClock
	pacer        *loop.Pacer
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates the frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	now          loop.TimeSource
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	log          *log.Logger
}

var _ game.Callbacks = (*Client)(nil)

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Config       game.Config     // Zero value means game.DefaultConfig
	Seed         uint64          // Zero picks a random seed
	Logger       *log.Logger     // Nil uses the package default
	Now          loop.TimeSource // Nil uses time.Now
}

// NewClient creates a client registered with gs and a fresh game.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config
	if cfg == (game.Config{}) {
		cfg = game.DefaultConfig()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	username := opts.Username
	if len(username) > config.MaxUsernameLength {
		username = username[:config.MaxUsernameLength]
	}

	c := &Client{
		server:       gs,
		state:        NewClientState(),
		clock:        loop.NewPausableClock(now),
		writer:       w,
		now:          now,
		lastInput:    now(),
		username:     username,
		termSizeFunc: termSizeFunc,
		log:          logger.With("user", username),
	}
	// Game time only runs while a game is on screen.
	c.clock.Pause()

	g, err := game.New(cfg, game.Options{
		Clock:     c.clock,
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Callbacks: c,
		Logger:    c.log,
	})
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	c.game = g
	c.pacer = loop.NewPacer(c.clock, g.TickInterval())

	width, height := layoutSize(cfg)
	c.canvas = draw.NewCanvas(width, height)
	c.chunkWriter = draw.NewChunkWriter(w)
	if r != nil {
		c.inputStream = input.StartStream(r)
	}

	c.handle = gs.RegisterClient(username)
	c.log.Debug("session created", "seed", seed, "cols", cfg.Cols, "rows", cfg.Rows)
	g.Init()
	return c, nil
}

// Run starts the client loop. Blocks until the client disconnects or the
// server stops.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer c.server.UnregisterClient(c.handle.ID)

	lastTime := c.now()

	for c.state.Running {
		frameStart := c.now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput(c.readInput())
		c.processServerEvents()
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := c.now().Sub(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// readInput drains the pending key presses.
func (c *Client) readInput() input.Input {
	if c.inputStream == nil {
		return input.Input{}
	}
	return input.ReadInput(c.inputStream)
}

// processInput records the frame's key presses and tracks inactivity.
func (c *Client) processInput(in input.Input) {
	c.state.Input = in
	now := c.now()

	idle := now.Sub(c.lastInput).Seconds()
	switch {
	case in.Any():
		c.lastInput = now
		c.state.isInactive = false
	case idle > config.InactivityDisconnectUser:
		c.log.Info("disconnecting inactive client")
		c.state.Running = false
	case idle > config.InactivityWarnUser:
		if !c.state.isInactive && c.state.GameState == GameStatePlaying {
			c.setPaused(true)
		}
		c.state.isInactive = true
	}

	if in.Quit || in.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown {
				c.setPaused(true)
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen re-centers the play area after a terminal resize. On an
// actual change the terminal is cleared so nothing is left outside the new
// area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	offsetCol := max(0, (termWidth-c.canvas.Width())/2)
	offsetRow := max(0, (termHeight-c.canvas.Height())/2)

	if offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.SetOffset(offsetCol, offsetRow)
		c.state.dirty = true
	}
}

// update advances the current screen by one frame.
func (c *Client) update() {
	switch c.state.GameState {
	case GameStateStart:
		c.updateStartState()
	case GameStatePlaying:
		c.updatePlayingState()
	case GameStateShutdown:
		c.updateShutdownState()
	}
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	in := c.state.Input
	if in.Fire > 0 || in.Enter {
		c.startGame()
	}
}

// updatePlayingState forwards actions to the game and steps it when due.
func (c *Client) updatePlayingState() {
	in := c.state.Input
	g := c.game

	if g.Phase() == game.PhaseGameOver {
		if in.Reset || in.Enter || in.Fire > 0 {
			c.startGame()
		}
		return
	}
	if in.Reset {
		c.startGame()
		return
	}
	if in.Pause {
		c.setPaused(!g.IsPaused())
	}
	if g.IsPaused() {
		return
	}

	for range in.Left {
		g.MoveLeft()
	}
	for range in.Right {
		g.MoveRight()
	}
	for range in.Fire {
		g.Shoot()
	}

	if c.pacer.Due() {
		g.Step()
		c.pacer.Schedule(g.TickInterval())
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// startGame starts a fresh game.
func (c *Client) startGame() {
	if c.inputStream != nil {
		input.ResetKeyInput(c.inputStream)
	}
	c.state.hud.gameOver = false
	c.game.ResetGame()
	c.clock.Resume()
	c.pacer.Reset(c.game.TickInterval())
	c.state.GameState = GameStatePlaying
	c.log.Debug("game started")
}

// setPaused pauses or resumes the game and its clock together.
func (c *Client) setPaused(paused bool) {
	c.game.SetPaused(paused)
	if c.game.IsPaused() {
		c.clock.Pause()
	} else {
		c.clock.Resume()
	}
}

func (c *Client) OnHeartsChanged(lives int) { c.state.hud.hearts = lives }
func (c *Client) OnScoreChanged(score int) { c.state.hud.score = score }
func (c *Client) OnCoinsChanged(coins int) { c.state.hud.coins = coins }
func (c *Client) OnWeaponPowerChanged(power int) { c.state.hud.power = power }
func (c *Client) OnHitFeedback() { c.state.hud.hitAt = c.now() }
func (c *Client) OnShootAccepted(cooldown time.Duration) { c.state.hud.cooldown = cooldown }
func (c *Client) OnShootRejected() { c.state.hud.rejectedAt = c.now() }
func (c *Client) OnRender() { c.state.dirty = true }

// OnGameOver freezes game time and records the score.
func (c *Client) OnGameOver(finalScore int) {
	c.state.hud.gameOver = true
	c.state.hud.finalScore = finalScore
	c.clock.Pause()
	c.server.ReportScore(c.handle.ID, finalScore)
	c.log.Info("game over", "score", finalScore)
}
