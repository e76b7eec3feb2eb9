// Package config centralizes the tunable parameters of the terminal hosts.
// Gameplay tuning lives in game.Config.
package config

import "time"

// Layout of the play area in terminal cells.
const (
	CellWidth   = 3  // Columns per board cell
	LayoutWidth = 34 // Width of HUD and board area
	HUDRows     = 4  // Rows above the board
	FooterRows  = 3  // Rows below the board
)

// Player
const (
	PlayerBlinkFrequency = 8.0 // Hz
	HitFlashDuration     = 300 * time.Millisecond
	MaxUsernameLength    = 16 // Maximum display length for player usernames
)

// Leaderboard
const (
	TopScoresKept  = 10
	TopScoresShown = 5
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownWaitTimeout    = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 30
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
