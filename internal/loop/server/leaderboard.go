package server

import (
	"cmp"
	"slices"
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// Leaderboard keeps the best scores of finished games for the lifetime of
// the process. It is not safe for concurrent use; Server guards it.
type Leaderboard struct {
	size    int
	entries []TopScoreEntry
}

// NewLeaderboard creates a leaderboard holding at most size entries.
func NewLeaderboard(size int) *Leaderboard {
	return &Leaderboard{size: max(0, size)}
}

// Add records a score and reports whether it made the board. Higher scores
// rank first; on a tie the earlier client ranks first.
func (l *Leaderboard) Add(username string, score, clientID int) bool {
	if l.size == 0 || score <= 0 {
		return false
	}
	e := TopScoreEntry{Username: username, Score: score, clientID: clientID}
	i, _ := slices.BinarySearchFunc(l.entries, e, compareEntries)
	if i >= l.size {
		return false
	}
	l.entries = slices.Insert(l.entries, i, e)
	if len(l.entries) > l.size {
		l.entries = l.entries[:l.size]
	}
	return true
}

// Entries returns a copy of the board, best first.
func (l *Leaderboard) Entries() []TopScoreEntry {
	return slices.Clone(l.entries)
}

func compareEntries(a, b TopScoreEntry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.clientID, b.clientID)
}
