package core

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidRecord is returned when a score record fails local validation
// and must not reach the score store.
var ErrInvalidRecord = errors.New("invalid score record")

// ScoreRecord is one finished run as persisted by the score store.
type ScoreRecord struct {
	Name     string // Pilot name shown on the scoreboard
	Score    int    // Final score, always positive once validated
	Date     string // Human readable finish time ("DD/MM/YYYY HH:MM")
	PlayerID string // Stable identity used to keep one entry per player
}

// Validate rejects records that should never be submitted.
func (r ScoreRecord) Validate() error {
	if r.Score <= 0 {
		return errors.Join(ErrInvalidRecord, errors.New("score must be positive"))
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.Join(ErrInvalidRecord, errors.New("name is empty"))
	}
	return nil
}

// TopByPlayer keeps the best record of each player, sorts by score
// descending and truncates to limit. Ties keep their input order.
func TopByPlayer(records []ScoreRecord, limit int) []ScoreRecord {
	best := make(map[string]int, len(records)) // player -> index in out
	out := make([]ScoreRecord, 0, len(records))
	for _, r := range records {
		if i, ok := best[r.PlayerID]; ok {
			if r.Score > out[i].Score {
				out[i] = r
			}
			continue
		}
		best[r.PlayerID] = len(out)
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ScoreStore persists finished runs and serves the leaderboard.
type ScoreStore interface {
	// SaveScoreRecord persists one finished run.
	SaveScoreRecord(r ScoreRecord) error
	// TopScores returns the best record per player, highest first.
	TopScores(limit int) ([]ScoreRecord, error)
}

// Pilot identifies the local player on the scoreboard.
type Pilot struct {
	Name string
	ID   string
}
