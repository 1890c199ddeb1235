// Package storage provides SQLite-based persistence for score records and
// pilot settings. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// Settings keys.
const (
	keyPilotName = "pilot_name"
	keyPilotID   = "pilot_id"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS score_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			date TEXT NOT NULL,
			player_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_score_records_top ON score_records(mode, score DESC);
		CREATE INDEX IF NOT EXISTS idx_score_records_player ON score_records(mode, player_id);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScoreRecord validates and stores a finished run under mode.
// Returns the ID of the inserted record.
func (s *Store) SaveScoreRecord(mode string, rec core.ScoreRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO score_records (mode, name, score, date, player_id) VALUES (?, ?, ?, ?, ?)",
		mode, strings.TrimSpace(rec.Name), rec.Score, rec.Date, rec.PlayerID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores returns the best record of each player for mode, highest
// first, truncated to limit. Equal scores keep insertion order.
func (s *Store) TopScores(mode string, limit int) ([]core.ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name, score, date, player_id
		 FROM score_records
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC`,
		mode,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []core.ScoreRecord
	for rows.Next() {
		var r core.ScoreRecord
		if err := rows.Scan(&r.Name, &r.Score, &r.Date, &r.PlayerID); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return core.TopByPlayer(records, limit), nil
}

// ClearScores deletes all records for mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM score_records WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Board returns the leaderboard of one mode as a core.ScoreStore.
func (s *Store) Board(mode string) *Board {
	return &Board{store: s, mode: mode}
}

// Board binds a Store to one mode.
type Board struct {
	store *Store
	mode  string
}

var _ core.ScoreStore = (*Board)(nil)

// SaveScoreRecord implements core.ScoreStore.
func (b *Board) SaveScoreRecord(rec core.ScoreRecord) error {
	_, err := b.store.SaveScoreRecord(b.mode, rec)
	return err
}

// TopScores implements core.ScoreStore.
func (b *Board) TopScores(limit int) ([]core.ScoreRecord, error) {
	return b.store.TopScores(b.mode, limit)
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	RunsCount  int
	Pilots     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// AllModeStats retrieves statistics for every mode that has been played.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), COUNT(DISTINCT player_id), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM score_records
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.RunsCount, &m.Pilots, &m.HighScore, &m.AvgScore, &m.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Setting returns a stored setting. ok is false when the key is unset.
func (s *Store) Setting(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores a setting, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// LoadPilot returns the local pilot. A missing ID is generated and
// persisted on first use; a missing name falls back to defaultName.
func (s *Store) LoadPilot(defaultName string) (core.Pilot, error) {
	id, ok, err := s.Setting(keyPilotID)
	if err != nil {
		return core.Pilot{}, err
	}
	if !ok {
		id = uuid.NewString()
		if err := s.SetSetting(keyPilotID, id); err != nil {
			return core.Pilot{}, err
		}
	}

	name, ok, err := s.Setting(keyPilotName)
	if err != nil {
		return core.Pilot{}, err
	}
	if !ok || strings.TrimSpace(name) == "" {
		name = defaultName
	}

	return core.Pilot{Name: name, ID: id}, nil
}

// SavePilotName stores the pilot name shown on the scoreboard.
func (s *Store) SavePilotName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("storage: %w", errors.Join(core.ErrInvalidRecord, errors.New("name is empty")))
	}
	return s.SetSetting(keyPilotName, name)
}

// ClearPilotName forgets the stored pilot name. The pilot ID is kept so
// earlier scores still belong to the same player.
func (s *Store) ClearPilotName() error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", keyPilotName); err != nil {
		return fmt.Errorf("storage: cannot clear pilot name: %w", err)
	}
	return nil
}
