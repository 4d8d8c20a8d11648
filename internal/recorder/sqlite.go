package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"HomerunOdds/internal/model"
)

// SQLiteRecorder persists cycle history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the feed writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cycle_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			date          TEXT NOT NULL,
			total_games   INTEGER,
			live_games    INTEGER,
			cached_games  INTEGER,
			total_players INTEGER,
			persisted     INTEGER,
			note          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycle_ts ON cycle_history(timestamp)`,

		`CREATE TABLE IF NOT EXISTS consensus_history (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			date            TEXT NOT NULL,
			game_id         TEXT NOT NULL,
			player_name     TEXT NOT NULL,
			line            REAL,
			over_consensus  INTEGER,
			under_consensus INTEGER,
			book_count      INTEGER,
			status          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_consensus_ts ON consensus_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_consensus_player ON consensus_history(player_name)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(evt *CycleEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	persisted := 0
	if evt.Persisted {
		persisted = 1
	}
	_, err := r.db.Exec(`INSERT INTO cycle_history
		(timestamp, date, total_games, live_games, cached_games, total_players, persisted, note)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Date, evt.TotalGames, evt.LiveGames,
		evt.CachedGames, evt.TotalPlayers, persisted, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) RecordOdds(snap *model.DailySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	for _, g := range snap.Games {
		// Only live rows move between cycles; cached odds were already
		// recorded the cycle they were live.
		if g.Status != model.StatusLive {
			continue
		}
		for _, p := range g.Players {
			var over, under any
			if p.OverOdds != nil {
				over = p.OverOdds.Consensus
			}
			if p.UnderOdds != nil {
				under = p.UnderOdds.Consensus
			}
			if _, err := tx.Exec(`INSERT INTO consensus_history
				(timestamp, date, game_id, player_name, line, over_consensus, under_consensus, book_count, status)
				VALUES (?,?,?,?,?,?,?,?,?)`,
				now, snap.Date, g.GameID, p.PlayerName, p.Line,
				over, under, p.SportsbookCount, string(p.Status),
			); err != nil {
				tx.Rollback()
				return err
			}
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
