package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_fts5=true")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

// The FTS table mirrors analyses by rowid; the triggers keep it in step.
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		emotion TEXT NOT NULL,
		confidence REAL NOT NULL,
		input_text TEXT NOT NULL,
		sentiment TEXT NOT NULL DEFAULT 'neutral',
		compound REAL DEFAULT 0,
		polarity REAL DEFAULT 0,
		reason TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
	CREATE INDEX IF NOT EXISTS idx_analyses_emotion ON analyses(emotion);

	CREATE VIRTUAL TABLE IF NOT EXISTS analyses_fts USING fts5(
		input_text,
		emotion
	);

	CREATE TRIGGER IF NOT EXISTS analyses_ai AFTER INSERT ON analyses BEGIN
		INSERT INTO analyses_fts(rowid, input_text, emotion) VALUES (new.rowid, new.input_text, new.emotion);
	END;

	CREATE TRIGGER IF NOT EXISTS analyses_ad AFTER DELETE ON analyses BEGIN
		DELETE FROM analyses_fts WHERE rowid = old.rowid;
	END;

	CREATE TRIGGER IF NOT EXISTS analyses_au AFTER UPDATE ON analyses BEGIN
		DELETE FROM analyses_fts WHERE rowid = old.rowid;
		INSERT INTO analyses_fts(rowid, input_text, emotion) VALUES (new.rowid, new.input_text, new.emotion);
	END;
	`

	_, err := db.conn.Exec(schema)
	return err
}
