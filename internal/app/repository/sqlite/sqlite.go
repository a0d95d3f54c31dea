package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"audiotranscriber/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_path TEXT NOT NULL,
	file_name TEXT NOT NULL,
	transcript TEXT NOT NULL DEFAULT '',
	converted_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
)`

// SQLiteDB is the sqlite-backed transcription history.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and if necessary creates) the history database at dbPath.
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	s := NewWithDB(db)
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an existing connection. The schema is not touched; used by
// tests and callers that manage the connection themselves.
func NewWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (s *SQLiteDB) init() error {
	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create transcriptions table: %w", err)
	}
	return nil
}

func (s *SQLiteDB) Record(t model.Transcription) error {
	_, err := s.db.Exec(
		`INSERT INTO transcriptions (file_path, file_name, transcript, converted_at, has_error, error_message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.FilePath, t.FileName, t.Transcript, t.ConvertedAt, t.HasError, t.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to record transcription for %s: %w", t.FileName, err)
	}
	return nil
}

func (s *SQLiteDB) GetAll() ([]model.Transcription, error) {
	rows, err := s.db.Query(
		`SELECT id, file_path, file_name, transcript, converted_at, has_error, error_message
		 FROM transcriptions ORDER BY converted_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcriptions: %w", err)
	}
	defer rows.Close()

	var transcriptions []model.Transcription
	for rows.Next() {
		var t model.Transcription
		if err := rows.Scan(&t.ID, &t.FilePath, &t.FileName, &t.Transcript,
			&t.ConvertedAt, &t.HasError, &t.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan transcription row: %w", err)
		}
		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
