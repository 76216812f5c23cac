// Package ledger keeps the SHA-1 of every sprite written, so a later run can
// tell whether the generator still produces the same bytes.
package ledger

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Ledger struct {
	db *sql.DB
}

// Open creates or opens the ledger at file. ":memory:" gives a throwaway
// ledger.
func Open(file string) (*Ledger, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	// Record reads then writes; one connection keeps that atomic.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sprite (key TEXT PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: %s: %w", file, err)
	}

	return &Ledger{
		db: db,
	}, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores digest under key and returns the digest it replaced, or ""
// for a key seen for the first time.
func (l *Ledger) Record(key, digest string) (string, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var prev string
	switch err := tx.QueryRow("SELECT sha1 FROM sprite WHERE key = ?", key).Scan(&prev); err {
	case sql.ErrNoRows, nil:
	default:
		return "", err
	}
	if prev == digest {
		return prev, nil
	}
	if _, err := tx.Exec("INSERT INTO sprite (key, sha1) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET sha1 = excluded.sha1", key, digest); err != nil {
		return "", err
	}
	return prev, tx.Commit()
}

// Digest returns the stored digest for key.
func (l *Ledger) Digest(key string) (string, bool, error) {
	var sha string
	switch err := l.db.QueryRow("SELECT sha1 FROM sprite WHERE key = ?", key).Scan(&sha); err {
	case sql.ErrNoRows:
		return "", false, nil
	case nil:
		return sha, true, nil
	default:
		return "", false, err
	}
}

// Len is the number of keys recorded.
func (l *Ledger) Len() (int, error) {
	var n int
	err := l.db.QueryRow("SELECT COUNT(*) FROM sprite").Scan(&n)
	return n, err
}
