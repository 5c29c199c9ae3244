// Package cache stores fetched messages in a local SQLite database so
// pipeline reruns do not refetch bodies from the provider.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/orders-tracker/internal/mail"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         TEXT PRIMARY KEY,
	subject    TEXT NOT NULL DEFAULT '',
	sender     TEXT NOT NULL DEFAULT '',
	date       TEXT NOT NULL DEFAULT '',
	body       TEXT NOT NULL DEFAULT '',
	fetched_at TIMESTAMP NOT NULL
);`

// Store implements mail.BodyStore over a SQLite file. Use ":memory:"
// for an ephemeral store.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, id string) (*mail.Message, bool, error) {
	msg := &mail.Message{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT subject, sender, date, body FROM messages WHERE id = ?`, id).
		Scan(&msg.Subject, &msg.From, &msg.Date, &msg.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return msg, true, nil
}

func (s *Store) Put(ctx context.Context, msg *mail.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, subject, sender, date, body, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   subject = excluded.subject,
		   sender = excluded.sender,
		   date = excluded.date,
		   body = excluded.body,
		   fetched_at = excluded.fetched_at`,
		msg.ID, msg.Subject, msg.From, msg.Date, msg.Body, time.Now().UTC())
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
