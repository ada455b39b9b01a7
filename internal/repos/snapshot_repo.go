package repos

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrStorageFull marks a write the database refused for lack of space.
// Callers keep serving from memory and warn the user instead of failing.
var ErrStorageFull = errors.New("durable storage full")

const (
	ProductsKey        = "products"
	FavoritesKeyPrefix = "favorites/"
)

type SnapshotRepo struct{ db *sqlx.DB }

func NewSnapshotRepo(db *sqlx.DB) *SnapshotRepo { return &SnapshotRepo{db: db} }

// Load returns the stored blob for key, or (nil, nil) when no snapshot
// exists. Deciding whether the blob parses is the caller's problem;
// malformed content is treated the same as absence there.
func (r *SnapshotRepo) Load(key string) ([]byte, error) {
	var body string
	err := r.db.Get(&body, `SELECT body FROM snapshots WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// Save upserts the blob for key. A full or read-only database comes back
// as ErrStorageFull; anything else is returned as-is.
func (r *SnapshotRepo) Save(key string, body []byte) error {
	_, err := r.db.Exec(`
	  INSERT INTO snapshots(key, body, updated_at) VALUES(?, ?, ?)
	  ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, key, string(body), time.Now().UTC().Format(time.RFC3339))
	if err != nil && isStorageFull(err) {
		return ErrStorageFull
	}
	return err
}

func (r *SnapshotRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM snapshots WHERE key = ?`, key)
	return err
}

func isStorageFull(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database or disk is full") ||
		strings.Contains(msg, "attempt to write a readonly database")
}
