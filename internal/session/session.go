// Package session keeps the logged-in state handed out by the content API: a
// bearer token plus user identity, stored server-side in sqlite and keyed by a
// cookie id. Presence of a live row is what "logged in" means.
package session

import (
	"database/sql"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

var ErrNotFound = errors.New("session not found or expired")

type Session struct {
	ID        string
	Token     string
	UserID    string
	UserName  string
	ExpiresAt time.Time
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	sqlBytes, err := fs.ReadFile(schemaFS, "schema.sql")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(string(sqlBytes)); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Create stores a new session for a token the content API just issued.
func (s *Store) Create(token, userID, userName string, ttl time.Duration) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    userID,
		UserName:  userName,
		ExpiresAt: time.Now().Add(ttl),
	}
	_, err := s.db.Exec(`INSERT INTO sessions (id, token, user_id, user_name, expires_at) VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.Token, sess.UserID, sess.UserName, sess.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the live session with the given id. Expired or revoked rows
// report ErrNotFound.
func (s *Store) Get(id string) (*Session, error) {
	row := s.db.QueryRow(`SELECT id, token, user_id, user_name, expires_at, revoked_at FROM sessions WHERE id = ?`, id)
	var sess Session
	var revoked sql.NullTime
	err := row.Scan(&sess.ID, &sess.Token, &sess.UserID, &sess.UserName, &sess.ExpiresAt, &revoked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if revoked.Valid || sess.ExpiresAt.Before(time.Now()) {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *Store) Revoke(id string) error {
	_, err := s.db.Exec(`UPDATE sessions SET revoked_at = CURRENT_TIMESTAMP WHERE id = ? AND revoked_at IS NULL`, id)
	return err
}

// MarkLiked records that this session hearted a post. Marking twice is fine.
func (s *Store) MarkLiked(sessionID, postID string) error {
	_, err := s.db.Exec(`INSERT INTO liked_posts (session_id, post_id) VALUES (?, ?)
        ON CONFLICT(session_id, post_id) DO NOTHING`, sessionID, postID)
	return err
}

func (s *Store) Liked(sessionID, postID string) (bool, error) {
	row := s.db.QueryRow(`SELECT 1 FROM liked_posts WHERE session_id = ? AND post_id = ?`, sessionID, postID)
	var one int
	err := row.Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
