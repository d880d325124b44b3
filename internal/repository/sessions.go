package repository

import (
	"context"

	"github.com/pruthviraj0106/adultplatform/internal/model"
)

func (s *Store) CreateSession(ctx context.Context, session model.Session) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sessions (id, username, role, token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, session.ID, session.Username, session.Role, session.Token, session.CreatedAt, session.ExpiresAt)
	return err
}

func (s *Store) GetSession(ctx context.Context, id string) (model.Session, error) {
	var session model.Session
	row := s.pool.QueryRow(ctx, `
		SELECT id, username, role, token, created_at, expires_at
		FROM sessions
		WHERE id = $1
	`, id)
	err := row.Scan(&session.ID, &session.Username, &session.Role, &session.Token, &session.CreatedAt, &session.ExpiresAt)
	return session, err
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// DeleteSessionsByUsername enforces the at-most-one-active-session policy:
// it runs right before a fresh session is inserted at login.
func (s *Store) DeleteSessionsByUsername(ctx context.Context, username string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		DELETE FROM sessions WHERE username = $1 RETURNING id
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
