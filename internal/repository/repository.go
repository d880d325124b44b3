package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pruthviraj0106/adultplatform/internal/model"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateUser(ctx context.Context, name, email, username, passwordHash string) (model.User, error) {
	var user model.User
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, username, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, username
	`, name, email, username, passwordHash)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Username)
	return user, err
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, email, username, password, subscription_status, created_at
		FROM users
		WHERE username = $1
	`, username)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.SubscriptionStatus,
		&user.CreatedAt,
	)
	return user, err
}

func (s *Store) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	var taken bool
	row := s.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
	`, username, email)
	err := row.Scan(&taken)
	return taken, err
}

func (s *Store) GetAdminByUsername(ctx context.Context, username string) (model.Admin, error) {
	var admin model.Admin
	row := s.pool.QueryRow(ctx, `
		SELECT username, password FROM admin WHERE username = $1
	`, username)
	err := row.Scan(&admin.Username, &admin.PasswordHash)
	return admin, err
}

func (s *Store) AdminExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	row := s.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM admin WHERE username = $1)
	`, username)
	err := row.Scan(&exists)
	return exists, err
}

func (s *Store) CreateAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO admin (username, password) VALUES ($1, $2)
	`, username, passwordHash)
	return err
}
