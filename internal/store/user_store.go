package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rohanjx/workouthub-backend/internal/models"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresUserStore implements UserStore against the users table.
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore creates a PostgresUserStore backed by the given pool.
func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

var _ UserStore = (*PostgresUserStore)(nil)

// Create inserts a new user. Returns ErrDuplicateEmail when the email is
// already registered; the unique constraint guarantees no state is mutated.
func (s *PostgresUserStore) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, created_at, name, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.CreatedAt, user.Name, user.Email, user.PasswordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// GetByEmail looks up a user by email (case-insensitive).
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, name, email, password_hash
		FROM users WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

// GetByID looks up a user by id.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, name, email, password_hash
		FROM users WHERE id = $1
	`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.CreatedAt, &u.Name, &u.Email, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
