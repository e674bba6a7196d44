// Package store defines the persistence ports for users and workout entries
// and their PostgreSQL implementations.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rohanjx/workouthub-backend/internal/models"
)

var (
	// ErrDuplicateEmail indicates a registration attempt with an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
)

// UserStore persists user credentials.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// WorkoutStore persists workout entries. Every query is scoped by the owning
// user id; nothing here exposes entries across user boundaries.
type WorkoutStore interface {
	Create(ctx context.Context, authorID uuid.UUID, date time.Time, workout string, sets, reps int, kgs float64) (*models.WorkoutEntry, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.WorkoutEntry, error)
}
