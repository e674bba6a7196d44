package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohanjx/workouthub-backend/internal/models"
)

// MemUserStore is an in-memory UserStore for development and testing.
type MemUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

// NewMemUserStore creates an empty in-memory user store.
func NewMemUserStore() *MemUserStore {
	return &MemUserStore{}
}

var _ UserStore = (*MemUserStore)(nil)

// Create adds a user, enforcing email uniqueness the way the users table does.
func (m *MemUserStore) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := &models.User{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	m.users = append(m.users, user)

	out := *user
	return &out, nil
}

func (m *MemUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Count reports how many users are stored. Test helper.
func (m *MemUserStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// MemWorkoutStore is an in-memory WorkoutStore for development and testing.
type MemWorkoutStore struct {
	mu       sync.Mutex
	workouts []models.WorkoutEntry
}

// NewMemWorkoutStore creates an empty in-memory workout store.
func NewMemWorkoutStore() *MemWorkoutStore {
	return &MemWorkoutStore{}
}

var _ WorkoutStore = (*MemWorkoutStore)(nil)

// Create appends a workout entry owned by authorID.
func (m *MemWorkoutStore) Create(ctx context.Context, authorID uuid.UUID, date time.Time, workout string, sets, reps int, kgs float64) (*models.WorkoutEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := models.WorkoutEntry{
		ID:        uuid.New(),
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		Date:      date,
		Workout:   workout,
		Sets:      sets,
		Reps:      reps,
		Kgs:       kgs,
	}
	m.workouts = append(m.workouts, entry)

	out := entry
	return &out, nil
}

// ListByAuthor returns the entries owned by authorID in insertion order.
func (m *MemWorkoutStore) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.WorkoutEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := []models.WorkoutEntry{}
	for _, e := range m.workouts {
		if e.AuthorID == authorID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
