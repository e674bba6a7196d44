package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/rohanjx/workouthub-backend/internal/models"
)

// PostgresWorkoutStore implements WorkoutStore against the workouts table.
type PostgresWorkoutStore struct {
	db *sql.DB
}

// NewPostgresWorkoutStore creates a PostgresWorkoutStore backed by the given pool.
func NewPostgresWorkoutStore(db *sql.DB) *PostgresWorkoutStore {
	return &PostgresWorkoutStore{db: db}
}

var _ WorkoutStore = (*PostgresWorkoutStore)(nil)

// Create inserts a new workout entry owned by authorID. The insert is a
// single atomic statement; there is no partial write to roll back.
func (s *PostgresWorkoutStore) Create(ctx context.Context, authorID uuid.UUID, date time.Time, workout string, sets, reps int, kgs float64) (*models.WorkoutEntry, error) {
	entry := &models.WorkoutEntry{
		ID:        uuid.New(),
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		Date:      date,
		Workout:   workout,
		Sets:      sets,
		Reps:      reps,
		Kgs:       kgs,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workouts (id, created_at, author_id, date, workout, sets, reps, kgs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, entry.ID, entry.CreatedAt, entry.AuthorID, entry.Date, entry.Workout, entry.Sets, entry.Reps, entry.Kgs)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListByAuthor returns all entries owned by authorID in insertion order.
// A user with no entries gets an empty slice, never an error.
func (s *PostgresWorkoutStore) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.WorkoutEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, author_id, date, workout, sets, reps, kgs
		FROM workouts WHERE author_id = $1
		ORDER BY created_at, id
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.WorkoutEntry{}
	for rows.Next() {
		var e models.WorkoutEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.AuthorID, &e.Date, &e.Workout, &e.Sets, &e.Reps, &e.Kgs); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
